package stats

import (
	"fmt"
	"log/slog"
)

// Seasons outside this range cannot be real nflverse data. Weekly player
// stats begin in 1999; the upper bound guards against mangled year cells.
const (
	minSeason = 1999
	maxSeason = 2030
)

// Validate returns the aggregate rows that are fit to load, dropping the
// rest with a warning. A dropped row here is a source-data problem, not a
// load failure, so it does not show up in the load counters.
func Validate(rows []SeasonStat) []SeasonStat {
	valid := rows[:0]
	for _, row := range rows {
		if err := check(row); err != nil {
			slog.Warn("dropping invalid aggregate row",
				"player", row.PlayerName,
				"season", row.Season,
				"team", row.Team,
				"error", err,
			)
			continue
		}
		valid = append(valid, row)
	}
	return valid
}

func check(row SeasonStat) error {
	if row.PlayerID == "" {
		return fmt.Errorf("missing player id")
	}
	if row.PlayerName == "" {
		return fmt.Errorf("missing player name")
	}
	if row.Season < minSeason || row.Season > maxSeason {
		return fmt.Errorf("season %d out of range %d-%d", row.Season, minSeason, maxSeason)
	}
	if row.GamesPlayed <= 0 {
		return fmt.Errorf("no contributing weeks")
	}
	return nil
}
