// Package stats reduces weekly stat lines to per-player season totals.
package stats

import (
	"sort"

	"github.com/gridstats/nflverse-loader/internal/nflverse"
)

// Key identifies one aggregate group. A player who changes teams mid-season
// produces one group per team, not one combined group.
type Key struct {
	PlayerID   string
	PlayerName string
	Position   string
	Season     int
	Team       string
}

// SeasonStat is one player's summed totals for one season with one team,
// under the canonical persisted field names (games played, passing ints).
type SeasonStat struct {
	Key

	GamesPlayed int

	PassingYards       int
	PassingTDs         int
	PassingInts        int
	PassingAttempts    int
	PassingCompletions int

	RushingYards    int
	RushingTDs      int
	RushingAttempts int

	ReceivingYards   int
	ReceivingTDs     int
	Receptions       int
	ReceivingTargets int
}

// Aggregate groups weekly rows by (player, name, position, season, team) and
// sums every numeric category. Games played is the number of contributing
// weekly rows. The result is sorted by player id then team so repeated runs
// emit rows in a stable order.
func Aggregate(weekly []nflverse.WeeklyStat) []SeasonStat {
	groups := make(map[Key]*SeasonStat)

	for _, w := range weekly {
		k := Key{
			PlayerID:   w.PlayerID,
			PlayerName: w.PlayerName,
			Position:   w.Position,
			Season:     w.Season,
			Team:       w.Team,
		}

		agg, ok := groups[k]
		if !ok {
			agg = &SeasonStat{Key: k}
			groups[k] = agg
		}

		agg.GamesPlayed++
		agg.PassingYards += w.PassingYards
		agg.PassingTDs += w.PassingTDs
		agg.PassingInts += w.Interceptions
		agg.PassingAttempts += w.PassingAttempts
		agg.PassingCompletions += w.Completions
		agg.RushingYards += w.RushingYards
		agg.RushingTDs += w.RushingTDs
		agg.RushingAttempts += w.RushingAttempts
		agg.ReceivingYards += w.ReceivingYards
		agg.ReceivingTDs += w.ReceivingTDs
		agg.Receptions += w.Receptions
		agg.ReceivingTargets += w.Targets
	}

	out := make([]SeasonStat, 0, len(groups))
	for _, agg := range groups {
		out = append(out, *agg)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].PlayerID != out[j].PlayerID {
			return out[i].PlayerID < out[j].PlayerID
		}
		return out[i].Team < out[j].Team
	})

	return out
}
