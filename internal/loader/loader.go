// Package loader reconciles aggregated season stats against the identity
// mappings and writes them to storage, one season at a time.
package loader

import (
	"context"
	"log/slog"

	"github.com/gridstats/nflverse-loader/internal/identity"
	"github.com/gridstats/nflverse-loader/internal/stats"
	"github.com/gridstats/nflverse-loader/internal/store"
)

// Batch accepts one season's upserts and finishes with a single commit.
// *store.SeasonBatch is the production implementation.
type Batch interface {
	Upsert(ctx context.Context, rec store.CareerStat) (created bool, err error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Result tallies the outcome of one season's load.
type Result struct {
	Inserted int
	Updated  int
	Failed   int
}

func (r *Result) add(other Result) {
	r.Inserted += other.Inserted
	r.Updated += other.Updated
	r.Failed += other.Failed
}

// Loader maps aggregate rows to persisted records using the run's identity
// snapshots.
type Loader struct {
	resolver *identity.Resolver
	logger   *slog.Logger
}

// NewLoader creates a Loader over the run's resolver.
func NewLoader(resolver *identity.Resolver, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{resolver: resolver, logger: logger}
}

// LoadSeason writes one season's aggregate rows into the batch.
//
// Per row: the player name must resolve or the row is counted failed and
// skipped with nothing written. An unresolved team is not an error; the
// record is written with a NULL team reference. A storage error fails only
// that row; the batch continues. The caller owns Commit.
func (l *Loader) LoadSeason(ctx context.Context, batch Batch, rows []stats.SeasonStat) Result {
	var res Result

	for _, row := range rows {
		playerID, ok := l.resolver.Player(row.PlayerName)
		if !ok {
			l.logger.Warn("player not found", "player", row.PlayerName, "season", row.Season, "team", row.Team)
			res.Failed++
			continue
		}

		var teamID *string
		if id, ok := l.resolver.Team(row.Team); ok {
			teamID = &id
		} else {
			l.logger.Debug("team not found, writing null team reference", "team", row.Team, "player", row.PlayerName)
		}

		created, err := batch.Upsert(ctx, toCareerStat(row, playerID, teamID))
		if err != nil {
			l.logger.Error("upsert failed", "player", row.PlayerName, "season", row.Season, "error", err)
			res.Failed++
			continue
		}

		if created {
			res.Inserted++
		} else {
			res.Updated++
		}
	}

	return res
}

// toCareerStat shapes an aggregate row into its persisted form.
func toCareerStat(row stats.SeasonStat, playerID string, teamID *string) store.CareerStat {
	return store.CareerStat{
		PlayerID: playerID,
		Season:   row.Season,
		TeamID:   teamID,

		GamesPlayed: row.GamesPlayed,

		PassingYards:       row.PassingYards,
		PassingTDs:         row.PassingTDs,
		PassingInts:        row.PassingInts,
		PassingAttempts:    row.PassingAttempts,
		PassingCompletions: row.PassingCompletions,

		RushingYards:    row.RushingYards,
		RushingTDs:      row.RushingTDs,
		RushingAttempts: row.RushingAttempts,

		ReceivingYards:   row.ReceivingYards,
		ReceivingTDs:     row.ReceivingTDs,
		Receptions:       row.Receptions,
		ReceivingTargets: row.ReceivingTargets,
	}
}
