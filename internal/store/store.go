// Package store is the PostgreSQL persistence layer for the loader.
//
// It exposes the two read queries that feed identity resolution and a
// per-season batch for writing career stat records. All writes for one
// season share a transaction and commit as a unit.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps a connection pool with the queries the loader needs.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store over an existing pool. The caller owns the pool's
// lifecycle.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Teams returns the mapping of team abbreviation to team id for every team.
func (s *Store) Teams(ctx context.Context) (map[string]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT id::text, abbreviation FROM teams`)
	if err != nil {
		return nil, fmt.Errorf("query teams: %w", err)
	}
	defer rows.Close()

	mapping := make(map[string]string)
	for rows.Next() {
		var id, abbr string
		if err := rows.Scan(&id, &abbr); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		mapping[abbr] = id
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read teams: %w", err)
	}
	return mapping, nil
}

// Players returns the mapping of lower-cased player name to player id for
// every player. Lower-casing happens in SQL so the mapping key matches the
// resolver's direct lookup strategy.
func (s *Store) Players(ctx context.Context) (map[string]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT id::text, LOWER(name) FROM players`)
	if err != nil {
		return nil, fmt.Errorf("query players: %w", err)
	}
	defer rows.Close()

	mapping := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		mapping[name] = id
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read players: %w", err)
	}
	return mapping, nil
}

// Begin opens a new season batch. The batch must be finished with Commit or
// Rollback.
func (s *Store) Begin(ctx context.Context) (*SeasonBatch, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin season batch: %w", err)
	}
	return &SeasonBatch{tx: tx}, nil
}

// SeasonBatch collects one season's upserts in a single transaction.
type SeasonBatch struct {
	tx pgx.Tx
}

const upsertCareerStat = `
INSERT INTO player_career_stats (
	player_id, season, team_id, games_played,
	passing_yards, passing_tds, passing_ints,
	passing_attempts, passing_completions,
	rushing_yards, rushing_tds, rushing_attempts,
	receiving_yards, receiving_tds, receptions, receiving_targets
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
ON CONFLICT (player_id, season)
DO UPDATE SET
	team_id = EXCLUDED.team_id,
	games_played = EXCLUDED.games_played,
	passing_yards = EXCLUDED.passing_yards,
	passing_tds = EXCLUDED.passing_tds,
	passing_ints = EXCLUDED.passing_ints,
	passing_attempts = EXCLUDED.passing_attempts,
	passing_completions = EXCLUDED.passing_completions,
	rushing_yards = EXCLUDED.rushing_yards,
	rushing_tds = EXCLUDED.rushing_tds,
	rushing_attempts = EXCLUDED.rushing_attempts,
	receiving_yards = EXCLUDED.receiving_yards,
	receiving_tds = EXCLUDED.receiving_tds,
	receptions = EXCLUDED.receptions,
	receiving_targets = EXCLUDED.receiving_targets
RETURNING (xmax = 0)`

// Upsert writes one career stat record keyed by (player_id, season),
// inserting or overwriting every non-key field. The returned flag is true
// when the row was newly created.
//
// Postgres reports one affected row for both branches of an upsert, so the
// command tag cannot distinguish insert from update. The xmax system column
// of the returned row can: it is zero only for a freshly inserted tuple.
func (b *SeasonBatch) Upsert(ctx context.Context, rec CareerStat) (created bool, err error) {
	err = b.tx.QueryRow(ctx, upsertCareerStat, upsertArgs(rec)...).Scan(&created)
	if err != nil {
		return false, fmt.Errorf("upsert career stats for player %s season %d: %w", rec.PlayerID, rec.Season, err)
	}
	return created, nil
}

// Commit finalizes the batch. All of the season's writes become visible
// atomically.
func (b *SeasonBatch) Commit(ctx context.Context) error {
	if err := b.tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit season batch: %w", err)
	}
	return nil
}

// Rollback abandons the batch. Safe to call after a failed Commit.
func (b *SeasonBatch) Rollback(ctx context.Context) error {
	if err := b.tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
		return fmt.Errorf("rollback season batch: %w", err)
	}
	return nil
}

// upsertArgs lays out a record in upsertCareerStat's placeholder order.
func upsertArgs(rec CareerStat) []any {
	return []any{
		rec.PlayerID, rec.Season, rec.TeamID, rec.GamesPlayed,
		rec.PassingYards, rec.PassingTDs, rec.PassingInts,
		rec.PassingAttempts, rec.PassingCompletions,
		rec.RushingYards, rec.RushingTDs, rec.RushingAttempts,
		rec.ReceivingYards, rec.ReceivingTDs, rec.Receptions, rec.ReceivingTargets,
	}
}
