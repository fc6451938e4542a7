package loader

import (
	"context"
	"log/slog"

	"github.com/gridstats/nflverse-loader/internal/identity"
	"github.com/gridstats/nflverse-loader/internal/nflverse"
	"github.com/gridstats/nflverse-loader/internal/stats"
)

// Fetcher retrieves one season's weekly stat rows from the data source.
// *nflverse.Client is the production implementation.
type Fetcher interface {
	FetchPlayerStats(ctx context.Context, season int) ([]nflverse.WeeklyStat, error)
}

// Storage is the driver's view of the database: the two identity read
// queries and season batch creation.
type Storage interface {
	Teams(ctx context.Context) (map[string]string, error)
	Players(ctx context.Context) (map[string]string, error)
	Begin(ctx context.Context) (Batch, error)
}

// Summary accumulates the outcome of a full run across all seasons.
type Summary struct {
	Result
	SeasonsLoaded  int
	SeasonsSkipped int
}

// Driver orchestrates one run: identity snapshots once, then each season
// fetched, aggregated, and loaded in sequence. A failing season is skipped;
// the run always reaches the end.
type Driver struct {
	fetcher Fetcher
	storage Storage
	seasons []int
	logger  *slog.Logger
}

// NewDriver wires a Driver. seasons is processed in the given order.
func NewDriver(fetcher Fetcher, storage Storage, seasons []int, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{
		fetcher: fetcher,
		storage: storage,
		seasons: seasons,
		logger:  logger,
	}
}

// Run executes the pipeline. It returns an error only when the identity
// snapshots cannot be built; everything after that is recovered per season
// or per row and reflected in the summary.
func (d *Driver) Run(ctx context.Context) (Summary, error) {
	teams, err := d.storage.Teams(ctx)
	if err != nil {
		return Summary{}, err
	}
	players, err := d.storage.Players(ctx)
	if err != nil {
		return Summary{}, err
	}

	resolver := identity.NewResolver(teams, players)
	d.logger.Info("identity mappings loaded",
		"teams", resolver.TeamCount(),
		"players", resolver.PlayerCount(),
	)

	ld := NewLoader(resolver, d.logger)

	var summary Summary
	for _, season := range d.seasons {
		logger := d.logger.With("season", season)
		logger.Info("processing season")

		res, err := d.runSeason(ctx, ld, season)
		if err != nil {
			logger.Warn("season skipped", "error", err)
			summary.SeasonsSkipped++
			continue
		}

		logger.Info("season committed",
			"inserted", res.Inserted,
			"updated", res.Updated,
			"failed", res.Failed,
		)
		summary.SeasonsLoaded++
		summary.add(res)
	}

	return summary, nil
}

// runSeason executes fetch, aggregate, and load for one season. Any returned
// error means the season's writes were abandoned; committed work from prior
// seasons is unaffected.
func (d *Driver) runSeason(ctx context.Context, ld *Loader, season int) (Result, error) {
	weekly, err := d.fetcher.FetchPlayerStats(ctx, season)
	if err != nil {
		return Result{}, err
	}
	d.logger.Debug("fetched weekly rows", "season", season, "rows", len(weekly))

	agg := stats.Validate(stats.Aggregate(weekly))

	batch, err := d.storage.Begin(ctx)
	if err != nil {
		return Result{}, err
	}

	res := ld.LoadSeason(ctx, batch, agg)

	if err := batch.Commit(ctx); err != nil {
		batch.Rollback(ctx)
		return Result{}, err
	}
	return res, nil
}
