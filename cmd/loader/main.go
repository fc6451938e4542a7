package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/gridstats/nflverse-loader/internal/config"
	"github.com/gridstats/nflverse-loader/internal/loader"
	"github.com/gridstats/nflverse-loader/internal/logging"
	"github.com/gridstats/nflverse-loader/internal/nflverse"
	"github.com/gridstats/nflverse-loader/internal/store"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// storage adapts *store.Store to the driver's Storage interface; Go cannot
// treat a concrete-typed Begin as the interface-typed one.
type storage struct {
	*store.Store
}

func (s storage) Begin(ctx context.Context) (loader.Batch, error) {
	return s.Store.Begin(ctx)
}

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration; a missing DATABASE_URL stops here
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	logger := slog.Default().With("run_id", uuid.New().String())
	logger.Info("nflverse loader starting",
		"seasons", cfg.Source.Seasons,
		"source", cfg.Source.BaseURL,
	)

	// Parse and configure connection pool
	poolConfig, err := pgxpool.ParseConfig(cfg.Database.ConnString())
	if err != nil {
		logger.Error("failed to parse database URL", "error", err)
		os.Exit(1)
	}
	poolConfig.MaxConns = int32(cfg.Database.MaxConns)

	// Connect to database
	ctx := context.Background()
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	// Log which database we connected to
	if u, err := url.Parse(cfg.Database.ConnString()); err == nil {
		logger.Info("connected to database", "name", strings.TrimPrefix(u.Path, "/"))
	} else {
		logger.Info("connected to database")
	}

	fetcher := nflverse.NewClient(cfg.Source.BaseURL, cfg.Source.Timeout)
	driver := loader.NewDriver(fetcher, storage{store.New(pool)}, cfg.Source.Seasons, logger)

	summary, err := driver.Run(ctx)
	if err != nil {
		logger.Error("run aborted", "error", err)
		os.Exit(1)
	}

	// Per-season failures are already reflected in the summary; the process
	// exits zero once every configured season has been attempted.
	logger.Info("run complete",
		"seasons_loaded", summary.SeasonsLoaded,
		"seasons_skipped", summary.SeasonsSkipped,
		"inserted", summary.Inserted,
		"updated", summary.Updated,
		"failed", summary.Failed,
	)
}
