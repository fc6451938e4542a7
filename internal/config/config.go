// Package config provides centralized configuration management for the loader.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds all loader configuration.
// All settings can be configured via environment variables.
type Config struct {
	Database DatabaseConfig
	Source   SourceConfig
	Logging  LoggingConfig
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	// URL is the PostgreSQL connection string (required)
	// Supports both DATABASE_URL and DB_URL env vars for compatibility
	URL string `env:"DATABASE_URL" envAlt:"DB_URL" required:"true"`

	// MaxConns is the maximum number of connections in the pool (default: 4)
	// The loader writes serially, so a small pool is sufficient.
	MaxConns int `env:"DB_MAX_CONNS" default:"4"`
}

// SourceConfig holds nflverse data source settings.
type SourceConfig struct {
	// BaseURL is the root of the nflverse release downloads
	BaseURL string `env:"NFLVERSE_BASE_URL" default:"https://github.com/nflverse/nflverse-data/releases/download"`

	// Timeout is the maximum duration for a single CSV download (default: 60s)
	Timeout time.Duration `env:"HTTP_TIMEOUT" default:"60s"`

	// Seasons is the comma-separated list of seasons to load (default: 2023,2024)
	Seasons []int `env:"SEASONS" default:"2023,2024"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// ConnString returns the connection string to hand to the database driver.
//
// Heroku-style URLs use the legacy postgres:// scheme; the driver side
// expects postgresql://, so the prefix is upgraded. Encrypted transport is
// mandatory: sslmode=require is appended unless the URL already pins one.
func (c *DatabaseConfig) ConnString() string {
	u := c.URL
	if rest, ok := strings.CutPrefix(u, "postgres://"); ok {
		u = "postgresql://" + rest
	}
	if !strings.Contains(u, "sslmode=") {
		sep := "?"
		if strings.Contains(u, "?") {
			sep = "&"
		}
		u += sep + "sslmode=require"
	}
	return u
}

// String returns a safe string representation of the config for logging.
// The database URL is masked.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Database: {URL: [MASKED], MaxConns: %d}, Source: {BaseURL: %q, Timeout: %s, Seasons: %v}, Logging: {Level: %q, Format: %q}}",
		c.Database.MaxConns, c.Source.BaseURL, c.Source.Timeout, c.Source.Seasons,
		c.Logging.Level, c.Logging.Format)
}
