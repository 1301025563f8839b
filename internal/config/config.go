// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/wayfarer/internal/itinerary"
	"github.com/tomtom215/wayfarer/internal/recommend"
)

// Config holds all application configuration.
//
// Loading order (see Load):
//  1. Defaults from defaultConfig
//  2. Optional YAML file (CONFIG_PATH, ./config.yaml, /etc/wayfarer/config.yaml)
//  3. Mapped environment variables
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Invalid configuration")
//	}
//	store, err := dataset.Load(cfg.Dataset.Path)
type Config struct {
	Server    ServerConfig     `koanf:"server"`
	Dataset   DatasetConfig    `koanf:"dataset"`
	Recommend recommend.Config `koanf:"recommend"`
	Itinerary itinerary.Config `koanf:"itinerary"`
	Analytics AnalyticsConfig  `koanf:"analytics"`
	Database  DatabaseConfig   `koanf:"database"`
	Session   SessionConfig    `koanf:"session"`
	Events    EventsConfig     `koanf:"events"`
	Security  SecurityConfig   `koanf:"security"`
	Logging   LoggingConfig    `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`
	// Timeout bounds each request, including planning.
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	// Environment is development or production. Production enables
	// stricter CORS checks in Validate.
	Environment string `koanf:"environment"`
}

// Addr returns host:port for net/http.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatasetConfig locates the experience dataset and throttles reloads.
type DatasetConfig struct {
	Path string `koanf:"path"`
	// CatalogPath is the city catalog used by the generator.
	CatalogPath string `koanf:"catalog_path"`
	// ReloadInterval is the minimum spacing between reloads requested
	// through the API.
	ReloadInterval time.Duration `koanf:"reload_interval"`
	ReloadBurst    int           `koanf:"reload_burst"`
}

// Analytics backends.
const (
	AnalyticsBackendMemory = "memory"
	AnalyticsBackendDuckDB = "duckdb"
)

// AnalyticsConfig selects how dashboard summaries are computed.
type AnalyticsConfig struct {
	// Backend is memory (default) or duckdb.
	Backend  string        `koanf:"backend"`
	CacheTTL time.Duration `koanf:"cache_ttl"`
	TopN     int           `koanf:"top_n"`
}

// DatabaseConfig configures the DuckDB analytics backend.
type DatabaseConfig struct {
	// Path is the database file; empty opens an in-memory database.
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	// Threads of 0 uses runtime.NumCPU().
	Threads int `koanf:"threads"`
}

// Session store backends.
const (
	SessionStoreMemory = "memory"
	SessionStoreBadger = "badger"
)

// SessionConfig configures planning sessions.
type SessionConfig struct {
	Store           string        `koanf:"store"`
	Path            string        `koanf:"path"`
	TTL             time.Duration `koanf:"ttl"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
	// HistoryLimit caps the planning history kept per session.
	HistoryLimit int `koanf:"history_limit"`
}

// EventsConfig configures the in-process event bus.
type EventsConfig struct {
	Enabled    bool  `koanf:"enabled"`
	BufferSize int64 `koanf:"buffer_size"`
	// BreakerFailures consecutive publish failures open the circuit.
	BreakerFailures uint32        `koanf:"breaker_failures"`
	BreakerTimeout  time.Duration `koanf:"breaker_timeout"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is trace, debug, info, warn or error.
	Level string `koanf:"level"`
	// Format is json or console.
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
