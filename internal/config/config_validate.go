// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/wayfarer/internal/logging"
)

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateDataset,
		c.validateEngines,
		c.validateAnalytics,
		c.validateSession,
		c.validateEvents,
		c.validateSecurity,
		c.validateLogging,
	}
	for _, v := range validators {
		if err := v(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %v", c.Server.ShutdownTimeout)
	}
	switch c.Server.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("ENVIRONMENT must be development or production, got %q", c.Server.Environment)
	}
	return nil
}

func (c *Config) validateDataset() error {
	if strings.TrimSpace(c.Dataset.Path) == "" {
		return fmt.Errorf("DATASET_PATH is required")
	}
	if c.Dataset.ReloadInterval < 0 {
		return fmt.Errorf("DATASET_RELOAD_INTERVAL must not be negative, got %v", c.Dataset.ReloadInterval)
	}
	if c.Dataset.ReloadBurst < 1 {
		return fmt.Errorf("DATASET_RELOAD_BURST must be at least 1, got %d", c.Dataset.ReloadBurst)
	}
	return nil
}

func (c *Config) validateEngines() error {
	if err := c.Recommend.Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}
	if err := c.Itinerary.Validate(); err != nil {
		return fmt.Errorf("itinerary: %w", err)
	}
	return nil
}

func (c *Config) validateAnalytics() error {
	switch c.Analytics.Backend {
	case AnalyticsBackendMemory, AnalyticsBackendDuckDB:
	default:
		return fmt.Errorf("ANALYTICS_BACKEND must be %q or %q, got %q",
			AnalyticsBackendMemory, AnalyticsBackendDuckDB, c.Analytics.Backend)
	}
	if c.Analytics.CacheTTL < 0 {
		return fmt.Errorf("ANALYTICS_CACHE_TTL must not be negative, got %v", c.Analytics.CacheTTL)
	}
	if c.Analytics.TopN < 1 {
		return fmt.Errorf("ANALYTICS_TOP_N must be positive, got %d", c.Analytics.TopN)
	}
	if c.Analytics.Backend == AnalyticsBackendDuckDB && c.Database.MaxMemory == "" {
		return fmt.Errorf("DUCKDB_MAX_MEMORY is required when ANALYTICS_BACKEND=duckdb")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must not be negative, got %d", c.Database.Threads)
	}
	return nil
}

func (c *Config) validateSession() error {
	switch c.Session.Store {
	case SessionStoreMemory:
	case SessionStoreBadger:
		if c.Session.Path == "" {
			return fmt.Errorf("SESSION_STORE_PATH is required when SESSION_STORE=badger")
		}
	default:
		return fmt.Errorf("SESSION_STORE must be %q or %q, got %q",
			SessionStoreMemory, SessionStoreBadger, c.Session.Store)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %v", c.Session.TTL)
	}
	if c.Session.CleanupInterval <= 0 {
		return fmt.Errorf("SESSION_CLEANUP_INTERVAL must be positive, got %v", c.Session.CleanupInterval)
	}
	if c.Session.HistoryLimit < 1 {
		return fmt.Errorf("SESSION_HISTORY_LIMIT must be at least 1, got %d", c.Session.HistoryLimit)
	}
	return nil
}

func (c *Config) validateEvents() error {
	if !c.Events.Enabled {
		return nil
	}
	if c.Events.BufferSize < 0 {
		return fmt.Errorf("EVENTS_BUFFER_SIZE must not be negative, got %d", c.Events.BufferSize)
	}
	if c.Events.BreakerFailures == 0 {
		return fmt.Errorf("EVENTS_BREAKER_FAILURES must be positive")
	}
	if c.Events.BreakerTimeout <= 0 {
		return fmt.Errorf("EVENTS_BREAKER_TIMEOUT must be positive, got %v", c.Events.BreakerTimeout)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", c.Security.RateLimitWindow)
		}
	}
	if c.IsProduction() {
		for _, o := range c.Security.CORSOrigins {
			if o == "*" {
				return fmt.Errorf("CORS_ORIGINS must not contain a wildcard in production")
			}
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL %q is not a known level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
}
