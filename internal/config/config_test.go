// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d", cfg.Server.Port)
	}
	if cfg.Recommend.Weights.Interest != 40 {
		t.Errorf("Recommend.Weights.Interest = %v", cfg.Recommend.Weights.Interest)
	}
	if cfg.Itinerary.MaxDaysPerCity != 3 {
		t.Errorf("Itinerary.MaxDaysPerCity = %d", cfg.Itinerary.MaxDaysPerCity)
	}
	if cfg.Analytics.Backend != AnalyticsBackendMemory {
		t.Errorf("Analytics.Backend = %q", cfg.Analytics.Backend)
	}
	if got := cfg.Server.Addr(); got != "0.0.0.0:8080" {
		t.Errorf("Addr = %q", got)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"no timeout", func(c *Config) { c.Server.Timeout = 0 }, "HTTP_TIMEOUT"},
		{"unknown environment", func(c *Config) { c.Server.Environment = "staging" }, "ENVIRONMENT"},
		{"empty dataset", func(c *Config) { c.Dataset.Path = " " }, "DATASET_PATH"},
		{"zero burst", func(c *Config) { c.Dataset.ReloadBurst = 0 }, "DATASET_RELOAD_BURST"},
		{"weights off", func(c *Config) { c.Recommend.Weights.Rating = 10 }, "recommend:"},
		{"max days", func(c *Config) { c.Itinerary.MaxDaysPerCity = 0 }, "itinerary:"},
		{"backend", func(c *Config) { c.Analytics.Backend = "postgres" }, "ANALYTICS_BACKEND"},
		{"top n", func(c *Config) { c.Analytics.TopN = 0 }, "ANALYTICS_TOP_N"},
		{"duckdb memory", func(c *Config) {
			c.Analytics.Backend = AnalyticsBackendDuckDB
			c.Database.MaxMemory = ""
		}, "DUCKDB_MAX_MEMORY"},
		{"badger without path", func(c *Config) {
			c.Session.Store = SessionStoreBadger
			c.Session.Path = ""
		}, "SESSION_STORE_PATH"},
		{"session store", func(c *Config) { c.Session.Store = "redis" }, "SESSION_STORE"},
		{"history", func(c *Config) { c.Session.HistoryLimit = 0 }, "SESSION_HISTORY_LIMIT"},
		{"breaker", func(c *Config) { c.Events.BreakerFailures = 0 }, "EVENTS_BREAKER_FAILURES"},
		{"events disabled skips checks", func(c *Config) {
			c.Events.Enabled = false
			c.Events.BreakerFailures = 0
		}, ""},
		{"rate limit", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit disabled", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"wildcard in production", func(c *Config) { c.Server.Environment = "production" }, "CORS_ORIGINS"},
		{"log level", func(c *Config) { c.Logging.Level = "chatty" }, "LOG_LEVEL"},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"HTTP_PORT":          "server.port",
		"DATASET_PATH":       "dataset.path",
		"WEIGHT_INTEREST":    "recommend.weights.interest",
		"DAILY_BASELINE_USD": "itinerary.daily_baseline_usd",
		"ANALYTICS_BACKEND":  "analytics.backend",
		"HOME":               "",
		"PATH":               "",
	}
	for in, want := range tests {
		if got := envTransformFunc(in); got != want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", in, got, want)
		}
	}
}

// The load tests set process environment and cannot run in parallel.

func TestLoadLayers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 9090
dataset:
  path: /srv/data/tourism.csv
itinerary:
  daily_baseline_usd: 60
analytics:
  backend: duckdb
  cache_ttl: 1m
security:
  cors_origins:
    - https://a.example
    - https://b.example
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("HTTP_PORT", "9191")
	t.Setenv("MAX_SITES_PER_DAY", "2")
	t.Setenv("SESSION_TTL", "2h")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Server.Port != 9191 {
		t.Errorf("env should override file: port = %d", cfg.Server.Port)
	}
	if cfg.Dataset.Path != "/srv/data/tourism.csv" {
		t.Errorf("Dataset.Path = %q", cfg.Dataset.Path)
	}
	if cfg.Itinerary.DailyBaselineUSD != 60 || cfg.Itinerary.MaxSitesPerDay != 2 {
		t.Errorf("Itinerary = %+v", cfg.Itinerary)
	}
	if cfg.Itinerary.MaxDaysPerCity != 3 {
		t.Errorf("unset values keep defaults: MaxDaysPerCity = %d", cfg.Itinerary.MaxDaysPerCity)
	}
	if cfg.Analytics.Backend != AnalyticsBackendDuckDB || cfg.Analytics.CacheTTL != time.Minute {
		t.Errorf("Analytics = %+v", cfg.Analytics)
	}
	if cfg.Session.TTL != 2*time.Hour {
		t.Errorf("Session.TTL = %v", cfg.Session.TTL)
	}
	if len(cfg.Security.CORSOrigins) != 2 {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
}

func TestLoadCommaSeparatedOrigins(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,,")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Security.CORSOrigins) != len(want) {
		t.Fatalf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	for i := range want {
		if cfg.Security.CORSOrigins[i] != want[i] {
			t.Errorf("CORSOrigins[%d] = %q, want %q", i, cfg.Security.CORSOrigins[i], want[i])
		}
	}
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("ANALYTICS_BACKEND", "spreadsheet")
	t.Chdir(t.TempDir())

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "ANALYTICS_BACKEND") {
		t.Fatalf("Load() = %v, want ANALYTICS_BACKEND error", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("LoadFile should fail for a missing file")
	}
}
