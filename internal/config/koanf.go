// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/wayfarer/internal/itinerary"
	"github.com/tomtom215/wayfarer/internal/recommend"
)

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/wayfarer/config.yaml",
	"/etc/wayfarer/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			Environment:     "development",
		},
		Dataset: DatasetConfig{
			Path:           "data/tourism_dataset.csv",
			CatalogPath:    "data/cities.json",
			ReloadInterval: 30 * time.Second,
			ReloadBurst:    1,
		},
		Recommend: *recommend.DefaultConfig(),
		Itinerary: *itinerary.DefaultConfig(),
		Analytics: AnalyticsConfig{
			Backend:  AnalyticsBackendMemory,
			CacheTTL: 5 * time.Minute,
			TopN:     10,
		},
		Database: DatabaseConfig{
			Path:      "",
			MaxMemory: "512MB",
			Threads:   0,
		},
		Session: SessionConfig{
			Store:           SessionStoreMemory,
			Path:            "/data/sessions",
			TTL:             24 * time.Hour,
			CleanupInterval: 10 * time.Minute,
			HistoryLimit:    10,
		},
		Events: EventsConfig{
			Enabled:         true,
			BufferSize:      256,
			BreakerFailures: 5,
			BreakerTimeout:  30 * time.Second,
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Default returns the built-in configuration. The CLI uses it when no
// server config is needed.
func Default() *Config {
	return defaultConfig()
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, in increasing priority, then validates it.
func Load() (*Config, error) {
	return load(findConfigFile())
}

// LoadFile is Load with an explicit config file path.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return load(path)
}

func load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields splits comma-separated env values for slice fields.
// Values that came from YAML are already slices and are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		s, ok := k.Get(path).(string)
		if !ok || s == "" {
			continue
		}
		var parts []string
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) == 0 {
			continue
		}
		if err := k.Set(path, parts); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variables (lowercased) to config keys.
// Unmapped variables are ignored so the process environment cannot leak
// into the configuration.
var envMappings = map[string]string{
	"http_host":        "server.host",
	"http_port":        "server.port",
	"http_timeout":     "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	"dataset_path":            "dataset.path",
	"catalog_path":            "dataset.catalog_path",
	"dataset_reload_interval": "dataset.reload_interval",
	"dataset_reload_burst":    "dataset.reload_burst",

	"weight_interest":         "recommend.weights.interest",
	"weight_rating":           "recommend.weights.rating",
	"weight_experience":       "recommend.weights.experience",
	"interest_support":        "recommend.interest_support",
	"recommend_default_count": "recommend.limits.default_count",
	"recommend_max_count":     "recommend.limits.max_count",

	"max_days_per_city":  "itinerary.max_days_per_city",
	"max_sites_per_day":  "itinerary.max_sites_per_day",
	"daily_baseline_usd": "itinerary.daily_baseline_usd",

	"analytics_backend":   "analytics.backend",
	"analytics_cache_ttl": "analytics.cache_ttl",
	"analytics_top_n":     "analytics.top_n",

	"duckdb_path":       "database.path",
	"duckdb_max_memory": "database.max_memory",
	"duckdb_threads":    "database.threads",

	"session_store":            "session.store",
	"session_store_path":       "session.path",
	"session_ttl":              "session.ttl",
	"session_cleanup_interval": "session.cleanup_interval",
	"session_history_limit":    "session.history_limit",

	"events_enabled":          "events.enabled",
	"events_buffer_size":      "events.buffer_size",
	"events_breaker_failures": "events.breaker_failures",
	"events_breaker_timeout":  "events.breaker_timeout",

	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable name to its config key, or
// "" to skip it.
//
//	HTTP_PORT         -> server.port
//	ANALYTICS_BACKEND -> analytics.backend
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
