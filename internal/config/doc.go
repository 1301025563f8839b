// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package config loads Wayfarer's configuration with koanf.

Sources, lowest priority first:

 1. Built-in defaults (defaultConfig)
 2. A YAML file: $CONFIG_PATH, ./config.yaml or /etc/wayfarer/config.yaml
 3. Environment variables listed in envMappings

Only mapped environment variables are read. List values such as
CORS_ORIGINS are comma separated.

# Example config.yaml

	server:
	  port: 8080
	  timeout: 30s
	dataset:
	  path: /data/tourism_dataset.csv
	recommend:
	  weights:
	    interest: 40
	    rating: 30
	    experience: 30
	itinerary:
	  max_days_per_city: 3
	  daily_baseline_usd: 75
	analytics:
	  backend: duckdb
	session:
	  store: badger
	  path: /data/sessions

# Common Environment Variables

	HTTP_PORT, HTTP_TIMEOUT, ENVIRONMENT
	DATASET_PATH, CATALOG_PATH, DATASET_RELOAD_INTERVAL
	WEIGHT_INTEREST, WEIGHT_RATING, WEIGHT_EXPERIENCE
	MAX_DAYS_PER_CITY, MAX_SITES_PER_DAY, DAILY_BASELINE_USD
	ANALYTICS_BACKEND, ANALYTICS_CACHE_TTL, DUCKDB_PATH
	SESSION_STORE, SESSION_STORE_PATH, SESSION_TTL
	EVENTS_ENABLED, CORS_ORIGINS, RATE_LIMIT_REQUESTS
	LOG_LEVEL, LOG_FORMAT

Validate rejects out-of-range values with a message naming the environment
variable to fix.
*/
package config
