// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package metrics provides Prometheus metrics collection and export for observability.

Collectors are registered on the default registry with promauto at package
init, so importing the package is enough to expose them.

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Active requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)

Engine Metrics:
  - wayfarer_recommendations_total: Recommendation requests (counter)
    Labels: mode (all, cities, sites), outcome (results, empty, invalid)
  - wayfarer_recommendations_returned: Entries per response (histogram)
  - wayfarer_itineraries_total: Itinerary requests (counter)
    Labels: status (success, error, invalid)
  - wayfarer_itinerary_length: Itinerary length in days (histogram)
  - wayfarer_scoring_candidates: Candidates per ranking pass (histogram)
    Labels: kind (city, site)

Dataset Metrics:
  - wayfarer_dataset_records: Records in the active store (gauge)
  - wayfarer_dataset_reloads_total: Reload attempts (counter)
    Labels: result (success, failure, throttled)
  - wayfarer_dataset_load_duration_seconds: CSV load time (histogram)

Database Metrics:
  - duckdb_query_duration_seconds: Query execution time (histogram)
    Labels: operation, table
  - duckdb_query_errors_total: Failed queries (counter)
    Labels: operation, table, error_type (truncated to 50 characters)

Cache, Event and Session Metrics:
  - cache_hits_total, cache_misses_total, cache_entries, cache_evictions_total
    Labels: cache_type
  - wayfarer_events_published_total (topic, result), wayfarer_events_consumed_total (topic)
  - circuit_breaker_state (0=closed, 1=half-open, 2=open), circuit_breaker_state_transitions_total
  - wayfarer_sessions_active, wayfarer_sessions_expired_total

# Usage

	start := time.Now()
	rows, err := db.QueryContext(ctx, query)
	metrics.RecordDBQuery("select", "experiences", time.Since(start), err)

# Thread Safety

All collectors are safe for concurrent use.
*/
package metrics
