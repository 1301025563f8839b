// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus Metrics Integration for Production Observability
// This package provides instrumentation for:
// - API endpoint latency and throughput
// - Recommendation and itinerary outcomes
// - Dataset size and reloads
// - Analytics cache efficiency
// - DuckDB query performance
// - Event bus traffic and circuit breaker state
// - Session counts

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}, // Engine calls are CPU-bound and short
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Engine Metrics
	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_recommendations_total",
			Help: "Total number of recommendation requests by mode and outcome",
		},
		[]string{"mode", "outcome"}, // outcome: "results", "empty", "invalid"
	)

	RecommendationsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wayfarer_recommendations_returned",
			Help:    "Number of recommendations returned per request",
			Buckets: []float64{0, 1, 3, 5, 10, 20, 50},
		},
	)

	ItinerariesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_itineraries_total",
			Help: "Total number of itinerary requests by result status",
		},
		[]string{"status"}, // "success", "error", "invalid"
	)

	ItineraryLength = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wayfarer_itinerary_length",
			Help:    "Number of days in generated itineraries",
			Buckets: []float64{1, 2, 3, 5, 7, 10, 14},
		},
	)

	ScoringCandidates = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wayfarer_scoring_candidates",
			Help:    "Number of candidates scored per ranking pass",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 1000},
		},
		[]string{"kind"}, // "city", "site"
	)

	// Dataset Metrics
	DatasetRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wayfarer_dataset_records",
			Help: "Number of experience records in the active dataset",
		},
	)

	DatasetReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_dataset_reloads_total",
			Help: "Total number of dataset reload attempts",
		},
		[]string{"result"}, // "success", "failure", "throttled"
	)

	DatasetLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wayfarer_dataset_load_duration_seconds",
			Help:    "Time spent loading the dataset file",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets, // 0.005s, 0.01s, 0.025s, 0.05s, 0.1s, 0.25s, 0.5s, 1s, 2.5s, 5s, 10s
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table", "error_type"},
	)

	// Cache Metrics (General)
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"}, // "analytics"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions (TTL expiry)",
		},
		[]string{"cache_type"},
	)

	// Event Bus Metrics
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_events_published_total",
			Help: "Total number of events published by topic and result",
		},
		[]string{"topic", "result"}, // result: "success", "failure", "rejected"
	)

	EventsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_events_consumed_total",
			Help: "Total number of events handled by consumers",
		},
		[]string{"topic"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Session Metrics
	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wayfarer_sessions_active",
			Help: "Current number of planning sessions",
		},
	)

	SessionsExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wayfarer_sessions_expired_total",
			Help: "Total number of sessions removed by the janitor",
		},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		errorType := err.Error()
		// Truncate long error messages
		if len(errorType) > 50 {
			errorType = errorType[:50]
		}
		DBQueryErrors.WithLabelValues(operation, table, errorType).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one recommendation request.
func RecordRecommendation(mode, outcome string, returned int) {
	RecommendationsServed.WithLabelValues(mode, outcome).Inc()
	if outcome != "invalid" {
		RecommendationsReturned.Observe(float64(returned))
	}
}

// RecordItinerary records one itinerary request. days is ignored unless the
// status is "success".
func RecordItinerary(status string, days int) {
	ItinerariesGenerated.WithLabelValues(status).Inc()
	if status == "success" {
		ItineraryLength.Observe(float64(days))
	}
}

// ObserveScoringCandidates records how many candidates a ranking pass scored.
func ObserveScoringCandidates(kind string, n int) {
	ScoringCandidates.WithLabelValues(kind).Observe(float64(n))
}

// RecordDatasetLoad records a dataset (re)load attempt.
func RecordDatasetLoad(duration time.Duration, records int, err error) {
	DatasetLoadDuration.Observe(duration.Seconds())
	if err != nil {
		DatasetReloads.WithLabelValues("failure").Inc()
		return
	}
	DatasetReloads.WithLabelValues("success").Inc()
	DatasetRecords.Set(float64(records))
}

// RecordReloadThrottled counts a reload request rejected by the rate limiter.
func RecordReloadThrottled() {
	DatasetReloads.WithLabelValues("throttled").Inc()
}

// RecordCacheLookup records a cache hit or miss.
func RecordCacheLookup(cacheType string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
	} else {
		CacheMisses.WithLabelValues(cacheType).Inc()
	}
}

// RecordEventPublish records a publish attempt on a topic.
func RecordEventPublish(topic, result string) {
	EventsPublished.WithLabelValues(topic, result).Inc()
}

// RecordEventConsumed records a handled event.
func RecordEventConsumed(topic string) {
	EventsConsumed.WithLabelValues(topic).Inc()
}

// RecordCircuitBreakerTransition records a breaker state change. States are
// "closed", "half-open" and "open".
func RecordCircuitBreakerTransition(name, from, to string) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
	CircuitBreakerState.WithLabelValues(name).Set(breakerStateValue(to))
}

func breakerStateValue(state string) float64 {
	switch state {
	case "half-open":
		return 1
	case "open":
		return 2
	default:
		return 0
	}
}
