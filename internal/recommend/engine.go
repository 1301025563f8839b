// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wayfarer/internal/dataset"
	"github.com/tomtom215/wayfarer/internal/metrics"
	"github.com/tomtom215/wayfarer/internal/models"
	"github.com/tomtom215/wayfarer/internal/validation"
)

// ErrNoDataset is returned when the store source has no store loaded.
var ErrNoDataset = errors.New("dataset not loaded")

// StoreSource yields the store a request should read. dataset.Holder
// implements it; each request calls Current once and keeps that store.
type StoreSource interface {
	Current() *dataset.Store
}

// Engine scores and ranks cities and sites against tourist profiles.
// It is safe for concurrent use.
type Engine struct {
	config atomic.Pointer[Config]
	source StoreSource
	logger zerolog.Logger

	// Metrics
	requestCount atomic.Int64
	emptyCount   atomic.Int64
	errorCount   atomic.Int64
}

// Metrics contains engine counters.
type Metrics struct {
	// RequestCount is the total number of recommendation requests.
	RequestCount int64 `json:"request_count"`

	// EmptyCount is the number of requests no candidate matched.
	EmptyCount int64 `json:"empty_count"`

	// ErrorCount is the number of rejected requests.
	ErrorCount int64 `json:"error_count"`
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, source StoreSource, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if source == nil {
		return nil, errors.New("store source is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		source: source,
		logger: logger.With().Str("component", "recommend").Logger(),
	}
	e.config.Store(cfg.Clone())
	return e, nil
}

// Recommend returns the top count candidates for the profile. The profile is
// validated and normalized on a copy; the caller's value is not modified.
//
// An empty match is not an error: the result has status success and count 0.
// Malformed input returns a *models.ValidationError.
func (e *Engine) Recommend(ctx context.Context, profile *models.TouristProfile, count int, mode models.RecommendationMode) (*models.RecommendationResult, error) {
	start := time.Now()
	e.requestCount.Add(1)
	cfg := e.config.Load()

	mode, p, err := e.prepare(profile, count, mode, cfg)
	if err != nil {
		e.errorCount.Add(1)
		label := string(mode)
		if label == "" {
			label = "unknown"
		}
		metrics.RecordRecommendation(label, "invalid", 0)
		return nil, err
	}

	store := e.source.Current()
	if store == nil {
		e.errorCount.Add(1)
		return nil, ErrNoDataset
	}

	var cands []models.CandidateScore
	switch mode {
	case models.ModeCities:
		cands, err = e.RankCities(ctx, store, p)
	case models.ModeSites:
		cands, err = e.RankSites(ctx, store, p, "")
	default:
		cands, err = e.rankAll(ctx, store, p)
	}
	if err != nil {
		e.errorCount.Add(1)
		return nil, err
	}

	if len(cands) > count {
		cands = cands[:count]
	}

	result := &models.RecommendationResult{
		Status:          models.StatusSuccess,
		Count:           len(cands),
		Recommendations: make([]models.Recommendation, len(cands)),
	}
	for i, c := range cands {
		result.Recommendations[i] = models.NewRecommendation(c)
	}

	outcome := "results"
	if result.Count == 0 {
		outcome = "empty"
		e.emptyCount.Add(1)
	}
	metrics.RecordRecommendation(string(mode), outcome, result.Count)

	e.logger.Debug().
		Str("mode", string(mode)).
		Int("requested", count).
		Int("returned", result.Count).
		Str("dataset_version", store.Version()).
		Dur("latency", time.Since(start)).
		Msg("recommendation complete")

	return result, nil
}

// prepare validates the request and returns the parsed mode and a normalized
// copy of the profile. The mode is empty when it failed to parse.
func (e *Engine) prepare(profile *models.TouristProfile, count int, raw models.RecommendationMode, cfg *Config) (models.RecommendationMode, *models.TouristProfile, error) {
	mode, err := models.ParseRecommendationMode(string(raw))
	if err != nil {
		return "", nil, err
	}
	if count < 1 || count > cfg.Limits.MaxCount {
		return mode, nil, &models.ValidationError{
			Field:   "count",
			Message: fmt.Sprintf("count must be between 1 and %d, got %d", cfg.Limits.MaxCount, count),
		}
	}
	if profile == nil {
		return mode, nil, validation.ValidateProfile(nil)
	}
	p := *profile
	if err := validation.ValidateProfile(&p); err != nil {
		return mode, nil, err
	}
	return mode, &p, nil
}

// RankCities scores every city whose records pass the profile filters. The
// profile must already be validated.
func (e *Engine) RankCities(ctx context.Context, store *dataset.Store, profile *models.TouristProfile) ([]models.CandidateScore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records := store.Query(dataset.ByProfile(profile))
	aggs := AggregateCities(records)
	metrics.ObserveScoringCandidates(string(models.KindCity), len(aggs))
	return ScoreAll(profile, aggs, e.config.Load()), nil
}

// RankSites scores every site whose records pass the profile filters,
// optionally restricted to one city. The profile must already be validated.
func (e *Engine) RankSites(ctx context.Context, store *dataset.Store, profile *models.TouristProfile, city string) ([]models.CandidateScore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pred := dataset.ByProfile(profile)
	if city != "" {
		pred = dataset.And(pred, dataset.ByCity(city))
	}
	aggs := AggregateSites(store.Query(pred))
	metrics.ObserveScoringCandidates(string(models.KindSite), len(aggs))
	return ScoreAll(profile, aggs, e.config.Load()), nil
}

func (e *Engine) rankAll(ctx context.Context, store *dataset.Store, profile *models.TouristProfile) ([]models.CandidateScore, error) {
	cities, err := e.RankCities(ctx, store, profile)
	if err != nil {
		return nil, err
	}
	sites, err := e.RankSites(ctx, store, profile, "")
	if err != nil {
		return nil, err
	}
	all := append(cities, sites...)
	SortCandidates(all)
	return all, nil
}

// CurrentStore returns the store the next request would read, or nil.
func (e *Engine) CurrentStore() *dataset.Store {
	return e.source.Current()
}

// GetMetrics returns a snapshot of the engine counters.
func (e *Engine) GetMetrics() Metrics {
	return Metrics{
		RequestCount: e.requestCount.Load(),
		EmptyCount:   e.emptyCount.Load(),
		ErrorCount:   e.errorCount.Load(),
	}
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Load().Clone()
}

// UpdateConfig updates the engine configuration.
func (e *Engine) UpdateConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New("invalid config: nil")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	e.config.Store(cfg.Clone())
	e.logger.Info().Msg("configuration updated")

	return nil
}
