// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package analytics

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/wayfarer/internal/cache"
	"github.com/tomtom215/wayfarer/internal/dataset"
	"github.com/tomtom215/wayfarer/internal/metrics"
	"github.com/tomtom215/wayfarer/internal/models"
)

// ErrNoDataset is returned when no dataset has been loaded.
var ErrNoDataset = errors.New("dataset not loaded")

// StoreSource provides the current dataset snapshot.
type StoreSource interface {
	Current() *dataset.Store
}

// Backend computes a summary for one store snapshot.
type Backend interface {
	Name() string
	Summary(ctx context.Context, store *dataset.Store, topN int) (models.AnalyticsSummary, error)
}

// MemoryBackend summarizes the records held by the store.
type MemoryBackend struct{}

// Name implements Backend.
func (MemoryBackend) Name() string { return "memory" }

// Summary implements Backend.
func (MemoryBackend) Summary(ctx context.Context, store *dataset.Store, topN int) (models.AnalyticsSummary, error) {
	if err := ctx.Err(); err != nil {
		return models.AnalyticsSummary{}, err
	}
	return Summarize(store.Records(), topN), nil
}

// SQLDatabase is the part of the DuckDB layer the SQL backend uses.
type SQLDatabase interface {
	LoadedVersion() string
	LoadRecords(ctx context.Context, version string, records []models.ExperienceRecord) error
	AnalyticsSummary(ctx context.Context, topN int) (models.AnalyticsSummary, error)
}

// SQLBackend mirrors the store into a SQL database and aggregates there.
// The table is reloaded whenever the store version changes.
type SQLBackend struct {
	db SQLDatabase
	mu sync.Mutex
}

// NewSQLBackend wraps db.
func NewSQLBackend(db SQLDatabase) *SQLBackend {
	return &SQLBackend{db: db}
}

// Name implements Backend.
func (b *SQLBackend) Name() string { return "duckdb" }

// Summary implements Backend.
func (b *SQLBackend) Summary(ctx context.Context, store *dataset.Store, topN int) (models.AnalyticsSummary, error) {
	// One caller at a time so a reload cannot interleave with a query
	// against the previous version.
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.db.LoadedVersion() != store.Version() {
		if err := b.db.LoadRecords(ctx, store.Version(), store.Records()); err != nil {
			return models.AnalyticsSummary{}, fmt.Errorf("mirror dataset: %w", err)
		}
	}
	return b.db.AnalyticsSummary(ctx, topN)
}

// Config controls the service.
type Config struct {
	TopN int
	// CacheTTL of 0 disables caching.
	CacheTTL time.Duration
}

// Service serves dashboard summaries, cached per dataset version.
// Concurrent requests for the same version share one computation.
type Service struct {
	source  StoreSource
	backend Backend
	cache   *cache.Cache[models.AnalyticsSummary]
	group   singleflight.Group
	topN    int
	logger  zerolog.Logger
}

// NewService creates a service. A nil backend means MemoryBackend.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewService(cfg Config, source StoreSource, backend Backend, logger zerolog.Logger) (*Service, error) {
	if source == nil {
		return nil, errors.New("store source is required")
	}
	if backend == nil {
		backend = MemoryBackend{}
	}
	topN := cfg.TopN
	if topN < 1 {
		topN = DefaultTopN
	}

	s := &Service{
		source:  source,
		backend: backend,
		topN:    topN,
		logger:  logger.With().Str("component", "analytics").Str("backend", backend.Name()).Logger(),
	}
	if cfg.CacheTTL > 0 {
		s.cache = cache.New[models.AnalyticsSummary](cfg.CacheTTL)
	}
	return s, nil
}

// Summary returns the summary of the current dataset.
func (s *Service) Summary(ctx context.Context) (models.AnalyticsSummary, error) {
	store := s.source.Current()
	if store == nil {
		return models.AnalyticsSummary{}, ErrNoDataset
	}

	key := cache.GenerateKey("analytics:summary", struct {
		Version string `json:"version"`
		TopN    int    `json:"top_n"`
	}{store.Version(), s.topN})

	if s.cache != nil {
		if v, ok := s.cache.Get(key); ok {
			metrics.RecordCacheLookup("analytics", true)
			return v, nil
		}
		metrics.RecordCacheLookup("analytics", false)
	}

	// The shared computation ignores caller cancellation. Each caller stops
	// waiting when its own context ends.
	flight := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key, func() (any, error) {
		start := time.Now()
		summary, err := s.backend.Summary(flight, store, s.topN)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			s.cache.Set(key, summary)
			metrics.CacheSize.WithLabelValues("analytics").Set(float64(s.cache.Len()))
		}
		s.logger.Debug().
			Str("version", store.Version()).
			Int("records", store.Len()).
			Dur("elapsed", time.Since(start)).
			Msg("Analytics summary computed")
		return summary, nil
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return models.AnalyticsSummary{}, ctx.Err()
	}
	if res.Err != nil {
		s.logger.Warn().Err(res.Err).Msg("Analytics summary failed")
		return models.AnalyticsSummary{}, res.Err
	}
	if res.Shared {
		s.logger.Debug().Msg("Analytics summary shared with a concurrent request")
	}
	return res.Val.(models.AnalyticsSummary), nil
}

// Invalidate drops cached summaries, used after a dataset reload.
func (s *Service) Invalidate() {
	if s.cache != nil {
		s.cache.Clear()
		metrics.CacheSize.WithLabelValues("analytics").Set(0)
	}
}

// Close releases the cache's cleanup goroutine.
func (s *Service) Close() {
	if s.cache != nil {
		s.cache.Close()
	}
}
