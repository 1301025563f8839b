// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package services

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/wayfarer/internal/dataset"
	"github.com/tomtom215/wayfarer/internal/events"
	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/metrics"
)

// ErrReloadThrottled is returned by Reload when the rate limiter rejects the
// request.
var ErrReloadThrottled = errors.New("dataset reload throttled")

// Reload triggers recorded on the dataset.reloaded event.
const (
	TriggerAPI    = "api"
	TriggerSignal = "signal"
)

// EventPublisher publishes domain events. *events.Publisher satisfies it.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

// DatasetServiceConfig configures reloads.
type DatasetServiceConfig struct {
	// Path is reloaded; empty reuses the current store's source.
	Path string

	// MinInterval is the spacing enforced between reloads once Burst is
	// spent. Zero disables throttling.
	MinInterval time.Duration
	Burst       int
}

// DatasetService owns explicit dataset reloads. Reload is called by the API;
// Serve additionally reloads on SIGHUP. Each successful reload swaps the
// holder's store, runs the registered hooks and publishes dataset.reloaded.
type DatasetService struct {
	holder    *dataset.Holder
	path      string
	limiter   *rate.Limiter
	publisher EventPublisher
	logger    zerolog.Logger
	name      string

	hooksMu sync.RWMutex
	hooks   []func(*dataset.Store)
}

// NewDatasetService creates the reload service. publisher may be nil.
//
//nolint:gocritic // zerolog.Logger is passed by value
func NewDatasetService(holder *dataset.Holder, cfg DatasetServiceConfig, publisher EventPublisher, logger zerolog.Logger) *DatasetService {
	limit := rate.Inf
	if cfg.MinInterval > 0 {
		limit = rate.Every(cfg.MinInterval)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return &DatasetService{
		holder:    holder,
		path:      cfg.Path,
		limiter:   rate.NewLimiter(limit, burst),
		publisher: publisher,
		logger:    logger.With().Str("service", "dataset").Logger(),
		name:      "dataset-service",
	}
}

// OnReload registers fn to run after every successful reload, for example
// to invalidate the analytics cache.
func (s *DatasetService) OnReload(fn func(*dataset.Store)) {
	s.hooksMu.Lock()
	defer s.hooksMu.Unlock()
	s.hooks = append(s.hooks, fn)
}

// Current returns the active store.
func (s *DatasetService) Current() *dataset.Store {
	return s.holder.Current()
}

// Reload loads the dataset again and swaps it in. On failure the previous
// store keeps serving and the *models.DataLoadError is returned.
func (s *DatasetService) Reload(ctx context.Context, trigger string) (dataset.Info, error) {
	if !s.limiter.Allow() {
		metrics.RecordReloadThrottled()
		s.logger.Warn().Str("trigger", trigger).Msg("dataset reload throttled")
		return dataset.Info{}, ErrReloadThrottled
	}

	correlationID := logging.CorrelationID(ctx)
	if correlationID == "" {
		correlationID = logging.NewCorrelationID()
		ctx = logging.WithCorrelationID(ctx, correlationID)
	}
	log := s.logger.With().Str("correlation_id", correlationID).Str("trigger", trigger).Logger()

	previous := s.holder.Current()
	start := time.Now()
	store, err := s.holder.Reload(s.path)
	if err != nil {
		metrics.RecordDatasetLoad(time.Since(start), 0, err)
		log.Error().Err(err).Msg("dataset reload failed; keeping current dataset")
		return dataset.Info{}, err
	}
	metrics.RecordDatasetLoad(time.Since(start), store.Len(), nil)

	s.hooksMu.RLock()
	for _, fn := range s.hooks {
		fn(store)
	}
	s.hooksMu.RUnlock()

	info := store.Info()
	ev := log.Info().
		Str("version", info.Version).
		Int("records", info.Records).
		Dur("duration", time.Since(start))
	if previous != nil {
		ev = ev.Bool("changed", previous.Version() != store.Version())
	}
	ev.Msg("dataset reloaded")

	if s.publisher != nil {
		payload := events.DatasetReloaded{
			Version: info.Version,
			Source:  info.Source,
			Records: info.Records,
			Trigger: trigger,
		}
		if err := s.publisher.Publish(ctx, events.TopicDatasetReloaded, payload); err != nil {
			log.Warn().Err(err).Msg("failed to publish dataset.reloaded")
		}
	}
	return info, nil
}

// Serve implements suture.Service: it reloads on SIGHUP until ctx ends.
func (s *DatasetService) Serve(ctx context.Context) error {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	s.logger.Info().Str("path", s.path).Msg("dataset service running")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-hup:
			if _, err := s.Reload(ctx, TriggerSignal); err != nil {
				s.logger.Warn().Err(err).Msg("SIGHUP reload failed")
			}
		}
	}
}

// String returns the service name for logging.
func (s *DatasetService) String() string {
	return s.name
}
