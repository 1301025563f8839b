// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/dataset"
	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/models"
	"github.com/tomtom215/wayfarer/internal/session"
)

// Recommender ranks destinations. *recommend.Engine satisfies it.
type Recommender interface {
	Recommend(ctx context.Context, profile *models.TouristProfile, count int, mode models.RecommendationMode) (*models.RecommendationResult, error)
}

// ItineraryPlanner builds day-by-day plans. *itinerary.Planner satisfies it.
type ItineraryPlanner interface {
	Generate(ctx context.Context, profile *models.TouristProfile, start string) (*models.ItineraryResult, error)
}

// AnalyticsProvider summarizes the dataset. *analytics.Service satisfies it.
type AnalyticsProvider interface {
	Summary(ctx context.Context) (models.AnalyticsSummary, error)
}

// DatasetReloader exposes the live dataset and explicit reloads.
// *services.DatasetService satisfies it.
type DatasetReloader interface {
	Current() *dataset.Store
	Reload(ctx context.Context, trigger string) (dataset.Info, error)
}

// EventPublisher publishes domain events. *events.Publisher satisfies it.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

// Deps holds the handler's collaborators. Events may be nil.
type Deps struct {
	Recommender Recommender
	Planner     ItineraryPlanner
	Analytics   AnalyticsProvider
	Dataset     DatasetReloader
	Sessions    session.Store
	Events      EventPublisher
	Config      *config.Config
	Version     string
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_plan.go: itinerary and recommendation endpoints
//   - handlers_sessions.go: planning session endpoints
//   - handlers_dataset.go: dataset info, reload and analytics
//   - handlers_health.go: health, liveness and readiness probes
type Handler struct {
	recommender Recommender
	planner     ItineraryPlanner
	analytics   AnalyticsProvider
	dataset     DatasetReloader
	sessions    session.Store
	events      EventPublisher
	config      *config.Config
	version     string
	startTime   time.Time
}

// NewHandler validates deps and creates the handler. A nil Config uses the
// defaults.
func NewHandler(deps Deps) (*Handler, error) {
	switch {
	case deps.Recommender == nil:
		return nil, errors.New("api: recommender is required")
	case deps.Planner == nil:
		return nil, errors.New("api: planner is required")
	case deps.Analytics == nil:
		return nil, errors.New("api: analytics provider is required")
	case deps.Dataset == nil:
		return nil, errors.New("api: dataset reloader is required")
	case deps.Sessions == nil:
		return nil, errors.New("api: session store is required")
	}
	cfg := deps.Config
	if cfg == nil {
		cfg = config.Default()
	}
	version := deps.Version
	if version == "" {
		version = "dev"
	}
	return &Handler{
		recommender: deps.Recommender,
		planner:     deps.Planner,
		analytics:   deps.Analytics,
		dataset:     deps.Dataset,
		sessions:    deps.Sessions,
		events:      deps.Events,
		config:      cfg,
		version:     version,
		startTime:   time.Now(),
	}, nil
}

// withTimeout applies the configured request timeout.
func (h *Handler) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.config.Server.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.config.Server.Timeout)
}

// publish sends an event without failing the request.
func (h *Handler) publish(ctx context.Context, topic string, payload any) {
	if h.events == nil {
		return
	}
	if err := h.events.Publish(ctx, topic, payload); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("topic", topic).Msg("event not published")
	}
}

// eventsState reports the publisher's circuit breaker state, or "disabled".
func (h *Handler) eventsState() string {
	if h.events == nil {
		return "disabled"
	}
	if s, ok := h.events.(interface{ State() string }); ok {
		return s.State()
	}
	return "enabled"
}
