// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/wayfarer/docs" // OpenAPI document served at /swagger/
	"github.com/tomtom215/wayfarer/internal/analytics"
	"github.com/tomtom215/wayfarer/internal/api"
	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/database"
	"github.com/tomtom215/wayfarer/internal/dataset"
	"github.com/tomtom215/wayfarer/internal/events"
	"github.com/tomtom215/wayfarer/internal/itinerary"
	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/metrics"
	"github.com/tomtom215/wayfarer/internal/recommend"
	"github.com/tomtom215/wayfarer/internal/session"
	"github.com/tomtom215/wayfarer/internal/supervisor"
	"github.com/tomtom215/wayfarer/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// auditCapacity is the number of recent events kept by the event audit.
const auditCapacity = 512

//nolint:gocyclo // Main initialization function with sequential setup steps
func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", version).
		Str("dataset", cfg.Dataset.Path).
		Str("analytics_backend", cfg.Analytics.Backend).
		Str("session_store", cfg.Session.Store).
		Msg("Starting Wayfarer with supervisor tree")

	// The dataset is required; startup fails without it.
	start := time.Now()
	store, err := dataset.Load(cfg.Dataset.Path)
	metrics.RecordDatasetLoad(time.Since(start), storeLen(store), err)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load dataset")
	}
	holder := dataset.NewHolder(store)
	logging.Info().
		Int("records", store.Len()).
		Int("cities", len(store.Cities())).
		Str("version", store.Version()).
		Msg("Dataset loaded")

	engine, err := recommend.NewEngine(&cfg.Recommend, holder, logging.WithComponent("recommend"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}
	planner, err := itinerary.NewPlanner(&cfg.Itinerary, engine, logging.WithComponent("itinerary"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create itinerary planner")
	}

	backend, closeBackend, err := newAnalyticsBackend(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize analytics backend")
	}
	defer closeBackend()

	summaries, err := analytics.NewService(analytics.Config{
		TopN:     cfg.Analytics.TopN,
		CacheTTL: cfg.Analytics.CacheTTL,
	}, holder, backend, logging.WithComponent("analytics"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create analytics service")
	}
	defer summaries.Close()

	sessions, err := session.Open(&cfg.Session)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open session store")
	}
	defer func() {
		if err := sessions.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing session store")
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	tree, err := supervisor.NewTree(
		logging.NewSlogLogger(logging.WithComponent("supervisor")),
		supervisor.TreeConfig{ShutdownTimeout: cfg.Server.ShutdownTimeout},
	)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// === EVENTS ===
	var publisher api.EventPublisher
	if cfg.Events.Enabled {
		eventsLogger := logging.WithComponent("events")
		bus := events.NewBus(cfg.Events.BufferSize, eventsLogger)
		defer func() {
			if err := bus.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing event bus")
			}
		}()

		pub := events.NewPublisher(bus.Publisher(), events.PublisherConfig{
			Name:             "events-publisher",
			FailureThreshold: cfg.Events.BreakerFailures,
			Timeout:          cfg.Events.BreakerTimeout,
		}, eventsLogger)
		defer pub.Close()
		publisher = pub

		router, err := events.NewRouter(events.DefaultRouterConfig(), bus.Subscriber(),
			events.NewAudit(auditCapacity, eventsLogger), bus.Logger())
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to create event router")
		}
		tree.AddMessagingService(router)
		logging.Info().Int64("buffer", cfg.Events.BufferSize).Msg("Event bus enabled")
	} else {
		logging.Info().Msg("Event bus disabled (EVENTS_ENABLED=false)")
	}

	// === DATA LAYER ===
	datasetService := services.NewDatasetService(holder, services.DatasetServiceConfig{
		Path:        cfg.Dataset.Path,
		MinInterval: cfg.Dataset.ReloadInterval,
		Burst:       cfg.Dataset.ReloadBurst,
	}, publisher, logging.WithComponent("dataset"))
	datasetService.OnReload(func(*dataset.Store) { summaries.Invalidate() })
	tree.AddDataService(datasetService)
	tree.AddDataService(services.NewSessionJanitor(sessions, cfg.Session.CleanupInterval, logging.WithComponent("sessions")))

	// === API LAYER ===
	handler, err := api.NewHandler(api.Deps{
		Recommender: engine,
		Planner:     planner,
		Analytics:   summaries,
		Dataset:     datasetService,
		Sessions:    sessions,
		Events:      publisher,
		Config:      cfg,
		Version:     version,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create API handler")
	}
	middleware := api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(&cfg.Security))
	router := api.NewRouter(handler, middleware)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		// Handlers stop at cfg.Server.Timeout; leave room to write the error.
		WriteTimeout: cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// === START SUPERVISOR TREE ===
	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
		cancel()
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}

// newAnalyticsBackend returns the configured analytics backend and its
// cleanup function.
func newAnalyticsBackend(cfg *config.Config) (analytics.Backend, func(), error) {
	if cfg.Analytics.Backend != config.AnalyticsBackendDuckDB {
		return analytics.MemoryBackend{}, func() {}, nil
	}
	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	logging.Info().Str("path", db.Path()).Msg("DuckDB analytics backend initialized")
	return analytics.NewSQLBackend(db), func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}, nil
}

func storeLen(s *dataset.Store) int {
	if s == nil {
		return 0
	}
	return s.Len()
}
