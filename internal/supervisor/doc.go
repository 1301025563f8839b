// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package supervisor provides process supervision for the Wayfarer server using
suture v4.

Long-running services are organized into three layers for failure isolation:

	wayfarer
	├── data-layer
	│   ├── DatasetService   (SIGHUP and API reloads)
	│   └── SessionJanitor   (expired session cleanup)
	├── messaging-layer
	│   └── events.Router    (Watermill audit consumer)
	└── api-layer
	    └── HTTPServerService

Crashed services are restarted with suture's backoff; failures are counted
per layer. Supervisor events are logged through sutureslog, fed by the
zerolog-backed slog handler from the logging package.

# Usage

	tree, err := supervisor.NewTree(logging.NewSlogLogger(logging.Logger()), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(datasetSvc)
	tree.AddDataService(services.NewSessionJanitor(sessions, cfg.Session.CleanupInterval, logger))
	tree.AddMessagingService(router)
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

See the services subpackage for the individual wrappers.
*/
package supervisor
