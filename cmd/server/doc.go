// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package main is the entry point for the Wayfarer server.

Wayfarer loads a tourism experience dataset, ranks destinations for a tourist
profile, builds day-by-day itineraries and serves dataset analytics over a
JSON HTTP API.

# Application Architecture

Services run under a Suture v4 supervisor tree:

	RootSupervisor ("wayfarer")
	├── DataSupervisor ("data-layer")
	│   ├── Dataset service (explicit reloads, SIGHUP)
	│   └── Session janitor (expired session cleanup)
	├── MessagingSupervisor ("messaging-layer")
	│   └── Event router (Watermill, optional)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config file and environment
 2. Logging: zerolog with JSON/console output modes
 3. Dataset: CSV load into an immutable store (fatal on failure)
 4. Engines: recommendation engine and itinerary planner
 5. Analytics: in-memory or DuckDB backend with a per-version cache
 6. Sessions: in-memory or BadgerDB store
 7. Events: in-process bus, circuit-breaking publisher and audit router
 8. Supervisor Tree and HTTP Server

# Configuration

	HTTP_PORT=8080
	DATASET_PATH=data/tourism_dataset.csv
	ANALYTICS_BACKEND=memory     # or duckdb
	SESSION_STORE=memory         # or badger
	LOG_LEVEL=info
	LOG_FORMAT=json              # or console

See package config for the full list.

# Signal Handling

SIGINT and SIGTERM stop the supervisor tree; the HTTP server drains in-flight
requests within SHUTDOWN_TIMEOUT. SIGHUP reloads the dataset from disk.
*/
package main
