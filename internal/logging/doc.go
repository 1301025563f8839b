// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package logging provides the zerolog-based structured logging used across
Wayfarer.

# Quick Start

	logging.Init(logging.Config{Level: "info", Format: "json"})

	logging.Info().Str("path", cfg.Dataset.Path).Msg("Dataset loaded")
	logging.Ctx(ctx).Warn().Err(err).Msg("Reload failed")

Components receive a zerolog.Logger in their constructor and derive their own
child with a component field:

	logger := logging.WithComponent("recommend")

# Context

The HTTP middleware stores a request ID in the request context; background
jobs use a short correlation ID. Ctx adds whichever is present to every line.

# slog Interop

sutureslog and watermill take a *slog.Logger. NewSlogLogger returns one that
writes through zerolog so supervisor and event bus output stays in the same
JSON stream.

Always end a chain with Msg or Send; an unterminated event is never written.
*/
package logging
