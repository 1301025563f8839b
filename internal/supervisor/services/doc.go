// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package services provides suture.Service wrappers for Wayfarer components.

Each wrapper translates a component's lifecycle into suture's
context-aware Serve pattern and identifies itself through fmt.Stringer:

  - HTTPServerService: ListenAndServe with graceful Shutdown
  - DatasetService: explicit dataset reloads (API and SIGHUP), rate limited
    with golang.org/x/time/rate, publishing dataset.reloaded
  - SessionJanitor: periodic removal of expired planning sessions

Serve returns ctx.Err() on shutdown so the supervisor does not restart the
service, and a wrapped error on failure so it does.
*/
package services
