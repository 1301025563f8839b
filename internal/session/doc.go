// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

// Package session keeps per-client planning context between requests.
//
// A Session remembers the last successful itinerary and a bounded history
// of planning requests. Nothing in the planner or the recommendation engine
// reads sessions; the HTTP layer records each result through Store.Modify,
// so concurrent plans on one session each land in its history.
//
// Two backends implement Store:
//
//   - MemoryStore: a mutex-guarded map, the default
//   - BadgerStore: BadgerDB with JSON values (goccy/go-json) and Badger TTLs
//
// Expired sessions are reported as ErrExpired until CleanupExpired removes
// them. The supervisor runs CleanupExpired on an interval.
package session
