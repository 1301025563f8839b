// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

// Package analytics computes the dataset dashboard: distinct counts, popular
// destinations, cost distribution, tourist demographics and satisfaction.
//
// Summarize works on a record slice. Service wraps a Backend (in-memory or
// DuckDB) with a TTL cache keyed by dataset version, so a reload always
// yields a fresh summary.
//
// Demographics count each tourist once, using their first record. Money is
// in cents; ratios are rounded to two decimals.
package analytics
