// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

// Package database mirrors the experience dataset into DuckDB and computes
// the analytics dashboard with SQL.
//
// The CSV store stays the source of truth. When the SQL analytics backend is
// selected (analytics.backend: duckdb), the analytics service calls
// LoadRecords whenever the store version changes and then AnalyticsSummary.
// Both run under the DB's lock, so a summary never mixes two versions.
//
// # Files
//
//   - database.go: connection lifecycle and pool configuration
//   - schema.go: the experiences table and its indexes
//   - load.go: transactional reload of the mirrored rows
//   - analytics.go: SQL aggregations behind the dashboard summary
//
// Rounding, bucketing and tie-breaking use the helpers in internal/models,
// so the SQL and in-memory backends return identical summaries.
//
// # Usage
//
//	db, err := database.New(&cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	backend := analytics.NewSQLBackend(db)
//
// The driver is github.com/duckdb/duckdb-go/v2 and requires CGO. Extension
// autoloading is disabled because nothing here needs one.
package database
