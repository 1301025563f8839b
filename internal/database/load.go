// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/metrics"
	"github.com/tomtom215/wayfarer/internal/models"
)

const insertExperience = `INSERT INTO experiences (
	seq, tourist_id, age, accessibility,
	city, country, continent, site_name, unesco_site,
	budget_level, cost_cents,
	tourist_rating, satisfaction, experience, recommendation_accuracy,
	climate, best_season
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// LoadRecords replaces the mirrored table with records inside a single
// transaction and remembers version. Readers never observe a half-loaded
// table; on error the previous contents and version stay in place.
func (db *DB) LoadRecords(ctx context.Context, version string, records []models.ExperienceRecord) (err error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	defer func() {
		metrics.RecordDBQuery("load", "experiences", time.Since(start), err)
	}()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.Error().Err(rbErr).AnErr("original_error", err).Msg("Transaction rollback failed")
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM experiences`); err != nil {
		return fmt.Errorf("failed to clear experiences: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertExperience)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer closeWithLog(stmt, "prepared statement")

	for i := range records {
		r := &records[i]
		var accuracy sql.NullFloat64
		if r.HasRecommendAcc {
			accuracy = sql.NullFloat64{Float64: r.RecommendAcc, Valid: true}
		}
		if _, err = stmt.ExecContext(ctx,
			i, r.TouristID, r.Age, r.Accessibility,
			r.City, r.Country, r.Continent, r.SiteName, r.UNESCO,
			string(r.Budget), int64(r.Cost),
			r.Rating, r.Satisfaction, r.Experience, accuracy,
			string(r.Climate), string(r.BestSeason),
		); err != nil {
			return fmt.Errorf("failed to insert record %d: %w", i+1, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	db.version = version

	logging.Debug().
		Str("version", version).
		Int("records", len(records)).
		Dur("elapsed", time.Since(start)).
		Msg("Dataset mirrored into DuckDB")
	return nil
}

// RecordCount returns the number of mirrored rows.
func (db *DB) RecordCount(ctx context.Context) (int64, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	var n int64
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM experiences`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count experiences: %w", err)
	}
	return n, nil
}
