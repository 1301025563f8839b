// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package database

import (
	"context"
	"fmt"
	"time"
)

// experiencesTable mirrors the CSV rows that analytics needs. seq keeps the
// file order so "first record per tourist" matches the in-memory backend.
const experiencesTable = `CREATE TABLE IF NOT EXISTS experiences (
	seq            INTEGER NOT NULL,
	tourist_id     VARCHAR NOT NULL,
	age            INTEGER NOT NULL,
	accessibility  BOOLEAN NOT NULL,
	city           VARCHAR NOT NULL,
	country        VARCHAR NOT NULL,
	continent      VARCHAR,
	site_name      VARCHAR NOT NULL,
	unesco_site    BOOLEAN NOT NULL,
	budget_level   VARCHAR NOT NULL,
	cost_cents     BIGINT NOT NULL,
	tourist_rating DOUBLE NOT NULL,
	satisfaction   DOUBLE NOT NULL,
	experience     DOUBLE NOT NULL,
	recommendation_accuracy DOUBLE,
	climate        VARCHAR,
	best_season    VARCHAR
)`

var indexQueries = []string{
	`CREATE INDEX IF NOT EXISTS idx_experiences_city ON experiences(city)`,
	`CREATE INDEX IF NOT EXISTS idx_experiences_tourist ON experiences(tourist_id)`,
}

func (db *DB) createTables() error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if _, err := db.conn.ExecContext(ctx, experiencesTable); err != nil {
		return fmt.Errorf("failed to create experiences table: %w", err)
	}
	for _, q := range indexQueries {
		if _, err := db.conn.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}
