// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/logging"
)

// memoryPath opens a private in-memory database.
const memoryPath = ":memory:"

// DB wraps the DuckDB connection that mirrors the experience dataset for SQL
// analytics.
type DB struct {
	conn *sql.DB
	cfg  config.DatabaseConfig

	// mu guards version; LoadRecords holds it for the whole reload.
	mu      sync.RWMutex
	version string
}

// New opens DuckDB and creates the schema. An empty cfg.Path opens an
// in-memory database.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	c := *cfg
	if c.Path == "" {
		c.Path = memoryPath
	}
	if c.MaxMemory == "" {
		c.MaxMemory = "512MB"
	}
	threads := c.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	if c.Path != memoryPath {
		// 0750 per gosec G301
		if dir := filepath.Dir(c.Path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
			}
		}
	}

	// Extensions are never needed; disabling autoload avoids network
	// lookups in restricted environments.
	connStr := fmt.Sprintf("%s?threads=%d&max_memory=%s&autoinstall_known_extensions=false&autoload_known_extensions=false",
		c.Path, threads, c.MaxMemory)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{conn: conn, cfg: c}
	db.configureConnectionPool()

	if err := db.createTables(); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	logging.Info().
		Str("path", c.Path).
		Int("threads", threads).
		Str("max_memory", c.MaxMemory).
		Msg("DuckDB analytics database ready")
	return db, nil
}

// configureConnectionPool sizes the pool for a read-mostly analytics load.
func (db *DB) configureConnectionPool() {
	db.conn.SetMaxOpenConns(runtime.NumCPU())
	db.conn.SetMaxIdleConns(2)
	db.conn.SetConnMaxLifetime(time.Hour)
	db.conn.SetConnMaxIdleTime(5 * time.Minute)
}

// Ping checks the connection.
func (db *DB) Ping(ctx context.Context) error {
	ctx, cancel := ensureContext(ctx)
	defer cancel()
	return db.conn.PingContext(ctx)
}

// Close closes the connection pool.
func (db *DB) Close() error {
	if err := db.conn.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// LoadedVersion returns the dataset version currently mirrored, or "" when
// nothing has been loaded.
func (db *DB) LoadedVersion() string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.version
}

// Path returns the database file path (":memory:" for in-memory).
func (db *DB) Path() string {
	return db.cfg.Path
}

// ensureContext applies a 30 second timeout when ctx has no deadline.
func ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, 30*time.Second)
}
