// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wayfarer/internal/metrics"
)

// DefaultCleanupInterval is used when the janitor is given no interval.
const DefaultCleanupInterval = 5 * time.Minute

// SessionCleaner is the part of session.Store the janitor needs.
type SessionCleaner interface {
	CleanupExpired(ctx context.Context) (int, error)
	Count(ctx context.Context) (int, error)
}

// SessionJanitor removes expired planning sessions on an interval and keeps
// the active-sessions gauge current.
type SessionJanitor struct {
	store    SessionCleaner
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewSessionJanitor creates the janitor.
//
//nolint:gocritic // zerolog.Logger is passed by value
func NewSessionJanitor(store SessionCleaner, interval time.Duration, logger zerolog.Logger) *SessionJanitor {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	return &SessionJanitor{
		store:    store,
		interval: interval,
		logger:   logger.With().Str("service", "session-janitor").Logger(),
		name:     "session-janitor",
	}
}

// Serve implements suture.Service. A sweep runs immediately, then every
// interval.
func (j *SessionJanitor) Serve(ctx context.Context) error {
	j.logger.Info().Dur("interval", j.interval).Msg("session janitor running")

	j.Sweep(ctx)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			j.Sweep(ctx)
		}
	}
}

// Sweep runs one cleanup pass and returns the number of sessions removed.
// Failures are logged; the next tick retries.
func (j *SessionJanitor) Sweep(ctx context.Context) int {
	removed, err := j.store.CleanupExpired(ctx)
	if err != nil {
		j.logger.Warn().Err(err).Msg("session cleanup failed")
	}
	if removed > 0 {
		metrics.SessionsExpired.Add(float64(removed))
		j.logger.Debug().Int("removed", removed).Msg("expired sessions removed")
	}

	if active, err := j.store.Count(ctx); err == nil {
		metrics.SessionsActive.Set(float64(active))
	} else {
		j.logger.Warn().Err(err).Msg("session count failed")
	}
	return removed
}

// String returns the service name for logging.
func (j *SessionJanitor) String() string {
	return j.name
}
