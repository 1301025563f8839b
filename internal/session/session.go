// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/wayfarer/internal/models"
)

var (
	// ErrNotFound is returned when a session does not exist.
	ErrNotFound = errors.New("session not found")

	// ErrExpired is returned when a session exists but its TTL has passed.
	ErrExpired = errors.New("session expired")
)

// DefaultHistoryLimit bounds Session.History when the caller passes 0.
const DefaultHistoryLimit = 10

// PlanEntry is one planning request remembered in a session's history.
type PlanEntry struct {
	PlannedAt    time.Time             `json:"planned_at"`
	Profile      models.TouristProfile `json:"profile"`
	Status       string                `json:"status"`
	Message      string                `json:"message,omitempty"`
	Cities       []string              `json:"cities,omitempty"`
	TotalDays    int                   `json:"total_days,omitempty"`
	TotalCostUSD models.Cents          `json:"total_cost_usd,omitempty"`
}

// Session is the explicit per-client planning context: the most recent
// itinerary and a bounded history of the requests that produced it.
//
// A stored LastItinerary is treated as immutable; callers replace it rather
// than mutate it.
type Session struct {
	ID             string                  `json:"id"`
	CreatedAt      time.Time               `json:"created_at"`
	ExpiresAt      time.Time               `json:"expires_at"`
	LastAccessedAt time.Time               `json:"last_accessed_at"`
	LastItinerary  *models.ItineraryResult `json:"last_itinerary,omitempty"`
	History        []PlanEntry             `json:"history"`
}

// New creates a session with a random ID that expires after ttl.
func New(ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:             uuid.NewString(),
		CreatedAt:      now,
		ExpiresAt:      now.Add(ttl),
		LastAccessedAt: now,
		History:        []PlanEntry{},
	}
}

// IsExpired reports whether the session has expired at now.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// RecordPlan stores result as the last itinerary (successful plans only) and
// appends an entry to the history, dropping the oldest entries beyond limit.
func (s *Session) RecordPlan(profile *models.TouristProfile, result *models.ItineraryResult, limit int, now time.Time) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	entry := PlanEntry{
		PlannedAt: now,
		Profile:   cloneProfile(profile),
		Status:    result.Status,
		Message:   result.Message,
	}
	if result.IsSuccess() {
		s.LastItinerary = result
		entry.Cities = append([]string(nil), result.Itinerary.CitiesVisited...)
		entry.TotalDays = result.Itinerary.TotalDays
		entry.TotalCostUSD = result.Itinerary.TotalCostUSD
	}

	s.History = append(s.History, entry)
	if over := len(s.History) - limit; over > 0 {
		s.History = append([]PlanEntry(nil), s.History[over:]...)
	}
	s.LastAccessedAt = now
}

// Clone returns a copy that shares only the immutable LastItinerary.
func (s *Session) Clone() *Session {
	c := *s
	c.History = make([]PlanEntry, len(s.History))
	for i, e := range s.History {
		e.Profile = cloneProfile(&e.Profile)
		e.Cities = append([]string(nil), e.Cities...)
		c.History[i] = e
	}
	return &c
}

func cloneProfile(p *models.TouristProfile) models.TouristProfile {
	if p == nil {
		return models.TouristProfile{}
	}
	c := *p
	c.Interests = append([]models.Interest(nil), p.Interests...)
	return c
}

// Store persists sessions.
type Store interface {
	// Create stores a new session.
	Create(ctx context.Context, s *Session) error

	// Get returns a session by ID. It returns ErrNotFound when the session
	// does not exist and ErrExpired when it has expired.
	Get(ctx context.Context, id string) (*Session, error)

	// Update replaces an existing, unexpired session.
	Update(ctx context.Context, s *Session) error

	// Modify applies fn to the stored session and saves the result as one
	// atomic read-modify-write. It returns ErrNotFound or ErrExpired like
	// Get; when fn returns an error nothing is written.
	Modify(ctx context.Context, id string, fn func(*Session) error) error

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error

	// CleanupExpired removes expired sessions and returns how many it removed.
	CleanupExpired(ctx context.Context) (int, error)

	// Count returns the number of stored sessions, expired ones included.
	Count(ctx context.Context) (int, error)

	// Close releases the backend.
	Close() error
}
