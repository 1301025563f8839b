// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/tomtom215/wayfarer/internal/models"
)

func testProfile() *models.TouristProfile {
	return &models.TouristProfile{
		Age:               34,
		Interests:         []models.Interest{models.InterestArt, models.InterestHistory},
		PreferredDuration: 5,
		BudgetPreference:  models.BudgetTierMidRange,
	}
}

func successResult(cities ...string) *models.ItineraryResult {
	return &models.ItineraryResult{
		Status: models.StatusSuccess,
		Itinerary: &models.Itinerary{
			TotalDays:     len(cities),
			CitiesVisited: cities,
			TotalCostUSD:  models.Cents(1000 * len(cities)),
		},
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	s := New(time.Hour)
	if s.ID == "" {
		t.Fatal("ID is empty")
	}
	if s.History == nil {
		t.Error("History is nil, want empty slice")
	}
	if got := s.ExpiresAt.Sub(s.CreatedAt); got != time.Hour {
		t.Errorf("ttl = %v, want 1h", got)
	}
	if New(time.Hour).ID == s.ID {
		t.Error("two sessions share an ID")
	}
}

func TestIsExpired(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	s := &Session{ExpiresAt: base}

	if s.IsExpired(base.Add(-time.Second)) {
		t.Error("expired before ExpiresAt")
	}
	if !s.IsExpired(base) {
		t.Error("not expired at ExpiresAt")
	}
}

func TestRecordPlan(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	s := New(time.Hour)

	ok := successResult("Paris", "Rome")
	s.RecordPlan(testProfile(), ok, 3, now)

	if s.LastItinerary != ok {
		t.Error("LastItinerary not set to the successful result")
	}
	if len(s.History) != 1 {
		t.Fatalf("len(History) = %d, want 1", len(s.History))
	}
	e := s.History[0]
	if e.Status != models.StatusSuccess || e.TotalDays != 2 || e.TotalCostUSD != 2000 {
		t.Errorf("entry = %+v", e)
	}
	if !s.LastAccessedAt.Equal(now) {
		t.Errorf("LastAccessedAt = %v, want %v", s.LastAccessedAt, now)
	}

	failed := &models.ItineraryResult{Status: models.StatusError, Message: "no match"}
	s.RecordPlan(testProfile(), failed, 3, now)
	if s.LastItinerary != ok {
		t.Error("an error result replaced the last itinerary")
	}
	if got := s.History[1]; got.Status != models.StatusError || got.Message != "no match" || got.Cities != nil {
		t.Errorf("error entry = %+v", got)
	}
}

func TestRecordPlanHistoryLimit(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	s := New(time.Hour)
	for i := 0; i < 5; i++ {
		s.RecordPlan(testProfile(), successResult(fmt.Sprintf("City%d", i)), 3, now)
	}

	if len(s.History) != 3 {
		t.Fatalf("len(History) = %d, want 3", len(s.History))
	}
	for i, want := range []string{"City2", "City3", "City4"} {
		if got := s.History[i].Cities[0]; got != want {
			t.Errorf("History[%d] city = %q, want %q", i, got, want)
		}
	}
}

func TestRecordPlanDefaultLimit(t *testing.T) {
	t.Parallel()

	s := New(time.Hour)
	for i := 0; i < DefaultHistoryLimit+4; i++ {
		s.RecordPlan(testProfile(), successResult("Paris"), 0, time.Now())
	}
	if len(s.History) != DefaultHistoryLimit {
		t.Errorf("len(History) = %d, want %d", len(s.History), DefaultHistoryLimit)
	}
}

func TestRecordPlanCopiesProfile(t *testing.T) {
	t.Parallel()

	p := testProfile()
	s := New(time.Hour)
	s.RecordPlan(p, successResult("Paris"), 3, time.Now())

	p.Interests[0] = models.InterestNature
	if got := s.History[0].Profile.Interests[0]; got != models.InterestArt {
		t.Errorf("stored interest changed to %q", got)
	}
}

func TestClone(t *testing.T) {
	t.Parallel()

	s := New(time.Hour)
	s.RecordPlan(testProfile(), successResult("Paris", "Rome"), 3, time.Now())

	c := s.Clone()
	c.History[0].Cities[0] = "Berlin"
	c.History = append(c.History, PlanEntry{Status: models.StatusError})

	if s.History[0].Cities[0] != "Paris" {
		t.Error("clone shares history cities")
	}
	if len(s.History) != 1 {
		t.Error("clone shares history slice")
	}
	if c.LastItinerary != s.LastItinerary {
		t.Error("clone should share the immutable last itinerary")
	}
}
