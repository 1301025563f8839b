// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package itinerary

import (
	"strings"
	"testing"

	"github.com/tomtom215/wayfarer/internal/models"
)

func TestPackingTips(t *testing.T) {
	t.Parallel()

	tips := PackingTips([]models.Climate{models.ClimateWarm, models.ClimateWarm, "Tropical"}, false)
	if len(tips) != len(basePacking)+3 {
		t.Errorf("PackingTips = %v", tips)
	}
	if tips[0] != basePacking[0] || tips[len(basePacking)] != "Sunscreen and sunglasses" {
		t.Errorf("order = %v", tips)
	}

	withAccess := PackingTips(nil, true)
	if len(withAccess) != len(basePacking)+len(accessibilityPacking) {
		t.Errorf("PackingTips(nil, true) = %v", withAccess)
	}
}

func TestActivitiesRotate(t *testing.T) {
	t.Parallel()

	interests := []models.Interest{models.InterestArt, models.InterestNature}
	day1 := Activities(interests, 1, "Kyoto", nil, false)
	day2 := Activities(interests, 2, "Kyoto", nil, false)

	if len(day1) != 2 || len(day2) != 2 {
		t.Fatalf("day1 %v day2 %v", day1, day2)
	}
	if day1[0] != "Browse a local art gallery" {
		t.Errorf("day1[0] = %q", day1[0])
	}
	if day2[0] != "Relax in a city park or botanical garden" {
		t.Errorf("day2 should lead with the next interest, got %q", day2[0])
	}

	free := Activities(interests, 3, "Kyoto", []string{"Kinkaku-ji"}, true)
	if free[0] != "Explore Kyoto at your own pace" {
		t.Errorf("free day should lead with open exploration: %v", free)
	}
	if free[len(free)-1] != "Book a guided heritage tour of Kinkaku-ji" {
		t.Errorf("heritage suggestion missing: %v", free)
	}
}

func TestActivitiesCap(t *testing.T) {
	t.Parallel()

	got := Activities(models.Interests, 1, "Rome", nil, false)
	if len(got) != maxActivities {
		t.Errorf("len = %d, want %d", len(got), maxActivities)
	}
}

func TestDayNote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		note dayNote
		want []string
	}{
		{"arrival", dayNote{day: 1, total: 3, city: "Rome"}, []string{"Arrival day in Rome"}},
		{"transfer", dayNote{day: 2, total: 3, city: "Paris", prevCity: "Rome"}, []string{"Travel from Rome to Paris"}},
		{"plain", dayNote{day: 2, total: 3, city: "Rome", prevCity: "Rome"}, []string{"Full day of sightseeing in Rome."}},
		{"free departure", dayNote{day: 3, total: 3, city: "Rome", prevCity: "Rome", free: true}, []string{"free day", "Departure day"}},
		{"heritage", dayNote{day: 2, total: 3, city: "Rome", prevCity: "Rome", unesco: []string{"Colosseum"}}, []string{"UNESCO World Heritage: Colosseum."}},
		{"single day trip", dayNote{day: 1, total: 1, city: "Rome"}, []string{"Arrival day in Rome"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.note.String()
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("note = %q, want it to contain %q", got, w)
				}
			}
			if tt.name == "single day trip" && strings.Contains(got, "Departure") {
				t.Errorf("single day trip should not carry a departure note: %q", got)
			}
		})
	}
}

func TestAccessibilityInfo(t *testing.T) {
	t.Parallel()

	info := AccessibilityInfo([]string{"Rome", "Paris"}, 0)
	if _, ok := info["heritage_sites"]; ok {
		t.Error("heritage_sites should be omitted when no UNESCO site is scheduled")
	}
	if !strings.Contains(info["transport"], "Rome, Paris") {
		t.Errorf("transport = %q", info["transport"])
	}
}
