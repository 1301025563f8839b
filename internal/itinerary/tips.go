// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package itinerary

import (
	"fmt"
	"strings"

	"github.com/tomtom215/wayfarer/internal/models"
)

var basePacking = []string{
	"Comfortable walking shoes",
	"Universal power adapter",
	"Copies of passport and travel insurance",
}

var climatePacking = map[models.Climate][]string{
	models.ClimateTemperate: {"Layers for changing weather", "Compact umbrella"},
	models.ClimateWarm:      {"Sunscreen and sunglasses", "Light breathable clothing", "Reusable water bottle"},
	models.ClimateCold:      {"Insulated waterproof jacket", "Thermal base layers", "Gloves and a warm hat"},
}

var accessibilityPacking = []string{
	"Spare parts or charger for mobility aids",
	"Medical documentation and prescriptions",
}

// PackingTips returns the packing list for the climates on a trip, in the
// order the climates were first visited. Duplicates are removed.
func PackingTips(climates []models.Climate, accessibility bool) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(basePacking)+3*len(climates))
	add := func(tips []string) {
		for _, tip := range tips {
			if _, dup := seen[tip]; dup {
				continue
			}
			seen[tip] = struct{}{}
			out = append(out, tip)
		}
	}

	add(basePacking)
	for _, c := range climates {
		add(climatePacking[c])
	}
	if accessibility {
		add(accessibilityPacking)
	}
	return out
}

// AccessibilityInfo returns travel guidance for tourists with accessibility
// needs. unesco counts the heritage sites on the schedule, which often have
// restricted access.
func AccessibilityInfo(cities []string, unesco int) map[string]string {
	info := map[string]string{
		"mobility":      "Ask for step-free routes and accessible entrances when booking site tickets",
		"transport":     fmt.Sprintf("Pre-book accessible transfers between %s", strings.Join(cities, ", ")),
		"accommodation": "Confirm elevator access and roll-in showers with each hotel before arrival",
	}
	if unesco > 0 {
		info["heritage_sites"] = fmt.Sprintf("%d scheduled UNESCO site(s) may have uneven historic surfaces; check accessibility routes in advance", unesco)
	}
	return info
}

var interestActivities = map[models.Interest][]string{
	models.InterestArt: {
		"Browse a local art gallery",
		"Join a street art walking tour",
		"Take a painting or craft workshop",
	},
	models.InterestHistory: {
		"Take a guided history walk",
		"Visit the city history museum",
		"See the old town monuments at dusk",
	},
	models.InterestArchitecture: {
		"Join an architecture walking tour",
		"Photograph landmark buildings",
		"Find a rooftop viewpoint over the skyline",
	},
	models.InterestCultural: {
		"Try a local cooking class",
		"Attend a traditional performance",
		"Browse a neighborhood market",
	},
	models.InterestNature: {
		"Walk a nearby trail",
		"Relax in a city park or botanical garden",
		"Take a scenic day trip outside the city",
	},
}

// maxActivities bounds the suggestions per day.
const maxActivities = 3

// Activities suggests things to do on a day. Suggestions rotate with the day
// number so consecutive days differ.
func Activities(interests []models.Interest, day int, city string, unescoSites []string, free bool) []string {
	var out []string
	if free {
		out = append(out, fmt.Sprintf("Explore %s at your own pace", city))
	}
	if len(interests) > 0 {
		offset := (day - 1) % len(interests)
		for i := 0; i < len(interests) && len(out) < maxActivities; i++ {
			options := interestActivities[interests[(offset+i)%len(interests)]]
			if len(options) == 0 {
				continue
			}
			out = append(out, options[(day-1)%len(options)])
		}
	}
	for _, site := range unescoSites {
		out = append(out, fmt.Sprintf("Book a guided heritage tour of %s", site))
	}
	return out
}

// dayNote describes where a day sits in the trip.
type dayNote struct {
	day      int
	total    int
	city     string
	prevCity string
	free     bool
	unesco   []string
}

func (n dayNote) String() string {
	var parts []string
	switch {
	case n.day == 1:
		parts = append(parts, fmt.Sprintf("Arrival day in %s: keep the schedule light.", n.city))
	case n.prevCity != "" && n.prevCity != n.city:
		parts = append(parts, fmt.Sprintf("Travel from %s to %s; check transfer times.", n.prevCity, n.city))
	}
	if n.free {
		parts = append(parts, fmt.Sprintf("No further listed sites in %s, so this is a free day.", n.city))
	}
	if len(n.unesco) > 0 {
		parts = append(parts, fmt.Sprintf("UNESCO World Heritage: %s.", strings.Join(n.unesco, ", ")))
	}
	if n.day == n.total && n.total > 1 {
		parts = append(parts, "Departure day: leave time to reach the airport or station.")
	}
	if len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("Full day of sightseeing in %s.", n.city))
	}
	return strings.Join(parts, " ")
}
