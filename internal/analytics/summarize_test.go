// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package analytics

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wayfarer/internal/dataset"
	"github.com/tomtom215/wayfarer/internal/models"
)

const fixturePath = "../dataset/testdata/experiences.csv"

func loadFixture(t *testing.T) *dataset.Store {
	t.Helper()
	store, err := dataset.Load(fixturePath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return store
}

func TestSummarizeFixture(t *testing.T) {
	t.Parallel()

	s := Summarize(loadFixture(t).Records(), 3)

	wantStats := models.DatasetStats{TotalRecords: 15, UniqueTourists: 6, UniqueCities: 7, UniqueCountries: 7}
	if s.DatasetStats != wantStats {
		t.Errorf("DatasetStats = %+v, want %+v", s.DatasetStats, wantStats)
	}

	wantCities := []models.NamedCount{{"Paris", 3}, {"Rome", 3}, {"Barcelona", 2}}
	if len(s.PopularDestinations.TopCities) != len(wantCities) {
		t.Fatalf("TopCities = %+v", s.PopularDestinations.TopCities)
	}
	for i, w := range wantCities {
		if s.PopularDestinations.TopCities[i] != w {
			t.Errorf("TopCities[%d] = %+v, want %+v", i, s.PopularDestinations.TopCities[i], w)
		}
	}
	if got := s.PopularDestinations.TopCountries[0]; got != (models.NamedCount{Name: "France", Visits: 3}) {
		t.Errorf("TopCountries[0] = %+v", got)
	}

	cost := s.CostAnalysis
	if cost.AvgDailyCostUSD != 11899 || cost.MinCostUSD != 3500 || cost.MaxCostUSD != 25000 {
		t.Errorf("cost = %+v", cost)
	}
	wantTiers := map[models.BudgetTier]models.TierCost{
		models.BudgetTierBudget:   {Records: 1, AvgCostUSD: 3500},
		models.BudgetTierMidRange: {Records: 10, AvgCostUSD: 8699},
		models.BudgetTierLuxury:   {Records: 4, AvgCostUSD: 22000},
	}
	for tier, want := range wantTiers {
		if got := cost.BudgetDistribution[tier]; got != want {
			t.Errorf("BudgetDistribution[%s] = %+v, want %+v", tier, got, want)
		}
	}

	demo := s.TouristDemographics
	if demo.AvgAge != 40.67 || demo.AccessibilityNeedsPct != 33.33 {
		t.Errorf("demographics = %+v", demo)
	}
	wantAges := []int{1, 2, 1, 1, 0, 1}
	for i, b := range demo.AgeDistribution {
		if b.Group != models.AgeGroups[i] || b.Count != wantAges[i] {
			t.Errorf("AgeDistribution[%d] = %+v, want %s:%d", i, b, models.AgeGroups[i], wantAges[i])
		}
	}

	sat := s.SatisfactionMetrics
	if sat.AvgTouristRating != 4.51 || sat.AvgSatisfaction != 4.39 || sat.RecommendationAccuracy != 90.13 {
		t.Errorf("satisfaction = %+v", sat)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()

	for _, records := range [][]models.ExperienceRecord{nil, {}} {
		s := Summarize(records, 5)
		data, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		out := string(data)
		for _, want := range []string{`"total_records":0`, `"top_cities":[]`, `"top_countries":[]`, `"budget_distribution":{}`, `"age_distribution":[]`, `"avg_age":0`} {
			if !strings.Contains(out, want) {
				t.Errorf("empty summary missing %s: %s", want, out)
			}
		}
	}
}

func TestSummarizeAccuracyColumn(t *testing.T) {
	t.Parallel()

	records := []models.ExperienceRecord{
		{TouristID: "a", Age: 30, City: "Lisbon", Country: "Portugal", Cost: 5000, Rating: 4, Satisfaction: 4, RecommendAcc: 80, HasRecommendAcc: true},
		{TouristID: "a", Age: 31, Accessibility: true, City: "Porto", Country: "Portugal", Cost: 4000, Rating: 5, Satisfaction: 3},
		{TouristID: "b", Age: 70, Accessibility: true, City: "Porto", Country: "Portugal", Cost: 4001, Rating: 3, Satisfaction: 5, RecommendAcc: 90, HasRecommendAcc: true},
	}
	s := Summarize(records, 0)

	if got := s.SatisfactionMetrics.RecommendationAccuracy; got != 85 {
		t.Errorf("RecommendationAccuracy = %v, want 85 (rows without the column excluded)", got)
	}
	// tourist a keeps the first row's age and accessibility
	if s.TouristDemographics.AvgAge != 50 || s.TouristDemographics.AccessibilityNeedsPct != 50 {
		t.Errorf("demographics = %+v", s.TouristDemographics)
	}
	if s.CostAnalysis.AvgDailyCostUSD != 4334 { // 13001 / 3 rounds to 4334
		t.Errorf("AvgDailyCostUSD = %d", s.CostAnalysis.AvgDailyCostUSD)
	}
	if got := s.PopularDestinations.TopCities[0].Name; got != "Porto" {
		t.Errorf("TopCities[0] = %q", got)
	}

	noAcc := Summarize(records[1:2], 0)
	if noAcc.SatisfactionMetrics.RecommendationAccuracy != 0 {
		t.Errorf("accuracy without the column = %v", noAcc.SatisfactionMetrics.RecommendationAccuracy)
	}
}

func TestTopCounts(t *testing.T) {
	t.Parallel()

	got := TopCounts(map[string]int{"b": 2, "a": 2, "c": 5, "d": 1}, 3)
	want := []models.NamedCount{{"c", 5}, {"a", 2}, {"b", 2}}
	if len(got) != len(want) {
		t.Fatalf("TopCounts = %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TopCounts[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
	if empty := TopCounts(nil, 3); empty == nil || len(empty) != 0 {
		t.Errorf("TopCounts(nil) = %#v", empty)
	}
}
