// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package models

import "math"

// AnalyticsSummary is the dataset-wide dashboard aggregate. Every collection
// is non-nil so that an empty dataset serializes as empty arrays and objects.
type AnalyticsSummary struct {
	DatasetStats        DatasetStats        `json:"dataset_stats"`
	PopularDestinations PopularDestinations `json:"popular_destinations"`
	CostAnalysis        CostAnalysis        `json:"cost_analysis"`
	TouristDemographics TouristDemographics `json:"tourist_demographics"`
	SatisfactionMetrics SatisfactionMetrics `json:"satisfaction_metrics"`
}

// DatasetStats holds distinct counts.
type DatasetStats struct {
	TotalRecords    int `json:"total_records"`
	UniqueTourists  int `json:"unique_tourists"`
	UniqueCities    int `json:"unique_cities"`
	UniqueCountries int `json:"unique_countries"`
}

// NamedCount is a label with a visit count.
type NamedCount struct {
	Name   string `json:"name"`
	Visits int    `json:"visits"`
}

// PopularDestinations ranks cities and countries by visit count.
type PopularDestinations struct {
	TopCities    []NamedCount `json:"top_cities"`
	TopCountries []NamedCount `json:"top_countries"`
}

// TierCost is the cost breakdown of one budget tier.
type TierCost struct {
	Records    int   `json:"records"`
	AvgCostUSD Cents `json:"avg_cost_usd"`
}

// CostAnalysis describes the site cost distribution.
type CostAnalysis struct {
	AvgDailyCostUSD    Cents                   `json:"avg_daily_cost_usd"`
	MinCostUSD         Cents                   `json:"min_cost_usd"`
	MaxCostUSD         Cents                   `json:"max_cost_usd"`
	BudgetDistribution map[BudgetTier]TierCost `json:"budget_distribution"`
}

// AgeBucket is one bar of the age histogram.
type AgeBucket struct {
	Group string `json:"group"`
	Count int    `json:"count"`
}

// AgeGroups are the histogram bucket labels in display order.
var AgeGroups = []string{"18-24", "25-34", "35-44", "45-54", "55-64", "65+"}

// AgeGroupOf returns the bucket label for an age. Ages below 18 fall into the
// first bucket.
func AgeGroupOf(age int) string {
	switch {
	case age < 25:
		return AgeGroups[0]
	case age < 35:
		return AgeGroups[1]
	case age < 45:
		return AgeGroups[2]
	case age < 55:
		return AgeGroups[3]
	case age < 65:
		return AgeGroups[4]
	default:
		return AgeGroups[5]
	}
}

// TouristDemographics summarizes distinct tourists.
type TouristDemographics struct {
	AvgAge                float64     `json:"avg_age"`
	AccessibilityNeedsPct float64     `json:"accessibility_needs_pct"`
	AgeDistribution       []AgeBucket `json:"age_distribution"`
}

// SatisfactionMetrics averages the feedback columns.
type SatisfactionMetrics struct {
	AvgTouristRating       float64 `json:"avg_tourist_rating"`
	AvgSatisfaction        float64 `json:"avg_satisfaction"`
	RecommendationAccuracy float64 `json:"recommendation_accuracy"`
}

// EmptyAnalyticsSummary returns a zeroed summary with empty, non-nil
// collections.
func EmptyAnalyticsSummary() AnalyticsSummary {
	return AnalyticsSummary{
		PopularDestinations: PopularDestinations{
			TopCities:    []NamedCount{},
			TopCountries: []NamedCount{},
		},
		CostAnalysis: CostAnalysis{
			BudgetDistribution: map[BudgetTier]TierCost{},
		},
		TouristDemographics: TouristDemographics{
			AgeDistribution: []AgeBucket{},
		},
	}
}

// AgeHistogram turns per-group counts into the display histogram. Every
// group in AgeGroups is present, including empty ones.
func AgeHistogram(counts map[string]int) []AgeBucket {
	out := make([]AgeBucket, len(AgeGroups))
	for i, g := range AgeGroups {
		out[i] = AgeBucket{Group: g, Count: counts[g]}
	}
	return out
}

// Round2 rounds x to two decimal places, half away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Percent returns part/whole as a percentage rounded to two decimals, or 0
// when whole is 0.
func Percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return Round2(float64(part) * 100 / float64(whole))
}
