// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package models

// DateLayout is the calendar date format used throughout itineraries.
const DateLayout = "2006-01-02"

// DaySchedule is one day of an itinerary.
type DaySchedule struct {
	Day              int      `json:"day"`
	Date             string   `json:"date"`
	City             string   `json:"city"`
	Country          string   `json:"country,omitempty"`
	Sites            []string `json:"sites"`
	Activities       []string `json:"activities"`
	Notes            string   `json:"notes"`
	EstimatedCostUSD Cents    `json:"estimated_cost_usd"`
}

// Itinerary is a complete day-by-day plan. TotalCostUSD is always the exact
// sum of the daily EstimatedCostUSD values.
type Itinerary struct {
	TotalDays       int           `json:"total_days"`
	StartDate       string        `json:"start_date"`
	EndDate         string        `json:"end_date"`
	CitiesVisited   []string      `json:"cities_visited"`
	TotalCostUSD    Cents         `json:"total_cost_usd"`
	AvgDailyCostUSD Cents         `json:"avg_daily_cost_usd"`
	DailySchedule   []DaySchedule `json:"daily_schedule"`
}

// ProfileSummary echoes the parts of the profile shown alongside a plan.
type ProfileSummary struct {
	Interests          []string   `json:"interests"`
	Budget             BudgetTier `json:"budget"`
	Duration           int        `json:"duration"`
	AccessibilityNeeds bool       `json:"accessibility_needs"`
}

// TravelRecommendations holds the derived advice attached to a plan.
// AccessibilityInfo is nil unless the tourist declared accessibility needs.
type TravelRecommendations struct {
	BestSeason        Season            `json:"best_season"`
	PackingTips       []string          `json:"packing_tips"`
	AccessibilityInfo map[string]string `json:"accessibility_info,omitempty"`
}

// ItineraryResult is the output of the itinerary planner. When Status is
// StatusError only Message is set.
type ItineraryResult struct {
	Status          string                 `json:"status"`
	Message         string                 `json:"message,omitempty"`
	Itinerary       *Itinerary             `json:"itinerary,omitempty"`
	TouristProfile  *ProfileSummary        `json:"tourist_profile,omitempty"`
	Recommendations *TravelRecommendations `json:"recommendations,omitempty"`
	GeneratedAt     string                 `json:"generated_at,omitempty"`
}

// IsSuccess reports whether the result carries an itinerary.
func (r *ItineraryResult) IsSuccess() bool {
	return r != nil && r.Status == StatusSuccess && r.Itinerary != nil
}

// ErrorResult builds a status=error result carrying the error's message.
func ErrorResult(err error) *ItineraryResult {
	return &ItineraryResult{Status: StatusError, Message: err.Error()}
}
