// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package models

import "fmt"

// Result status values shared by recommendation and itinerary results.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// RecommendationMode selects which candidate kinds a recommendation returns.
type RecommendationMode string

const (
	ModeAll    RecommendationMode = "all"
	ModeCities RecommendationMode = "cities"
	ModeSites  RecommendationMode = "sites"
)

// ParseRecommendationMode validates a mode string. Empty means ModeAll.
func ParseRecommendationMode(s string) (RecommendationMode, error) {
	switch RecommendationMode(s) {
	case "", ModeAll:
		return ModeAll, nil
	case ModeCities:
		return ModeCities, nil
	case ModeSites:
		return ModeSites, nil
	default:
		return "", &ValidationError{
			Field:   "mode",
			Message: fmt.Sprintf("mode must be one of: all, cities, sites (got %q)", s),
		}
	}
}

// CandidateKind distinguishes city candidates from site candidates.
type CandidateKind string

const (
	KindCity CandidateKind = "city"
	KindSite CandidateKind = "site"
)

// CandidateScore is a scored city or site. It is derived per request and
// never persisted.
type CandidateScore struct {
	Kind    CandidateKind
	Name    string
	City    string
	Country string
	Score   float64
	Reason  string
	// Matched lists the profile interests the candidate is associated with.
	Matched     []Interest
	MeanCost    Cents
	MeanRating  float64
	MeanExp     float64
	UNESCO      bool
	RecordCount int
}

// Match quality labels derived from the score.
const (
	QualityExcellent = "Excellent"
	QualityGood      = "Good"
	QualityFair      = "Fair"
)

// MatchQuality labels a 0-100 score.
func MatchQuality(score float64) string {
	switch {
	case score >= 80:
		return QualityExcellent
	case score >= 60:
		return QualityGood
	default:
		return QualityFair
	}
}

// Recommendation is one entry of a RecommendationResult.
type Recommendation struct {
	Name         string        `json:"name"`
	Type         CandidateKind `json:"type"`
	Reason       string        `json:"reason"`
	City         string        `json:"city"`
	Country      string        `json:"country"`
	UNESCO       bool          `json:"unesco_site"`
	Score        float64       `json:"score"`
	MatchQuality string        `json:"match_quality"`
	CostUSD      *Cents        `json:"cost_usd,omitempty"`
	AvgCostUSD   *Cents        `json:"avg_cost_usd,omitempty"`
}

// NewRecommendation converts a scored candidate into its output form. Sites
// carry cost_usd and cities carry avg_cost_usd.
func NewRecommendation(c CandidateScore) Recommendation {
	rec := Recommendation{
		Name:         c.Name,
		Type:         c.Kind,
		Reason:       c.Reason,
		City:         c.City,
		Country:      c.Country,
		UNESCO:       c.UNESCO,
		Score:        c.Score,
		MatchQuality: MatchQuality(c.Score),
	}
	cost := c.MeanCost
	if c.Kind == KindSite {
		rec.CostUSD = &cost
	} else {
		rec.AvgCostUSD = &cost
	}
	return rec
}

// RecommendationResult is the output of the recommendation selector.
type RecommendationResult struct {
	Status          string           `json:"status"`
	Count           int              `json:"count"`
	Recommendations []Recommendation `json:"recommendations"`
}
