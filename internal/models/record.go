// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package models

// ExperienceRecord is one row of the tourism dataset: a single tourist's visit
// to a single site. Records are immutable after the dataset store is built;
// the Interests slice must not be modified by consumers.
type ExperienceRecord struct {
	TouristID string `json:"tourist_id"`
	Age       int    `json:"age"`
	// AgeGroup is the dataset's own bucket label when the column is present.
	AgeGroup         string     `json:"age_group,omitempty"`
	Interests        []string   `json:"interests"`
	Accessibility    bool       `json:"accessibility"`
	PreferredDays    int        `json:"preferred_tour_duration"`
	ActualDays       int        `json:"tour_duration"`
	City             string     `json:"city"`
	Country          string     `json:"country"`
	Continent        string     `json:"continent"`
	State            string     `json:"state"`
	Region           string     `json:"region,omitempty"`
	SiteName         string     `json:"site_name"`
	SiteType         string     `json:"site_type,omitempty"`
	UNESCO           bool       `json:"unesco_site"`
	Cost             Cents      `json:"avg_cost_usd"`
	Budget           BudgetTier `json:"budget_level"`
	Rating           float64    `json:"tourist_rating"`
	Satisfaction     float64    `json:"satisfaction"`
	Culture          float64    `json:"culture"`
	Adventure        float64    `json:"adventure"`
	Nature           float64    `json:"nature"`
	Experience       float64    `json:"overall_experience_score"`
	Climate          Climate    `json:"climate_classification"`
	BestSeason       Season     `json:"best_season"`
	YearlyAvgTemp    float64    `json:"yearly_avg_temp"`
	RecommendAcc     float64    `json:"recommendation_accuracy"`
	HasRecommendAcc  bool       `json:"-"`
	HasYearlyAvgTemp bool       `json:"-"`
}

// HasInterest reports whether the record's tourist listed the interest.
// Comparison uses the canonical vocabulary so "culture" matches Cultural.
func (r *ExperienceRecord) HasInterest(i Interest) bool {
	for _, s := range r.Interests {
		if parsed, ok := ParseInterest(s); ok && parsed == i {
			return true
		}
	}
	return false
}

// SubScoreMean returns the mean of the culture, adventure and nature scores.
func (r *ExperienceRecord) SubScoreMean() float64 {
	return (r.Culture + r.Adventure + r.Nature) / 3
}

// SiteKey identifies a site within its city.
type SiteKey struct {
	City string
	Site string
}

// Key returns the record's site key.
func (r *ExperienceRecord) Key() SiteKey {
	return SiteKey{City: r.City, Site: r.SiteName}
}
