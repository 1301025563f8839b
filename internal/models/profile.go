// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package models

// TouristProfile is the input to every planning query. It is built fresh per
// request and has no identity of its own.
//
// Validation tags are enforced by the validation package. Call Normalize first
// so that vocabulary values arrive in canonical form.
type TouristProfile struct {
	Age                int        `json:"age" validate:"gte=18,lte=80"`
	Interests          []Interest `json:"interests" validate:"required,min=1,dive,interest"`
	AccessibilityNeeds bool       `json:"accessibility_needs"`
	PreferredDuration  int        `json:"preferred_duration" validate:"gte=1,lte=14"`
	BudgetPreference   BudgetTier `json:"budget_preference" validate:"required,oneof=Mid-range Luxury"`
	ClimatePreference  Climate    `json:"climate_preference,omitempty"`
	SeasonPreference   Season     `json:"season_preference,omitempty" validate:"omitempty,season"`
}

// Normalize canonicalizes vocabulary fields in place and removes duplicate
// interests while keeping their first-seen order.
func (p *TouristProfile) Normalize() {
	seen := make(map[Interest]struct{}, len(p.Interests))
	out := make([]Interest, 0, len(p.Interests))
	for _, raw := range p.Interests {
		i, _ := ParseInterest(string(raw))
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		out = append(out, i)
	}
	p.Interests = out

	if p.BudgetPreference != "" {
		p.BudgetPreference, _ = ParseBudgetTier(string(p.BudgetPreference))
	}
	if p.ClimatePreference != "" {
		p.ClimatePreference = ParseClimate(string(p.ClimatePreference))
	}
	if p.SeasonPreference != "" {
		p.SeasonPreference = ParseSeason(string(p.SeasonPreference))
	}
}

// Matches reports whether a record satisfies the profile's hard filters:
// budget tier always, climate and season only when constrained.
func (p *TouristProfile) Matches(r *ExperienceRecord) bool {
	if r.Budget != p.BudgetPreference {
		return false
	}
	if p.ClimatePreference.IsConstraint() && r.Climate != p.ClimatePreference {
		return false
	}
	if p.SeasonPreference.IsConstraint() && r.BestSeason != p.SeasonPreference {
		return false
	}
	return true
}

// InterestStrings returns the interests as plain strings.
func (p *TouristProfile) InterestStrings() []string {
	out := make([]string, len(p.Interests))
	for i, interest := range p.Interests {
		out[i] = string(interest)
	}
	return out
}
