// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package models

import "strings"

// Interest is a traveller interest drawn from a fixed vocabulary.
type Interest string

// Interest vocabulary accepted in tourist profiles.
const (
	InterestArt          Interest = "Art"
	InterestHistory      Interest = "History"
	InterestArchitecture Interest = "Architecture"
	InterestCultural     Interest = "Cultural"
	InterestNature       Interest = "Nature"
)

// Interests lists the profile vocabulary in display order.
var Interests = []Interest{
	InterestArt,
	InterestHistory,
	InterestArchitecture,
	InterestCultural,
	InterestNature,
}

// ParseInterest returns the canonical vocabulary interest for s.
// Matching ignores case and surrounding whitespace. "Culture" is accepted as
// an alias for Cultural because the dataset sub-score uses that spelling.
func ParseInterest(s string) (Interest, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "culture" {
		return InterestCultural, true
	}
	for _, i := range Interests {
		if strings.ToLower(string(i)) == key {
			return i, true
		}
	}
	return Interest(strings.TrimSpace(s)), false
}

// IsKnown reports whether the interest belongs to the profile vocabulary.
func (i Interest) IsKnown() bool {
	_, ok := ParseInterest(string(i))
	return ok
}

// BudgetTier is the price level attached to dataset records.
type BudgetTier string

// Budget tiers. Budget appears in the data but is not selectable by profiles.
const (
	BudgetTierBudget   BudgetTier = "Budget"
	BudgetTierMidRange BudgetTier = "Mid-range"
	BudgetTierLuxury   BudgetTier = "Luxury"
)

// BudgetTiers lists all tiers from cheapest to most expensive.
var BudgetTiers = []BudgetTier{BudgetTierBudget, BudgetTierMidRange, BudgetTierLuxury}

// ParseBudgetTier normalizes a budget label ("mid range", "MIDRANGE", "Mid-range").
func ParseBudgetTier(s string) (BudgetTier, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "", " ", "", "_", "").Replace(key)
	switch key {
	case "budget":
		return BudgetTierBudget, true
	case "midrange", "mid":
		return BudgetTierMidRange, true
	case "luxury":
		return BudgetTierLuxury, true
	default:
		return BudgetTier(strings.TrimSpace(s)), false
	}
}

// Climate is a climate classification. Values outside the known set are kept
// verbatim so that datasets with richer classifications still load.
type Climate string

const (
	ClimateAny       Climate = "Any"
	ClimateTemperate Climate = "Temperate"
	ClimateWarm      Climate = "Warm"
	ClimateCold      Climate = "Cold"
)

// ParseClimate canonicalizes known climates by case and returns others unchanged.
func ParseClimate(s string) Climate {
	trimmed := strings.TrimSpace(s)
	for _, c := range []Climate{ClimateAny, ClimateTemperate, ClimateWarm, ClimateCold} {
		if strings.EqualFold(string(c), trimmed) {
			return c
		}
	}
	return Climate(trimmed)
}

// IsConstraint reports whether the climate restricts matching records.
func (c Climate) IsConstraint() bool {
	return c != "" && c != ClimateAny
}

// Season is a travel season.
type Season string

const (
	SeasonAny    Season = "Any"
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
	SeasonAutumn Season = "Autumn"
	SeasonWinter Season = "Winter"
)

// Seasons lists the seasons in calendar order. The order also breaks ties
// when picking the most common season.
var Seasons = []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}

// ParseSeason canonicalizes a season label. "Fall" maps to Autumn.
func ParseSeason(s string) Season {
	trimmed := strings.TrimSpace(s)
	if strings.EqualFold(trimmed, "fall") {
		return SeasonAutumn
	}
	if strings.EqualFold(trimmed, string(SeasonAny)) {
		return SeasonAny
	}
	for _, season := range Seasons {
		if strings.EqualFold(string(season), trimmed) {
			return season
		}
	}
	return Season(trimmed)
}

// IsConstraint reports whether the season restricts matching records.
func (s Season) IsConstraint() bool {
	return s != "" && s != SeasonAny
}

// Rank returns the calendar position of the season, or len(Seasons) when unknown.
func (s Season) Rank() int {
	for i, season := range Seasons {
		if season == s {
			return i
		}
	}
	return len(Seasons)
}
