// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package analytics

import (
	"sort"

	"github.com/tomtom215/wayfarer/internal/models"
)

// DefaultTopN is the number of cities and countries listed when the caller
// does not choose.
const DefaultTopN = 10

// tourist is the per-person view used for demographics. A tourist appears
// on several rows; the first row wins.
type tourist struct {
	age           int
	accessibility bool
}

// Summarize computes the dashboard summary over records in one pass.
// topN bounds the popular destination lists; values below 1 use DefaultTopN.
func Summarize(records []models.ExperienceRecord, topN int) models.AnalyticsSummary {
	if len(records) == 0 {
		return models.EmptyAnalyticsSummary()
	}
	if topN < 1 {
		topN = DefaultTopN
	}

	var (
		tourists      = make(map[string]tourist)
		touristOrder  []string
		cityVisits    = make(map[string]int)
		countryVisits = make(map[string]int)
		tiers         = make(map[models.BudgetTier]*tierAcc)

		costSum          int64
		minCost, maxCost models.Cents
		ratingSum        float64
		satisfactionSum  float64
		accuracySum      float64
		accuracyN        int
	)

	for i := range records {
		r := &records[i]

		if _, seen := tourists[r.TouristID]; !seen {
			tourists[r.TouristID] = tourist{age: r.Age, accessibility: r.Accessibility}
			touristOrder = append(touristOrder, r.TouristID)
		}
		cityVisits[r.City]++
		countryVisits[r.Country]++

		costSum += int64(r.Cost)
		if i == 0 || r.Cost < minCost {
			minCost = r.Cost
		}
		if i == 0 || r.Cost > maxCost {
			maxCost = r.Cost
		}

		t := tiers[r.Budget]
		if t == nil {
			t = &tierAcc{}
			tiers[r.Budget] = t
		}
		t.records++
		t.costSum += int64(r.Cost)

		ratingSum += r.Rating
		satisfactionSum += r.Satisfaction
		if r.HasRecommendAcc {
			accuracySum += r.RecommendAcc
			accuracyN++
		}
	}

	n := len(records)
	summary := models.AnalyticsSummary{
		DatasetStats: models.DatasetStats{
			TotalRecords:    n,
			UniqueTourists:  len(tourists),
			UniqueCities:    len(cityVisits),
			UniqueCountries: len(countryVisits),
		},
		PopularDestinations: models.PopularDestinations{
			TopCities:    TopCounts(cityVisits, topN),
			TopCountries: TopCounts(countryVisits, topN),
		},
		CostAnalysis: models.CostAnalysis{
			AvgDailyCostUSD:    models.DivRound(models.Cents(costSum), int64(n)),
			MinCostUSD:         minCost,
			MaxCostUSD:         maxCost,
			BudgetDistribution: make(map[models.BudgetTier]models.TierCost, len(tiers)),
		},
		SatisfactionMetrics: models.SatisfactionMetrics{
			AvgTouristRating: models.Round2(ratingSum / float64(n)),
			AvgSatisfaction:  models.Round2(satisfactionSum / float64(n)),
		},
	}
	if accuracyN > 0 {
		summary.SatisfactionMetrics.RecommendationAccuracy = models.Round2(accuracySum / float64(accuracyN))
	}
	for tier, t := range tiers {
		summary.CostAnalysis.BudgetDistribution[tier] = t.cost()
	}

	summary.TouristDemographics = demographics(tourists, touristOrder)
	return summary
}

type tierAcc struct {
	records int
	costSum int64
}

func (t *tierAcc) cost() models.TierCost {
	return models.TierCost{
		Records:    t.records,
		AvgCostUSD: models.DivRound(models.Cents(t.costSum), int64(t.records)),
	}
}

func demographics(tourists map[string]tourist, order []string) models.TouristDemographics {
	var (
		ageSum     int
		accessible int
		groups     = make(map[string]int, len(models.AgeGroups))
	)
	for _, id := range order {
		t := tourists[id]
		ageSum += t.age
		if t.accessibility {
			accessible++
		}
		groups[models.AgeGroupOf(t.age)]++
	}

	d := models.TouristDemographics{
		AccessibilityNeedsPct: models.Percent(accessible, len(order)),
		AgeDistribution:       models.AgeHistogram(groups),
	}
	if len(order) > 0 {
		d.AvgAge = models.Round2(float64(ageSum) / float64(len(order)))
	}
	return d
}

// TopCounts returns the n largest counts, ties broken by name ascending.
// The result is never nil.
func TopCounts(counts map[string]int, n int) []models.NamedCount {
	out := make([]models.NamedCount, 0, len(counts))
	for name, c := range counts {
		out = append(out, models.NamedCount{Name: name, Visits: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Visits != out[j].Visits {
			return out[i].Visits > out[j].Visits
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
