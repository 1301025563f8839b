// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package recommend

import (
	"github.com/tomtom215/wayfarer/internal/models"
)

// Aggregate holds the statistics of one candidate's records.
type Aggregate struct {
	Kind    models.CandidateKind
	Name    string
	City    string
	Country string
	UNESCO  bool
	Records int

	costSum   models.Cents
	ratingSum float64
	expSum    float64

	// interestRecords counts the records associated with each interest.
	interestRecords map[models.Interest]int
}

func newAggregate(kind models.CandidateKind, r *models.ExperienceRecord) *Aggregate {
	name := r.City
	if kind == models.KindSite {
		name = r.SiteName
	}
	return &Aggregate{
		Kind:            kind,
		Name:            name,
		City:            r.City,
		Country:         r.Country,
		interestRecords: make(map[models.Interest]int),
	}
}

// Add folds one record into the aggregate.
func (a *Aggregate) Add(r *models.ExperienceRecord) {
	a.Records++
	a.costSum += r.Cost
	a.ratingSum += r.Rating
	a.expSum += r.Experience
	if r.UNESCO {
		a.UNESCO = true
	}

	// A record counts once per interest even when both the tourist and the
	// site type name it.
	var mask uint
	for _, raw := range r.Interests {
		if i, ok := models.ParseInterest(raw); ok {
			mask |= interestBit(i)
		}
	}
	if i, ok := models.ParseInterest(r.SiteType); ok {
		mask |= interestBit(i)
	}
	for _, i := range models.Interests {
		if mask&interestBit(i) != 0 {
			a.interestRecords[i]++
		}
	}
}

func interestBit(i models.Interest) uint {
	for idx, v := range models.Interests {
		if v == i {
			return 1 << idx
		}
	}
	return 0
}

// MeanCost returns the mean per-day cost rounded to the cent.
func (a *Aggregate) MeanCost() models.Cents {
	return models.DivRound(a.costSum, int64(a.Records))
}

// MeanRating returns the mean tourist rating.
func (a *Aggregate) MeanRating() float64 {
	if a.Records == 0 {
		return 0
	}
	return a.ratingSum / float64(a.Records)
}

// MeanExperience returns the mean overall experience score.
func (a *Aggregate) MeanExperience() float64 {
	if a.Records == 0 {
		return 0
	}
	return a.expSum / float64(a.Records)
}

// Associated returns the vocabulary interests named by at least the given
// fraction of records, in vocabulary order.
func (a *Aggregate) Associated(support float64) []models.Interest {
	if a.Records == 0 {
		return nil
	}
	var out []models.Interest
	for _, i := range models.Interests {
		if float64(a.interestRecords[i])/float64(a.Records) >= support {
			out = append(out, i)
		}
	}
	return out
}

// IsAssociated reports whether a single interest meets the support threshold.
func (a *Aggregate) IsAssociated(i models.Interest, support float64) bool {
	if a.Records == 0 {
		return false
	}
	return float64(a.interestRecords[i])/float64(a.Records) >= support
}

// AggregateCities groups records by city, in order of first appearance.
func AggregateCities(records []models.ExperienceRecord) []*Aggregate {
	index := make(map[string]*Aggregate)
	var out []*Aggregate
	for i := range records {
		r := &records[i]
		agg, ok := index[r.City]
		if !ok {
			agg = newAggregate(models.KindCity, r)
			index[r.City] = agg
			out = append(out, agg)
		}
		agg.Add(r)
	}
	return out
}

// AggregateSites groups records by (city, site), in order of first appearance.
func AggregateSites(records []models.ExperienceRecord) []*Aggregate {
	index := make(map[models.SiteKey]*Aggregate)
	var out []*Aggregate
	for i := range records {
		r := &records[i]
		key := r.Key()
		agg, ok := index[key]
		if !ok {
			agg = newAggregate(models.KindSite, r)
			index[key] = agg
			out = append(out, agg)
		}
		agg.Add(r)
	}
	return out
}
