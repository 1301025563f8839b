// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package enhance

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/tomtom215/wayfarer/internal/models"
)

// Options controls generation. The same Seed and catalog always produce the
// same records.
type Options struct {
	Seed     int64
	Tourists int

	// Cities per tourist and sites per city, inclusive ranges.
	MinCities, MaxCities int
	MinSites, MaxSites   int

	// CostJitterUSD is the maximum deviation from the city's average cost.
	CostJitterUSD float64
}

// DefaultOptions returns the generator defaults: 1-3 cities per tourist,
// 1-2 sites per city, costs within $30 of the city average.
func DefaultOptions() Options {
	return Options{
		Seed:          42,
		Tourists:      1000,
		MinCities:     1,
		MaxCities:     3,
		MinSites:      1,
		MaxSites:      2,
		CostJitterUSD: 30,
	}
}

func (o *Options) validate(catalogSize int) error {
	switch {
	case o.Tourists < 1:
		return errors.New("tourists must be positive")
	case o.MinCities < 1 || o.MaxCities < o.MinCities:
		return fmt.Errorf("invalid cities range %d-%d", o.MinCities, o.MaxCities)
	case o.MinSites < 1 || o.MaxSites < o.MinSites:
		return fmt.Errorf("invalid sites range %d-%d", o.MinSites, o.MaxSites)
	case o.CostJitterUSD < 0:
		return errors.New("cost jitter must not be negative")
	case catalogSize == 0:
		return errors.New("catalog has no cities")
	}
	return nil
}

// tourist holds the per-tourist attributes repeated on each of their rows.
type tourist struct {
	id            string
	age           int
	interests     []string
	accessibility bool
	preferredDays int
	actualDays    int
	rating        float64
	satisfaction  float64
	accuracy      float64
}

// Generate produces a synthetic dataset. Each tourist visits
// MinCities-MaxCities distinct catalog cities and MinSites-MaxSites distinct
// sites in each; costs, seasons, UNESCO flags and tourist attributes are
// drawn from a generator seeded with opts.Seed.
func Generate(catalog *Catalog, opts Options) ([]models.ExperienceRecord, error) {
	if catalog == nil {
		return nil, errors.New("catalog is required")
	}
	if err := opts.validate(len(catalog.Cities)); err != nil {
		return nil, err
	}
	//nolint:gosec // math/rand is fine for synthetic fixtures; reproducibility matters, not secrecy
	rng := rand.New(rand.NewSource(opts.Seed))

	records := make([]models.ExperienceRecord, 0, opts.Tourists*(opts.MinCities+opts.MaxCities))
	for i := 1; i <= opts.Tourists; i++ {
		t := newTourist(rng, i)

		numCities := min(between(rng, opts.MinCities, opts.MaxCities), len(catalog.Cities))
		for _, ci := range rng.Perm(len(catalog.Cities))[:numCities] {
			city := &catalog.Cities[ci]
			numSites := min(between(rng, opts.MinSites, opts.MaxSites), len(city.FamousSites))
			for _, si := range rng.Perm(len(city.FamousSites))[:numSites] {
				records = append(records, newRecord(rng, &t, city, city.FamousSites[si], opts.CostJitterUSD))
			}
		}
	}
	return records, nil
}

func newTourist(rng *rand.Rand, n int) tourist {
	// Pick 1-3 distinct interests in vocabulary order.
	k := between(rng, 1, 3)
	picked := rng.Perm(len(models.Interests))[:k]
	interests := make([]string, 0, k)
	for _, interest := range models.Interests {
		for _, p := range picked {
			if models.Interests[p] == interest {
				interests = append(interests, string(interest))
			}
		}
	}

	preferred := between(rng, 1, 14)
	return tourist{
		id:            strconv.Itoa(n),
		age:           between(rng, 18, 80),
		interests:     interests,
		accessibility: rng.Intn(5) == 0,
		preferredDays: preferred,
		actualDays:    max(1, preferred+between(rng, -2, 2)),
		rating:        round1(3 + rng.Float64()*2),
		satisfaction:  round1(3 + rng.Float64()*2),
		accuracy:      float64(between(rng, 70, 100)),
	}
}

func newRecord(rng *rand.Rand, t *tourist, city *CatalogCity, site string, jitter float64) models.ExperienceRecord {
	budget, _ := models.ParseBudgetTier(city.BudgetLevel)
	cost := models.FromUSD(city.AvgCost + (rng.Float64()*2-1)*jitter)
	if cost < 100 {
		cost = 100
	}
	return models.ExperienceRecord{
		TouristID:        t.id,
		Age:              t.age,
		AgeGroup:         models.AgeGroupOf(t.age),
		Interests:        t.interests,
		Accessibility:    t.accessibility,
		PreferredDays:    t.preferredDays,
		ActualDays:       t.actualDays,
		City:             city.City,
		Country:          city.Country,
		Continent:        city.Continent,
		State:            city.State,
		Region:           city.Region,
		SiteName:         site,
		SiteType:         string(models.InterestCultural),
		UNESCO:           rng.Intn(2) == 0,
		Cost:             cost,
		Budget:           budget,
		Rating:           t.rating,
		Satisfaction:     t.satisfaction,
		Culture:          city.CultureScore,
		Adventure:        city.AdventureScore,
		Nature:           city.NatureScore,
		Experience:       city.CultureScore,
		Climate:          models.ParseClimate(city.Climate),
		BestSeason:       models.Seasons[rng.Intn(len(models.Seasons))],
		YearlyAvgTemp:    city.AvgTemp,
		HasYearlyAvgTemp: true,
		RecommendAcc:     t.accuracy,
		HasRecommendAcc:  true,
	}
}

// between returns a uniform integer in [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

func round1(x float64) float64 {
	return float64(int(x*10+0.5)) / 10
}
