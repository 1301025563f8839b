// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package itinerary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wayfarer/internal/dataset"
	"github.com/tomtom215/wayfarer/internal/metrics"
	"github.com/tomtom215/wayfarer/internal/models"
	"github.com/tomtom215/wayfarer/internal/recommend"
	"github.com/tomtom215/wayfarer/internal/validation"
)

// Planner assembles day-by-day itineraries from ranked cities and sites.
// It is safe for concurrent use.
type Planner struct {
	config *Config
	engine *recommend.Engine
	logger zerolog.Logger
	now    func() time.Time
}

// NewPlanner creates a planner that ranks through engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewPlanner(cfg *Config, engine *recommend.Engine, logger zerolog.Logger) (*Planner, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if engine == nil {
		return nil, errors.New("recommendation engine is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Planner{
		config: cfg.Clone(),
		engine: engine,
		logger: logger.With().Str("component", "itinerary").Logger(),
		now:    time.Now,
	}, nil
}

// Generate builds an itinerary starting on start (YYYY-MM-DD). An empty start
// means today.
//
// When no city matches the profile the result has status error and a message;
// that is an expected outcome, not a Go error. Malformed input returns a
// *models.ValidationError.
func (p *Planner) Generate(ctx context.Context, profile *models.TouristProfile, start string) (*models.ItineraryResult, error) {
	begin := time.Now()

	startDate, prof, err := p.prepare(profile, start)
	if err != nil {
		metrics.RecordItinerary("invalid", 0)
		return nil, err
	}

	store := p.engine.CurrentStore()
	if store == nil {
		return nil, recommend.ErrNoDataset
	}

	cities, err := p.engine.RankCities(ctx, store, prof)
	if err != nil {
		return nil, err
	}
	if len(cities) == 0 {
		noMatch := models.NewNoMatchError(prof)
		metrics.RecordItinerary(models.StatusError, 0)
		p.logger.Info().
			Str("budget", string(prof.BudgetPreference)).
			Str("climate", string(prof.ClimatePreference)).
			Str("season", string(prof.SeasonPreference)).
			Msg("no destinations matched profile")
		return models.ErrorResult(noMatch), nil
	}

	n := CityCount(prof.PreferredDuration, len(cities), p.config.MaxDaysPerCity)
	chosen := cities[:n]
	days, err := p.schedule(ctx, store, prof, chosen, startDate)
	if err != nil {
		return nil, err
	}

	it := buildItinerary(days, startDate)
	result := &models.ItineraryResult{
		Status:    models.StatusSuccess,
		Itinerary: it,
		TouristProfile: &models.ProfileSummary{
			Interests:          prof.InterestStrings(),
			Budget:             prof.BudgetPreference,
			Duration:           prof.PreferredDuration,
			AccessibilityNeeds: prof.AccessibilityNeeds,
		},
		Recommendations: p.travelRecommendations(store, prof, it, days),
		GeneratedAt:     p.now().UTC().Format(time.RFC3339),
	}

	metrics.RecordItinerary(models.StatusSuccess, it.TotalDays)
	p.logger.Debug().
		Int("days", it.TotalDays).
		Strs("cities", it.CitiesVisited).
		Str("total_cost", it.TotalCostUSD.String()).
		Str("dataset_version", store.Version()).
		Dur("latency", time.Since(begin)).
		Msg("itinerary generated")

	return result, nil
}

func (p *Planner) prepare(profile *models.TouristProfile, start string) (time.Time, *models.TouristProfile, error) {
	var startDate time.Time
	if start == "" {
		now := p.now()
		startDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		parsed, err := time.Parse(models.DateLayout, start)
		if err != nil {
			return time.Time{}, nil, &models.ValidationError{
				Field:   "start_date",
				Message: "start_date must be a date in YYYY-MM-DD format",
				Err:     err,
			}
		}
		startDate = parsed
	}

	if profile == nil {
		return time.Time{}, nil, validation.ValidateProfile(nil)
	}
	prof := *profile
	if err := validation.ValidateProfile(&prof); err != nil {
		return time.Time{}, nil, err
	}
	return startDate, &prof, nil
}

// plannedDay carries the scheduling facts a day's text is derived from.
type plannedDay struct {
	schedule models.DaySchedule
	climate  models.Climate
	unesco   []string
}

func (p *Planner) schedule(ctx context.Context, store *dataset.Store, prof *models.TouristProfile, cities []models.CandidateScore, startDate time.Time) ([]plannedDay, error) {
	alloc := AllocateDays(prof.PreferredDuration, len(cities))
	climates := cityClimates(store, prof)
	baseline := p.config.Baseline()

	// Site names are unique across the whole trip, not only within a city.
	used := make(map[string]struct{})
	out := make([]plannedDay, 0, prof.PreferredDuration)
	prevCity := ""

	for ci, city := range cities {
		sites, err := p.engine.RankSites(ctx, store, prof, city.Name)
		if err != nil {
			return nil, err
		}
		unseen := make([]models.CandidateScore, 0, len(sites))
		for _, s := range sites {
			if _, dup := used[s.Name]; !dup {
				unseen = append(unseen, s)
			}
		}

		for d := 0; d < alloc[ci]; d++ {
			k := SitesForDay(len(unseen), alloc[ci]-d, p.config.MaxSitesPerDay)
			picked := unseen[:k]
			unseen = unseen[k:]

			dayNum := len(out) + 1
			names := make([]string, 0, len(picked))
			costs := make([]models.Cents, 0, len(picked))
			var heritage []string
			for _, s := range picked {
				used[s.Name] = struct{}{}
				names = append(names, s.Name)
				costs = append(costs, s.MeanCost)
				if s.UNESCO {
					heritage = append(heritage, s.Name)
				}
			}

			siteCost := city.MeanCost
			if len(costs) > 0 {
				siteCost = models.MeanCents(costs)
			}
			free := len(picked) == 0

			out = append(out, plannedDay{
				schedule: models.DaySchedule{
					Day:              dayNum,
					Date:             startDate.AddDate(0, 0, dayNum-1).Format(models.DateLayout),
					City:             city.Name,
					Country:          city.Country,
					Sites:            names,
					Activities:       Activities(prof.Interests, dayNum, city.Name, heritage, free),
					Notes:            dayNote{day: dayNum, total: prof.PreferredDuration, city: city.Name, prevCity: prevCity, free: free, unesco: heritage}.String(),
					EstimatedCostUSD: siteCost + baseline,
				},
				climate: climates[city.Name],
				unesco:  heritage,
			})
			prevCity = city.Name
		}
	}
	return out, nil
}

// buildItinerary computes the totals. The total is the integer sum of the day
// costs so printed values always add up.
func buildItinerary(days []plannedDay, startDate time.Time) *models.Itinerary {
	schedule := make([]models.DaySchedule, len(days))
	var total models.Cents
	var cities []string
	seen := make(map[string]struct{})
	for i, d := range days {
		schedule[i] = d.schedule
		total += d.schedule.EstimatedCostUSD
		if _, ok := seen[d.schedule.City]; !ok {
			seen[d.schedule.City] = struct{}{}
			cities = append(cities, d.schedule.City)
		}
	}
	return &models.Itinerary{
		TotalDays:       len(schedule),
		StartDate:       startDate.Format(models.DateLayout),
		EndDate:         startDate.AddDate(0, 0, len(schedule)-1).Format(models.DateLayout),
		CitiesVisited:   cities,
		TotalCostUSD:    total,
		AvgDailyCostUSD: models.DivRound(total, int64(len(schedule))),
		DailySchedule:   schedule,
	}
}

func (p *Planner) travelRecommendations(store *dataset.Store, prof *models.TouristProfile, it *models.Itinerary, days []plannedDay) *models.TravelRecommendations {
	var climates []models.Climate
	seenClimate := make(map[models.Climate]struct{})
	unesco := 0
	for _, d := range days {
		unesco += len(d.unesco)
		if d.climate == "" {
			continue
		}
		if _, ok := seenClimate[d.climate]; !ok {
			seenClimate[d.climate] = struct{}{}
			climates = append(climates, d.climate)
		}
	}

	recs := &models.TravelRecommendations{
		BestSeason:  BestSeason(store, prof, it.CitiesVisited),
		PackingTips: PackingTips(climates, prof.AccessibilityNeeds),
	}
	if prof.AccessibilityNeeds {
		recs.AccessibilityInfo = AccessibilityInfo(it.CitiesVisited, unesco)
	}
	return recs
}

// BestSeason returns the most common Best Season among the profile-matching
// records of the given cities. Ties go to the earlier season in calendar
// order. It returns SeasonAny when no record carries a known season.
func BestSeason(store *dataset.Store, prof *models.TouristProfile, cities []string) models.Season {
	inTrip := make(map[string]struct{}, len(cities))
	for _, c := range cities {
		inTrip[c] = struct{}{}
	}

	counts := make([]int, len(models.Seasons))
	store.Each(dataset.ByProfile(prof), func(r *models.ExperienceRecord) bool {
		if _, ok := inTrip[r.City]; ok {
			if rank := r.BestSeason.Rank(); rank < len(counts) {
				counts[rank]++
			}
		}
		return true
	})

	best := -1
	for i, c := range counts {
		if c > 0 && (best < 0 || c > counts[best]) {
			best = i
		}
	}
	if best < 0 {
		return models.SeasonAny
	}
	return models.Seasons[best]
}

// cityClimates maps each city to the climate of its first profile-matching
// record.
func cityClimates(store *dataset.Store, prof *models.TouristProfile) map[string]models.Climate {
	out := make(map[string]models.Climate)
	store.Each(dataset.ByProfile(prof), func(r *models.ExperienceRecord) bool {
		if _, ok := out[r.City]; !ok {
			out[r.City] = r.Climate
		}
		return true
	})
	return out
}
