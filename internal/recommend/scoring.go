// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tomtom215/wayfarer/internal/models"
)

// Score computes the match score of one candidate for a profile:
//
//	score = Wi*overlap + Wr*norm(rating) + We*norm(experience)
//
// where overlap is the share of profile interests the candidate is associated
// with and norm maps the 1-5 scale onto [0, 1]. The result is clamped to
// [0, 100] and rounded to two decimals. Candidates with no overlap still score
// on rating and experience.
func Score(profile *models.TouristProfile, agg *Aggregate, cfg *Config) models.CandidateScore {
	var matched []models.Interest
	for _, i := range profile.Interests {
		if agg.IsAssociated(i, cfg.InterestSupport) {
			matched = append(matched, i)
		}
	}

	overlap := 0.0
	if len(profile.Interests) > 0 {
		overlap = float64(len(matched)) / float64(len(profile.Interests))
	}

	rating := agg.MeanRating()
	exp := agg.MeanExperience()
	raw := cfg.Weights.Interest*overlap +
		cfg.Weights.Rating*normalize(rating) +
		cfg.Weights.Experience*normalize(exp)

	return models.CandidateScore{
		Kind:        agg.Kind,
		Name:        agg.Name,
		City:        agg.City,
		Country:     agg.Country,
		Score:       round2(clamp(raw, 0, 100)),
		Reason:      reason(agg, matched, rating),
		Matched:     matched,
		MeanCost:    agg.MeanCost(),
		MeanRating:  rating,
		MeanExp:     exp,
		UNESCO:      agg.UNESCO,
		RecordCount: agg.Records,
	}
}

// normalize rescales a 1-5 value into [0, 1].
func normalize(x float64) float64 {
	return clamp((x-1)/4, 0, 1)
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func reason(agg *Aggregate, matched []models.Interest, rating float64) string {
	var parts []string
	switch len(matched) {
	case 0:
		parts = append(parts, "Well reviewed by travelers")
	case 1:
		parts = append(parts, fmt.Sprintf("Matches your interest in %s", matched[0]))
	default:
		parts = append(parts, fmt.Sprintf("Matches your interests in %s", joinInterests(matched)))
	}
	parts = append(parts, fmt.Sprintf("rated %.1f/5", rating))
	if agg.UNESCO {
		if agg.Kind == models.KindSite {
			parts = append(parts, "UNESCO World Heritage Site")
		} else {
			parts = append(parts, "home to UNESCO World Heritage Sites")
		}
	}
	return strings.Join(parts, "; ")
}

// joinInterests renders "A", "A and B" or "A, B and C".
func joinInterests(in []models.Interest) string {
	names := make([]string, len(in))
	for i, v := range in {
		names[i] = string(v)
	}
	if len(names) < 2 {
		return strings.Join(names, "")
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}

// SortCandidates orders candidates by descending score. Ties break by name,
// then city, then kind (cities before sites), all ascending.
func SortCandidates(cands []models.CandidateScore) {
	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		if a.City != b.City {
			return a.City < b.City
		}
		return a.Kind < b.Kind
	})
}

// ScoreAll scores every aggregate and returns them sorted.
func ScoreAll(profile *models.TouristProfile, aggs []*Aggregate, cfg *Config) []models.CandidateScore {
	out := make([]models.CandidateScore, 0, len(aggs))
	for _, agg := range aggs {
		out = append(out, Score(profile, agg, cfg))
	}
	SortCandidates(out)
	return out
}
