// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

// Package recommend scores and ranks destinations against a tourist profile.
//
// # Scoring
//
// Records that pass the profile's hard filters (budget tier, and climate and
// season when given) are grouped into city or site aggregates. Each aggregate
// is scored with a weighted linear formula:
//
//	score = 40*overlap + 30*norm(rating) + 30*norm(experience)
//
// overlap is the fraction of the profile's interests the candidate is
// associated with. An interest is associated when at least InterestSupport of
// the candidate's records name it, either through the tourist's interests or
// the site type. norm maps the 1-5 scale to [0, 1].
//
// Candidates sort by descending score with ties broken by name ascending, so
// rankings are reproducible for a given dataset.
//
// # Usage
//
//	holder := dataset.NewHolder(store)
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), holder, logger)
//	if err != nil {
//	    return err
//	}
//
//	result, err := engine.Recommend(ctx, &profile, 5, models.ModeAll)
//
// # Thread Safety
//
// The engine is safe for concurrent use. It reads the store returned by its
// StoreSource once per request and never mutates it.
package recommend
