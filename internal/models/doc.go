// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package models defines the data structures shared by the Wayfarer engine.

This package is the single source of truth for the types that flow between the
dataset store, the scoring engine, the itinerary planner, the analytics
aggregator and the HTTP API. It has no dependencies on other internal packages.

Key Components:

  - ExperienceRecord: one row of the tourism dataset (one tourist-site visit)
  - TouristProfile: the per-request input to every planning query
  - CandidateScore: an ephemeral scored city or site
  - ItineraryResult: the output of the itinerary planner
  - RecommendationResult: the output of the recommendation selector
  - AnalyticsSummary: dataset-wide dashboard aggregates
  - Cents: integer money amounts that serialize as USD numbers

Model Categories:

1. Vocabularies:
  - Interest: Art, History, Architecture, Cultural, Nature
  - BudgetTier: Budget, Mid-range, Luxury
  - Climate: Temperate, Warm, Cold (other dataset values are preserved)
  - Season: Spring, Summer, Autumn, Winter

2. Errors:
  - DataLoadError: the dataset file is missing, unreadable or malformed
  - ValidationError: the tourist profile or request parameters are invalid
  - NoMatchError: no candidate satisfies the profile constraints

Thread Safety:

All model types are plain values. Records are never mutated after the dataset
store is built, so they can be shared between goroutines without locking.
*/
package models
