// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

// Package enhance generates synthetic tourism datasets offline.
//
// The continent/country/city lookup table is an external JSON asset
// (data/cities.json) loaded with LoadCatalog; nothing geographic is
// hardcoded here. Generate samples tourists, cities and sites from a
// generator seeded by Options.Seed, so fixtures are reproducible, and
// WriteCSV emits a file the dataset loader reads back unchanged.
//
// This is a one-shot utility driven by `wayfarer enhance`; the server never
// calls it.
package enhance
