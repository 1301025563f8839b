// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

// Package validation provides struct validation using go-playground/validator v10.
//
// This package wraps the go-playground/validator library to provide a thread-safe
// singleton validator instance with the tourism vocabulary validators and
// readable error messages reported as *models.ValidationError.
//
// # Overview
//
// The package provides:
//   - Thread-safe singleton validator (initialized once, cached struct info)
//   - Custom tags: interest, season, isodate
//   - Field names taken from json struct tags
//   - Conversion to *models.ValidationError with every failed field
//   - ValidateProfile for normalizing and checking a TouristProfile
//
// # Quick Start
//
//	profile := models.TouristProfile{
//	    Age:              34,
//	    Interests:        []models.Interest{"art", "history"},
//	    PreferredDuration: 7,
//	    BudgetPreference: "mid-range",
//	}
//	if err := validation.ValidateProfile(&profile); err != nil {
//	    // err is a *models.ValidationError
//	}
//
// # Custom Validation Tags
//
//   - interest: Art, History, Architecture, Cultural or Nature (case-insensitive)
//   - season: Spring, Summer, Autumn, Winter or Any
//   - isodate: a YYYY-MM-DD calendar date
//
// # Error Conversion
//
// ToModelError keeps the first failure as Field and Message and lists all of
// them in Fields; the API layer renders Fields as the details of a
// VALIDATION_FAILED error.
//
// # Thread Safety
//
// The singleton validator is initialized once and safe for concurrent use.
// ValidateProfile mutates only the profile passed to it.
package validation
