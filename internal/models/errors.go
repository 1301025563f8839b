// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package models

import (
	"fmt"
	"strings"
)

// DataLoadError reports a dataset file that is missing, unreadable, malformed
// or lacking required columns. It is fatal at startup and reported by reload.
type DataLoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *DataLoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load dataset %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("load dataset %s: %s", e.Path, e.Reason)
}

// Unwrap returns the underlying cause.
func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// FieldError describes one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag,omitempty"`
	Message string `json:"message"`
}

// ValidationError reports a malformed tourist profile or request parameter.
// The caller can recover by correcting the input.
type ValidationError struct {
	Field   string
	Message string
	// Fields holds every failing field when more than one failed.
	Fields []FieldError
	Err    error
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 1 {
		parts := make([]string, len(e.Fields))
		for i, f := range e.Fields {
			parts[i] = f.Message
		}
		return "validation failed: " + strings.Join(parts, "; ")
	}
	return "validation failed: " + e.Message
}

// Unwrap returns the underlying validator error, if any.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NoMatchError reports that no candidate satisfies the profile constraints.
// It is an expected outcome and is surfaced as a status=error result.
type NoMatchError struct {
	Reason string
}

func (e *NoMatchError) Error() string {
	return e.Reason
}

// NewNoMatchError describes the constraints that produced no candidates.
func NewNoMatchError(p *TouristProfile) *NoMatchError {
	parts := []string{fmt.Sprintf("budget %s", p.BudgetPreference)}
	if p.ClimatePreference.IsConstraint() {
		parts = append(parts, fmt.Sprintf("climate %s", p.ClimatePreference))
	}
	if p.SeasonPreference.IsConstraint() {
		parts = append(parts, fmt.Sprintf("season %s", p.SeasonPreference))
	}
	return &NoMatchError{
		Reason: "no destinations match your preferences (" + strings.Join(parts, ", ") + "); try relaxing the climate or season filters",
	}
}
