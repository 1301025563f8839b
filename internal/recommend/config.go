// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package recommend

import (
	"fmt"
	"math"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Weights defines the points each scoring term contributes.
	// The weights must sum to 100 so that scores land in [0, 100].
	Weights ScoreWeights `json:"weights" koanf:"weights"`

	// InterestSupport is the minimum fraction of a candidate's records that
	// must name an interest for the candidate to be associated with it.
	// Default: 0.25.
	InterestSupport float64 `json:"interest_support" koanf:"interest_support"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits" koanf:"limits"`
}

// ScoreWeights defines the contribution of each scoring term in points.
type ScoreWeights struct {
	// Interest is the maximum points for full interest overlap.
	Interest float64 `json:"interest" koanf:"interest"`

	// Rating is the maximum points for a 5/5 mean tourist rating.
	Rating float64 `json:"rating" koanf:"rating"`

	// Experience is the maximum points for a 5/5 mean experience score.
	Experience float64 `json:"experience" koanf:"experience"`
}

// Sum returns the total of all weights.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w ScoreWeights) Sum() float64 {
	return w.Interest + w.Rating + w.Experience
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultCount is used by callers that omit a count.
	// Default: 5.
	DefaultCount int `json:"default_count" koanf:"default_count"`

	// MaxCount is the largest count a request may ask for.
	// Default: 50.
	MaxCount int `json:"max_count" koanf:"max_count"`
}

// DefaultConfig returns a configuration with the standard 40/30/30 weighting.
func DefaultConfig() *Config {
	return &Config{
		Weights: ScoreWeights{
			Interest:   40,
			Rating:     30,
			Experience: 30,
		},
		InterestSupport: 0.25,
		Limits: LimitsConfig{
			DefaultCount: 5,
			MaxCount:     50,
		},
	}
}

// weightTolerance absorbs float noise from YAML and env parsing.
const weightTolerance = 1e-6

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Weights.Interest < 0 {
		return fmt.Errorf("weights.interest must be non-negative, got %f", c.Weights.Interest)
	}
	if c.Weights.Rating < 0 {
		return fmt.Errorf("weights.rating must be non-negative, got %f", c.Weights.Rating)
	}
	if c.Weights.Experience < 0 {
		return fmt.Errorf("weights.experience must be non-negative, got %f", c.Weights.Experience)
	}
	if sum := c.Weights.Sum(); math.Abs(sum-100) > weightTolerance {
		return fmt.Errorf("weights must sum to 100, got %f", sum)
	}

	if c.InterestSupport <= 0 || c.InterestSupport > 1 {
		return fmt.Errorf("interest_support must be in (0, 1], got %f", c.InterestSupport)
	}

	if c.Limits.DefaultCount < 1 {
		return fmt.Errorf("limits.default_count must be positive, got %d", c.Limits.DefaultCount)
	}
	if c.Limits.MaxCount < c.Limits.DefaultCount {
		return fmt.Errorf("limits.max_count must be >= limits.default_count, got %d < %d", c.Limits.MaxCount, c.Limits.DefaultCount)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// Direct field copy - all nested structs contain only value types
	return &Config{
		Weights:         c.Weights,
		InterestSupport: c.InterestSupport,
		Limits:          c.Limits,
	}
}
