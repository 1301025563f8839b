// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package itinerary

import (
	"fmt"

	"github.com/tomtom215/wayfarer/internal/models"
)

// Config contains the itinerary assembly policy.
type Config struct {
	// MaxDaysPerCity bounds how long the planner stays in one city when
	// enough cities are available. Default: 3.
	MaxDaysPerCity int `json:"max_days_per_city" koanf:"max_days_per_city"`

	// MaxSitesPerDay bounds the sites scheduled on a single day. Default: 3.
	MaxSitesPerDay int `json:"max_sites_per_day" koanf:"max_sites_per_day"`

	// DailyBaselineUSD is added to every day's site cost to cover lodging
	// and local transport. Default: 75.00.
	DailyBaselineUSD float64 `json:"daily_baseline_usd" koanf:"daily_baseline_usd"`
}

// DefaultConfig returns the standard assembly policy.
func DefaultConfig() *Config {
	return &Config{
		MaxDaysPerCity:   3,
		MaxSitesPerDay:   3,
		DailyBaselineUSD: 75,
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.MaxDaysPerCity < 1 {
		return fmt.Errorf("max_days_per_city must be positive, got %d", c.MaxDaysPerCity)
	}
	if c.MaxSitesPerDay < 1 {
		return fmt.Errorf("max_sites_per_day must be positive, got %d", c.MaxSitesPerDay)
	}
	if c.DailyBaselineUSD < 0 {
		return fmt.Errorf("daily_baseline_usd must be non-negative, got %f", c.DailyBaselineUSD)
	}
	return nil
}

// Baseline returns the daily baseline in cents.
func (c *Config) Baseline() models.Cents {
	return models.FromUSD(c.DailyBaselineUSD)
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
