// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package recommend

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	t.Run("weights are 40/30/30", func(t *testing.T) {
		if cfg.Weights.Interest != 40 || cfg.Weights.Rating != 30 || cfg.Weights.Experience != 30 {
			t.Errorf("Weights = %+v", cfg.Weights)
		}
	})

	t.Run("interest support is a quarter", func(t *testing.T) {
		if cfg.InterestSupport != 0.25 {
			t.Errorf("InterestSupport = %v, want 0.25", cfg.InterestSupport)
		}
	})

	t.Run("limits", func(t *testing.T) {
		if cfg.Limits.DefaultCount != 5 || cfg.Limits.MaxCount != 50 {
			t.Errorf("Limits = %+v", cfg.Limits)
		}
	})

	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"valid default", func(*Config) {}, ""},
		{"reweighted", func(c *Config) { c.Weights = ScoreWeights{Interest: 50, Rating: 25, Experience: 25} }, ""},
		{"negative interest weight", func(c *Config) { c.Weights.Interest = -10; c.Weights.Rating = 80 }, "weights.interest"},
		{"negative rating weight", func(c *Config) { c.Weights.Rating = -1 }, "weights.rating"},
		{"negative experience weight", func(c *Config) { c.Weights.Experience = -1 }, "weights.experience"},
		{"weights below 100", func(c *Config) { c.Weights.Interest = 30 }, "sum to 100"},
		{"zero support", func(c *Config) { c.InterestSupport = 0 }, "interest_support"},
		{"support above one", func(c *Config) { c.InterestSupport = 1.5 }, "interest_support"},
		{"support of one", func(c *Config) { c.InterestSupport = 1 }, ""},
		{"zero default count", func(c *Config) { c.Limits.DefaultCount = 0 }, "default_count"},
		{"max below default", func(c *Config) { c.Limits.MaxCount = 3 }, "max_count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Clone(t *testing.T) {
	t.Parallel()

	original := DefaultConfig()
	clone := original.Clone()

	clone.Weights.Interest = 99
	clone.Limits.MaxCount = 7

	if original.Weights.Interest != 40 {
		t.Error("modifying clone affected original weights")
	}
	if original.Limits.MaxCount != 50 {
		t.Error("modifying clone affected original limits")
	}
}
