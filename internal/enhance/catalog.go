// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package enhance

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wayfarer/internal/models"
)

// CatalogCity is one destination of the city catalog asset.
type CatalogCity struct {
	City           string   `json:"city"`
	Country        string   `json:"country"`
	Continent      string   `json:"continent"`
	State          string   `json:"state"`
	Region         string   `json:"region"`
	FamousSites    []string `json:"famous_sites"`
	Climate        string   `json:"climate"`
	AvgTemp        float64  `json:"avg_temp"`
	CultureScore   float64  `json:"culture_score"`
	AdventureScore float64  `json:"adventure_score"`
	NatureScore    float64  `json:"nature_score"`
	BudgetLevel    string   `json:"budget_level"`
	AvgCost        float64  `json:"avg_cost"`
}

// Catalog is the geographic lookup table the generator samples from.
type Catalog struct {
	Version string        `json:"version"`
	Cities  []CatalogCity `json:"cities"`
}

// LoadCatalog reads and validates a catalog JSON file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return &c, nil
}

// Validate checks that every city is usable by the generator.
func (c *Catalog) Validate() error {
	if len(c.Cities) == 0 {
		return errors.New("catalog has no cities")
	}
	seen := make(map[string]struct{}, len(c.Cities))
	for i := range c.Cities {
		city := &c.Cities[i]
		switch {
		case city.City == "":
			return fmt.Errorf("city %d has no name", i)
		case city.Country == "":
			return fmt.Errorf("city %s has no country", city.City)
		case len(city.FamousSites) == 0:
			return fmt.Errorf("city %s has no sites", city.City)
		case city.AvgCost <= 0:
			return fmt.Errorf("city %s has non-positive avg_cost", city.City)
		}
		if _, ok := models.ParseBudgetTier(city.BudgetLevel); !ok {
			return fmt.Errorf("city %s has unknown budget_level %q", city.City, city.BudgetLevel)
		}
		key := city.City + "|" + city.Country
		if _, dup := seen[key]; dup {
			return fmt.Errorf("city %s, %s listed twice", city.City, city.Country)
		}
		seen[key] = struct{}{}
	}
	return nil
}
