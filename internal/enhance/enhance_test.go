// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package enhance

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tomtom215/wayfarer/internal/dataset"
	"github.com/tomtom215/wayfarer/internal/models"
)

const catalogPath = "../../data/cities.json"

func loadCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := LoadCatalog(catalogPath)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	return c
}

func smallOptions(seed int64) Options {
	opts := DefaultOptions()
	opts.Seed = seed
	opts.Tourists = 50
	return opts
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	c := loadCatalog(t)
	if len(c.Cities) == 0 {
		t.Fatal("catalog has no cities")
	}
	if c.Version == "" {
		t.Error("catalog version is empty")
	}

	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing catalog")
	}
}

func TestCatalogValidate(t *testing.T) {
	t.Parallel()

	valid := CatalogCity{City: "Lisbon", Country: "Portugal", FamousSites: []string{"Belem Tower"}, BudgetLevel: "Mid-range", AvgCost: 120}
	tests := []struct {
		name   string
		mutate func(*CatalogCity)
	}{
		{"no name", func(c *CatalogCity) { c.City = "" }},
		{"no country", func(c *CatalogCity) { c.Country = "" }},
		{"no sites", func(c *CatalogCity) { c.FamousSites = nil }},
		{"zero cost", func(c *CatalogCity) { c.AvgCost = 0 }},
		{"unknown budget", func(c *CatalogCity) { c.BudgetLevel = "Premium" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			city := valid
			tt.mutate(&city)
			c := &Catalog{Cities: []CatalogCity{city}}
			if err := c.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	dup := &Catalog{Cities: []CatalogCity{valid, valid}}
	if err := dup.Validate(); err == nil {
		t.Error("expected duplicate city error")
	}
	if err := (&Catalog{}).Validate(); err == nil {
		t.Error("expected error for empty catalog")
	}
}

func TestGenerate_Reproducible(t *testing.T) {
	t.Parallel()

	c := loadCatalog(t)
	a, err := Generate(c, smallOptions(7))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(c, smallOptions(7))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different datasets")
	}

	other, err := Generate(c, smallOptions(8))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if reflect.DeepEqual(a, other) {
		t.Error("different seeds produced identical datasets")
	}
}

func TestGenerate_RespectsCatalog(t *testing.T) {
	t.Parallel()

	c := loadCatalog(t)
	opts := smallOptions(1)
	records, err := Generate(c, opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	sites := make(map[string]map[string]bool)
	avgCost := make(map[string]float64)
	for _, city := range c.Cities {
		sites[city.City] = make(map[string]bool)
		for _, s := range city.FamousSites {
			sites[city.City][s] = true
		}
		avgCost[city.City] = city.AvgCost
	}

	citiesPerTourist := make(map[string]map[string]int)
	for _, r := range records {
		if !sites[r.City][r.SiteName] {
			t.Fatalf("site %q is not a catalog site of %s", r.SiteName, r.City)
		}
		if diff := r.Cost.USD() - avgCost[r.City]; diff > opts.CostJitterUSD+0.01 || diff < -opts.CostJitterUSD-0.01 {
			t.Errorf("cost %v for %s is outside +/-%v of %v", r.Cost, r.City, opts.CostJitterUSD, avgCost[r.City])
		}
		if len(r.Interests) == 0 {
			t.Error("generated tourist has no interests")
		}
		if r.Age < 18 || r.Age > 80 {
			t.Errorf("age %d out of range", r.Age)
		}
		if r.BestSeason.Rank() >= len(models.Seasons) {
			t.Errorf("unknown season %q", r.BestSeason)
		}
		if citiesPerTourist[r.TouristID] == nil {
			citiesPerTourist[r.TouristID] = make(map[string]int)
		}
		citiesPerTourist[r.TouristID][r.City]++
	}

	if len(citiesPerTourist) != opts.Tourists {
		t.Errorf("tourists = %d, want %d", len(citiesPerTourist), opts.Tourists)
	}
	for id, cities := range citiesPerTourist {
		if len(cities) < opts.MinCities || len(cities) > opts.MaxCities {
			t.Errorf("tourist %s visited %d cities", id, len(cities))
		}
		for city, n := range cities {
			if n < opts.MinSites || n > opts.MaxSites {
				t.Errorf("tourist %s saw %d sites in %s", id, n, city)
			}
		}
	}
}

func TestGenerate_InvalidOptions(t *testing.T) {
	t.Parallel()

	c := loadCatalog(t)
	bad := []Options{
		{Tourists: 0, MinCities: 1, MaxCities: 1, MinSites: 1, MaxSites: 1},
		{Tourists: 1, MinCities: 2, MaxCities: 1, MinSites: 1, MaxSites: 1},
		{Tourists: 1, MinCities: 1, MaxCities: 1, MinSites: 0, MaxSites: 1},
		{Tourists: 1, MinCities: 1, MaxCities: 1, MinSites: 1, MaxSites: 1, CostJitterUSD: -1},
	}
	for i, opts := range bad {
		if _, err := Generate(c, opts); err == nil {
			t.Errorf("options %d: expected error", i)
		}
	}
	if _, err := Generate(nil, DefaultOptions()); err == nil {
		t.Error("expected error for nil catalog")
	}
}

func TestWriteCSV_LoadsBack(t *testing.T) {
	t.Parallel()

	records, err := Generate(loadCatalog(t), smallOptions(3))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	parsed, err := dataset.Parse(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(parsed, records) {
		t.Fatal("records did not survive a CSV round trip")
	}

	path := filepath.Join(t.TempDir(), "generated.csv")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	store, err := dataset.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if store.Len() != len(records) {
		t.Errorf("Len = %d, want %d", store.Len(), len(records))
	}
}
