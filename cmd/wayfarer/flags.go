// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/dataset"
	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/models"
	"github.com/tomtom215/wayfarer/internal/recommend"
)

// commonFlags are shared by every command.
type commonFlags struct {
	configPath  string
	datasetPath string
	logLevel    string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "YAML config file (default: CONFIG_PATH or ./config.yaml)")
	fs.StringVar(&c.datasetPath, "dataset", "", "dataset CSV path (overrides DATASET_PATH)")
	fs.StringVar(&c.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
}

// load resolves the configuration and a console logger writing to stderr.
func (c *commonFlags) load(stderr io.Writer) (*config.Config, zerolog.Logger, error) {
	var (
		cfg *config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.LoadFile(c.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if c.datasetPath != "" {
		cfg.Dataset.Path = c.datasetPath
	}

	logger := logging.New(logging.Config{
		Level:  c.logLevel,
		Format: "console",
		Output: stderr,
	})
	return cfg, logger, nil
}

// openEngine loads the dataset and builds a recommendation engine over it.
func openEngine(cfg *config.Config, logger zerolog.Logger) (*recommend.Engine, error) {
	store, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Str("path", store.Source()).
		Int("records", store.Len()).
		Str("version", store.Version()).
		Msg("dataset loaded")

	engine, err := recommend.NewEngine(&cfg.Recommend, dataset.NewHolder(store),
		logger.With().Str("component", "recommend").Logger())
	if err != nil {
		return nil, err
	}
	return engine, nil
}

// profileFlags collect a tourist profile from the command line.
type profileFlags struct {
	age           int
	interests     string
	budget        string
	duration      int
	climate       string
	season        string
	accessibility bool
}

func (p *profileFlags) register(fs *flag.FlagSet) {
	fs.IntVar(&p.age, "age", 30, "tourist age (18-80)")
	fs.StringVar(&p.interests, "interests", "", "comma-separated interests, e.g. Art,History")
	fs.StringVar(&p.budget, "budget", string(models.BudgetTierMidRange), "budget tier: Mid-range or Luxury")
	fs.IntVar(&p.duration, "duration", 7, "trip length in days (1-14)")
	fs.StringVar(&p.climate, "climate", "", "preferred climate (optional)")
	fs.StringVar(&p.season, "season", "", "preferred season: Spring, Summer, Autumn, Winter or Any")
	fs.BoolVar(&p.accessibility, "accessibility", false, "require accessible destinations")
}

func (p *profileFlags) profile() *models.TouristProfile {
	var interests []models.Interest
	for _, s := range strings.Split(p.interests, ",") {
		if s = strings.TrimSpace(s); s != "" {
			interests = append(interests, models.Interest(s))
		}
	}
	return &models.TouristProfile{
		Age:                p.age,
		Interests:          interests,
		AccessibilityNeeds: p.accessibility,
		PreferredDuration:  p.duration,
		BudgetPreference:   models.BudgetTier(p.budget),
		ClimatePreference:  models.Climate(p.climate),
		SeasonPreference:   models.Season(p.season),
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
