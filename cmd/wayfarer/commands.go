// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/tomtom215/wayfarer/internal/analytics"
	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/database"
	"github.com/tomtom215/wayfarer/internal/dataset"
	"github.com/tomtom215/wayfarer/internal/enhance"
	"github.com/tomtom215/wayfarer/internal/itinerary"
	"github.com/tomtom215/wayfarer/internal/models"
	"github.com/tomtom215/wayfarer/internal/report"
)

// Output formats.
const (
	formatStyled = "styled"
	formatText   = "text"
	formatJSON   = "json"
)

func runPlan(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("plan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		common  commonFlags
		profile profileFlags
	)
	common.register(fs)
	profile.register(fs)
	start := fs.String("start", "", "start date YYYY-MM-DD (default: today)")
	format := fs.String("format", formatStyled, "output format: styled, text or json")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	switch *format {
	case formatStyled, formatText, formatJSON:
	default:
		return usageErrorf(fs, "unknown format %q", *format)
	}

	cfg, logger, err := common.load(stderr)
	if err != nil {
		return err
	}
	engine, err := openEngine(cfg, logger)
	if err != nil {
		return err
	}
	planner, err := itinerary.NewPlanner(&cfg.Itinerary, engine, logger.With().Str("component", "itinerary").Logger())
	if err != nil {
		return err
	}

	result, err := planner.Generate(ctx, profile.profile(), *start)
	if err != nil {
		return err
	}

	switch *format {
	case formatJSON:
		err = writeJSON(stdout, result)
	case formatText:
		err = report.RenderText(stdout, result)
	default:
		var out string
		if out, err = report.RenderStyled(result); err == nil {
			_, err = io.WriteString(stdout, out)
		}
	}
	if err != nil {
		return err
	}
	if !result.IsSuccess() {
		return errNoItinerary
	}
	return nil
}

func runRecommend(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("recommend", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		common  commonFlags
		profile profileFlags
	)
	common.register(fs)
	profile.register(fs)
	count := fs.Int("count", 0, "number of recommendations (default from config)")
	mode := fs.String("mode", string(models.ModeAll), "candidates: all, cities or sites")
	format := fs.String("format", formatText, "output format: text or json")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *format != formatText && *format != formatJSON {
		return usageErrorf(fs, "unknown format %q", *format)
	}
	m, err := models.ParseRecommendationMode(*mode)
	if err != nil {
		return err
	}

	cfg, logger, err := common.load(stderr)
	if err != nil {
		return err
	}
	engine, err := openEngine(cfg, logger)
	if err != nil {
		return err
	}

	n := *count
	if n == 0 {
		n = cfg.Recommend.Limits.DefaultCount
	}
	result, err := engine.Recommend(ctx, profile.profile(), n, m)
	if err != nil {
		return err
	}

	if *format == formatJSON {
		return writeJSON(stdout, result)
	}
	return writeRecommendations(stdout, result)
}

func writeRecommendations(w io.Writer, result *models.RecommendationResult) error {
	if result.Count == 0 {
		_, err := fmt.Fprintln(w, "No recommendations match this profile.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tTYPE\tCITY\tSCORE\tMATCH\tCOST")
	for i, rec := range result.Recommendations {
		cost := rec.CostUSD
		if cost == nil {
			cost = rec.AvgCostUSD
		}
		costText := "-"
		if cost != nil {
			costText = cost.String()
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.2f\t%s\t%s\n",
			i+1, rec.Name, rec.Type, rec.City, rec.Score, rec.MatchQuality, costText)
	}
	return tw.Flush()
}

func runAnalytics(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("analytics", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var common commonFlags
	common.register(fs)
	backendName := fs.String("backend", "", "summary backend: memory or duckdb (default from config)")
	dbPath := fs.String("db", "", "DuckDB file for the duckdb backend (default: in-memory)")
	top := fs.Int("top", 0, "entries in each top-N list (default from config)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	cfg, logger, err := common.load(stderr)
	if err != nil {
		return err
	}
	if *backendName != "" {
		cfg.Analytics.Backend = *backendName
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}
	topN := cfg.Analytics.TopN
	if *top > 0 {
		topN = *top
	}

	var backend analytics.Backend
	switch cfg.Analytics.Backend {
	case "", config.AnalyticsBackendMemory:
		backend = analytics.MemoryBackend{}
	case config.AnalyticsBackendDuckDB:
		db, err := database.New(&cfg.Database)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := db.Close(); cerr != nil {
				logger.Warn().Err(cerr).Msg("closing database")
			}
		}()
		backend = analytics.NewSQLBackend(db)
	default:
		return usageErrorf(fs, "unknown backend %q", cfg.Analytics.Backend)
	}

	store, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		return err
	}
	summary, err := backend.Summary(ctx, store, topN)
	if err != nil {
		return fmt.Errorf("%s summary: %w", backend.Name(), err)
	}
	logger.Debug().Str("backend", backend.Name()).Int("records", store.Len()).Msg("analytics computed")
	return writeJSON(stdout, summary)
}

func runEnhance(_ context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("enhance", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var common commonFlags
	common.register(fs)
	defaults := enhance.DefaultOptions()
	catalogPath := fs.String("catalog", "", "city catalog JSON (default from config)")
	out := fs.String("out", "", "output CSV path (default: stdout)")
	seed := fs.Int64("seed", defaults.Seed, "random seed")
	tourists := fs.Int("tourists", defaults.Tourists, "number of synthetic tourists")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	cfg, logger, err := common.load(stderr)
	if err != nil {
		return err
	}
	if *catalogPath != "" {
		cfg.Dataset.CatalogPath = *catalogPath
	}

	catalog, err := enhance.LoadCatalog(cfg.Dataset.CatalogPath)
	if err != nil {
		return err
	}
	opts := defaults
	opts.Seed = *seed
	opts.Tourists = *tourists
	records, err := enhance.Generate(catalog, opts)
	if err != nil {
		return err
	}

	if *out == "" {
		return enhance.WriteCSV(stdout, records)
	}
	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := enhance.WriteCSV(f, records); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	logger.Info().Int("records", len(records)).Str("path", *out).Msg("dataset written")
	return nil
}
