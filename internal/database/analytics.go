// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/wayfarer/internal/metrics"
	"github.com/tomtom215/wayfarer/internal/models"
)

// AnalyticsSummary aggregates the mirrored dataset in SQL. The result uses
// the same rounding and tie-breaking as analytics.Summarize, so both
// backends return identical summaries for the same records.
func (db *DB) AnalyticsSummary(ctx context.Context, topN int) (models.AnalyticsSummary, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	if topN < 1 {
		topN = 10
	}

	totals, err := db.queryTotals(ctx)
	if err != nil {
		return models.AnalyticsSummary{}, err
	}
	if totals.records == 0 {
		return models.EmptyAnalyticsSummary(), nil
	}

	summary := models.AnalyticsSummary{
		DatasetStats: models.DatasetStats{
			TotalRecords:    int(totals.records),
			UniqueTourists:  int(totals.tourists),
			UniqueCities:    int(totals.cities),
			UniqueCountries: int(totals.countries),
		},
		CostAnalysis: models.CostAnalysis{
			AvgDailyCostUSD: models.DivRound(models.Cents(totals.costSum), totals.records),
			MinCostUSD:      models.Cents(totals.minCost),
			MaxCostUSD:      models.Cents(totals.maxCost),
		},
		SatisfactionMetrics: models.SatisfactionMetrics{
			AvgTouristRating: models.Round2(totals.ratingSum / float64(totals.records)),
			AvgSatisfaction:  models.Round2(totals.satisfactionSum / float64(totals.records)),
		},
	}
	if totals.accuracyN > 0 {
		summary.SatisfactionMetrics.RecommendationAccuracy = models.Round2(totals.accuracySum / float64(totals.accuracyN))
	}

	if summary.PopularDestinations.TopCities, err = db.queryTop(ctx, "city", topN); err != nil {
		return models.AnalyticsSummary{}, err
	}
	if summary.PopularDestinations.TopCountries, err = db.queryTop(ctx, "country", topN); err != nil {
		return models.AnalyticsSummary{}, err
	}
	if summary.CostAnalysis.BudgetDistribution, err = db.queryTiers(ctx); err != nil {
		return models.AnalyticsSummary{}, err
	}
	if summary.TouristDemographics, err = db.queryDemographics(ctx); err != nil {
		return models.AnalyticsSummary{}, err
	}
	return summary, nil
}

type totalsRow struct {
	records, tourists, cities, countries int64
	costSum, minCost, maxCost            int64
	ratingSum, satisfactionSum           float64
	accuracySum                          float64
	accuracyN                            int64
}

func (db *DB) queryTotals(ctx context.Context) (totalsRow, error) {
	start := time.Now()
	var t totalsRow
	err := db.conn.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COUNT(DISTINCT tourist_id),
			COUNT(DISTINCT city),
			COUNT(DISTINCT country),
			CAST(COALESCE(SUM(cost_cents), 0) AS BIGINT),
			COALESCE(MIN(cost_cents), 0),
			COALESCE(MAX(cost_cents), 0),
			COALESCE(SUM(tourist_rating), 0),
			COALESCE(SUM(satisfaction), 0),
			COALESCE(SUM(recommendation_accuracy), 0),
			COUNT(recommendation_accuracy)
		FROM experiences
	`).Scan(
		&t.records, &t.tourists, &t.cities, &t.countries,
		&t.costSum, &t.minCost, &t.maxCost,
		&t.ratingSum, &t.satisfactionSum,
		&t.accuracySum, &t.accuracyN,
	)
	metrics.RecordDBQuery("select", "experiences", time.Since(start), err)
	if err != nil {
		return totalsRow{}, fmt.Errorf("failed to query totals: %w", err)
	}
	return t, nil
}

// topQueries are fixed per grouping column; column names are never taken
// from input.
var topQueries = map[string]string{
	"city":    `SELECT city, COUNT(*) AS visits FROM experiences GROUP BY city ORDER BY visits DESC, city ASC LIMIT ?`,
	"country": `SELECT country, COUNT(*) AS visits FROM experiences GROUP BY country ORDER BY visits DESC, country ASC LIMIT ?`,
}

func (db *DB) queryTop(ctx context.Context, column string, n int) (out []models.NamedCount, err error) {
	q, ok := topQueries[column]
	if !ok {
		return nil, fmt.Errorf("unsupported grouping column %q", column)
	}

	start := time.Now()
	defer func() { metrics.RecordDBQuery("select_top_"+column, "experiences", time.Since(start), err) }()

	rows, err := db.conn.QueryContext(ctx, q, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query top %s: %w", column, err)
	}
	defer closeWithLog(rows, "rows")

	out = make([]models.NamedCount, 0, n)
	for rows.Next() {
		var nc models.NamedCount
		var visits int64
		if err = rows.Scan(&nc.Name, &visits); err != nil {
			return nil, fmt.Errorf("failed to scan top %s: %w", column, err)
		}
		nc.Visits = int(visits)
		out = append(out, nc)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate top %s: %w", column, err)
	}
	return out, nil
}

func (db *DB) queryTiers(ctx context.Context) (out map[models.BudgetTier]models.TierCost, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select_tiers", "experiences", time.Since(start), err) }()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT budget_level, COUNT(*), CAST(SUM(cost_cents) AS BIGINT)
		FROM experiences
		GROUP BY budget_level
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query budget tiers: %w", err)
	}
	defer closeWithLog(rows, "rows")

	out = make(map[models.BudgetTier]models.TierCost)
	for rows.Next() {
		var (
			tier    string
			count   int64
			costSum int64
		)
		if err = rows.Scan(&tier, &count, &costSum); err != nil {
			return nil, fmt.Errorf("failed to scan budget tier: %w", err)
		}
		out[models.BudgetTier(tier)] = models.TierCost{
			Records:    int(count),
			AvgCostUSD: models.DivRound(models.Cents(costSum), count),
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate budget tiers: %w", err)
	}
	return out, nil
}

// queryDemographics takes each tourist's first row (lowest seq) and does the
// bucketing in Go with models.AgeGroupOf.
func (db *DB) queryDemographics(ctx context.Context) (d models.TouristDemographics, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select_demographics", "experiences", time.Since(start), err) }()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT arg_min(age, seq), arg_min(accessibility, seq)
		FROM experiences
		GROUP BY tourist_id
	`)
	if err != nil {
		return d, fmt.Errorf("failed to query demographics: %w", err)
	}
	defer closeWithLog(rows, "rows")

	var (
		tourists, ageSum, accessible int
		groups                       = make(map[string]int, len(models.AgeGroups))
	)
	for rows.Next() {
		var (
			age int64
			acc bool
		)
		if err = rows.Scan(&age, &acc); err != nil {
			return d, fmt.Errorf("failed to scan demographics: %w", err)
		}
		tourists++
		ageSum += int(age)
		if acc {
			accessible++
		}
		groups[models.AgeGroupOf(int(age))]++
	}
	if err = rows.Err(); err != nil {
		return d, fmt.Errorf("failed to iterate demographics: %w", err)
	}

	d.AccessibilityNeedsPct = models.Percent(accessible, tourists)
	d.AgeDistribution = models.AgeHistogram(groups)
	if tourists > 0 {
		d.AvgAge = models.Round2(float64(ageSum) / float64(tourists))
	}
	return d, nil
}
