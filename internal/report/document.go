// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package report

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tomtom215/wayfarer/internal/models"
)

// Title heads every rendered itinerary.
const Title = "Your Personalized Travel Itinerary"

// Section headings in document order.
const (
	HeadingSchedule        = "Daily Itinerary"
	HeadingCosts           = "Cost Breakdown"
	HeadingRecommendations = "Travel Tips & Recommendations"
)

// ErrNoResult is returned when there is nothing to render.
var ErrNoResult = errors.New("report: no itinerary result")

// Field is one label/value row of the cover page.
type Field struct {
	Label string
	Value string
}

// CostRow is one line of the cost table.
type CostRow struct {
	Day  string
	Date string
	City string
	Cost string
}

// Document is the presentational form of an itinerary result: every value
// already formatted, in the order it is printed. Both renderers walk the
// same Document so their content cannot drift apart.
type Document struct {
	// Message is set instead of everything else for error results.
	Message string

	Cover       []Field
	Interests   string
	GeneratedOn string

	Days      []models.DaySchedule
	CostRows  []CostRow
	CostTotal CostRow

	BestSeason    string
	PackingTips   []string
	Accessibility []string
}

// IsError reports whether the document only carries an error message.
func (d *Document) IsError() bool {
	return d.Message != ""
}

// Build lays out result. The result is read, never modified.
func Build(result *models.ItineraryResult) (*Document, error) {
	if result == nil {
		return nil, ErrNoResult
	}
	if !result.IsSuccess() {
		msg := result.Message
		if msg == "" {
			msg = "itinerary could not be generated"
		}
		return &Document{Message: msg}, nil
	}

	it := result.Itinerary
	doc := &Document{
		Cover: []Field{
			{"Destination(s)", strings.Join(it.CitiesVisited, ", ")},
			{"Travel Dates", fmt.Sprintf("%s to %s", it.StartDate, it.EndDate)},
			{"Duration", pluralDays(it.TotalDays)},
			{"Total Budget", it.TotalCostUSD.String()},
			{"Daily Average", it.AvgDailyCostUSD.String()},
		},
		GeneratedOn: generatedOn(result.GeneratedAt),
		Days:        it.DailySchedule,
		CostTotal:   CostRow{Day: "TOTAL", Cost: it.TotalCostUSD.String()},
	}
	if tp := result.TouristProfile; tp != nil {
		doc.Cover = append(doc.Cover, Field{"Budget Level", string(tp.Budget)})
		doc.Interests = strings.Join(tp.Interests, ", ")
	}

	for _, day := range it.DailySchedule {
		doc.CostRows = append(doc.CostRows, CostRow{
			Day:  fmt.Sprintf("Day %d", day.Day),
			Date: day.Date,
			City: day.City,
			Cost: day.EstimatedCostUSD.String(),
		})
	}

	if recs := result.Recommendations; recs != nil {
		if recs.BestSeason.IsConstraint() {
			doc.BestSeason = string(recs.BestSeason)
		}
		doc.PackingTips = recs.PackingTips
		doc.Accessibility = accessibilityLines(recs.AccessibilityInfo)
	}
	return doc, nil
}

// accessibilityLines orders the info map by key for stable output.
func accessibilityLines(info map[string]string) []string {
	if len(info) == 0 {
		return nil
	}
	keys := make([]string, 0, len(info))
	for k := range info {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = info[k]
	}
	return out
}

func generatedOn(stamp string) string {
	t, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return ""
	}
	return t.Format("January 02, 2006")
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
