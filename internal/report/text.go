// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tomtom215/wayfarer/internal/models"
)

// RenderText writes the plain-text document for result: cover, daily
// schedule, cost table and recommendations. Error results render only their
// message.
func RenderText(w io.Writer, result *models.ItineraryResult) error {
	doc, err := Build(result)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	writeText(bw, doc)
	return bw.Flush()
}

func writeText(w *bufio.Writer, doc *Document) {
	if doc.IsError() {
		fmt.Fprintf(w, "Itinerary unavailable: %s\n", doc.Message)
		return
	}

	heading(w, Title, '=')
	labelWidth := 0
	for _, f := range doc.Cover {
		labelWidth = max(labelWidth, len(f.Label)+1)
	}
	for _, f := range doc.Cover {
		fmt.Fprintf(w, "%-*s %s\n", labelWidth, f.Label+":", f.Value)
	}
	if doc.Interests != "" {
		fmt.Fprintf(w, "\nYour Interests: %s\n", doc.Interests)
	}
	if doc.GeneratedOn != "" {
		fmt.Fprintf(w, "Generated on %s\n", doc.GeneratedOn)
	}

	w.WriteString("\n")
	heading(w, HeadingSchedule, '-')
	for i, day := range doc.Days {
		if i > 0 {
			w.WriteString("\n")
		}
		fmt.Fprintf(w, "Day %d - %s | %s\n", day.Day, day.Date, day.City)
		sites := "Free exploration"
		if len(day.Sites) > 0 {
			sites = strings.Join(day.Sites, ", ")
		}
		fmt.Fprintf(w, "  Sites to Visit: %s\n", sites)
		if len(day.Activities) > 0 {
			fmt.Fprintf(w, "  Suggested Activities: %s\n", strings.Join(day.Activities, ", "))
		}
		fmt.Fprintf(w, "  Estimated Cost: %s\n", day.EstimatedCostUSD)
		if day.Notes != "" {
			fmt.Fprintf(w, "  Notes: %s\n", day.Notes)
		}
	}

	w.WriteString("\n")
	heading(w, HeadingCosts, '-')
	writeCostTable(w, doc)

	if doc.BestSeason == "" && len(doc.PackingTips) == 0 && len(doc.Accessibility) == 0 {
		return
	}
	w.WriteString("\n")
	heading(w, HeadingRecommendations, '-')
	if doc.BestSeason != "" {
		fmt.Fprintf(w, "Best Season to Visit: %s\n", doc.BestSeason)
	}
	if len(doc.PackingTips) > 0 {
		w.WriteString("Packing Essentials:\n")
		for _, tip := range doc.PackingTips {
			fmt.Fprintf(w, "  * %s\n", tip)
		}
	}
	if len(doc.Accessibility) > 0 {
		w.WriteString("Accessibility Information:\n")
		for _, line := range doc.Accessibility {
			fmt.Fprintf(w, "  * %s\n", line)
		}
	}
}

func heading(w *bufio.Writer, title string, rule byte) {
	w.WriteString(title)
	w.WriteByte('\n')
	w.WriteString(strings.Repeat(string(rule), len(title)))
	w.WriteByte('\n')
}

// costColumns returns the widths of the Day, Date, City and Cost columns.
func costColumns(doc *Document) [4]int {
	widths := [4]int{len("Day"), len("Date"), len("City"), len("Estimated Cost")}
	rows := append([]CostRow{doc.CostTotal}, doc.CostRows...)
	for _, r := range rows {
		widths[0] = max(widths[0], len(r.Day))
		widths[1] = max(widths[1], len(r.Date))
		widths[2] = max(widths[2], len(r.City))
		widths[3] = max(widths[3], len(r.Cost))
	}
	return widths
}

func writeCostTable(w *bufio.Writer, doc *Document) {
	c := costColumns(doc)
	row := func(day, date, city, cost string) {
		fmt.Fprintf(w, "%-*s  %-*s  %-*s  %*s\n", c[0], day, c[1], date, c[2], city, c[3], cost)
	}
	row("Day", "Date", "City", "Estimated Cost")
	w.WriteString(strings.Repeat("-", c[0]+c[1]+c[2]+c[3]+6))
	w.WriteByte('\n')
	for _, r := range doc.CostRows {
		row(r.Day, r.Date, r.City, r.Cost)
	}
	w.WriteString(strings.Repeat("-", c[0]+c[1]+c[2]+c[3]+6))
	w.WriteByte('\n')
	row(doc.CostTotal.Day, "", "", doc.CostTotal.Cost)
}
