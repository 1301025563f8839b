// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomtom215/wayfarer/internal/models"
)

var (
	colorTitle  = lipgloss.Color("#2C3E50")
	colorAccent = lipgloss.Color("#3498DB")
	colorText   = lipgloss.Color("#34495E")
	colorMuted  = lipgloss.Color("#7F8C8D")
	colorStripe = lipgloss.Color("#ECF0F1")
	colorError  = lipgloss.Color("#E74C3C")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorTitle).
			BorderStyle(lipgloss.DoubleBorder()).
			BorderBottom(true).
			BorderForeground(colorAccent)

	subtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(colorTitle)
	valueStyle = lipgloss.NewStyle().Foreground(colorText)
	mutedStyle = lipgloss.NewStyle().Italic(true).Foreground(colorMuted)

	dayStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorTitle).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(colorAccent).
			PaddingLeft(1)

	dayBodyStyle = lipgloss.NewStyle().PaddingLeft(3)

	headerCellStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(colorAccent)
	stripeStyle     = lipgloss.NewStyle().Background(colorStripe)
	totalStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(colorTitle)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorError).
			Padding(0, 1)
)

// RenderStyled returns the itinerary document styled for a terminal. The
// sections and values are the same as RenderText.
func RenderStyled(result *models.ItineraryResult) (string, error) {
	doc, err := Build(result)
	if err != nil {
		return "", err
	}
	if doc.IsError() {
		return errorStyle.Render("Itinerary unavailable: "+doc.Message) + "\n", nil
	}

	blocks := []string{titleStyle.Render(Title), renderCover(doc), subtitleStyle.Render(HeadingSchedule)}
	for _, day := range doc.Days {
		blocks = append(blocks, renderDay(day))
	}
	blocks = append(blocks, subtitleStyle.Render(HeadingCosts), renderCostTable(doc))
	if recs := renderRecommendations(doc); recs != "" {
		blocks = append(blocks, subtitleStyle.Render(HeadingRecommendations), recs)
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...) + "\n", nil
}

func renderCover(doc *Document) string {
	labelWidth := 0
	for _, f := range doc.Cover {
		labelWidth = max(labelWidth, lipgloss.Width(f.Label)+2)
	}
	lines := make([]string, 0, len(doc.Cover)+2)
	for _, f := range doc.Cover {
		label := labelStyle.Width(labelWidth).Render(f.Label + ":")
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, label, valueStyle.Render(f.Value)))
	}
	if doc.Interests != "" {
		lines = append(lines, "", labelStyle.Render("Your Interests: ")+valueStyle.Render(doc.Interests))
	}
	if doc.GeneratedOn != "" {
		lines = append(lines, mutedStyle.Render("Generated on "+doc.GeneratedOn))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderDay(day models.DaySchedule) string {
	sites := "Free exploration"
	if len(day.Sites) > 0 {
		sites = strings.Join(day.Sites, ", ")
	}
	body := []string{labelStyle.Render("Sites to Visit: ") + valueStyle.Render(sites)}
	if len(day.Activities) > 0 {
		body = append(body, labelStyle.Render("Suggested Activities: ")+valueStyle.Render(strings.Join(day.Activities, ", ")))
	}
	body = append(body, labelStyle.Render("Estimated Cost: ")+valueStyle.Render(day.EstimatedCostUSD.String()))
	if day.Notes != "" {
		body = append(body, mutedStyle.Render(day.Notes))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		dayStyle.Render(fmt.Sprintf("Day %d - %s | %s", day.Day, day.Date, day.City)),
		dayBodyStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body...)),
	)
}

func renderCostTable(doc *Document) string {
	c := costColumns(doc)
	cell := func(day, date, city, cost string) string {
		return fmt.Sprintf(" %-*s  %-*s  %-*s  %*s ", c[0], day, c[1], date, c[2], city, c[3], cost)
	}
	rows := []string{headerCellStyle.Render(cell("Day", "Date", "City", "Estimated Cost"))}
	for i, r := range doc.CostRows {
		line := cell(r.Day, r.Date, r.City, r.Cost)
		if i%2 == 1 {
			line = stripeStyle.Render(line)
		}
		rows = append(rows, line)
	}
	rows = append(rows, totalStyle.Render(cell(doc.CostTotal.Day, "", "", doc.CostTotal.Cost)))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderRecommendations(doc *Document) string {
	var lines []string
	if doc.BestSeason != "" {
		lines = append(lines, labelStyle.Render("Best Season to Visit: ")+valueStyle.Render(doc.BestSeason))
	}
	if len(doc.PackingTips) > 0 {
		lines = append(lines, labelStyle.Render("Packing Essentials:"))
		for _, tip := range doc.PackingTips {
			lines = append(lines, valueStyle.Render("  • "+tip))
		}
	}
	if len(doc.Accessibility) > 0 {
		lines = append(lines, labelStyle.Render("Accessibility Information:"))
		for _, info := range doc.Accessibility {
			lines = append(lines, valueStyle.Render("  • "+info))
		}
	}
	return strings.Join(lines, "\n")
}
