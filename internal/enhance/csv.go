// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package enhance

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tomtom215/wayfarer/internal/models"
)

// Header is the column row written by WriteCSV. The dataset loader accepts
// it as-is.
var Header = []string{
	"Tourist ID", "Age", "Age_Group", "Interests", "Accessibility",
	"Preferred Tour Duration", "Tour Duration",
	"city", "country", "Continent", "state", "region",
	"Site Name", "Type", "UNESCO Site", "avg_cost_usd", "budget_level",
	"Tourist Rating", "Satisfaction", "Recommendation Accuracy",
	"culture", "adventure", "nature", "overall_experience_score",
	"yearly_avg_temp", "climate_classification", "Best Season",
}

// WriteCSV writes records with Header.
func WriteCSV(w io.Writer, records []models.ExperienceRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range records {
		if err := cw.Write(row(&records[i])); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func row(r *models.ExperienceRecord) []string {
	accuracy := ""
	if r.HasRecommendAcc {
		accuracy = num(r.RecommendAcc)
	}
	temp := ""
	if r.HasYearlyAvgTemp {
		temp = num(r.YearlyAvgTemp)
	}
	return []string{
		r.TouristID,
		strconv.Itoa(r.Age),
		r.AgeGroup,
		interestList(r.Interests),
		pyBool(r.Accessibility),
		strconv.Itoa(r.PreferredDays),
		strconv.Itoa(r.ActualDays),
		r.City, r.Country, r.Continent, r.State, r.Region,
		r.SiteName,
		r.SiteType,
		pyBool(r.UNESCO),
		r.Cost.Decimal(),
		string(r.Budget),
		num(r.Rating),
		num(r.Satisfaction),
		accuracy,
		num(r.Culture), num(r.Adventure), num(r.Nature),
		num(r.Experience),
		temp,
		string(r.Climate),
		string(r.BestSeason),
	}
}

// interestList formats interests the way the source dataset does:
// "['Art', 'History']".
func interestList(in []string) string {
	quoted := make([]string, len(in))
	for i, s := range in {
		quoted[i] = "'" + s + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
