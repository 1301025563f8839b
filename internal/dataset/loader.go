// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/tomtom215/wayfarer/internal/models"
)

// Canonical column keys. Header cells are canonicalized with columnKey before
// lookup, so "Tourist ID", "tourist_id" and "tourist-id" are the same column.
const (
	colTouristID     = "tourist_id"
	colAge           = "age"
	colAgeGroup      = "age_group"
	colInterests     = "interests"
	colAccessibility = "accessibility"
	colPreferredDays = "preferred_tour_duration"
	colActualDays    = "tour_duration"
	colCity          = "city"
	colCountry       = "country"
	colContinent     = "continent"
	colState         = "state"
	colRegion        = "region"
	colSiteName      = "site_name"
	colSiteType      = "type"
	colCost          = "avg_cost_usd"
	colBudget        = "budget_level"
	colRating        = "tourist_rating"
	colSatisfaction  = "satisfaction"
	colUNESCO        = "unesco_site"
	colBestSeason    = "best_season"
	colClimate       = "climate_classification"
	colCulture       = "culture"
	colAdventure     = "adventure"
	colNature        = "nature"
	colExperience    = "overall_experience_score"
	colYearlyTemp    = "yearly_avg_temp"
	colRecommendAcc  = "recommendation_accuracy"
)

// RequiredColumns lists the columns every dataset must carry.
var RequiredColumns = []string{
	colTouristID, colAge, colInterests, colAccessibility, colPreferredDays,
	colCity, colCountry, colContinent, colState, colSiteName,
	colCost, colBudget, colRating, colSatisfaction, colUNESCO,
	colBestSeason, colClimate, colCulture, colAdventure, colNature,
}

// OptionalColumns are read when present.
var OptionalColumns = []string{
	colAgeGroup, colActualDays, colRegion, colSiteType,
	colExperience, colYearlyTemp, colRecommendAcc,
}

// columnKey canonicalizes a header cell: lower case with runs of spaces,
// dashes and underscores folded to a single underscore.
func columnKey(header string) string {
	var b strings.Builder
	sep := false
	for _, r := range strings.ToLower(strings.TrimSpace(header)) {
		if r == ' ' || r == '-' || r == '_' {
			sep = true
			continue
		}
		if sep && b.Len() > 0 {
			b.WriteByte('_')
		}
		sep = false
		b.WriteRune(r)
	}
	return b.String()
}

// Load reads a dataset CSV file into a Store. Any failure is reported as a
// *models.DataLoadError.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		reason := "cannot open file"
		if errors.Is(err, os.ErrNotExist) {
			reason = "file not found"
		}
		return nil, &models.DataLoadError{Path: path, Reason: reason, Err: err}
	}
	defer f.Close()

	hasher := xxhash.New()
	records, err := Parse(io.TeeReader(f, hasher))
	if err != nil {
		var loadErr *models.DataLoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = path
			return nil, loadErr
		}
		return nil, &models.DataLoadError{Path: path, Reason: "read failed", Err: err}
	}

	store := newStore(records, fmt.Sprintf("%016x", hasher.Sum64()))
	store.source = path
	return store, nil
}

// Parse decodes dataset records from CSV. Failures are reported as
// *models.DataLoadError with an empty Path.
func Parse(r io.Reader) ([]models.ExperienceRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &models.DataLoadError{Reason: "file is empty"}
	}
	if err != nil {
		return nil, &models.DataLoadError{Reason: "malformed header", Err: err}
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		key := columnKey(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := cols[key]; !dup {
			cols[key] = i
		}
	}

	var missing []string
	for _, c := range RequiredColumns {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, &models.DataLoadError{Reason: "missing required columns: " + strings.Join(missing, ", ")}
	}

	var records []models.ExperienceRecord
	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, &models.DataLoadError{Reason: fmt.Sprintf("malformed row %d", line), Err: err}
		}
		if isBlank(row) {
			continue
		}
		rec, err := parseRow(row, cols)
		if err != nil {
			return nil, &models.DataLoadError{Reason: fmt.Sprintf("row %d", line), Err: err}
		}
		records = append(records, rec)
	}

	return records, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// rowReader looks up cells by canonical column key and collects the first
// conversion error.
type rowReader struct {
	row  []string
	cols map[string]int
	err  error
}

func (rr *rowReader) has(col string) bool {
	i, ok := rr.cols[col]
	return ok && i < len(rr.row) && strings.TrimSpace(rr.row[i]) != ""
}

func (rr *rowReader) str(col string) string {
	i, ok := rr.cols[col]
	if !ok || i >= len(rr.row) {
		return ""
	}
	return strings.TrimSpace(rr.row[i])
}

func (rr *rowReader) float(col string) float64 {
	s := rr.str(col)
	if s == "" || rr.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		rr.err = fmt.Errorf("column %s: invalid number %q", col, s)
		return 0
	}
	return v
}

// int accepts "34" and "34.0", as spreadsheet exports write both.
func (rr *rowReader) int(col string) int {
	return int(rr.float(col))
}

func (rr *rowReader) bool(col string) bool {
	s := rr.str(col)
	if s == "" || rr.err != nil {
		return false
	}
	v, err := parseBool(s)
	if err != nil {
		rr.err = fmt.Errorf("column %s: %w", col, err)
	}
	return v
}

func (rr *rowReader) budget(col string) models.BudgetTier {
	s := rr.str(col)
	tier, ok := models.ParseBudgetTier(s)
	if !ok && rr.err == nil {
		rr.err = fmt.Errorf("column %s: unknown budget tier %q", col, s)
	}
	return tier
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1", "1.0", "t":
		return true, nil
	case "false", "no", "n", "0", "0.0", "f":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", s)
	}
}

func parseRow(row []string, cols map[string]int) (models.ExperienceRecord, error) {
	rr := &rowReader{row: row, cols: cols}

	rec := models.ExperienceRecord{
		TouristID:     rr.str(colTouristID),
		Age:           rr.int(colAge),
		AgeGroup:      rr.str(colAgeGroup),
		Interests:     ParseInterests(rr.str(colInterests)),
		Accessibility: rr.bool(colAccessibility),
		PreferredDays: rr.int(colPreferredDays),
		ActualDays:    rr.int(colActualDays),
		City:          rr.str(colCity),
		Country:       rr.str(colCountry),
		Continent:     rr.str(colContinent),
		State:         rr.str(colState),
		Region:        rr.str(colRegion),
		SiteName:      rr.str(colSiteName),
		SiteType:      rr.str(colSiteType),
		UNESCO:        rr.bool(colUNESCO),
		Cost:          models.FromUSD(rr.float(colCost)),
		Rating:        rr.float(colRating),
		Satisfaction:  rr.float(colSatisfaction),
		Culture:       rr.float(colCulture),
		Adventure:     rr.float(colAdventure),
		Nature:        rr.float(colNature),
		Climate:       models.ParseClimate(rr.str(colClimate)),
		BestSeason:    models.ParseSeason(rr.str(colBestSeason)),
	}
	rec.Budget = rr.budget(colBudget)

	if rr.has(colExperience) {
		rec.Experience = rr.float(colExperience)
	} else {
		rec.Experience = rec.SubScoreMean()
	}
	if rr.has(colYearlyTemp) {
		rec.YearlyAvgTemp = rr.float(colYearlyTemp)
		rec.HasYearlyAvgTemp = true
	}
	if rr.has(colRecommendAcc) {
		rec.RecommendAcc = rr.float(colRecommendAcc)
		rec.HasRecommendAcc = true
	}

	if rr.err != nil {
		return models.ExperienceRecord{}, rr.err
	}
	if rec.City == "" {
		return models.ExperienceRecord{}, fmt.Errorf("column %s is empty", colCity)
	}
	if rec.SiteName == "" {
		return models.ExperienceRecord{}, fmt.Errorf("column %s is empty", colSiteName)
	}
	return rec, nil
}

// ParseInterests splits an interest cell. It accepts list text such as
// "['Art', 'History']" as well as values separated by ';', '|' or ','.
func ParseInterests(cell string) []string {
	s := strings.TrimSpace(cell)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if s == "" {
		return []string{}
	}

	sep := ","
	switch {
	case strings.Contains(s, ";"):
		sep = ";"
	case strings.Contains(s, "|"):
		sep = "|"
	}

	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), `'"`)
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
