// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wayfarer/internal/dataset"
	"github.com/tomtom215/wayfarer/internal/models"
	"github.com/tomtom215/wayfarer/internal/report"
)

const (
	fixturePath = "../../internal/dataset/testdata/experiences.csv"
	catalogPath = "../../data/cities.json"
)

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func artHistoryArgs(command string, extra ...string) []string {
	args := []string{
		command,
		"-dataset", fixturePath,
		"-age", "34",
		"-interests", "Art, History",
		"-budget", "Mid-range",
	}
	return append(args, extra...)
}

func TestRun_Dispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"no arguments", nil, exitUsage, "", "Usage: wayfarer"},
		{"help", []string{"help"}, exitOK, "Commands:", ""},
		{"unknown command", []string{"fly"}, exitUsage, "", `unknown command "fly"`},
		{"command help", []string{"plan", "-h"}, exitOK, "", "-interests"},
		{"bad flag", []string{"recommend", "-nope"}, exitUsage, "", "flag provided but not defined"},
		{"positional argument", []string{"analytics", "extra"}, exitUsage, "", "unexpected arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, stdout, stderr := runCLI(t, tt.args...)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr %q)", code, tt.wantCode, stderr)
			}
			if !strings.Contains(stdout, tt.wantStdout) {
				t.Errorf("stdout = %q, want it to contain %q", stdout, tt.wantStdout)
			}
			if !strings.Contains(stderr, tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tt.wantStderr)
			}
		})
	}
}

func TestPlan_JSON(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, artHistoryArgs("plan", "-duration", "7", "-start", "2026-03-01", "-format", "json")...)
	if code != exitOK {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr)
	}

	var result models.ItineraryResult
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("decode output: %v\n%s", err, stdout)
	}
	if !result.IsSuccess() {
		t.Fatalf("result = %+v", result)
	}
	if result.Itinerary.TotalDays != 7 || len(result.Itinerary.DailySchedule) != 7 {
		t.Errorf("days = %d/%d, want 7", result.Itinerary.TotalDays, len(result.Itinerary.DailySchedule))
	}
	if result.Itinerary.StartDate != "2026-03-01" {
		t.Errorf("start date = %q", result.Itinerary.StartDate)
	}
}

func TestPlan_Formats(t *testing.T) {
	t.Parallel()

	for _, format := range []string{formatText, formatStyled} {
		t.Run(format, func(t *testing.T) {
			t.Parallel()

			code, stdout, stderr := runCLI(t, artHistoryArgs("plan", "-duration", "3", "-start", "2026-03-01", "-format", format)...)
			if code != exitOK {
				t.Fatalf("exit code = %d, stderr = %s", code, stderr)
			}
			if !strings.Contains(stdout, report.Title) {
				t.Errorf("output lacks the title:\n%s", stdout)
			}
		})
	}
}

func TestPlan_NoMatch(t *testing.T) {
	t.Parallel()

	args := []string{
		"plan", "-dataset", fixturePath, "-interests", "Art,History",
		"-budget", "Luxury", "-season", "Spring", "-duration", "5", "-format", "text",
	}
	code, stdout, _ := runCLI(t, args...)
	if code != exitError {
		t.Errorf("exit code = %d, want %d", code, exitError)
	}
	if !strings.Contains(stdout, "no destinations match") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestPlan_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantStderr string
	}{
		{"too young", artHistoryArgs("plan", "-age", "12"), "age"},
		{"no interests", []string{"plan", "-dataset", fixturePath}, "interests"},
		{"bad start date", artHistoryArgs("plan", "-start", "01/03/2026"), "start_date"},
		{"unknown format", artHistoryArgs("plan", "-format", "pdf"), `unknown format "pdf"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, _, stderr := runCLI(t, tt.args...)
			if code != exitUsage {
				t.Errorf("exit code = %d, want %d", code, exitUsage)
			}
			if !strings.Contains(stderr, tt.wantStderr) {
				t.Errorf("stderr = %q, want it to mention %q", stderr, tt.wantStderr)
			}
		})
	}
}

func TestPlan_MissingDataset(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "absent.csv")
	code, _, stderr := runCLI(t, "plan", "-dataset", missing, "-interests", "Art")
	if code != exitError {
		t.Errorf("exit code = %d, want %d", code, exitError)
	}
	if !strings.HasPrefix(stderr, "wayfarer: ") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRecommend(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		code, stdout, stderr := runCLI(t, artHistoryArgs("recommend", "-format", "json")...)
		if code != exitOK {
			t.Fatalf("exit code = %d, stderr = %s", code, stderr)
		}
		var result models.RecommendationResult
		if err := json.Unmarshal([]byte(stdout), &result); err != nil {
			t.Fatalf("decode output: %v", err)
		}
		if result.Count != 5 || result.Recommendations[0].Name != "Colosseum" {
			t.Errorf("result = %+v", result)
		}
	})

	t.Run("text cities", func(t *testing.T) {
		t.Parallel()

		code, stdout, stderr := runCLI(t, artHistoryArgs("recommend", "-mode", "cities", "-count", "2")...)
		if code != exitOK {
			t.Fatalf("exit code = %d, stderr = %s", code, stderr)
		}
		lines := strings.Split(strings.TrimSpace(stdout), "\n")
		if len(lines) != 3 || !strings.HasPrefix(lines[0], "#") {
			t.Fatalf("output:\n%s", stdout)
		}
		for _, line := range lines[1:] {
			if !strings.Contains(line, string(models.KindCity)) {
				t.Errorf("row %q is not a city", line)
			}
		}
	})

	t.Run("bad mode", func(t *testing.T) {
		t.Parallel()

		code, _, stderr := runCLI(t, artHistoryArgs("recommend", "-mode", "hotels")...)
		if code != exitUsage || !strings.Contains(stderr, "mode") {
			t.Errorf("exit code = %d, stderr = %q", code, stderr)
		}
	})
}

func TestAnalytics_Memory(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "analytics", "-dataset", fixturePath, "-backend", "memory", "-top", "3")
	if code != exitOK {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr)
	}

	var summary models.AnalyticsSummary
	if err := json.Unmarshal([]byte(stdout), &summary); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	store, err := dataset.Load(fixturePath)
	if err != nil {
		t.Fatal(err)
	}
	if summary.DatasetStats.TotalRecords != store.Len() {
		t.Errorf("total records = %d, want %d", summary.DatasetStats.TotalRecords, store.Len())
	}
	if summary.DatasetStats.UniqueCities != len(store.Cities()) {
		t.Errorf("unique cities = %d, want %d", summary.DatasetStats.UniqueCities, len(store.Cities()))
	}
}

func TestAnalytics_UnknownBackend(t *testing.T) {
	t.Parallel()

	code, _, stderr := runCLI(t, "analytics", "-dataset", fixturePath, "-backend", "sqlite")
	if code != exitUsage || !strings.Contains(stderr, `unknown backend "sqlite"`) {
		t.Errorf("exit code = %d, stderr = %q", code, stderr)
	}
}

func TestEnhance_WritesLoadableDataset(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "generated.csv")
	code, _, stderr := runCLI(t, "enhance", "-catalog", catalogPath, "-tourists", "20", "-seed", "7", "-out", out)
	if code != exitOK {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr)
	}

	store, err := dataset.Load(out)
	if err != nil {
		t.Fatalf("generated dataset does not load: %v", err)
	}
	if store.Len() < 20 {
		t.Errorf("records = %d, want at least one per tourist", store.Len())
	}
}

func TestEnhance_Deterministic(t *testing.T) {
	t.Parallel()

	args := []string{"enhance", "-catalog", catalogPath, "-tourists", "10", "-seed", "99"}
	_, first, _ := runCLI(t, args...)
	_, second, _ := runCLI(t, args...)
	if first == "" || first != second {
		t.Error("same seed produced different output")
	}
}

func TestEnhance_MissingCatalog(t *testing.T) {
	t.Parallel()

	code, _, _ := runCLI(t, "enhance", "-catalog", filepath.Join(os.TempDir(), "wayfarer-no-such-catalog.json"))
	if code != exitError {
		t.Errorf("exit code = %d, want %d", code, exitError)
	}
}
