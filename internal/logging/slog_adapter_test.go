// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &m); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	return m
}

func TestSlogHandlerAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := NewSlogLogger(zerolog.New(&buf))

	l.Info("service started",
		"service", "http",
		"port", 8080,
		"ok", true,
		"elapsed", time.Second,
		"err", errors.New("boom"),
	)

	m := decodeLine(t, &buf)
	if m["message"] != "service started" || m["level"] != "info" {
		t.Errorf("line = %v", m)
	}
	if m["service"] != "http" || m["port"] != float64(8080) || m["ok"] != true {
		t.Errorf("attrs = %v", m)
	}
	if m["err"] != "boom" {
		t.Errorf("err = %v", m["err"])
	}
}

func TestSlogHandlerGroups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := NewSlogLogger(zerolog.New(&buf)).
		With("tree", "root").
		WithGroup("supervisor").
		With("name", "api")

	l.Warn("restart", slog.Group("backoff", "seconds", 15))

	m := decodeLine(t, &buf)
	if m["level"] != "warn" {
		t.Errorf("level = %v", m["level"])
	}
	for key, want := range map[string]any{
		"tree":                      "root",
		"supervisor.name":           "api",
		"supervisor.backoff.seconds": float64(15),
	} {
		if m[key] != want {
			t.Errorf("%s = %v, want %v (line %v)", key, m[key], want, m)
		}
	}
}

func TestSlogHandlerEnabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := NewSlogHandler(zerolog.New(&buf).Level(zerolog.WarnLevel))

	if h.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("info should be disabled on a warn logger")
	}
	if !h.Enabled(t.Context(), slog.LevelError) {
		t.Error("error should be enabled on a warn logger")
	}
	if h.WithGroup("") != h {
		t.Error("empty group should return the same handler")
	}
}

func TestZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   slog.Level
		want zerolog.Level
	}{
		{slog.LevelDebug - 4, zerolog.TraceLevel},
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelInfo + 2, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError + 4, zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		if got := zerologLevel(tt.in); got != tt.want {
			t.Errorf("zerologLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSlogHandlerMessageOnly(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewSlogLogger(zerolog.New(&buf)).Error("failed")
	if !strings.Contains(buf.String(), `"level":"error"`) {
		t.Errorf("line = %s", buf.String())
	}
}
