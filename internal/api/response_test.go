// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wayfarer/internal/dataset"
	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/models"
	"github.com/tomtom215/wayfarer/internal/recommend"
	"github.com/tomtom215/wayfarer/internal/session"
	"github.com/tomtom215/wayfarer/internal/supervisor/services"
)

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var response APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response %q: %v", w.Body.String(), err)
	}
	return response
}

func TestResponseWriter_Success(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)
	r = r.WithContext(logging.WithRequestID(r.Context(), "req-123"))

	NewResponseWriter(w, r).Success(map[string]string{"message": "hello"})

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}

	response := decodeResponse(t, w)
	if !response.Success {
		t.Error("Expected Success to be true")
	}
	if response.Error != nil {
		t.Error("Expected Error to be nil")
	}
	if response.Meta == nil {
		t.Fatal("Expected Meta to not be nil")
	}
	if response.Meta.RequestID != "req-123" {
		t.Errorf("RequestID = %q, want req-123", response.Meta.RequestID)
	}
	if response.Meta.Timestamp.IsZero() {
		t.Error("Expected Timestamp to be set")
	}
}

func TestResponseWriter_Created(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/test", nil)
	NewResponseWriter(w, r).Created(map[string]int{"id": 1})

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", w.Code)
	}
	if !decodeResponse(t, w).Success {
		t.Error("Expected Success to be true")
	}
}

func TestResponseWriter_NoContent(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/test", nil)
	NewResponseWriter(w, r).NoContent()

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("Expected empty body, got %q", w.Body.String())
	}
}

func TestResponseWriter_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		write      func(rw *ResponseWriter)
		wantStatus int
		wantCode   string
	}{
		{"bad request", func(rw *ResponseWriter) { rw.BadRequest("bad") }, http.StatusBadRequest, ErrCodeBadRequest},
		{"not found", func(rw *ResponseWriter) { rw.NotFound("missing") }, http.StatusNotFound, ErrCodeNotFound},
		{"too many", func(rw *ResponseWriter) { rw.TooManyRequests("slow down") }, http.StatusTooManyRequests, ErrCodeTooManyRequests},
		{"internal", func(rw *ResponseWriter) { rw.InternalError("oops") }, http.StatusInternalServerError, ErrCodeInternalError},
		{"unavailable", func(rw *ResponseWriter) { rw.ServiceUnavailable("down") }, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"validation", func(rw *ResponseWriter) { rw.ValidationError("invalid", map[string]string{"field": "age"}) }, http.StatusBadRequest, ErrCodeValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/test", nil)
			r = r.WithContext(logging.WithRequestID(r.Context(), "req-err"))
			tt.write(NewResponseWriter(w, r))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			response := decodeResponse(t, w)
			if response.Success {
				t.Error("Expected Success to be false")
			}
			if response.Error == nil {
				t.Fatal("Expected Error to be set")
			}
			if response.Error.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", response.Error.Code, tt.wantCode)
			}
			if response.Error.RequestID != "req-err" {
				t.Errorf("error request_id = %q", response.Error.RequestID)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "validation",
			err:        &models.ValidationError{Field: "age", Message: "age must be greater than or equal to 18"},
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrCodeValidationFailed,
		},
		{
			name:       "wrapped validation",
			err:        fmt.Errorf("plan: %w", &models.ValidationError{Field: "interests", Message: "interests is required"}),
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrCodeValidationFailed,
		},
		{"invalid json", fmt.Errorf("%w: unexpected EOF", ErrInvalidJSON), http.StatusBadRequest, ErrCodeBadRequest},
		{"no dataset", recommend.ErrNoDataset, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"timeout", fmt.Errorf("rank: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, ErrCodeTimeout},
		{"session missing", session.ErrNotFound, http.StatusNotFound, ErrCodeNotFound},
		{"session expired", session.ErrExpired, http.StatusGone, ErrCodeSessionExpired},
		{"no itinerary", ErrNoItinerary, http.StatusNotFound, ErrCodeNoItinerary},
		{"throttled", services.ErrReloadThrottled, http.StatusTooManyRequests, ErrCodeTooManyRequests},
		{"no source", dataset.ErrNoSource, http.StatusConflict, ErrCodeDatasetLoadFailed},
		{
			name:       "load failure",
			err:        &models.DataLoadError{Path: "x.csv", Reason: "missing column city"},
			wantStatus: http.StatusInternalServerError,
			wantCode:   ErrCodeDatasetLoadFailed,
		},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/test", nil)
			writeError(NewResponseWriter(w, r), tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			response := decodeResponse(t, w)
			if response.Error == nil || response.Error.Code != tt.wantCode {
				t.Fatalf("error = %+v, want code %s", response.Error, tt.wantCode)
			}
		})
	}
}

func TestWriteError_HidesInternalMessage(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)
	writeError(NewResponseWriter(w, r), errors.New("dial tcp 10.0.0.1: refused"))

	response := decodeResponse(t, w)
	if response.Error.Message != "internal server error" {
		t.Errorf("message = %q leaks the cause", response.Error.Message)
	}
}

func TestWriteError_ValidationDetails(t *testing.T) {
	t.Parallel()

	verr := &models.ValidationError{
		Field:   "age",
		Message: "age must be greater than or equal to 18",
		Fields: []models.FieldError{
			{Field: "age", Tag: "gte", Message: "age must be greater than or equal to 18"},
			{Field: "interests", Tag: "required", Message: "interests is required"},
		},
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/test", nil)
	writeError(NewResponseWriter(w, r), verr)

	response := decodeResponse(t, w)
	details, ok := response.Error.Details.(map[string]interface{})
	if !ok {
		t.Fatalf("details = %#v", response.Error.Details)
	}
	fields, ok := details["fields"].([]interface{})
	if !ok || len(fields) != 2 {
		t.Fatalf("fields = %#v", details["fields"])
	}
}
