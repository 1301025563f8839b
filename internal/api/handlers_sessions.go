// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/metrics"
	"github.com/tomtom215/wayfarer/internal/report"
	"github.com/tomtom215/wayfarer/internal/session"
)

// CreateSession handles POST /api/v1/sessions.
//
// @Summary Start a planning session
// @Tags Sessions
// @Produce json
// @Success 201 {object} APIResponse{data=session.Session}
// @Router /sessions [post]
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	s := session.New(h.config.Session.TTL)
	if err := h.sessions.Create(r.Context(), s); err != nil {
		writeError(rw, err)
		return
	}
	h.refreshSessionGauge(r)
	logging.Ctx(r.Context()).Debug().Str("session_id", s.ID).Msg("session created")

	rw.Created(s)
}

// GetSession handles GET /api/v1/sessions/{id}.
//
// @Summary Get a planning session
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} APIResponse{data=session.Session}
// @Failure 404 {object} APIResponse "Session not found"
// @Failure 410 {object} APIResponse "Session expired"
// @Router /sessions/{id} [get]
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	s, err := h.sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(rw, err)
		return
	}
	rw.Success(s)
}

// DeleteSession handles DELETE /api/v1/sessions/{id}.
//
// @Summary End a planning session
// @Tags Sessions
// @Param id path string true "Session ID"
// @Success 204
// @Router /sessions/{id} [delete]
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if err := h.sessions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(rw, err)
		return
	}
	h.refreshSessionGauge(r)
	rw.NoContent()
}

// SessionItinerary handles GET /api/v1/sessions/{id}/itinerary and returns
// the most recent successful plan.
//
// @Summary Most recent itinerary of a session
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} APIResponse{data=models.ItineraryResult}
// @Failure 404 {object} APIResponse "Session or itinerary not found"
// @Failure 410 {object} APIResponse "Session expired"
// @Router /sessions/{id}/itinerary [get]
func (h *Handler) SessionItinerary(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	s, err := h.lastItinerary(r)
	if err != nil {
		writeError(rw, err)
		return
	}
	rw.Success(s.LastItinerary)
}

// SessionItineraryReport handles GET /api/v1/sessions/{id}/itinerary/report
// and returns the plain text report of the most recent plan.
//
// @Summary Plain text report of a session's most recent itinerary
// @Tags Sessions
// @Produce plain
// @Param id path string true "Session ID"
// @Success 200 {string} string
// @Failure 404 {object} APIResponse "Session or itinerary not found"
// @Failure 410 {object} APIResponse "Session expired"
// @Router /sessions/{id}/itinerary/report [get]
func (h *Handler) SessionItineraryReport(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	s, err := h.lastItinerary(r)
	if err != nil {
		writeError(rw, err)
		return
	}

	var buf bytes.Buffer
	if err := report.RenderText(&buf, s.LastItinerary); err != nil {
		writeError(rw, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) lastItinerary(r *http.Request) (*session.Session, error) {
	s, err := h.sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return nil, err
	}
	if s.LastItinerary == nil {
		return nil, ErrNoItinerary
	}
	return s, nil
}

// refreshSessionGauge sets the active sessions gauge from the store. The
// session janitor does the same on every sweep.
func (h *Handler) refreshSessionGauge(r *http.Request) {
	if n, err := h.sessions.Count(r.Context()); err == nil {
		metrics.SessionsActive.Set(float64(n))
	}
}
