// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/wayfarer/internal/dataset"
)

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status        string        `json:"status"`
	Version       string        `json:"version"`
	Uptime        float64       `json:"uptime_seconds"`
	DatasetLoaded bool          `json:"dataset_loaded"`
	Dataset       *dataset.Info `json:"dataset,omitempty"`
	Sessions      int           `json:"sessions"`
	SessionStore  string        `json:"session_store"`
	Events        string        `json:"events"`
}

// Health handles health check requests. The service is degraded when no
// dataset is loaded or the session store fails.
//
// @Summary Get system health status
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse{data=HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	health := HealthStatus{
		Status:       "healthy",
		Version:      h.version,
		Uptime:       time.Since(h.startTime).Seconds(),
		SessionStore: "ok",
		Events:       h.eventsState(),
	}
	if store := h.dataset.Current(); store != nil {
		info := store.Info()
		health.DatasetLoaded = true
		health.Dataset = &info
	} else {
		health.Status = "degraded"
	}
	n, err := h.sessions.Count(r.Context())
	if err != nil {
		health.Status = "degraded"
		health.SessionStore = "error"
	}
	health.Sessions = n

	rw.Success(health)
}

// HealthLive handles liveness probe requests.
// Returns 200 OK if the process is alive, regardless of dependencies.
//
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests.
// Returns 200 OK only if a dataset is loaded and the session store answers.
//
// @Summary Readiness check
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse
// @Failure 503 {object} APIResponse "Not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	datasetLoaded := h.dataset.Current() != nil
	_, err := h.sessions.Count(r.Context())
	sessionsOK := err == nil
	ready := datasetLoaded && sessionsOK

	data := map[string]interface{}{
		"dataset_loaded": datasetLoaded,
		"session_store":  sessionsOK,
		"ready_to_serve": ready,
		"uptime":         time.Since(h.startTime).Seconds(),
	}
	if !ready {
		rw.ErrorWithDetails(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "service not ready", data)
		return
	}
	rw.Success(data)
}
