// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"net/http"

	"github.com/tomtom215/wayfarer/internal/supervisor/services"
)

// Analytics handles GET /api/v1/analytics.
//
// @Summary Dataset analytics summary
// @Description Dataset stats, popular destinations, cost analysis, demographics and satisfaction metrics for the loaded dataset.
// @Tags Analytics
// @Produce json
// @Success 200 {object} APIResponse{data=models.AnalyticsSummary}
// @Failure 503 {object} APIResponse "Dataset not loaded"
// @Router /analytics [get]
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	summary, err := h.analytics.Summary(ctx)
	if err != nil {
		writeError(rw, err)
		return
	}
	rw.Success(summary)
}

// DatasetInfo handles GET /api/v1/dataset.
//
// @Summary Loaded dataset version and size
// @Tags Dataset
// @Produce json
// @Success 200 {object} APIResponse{data=dataset.Info}
// @Failure 503 {object} APIResponse "Dataset not loaded"
// @Router /dataset [get]
func (h *Handler) DatasetInfo(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	store := h.dataset.Current()
	if store == nil {
		rw.ServiceUnavailable("dataset not loaded")
		return
	}
	rw.Success(store.Info())
}

// ReloadDataset handles POST /api/v1/dataset/reload. A failed reload keeps
// the previous dataset.
//
// @Summary Reload the dataset from disk
// @Tags Dataset
// @Produce json
// @Success 200 {object} APIResponse{data=dataset.Info}
// @Failure 429 {object} APIResponse "Reload throttled"
// @Failure 500 {object} APIResponse "Dataset load failed"
// @Router /dataset/reload [post]
func (h *Handler) ReloadDataset(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	info, err := h.dataset.Reload(r.Context(), services.TriggerAPI)
	if err != nil {
		writeError(rw, err)
		return
	}
	rw.Success(info)
}
