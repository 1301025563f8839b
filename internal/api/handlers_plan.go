// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/wayfarer/internal/events"
	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/models"
	"github.com/tomtom215/wayfarer/internal/session"
)

// Itinerary handles POST /api/v1/itinerary.
//
// A profile that matches no destination is not an HTTP error: the response
// is 200 with data.status "error" and a message. When session_id is given
// the plan is recorded in that session.
//
// @Summary Generate a day-by-day itinerary
// @Tags Planning
// @Accept json
// @Produce json
// @Param request body ItineraryRequest true "Tourist profile"
// @Success 200 {object} APIResponse{data=models.ItineraryResult}
// @Failure 400 {object} APIResponse "Validation failed"
// @Failure 404 {object} APIResponse "Session not found"
// @Failure 410 {object} APIResponse "Session expired"
// @Router /itinerary [post]
func (h *Handler) Itinerary(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req ItineraryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(rw, err)
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	if req.SessionID != "" {
		if _, err := h.sessions.Get(ctx, req.SessionID); err != nil {
			writeError(rw, err)
			return
		}
	}

	result, err := h.planner.Generate(ctx, &req.TouristProfile, req.StartDate)
	if err != nil {
		writeError(rw, err)
		return
	}

	profile := req.TouristProfile
	profile.Interests = append([]models.Interest(nil), req.Interests...)
	profile.Normalize()
	h.publish(ctx, events.TopicItineraryGenerated, events.NewItineraryGenerated(&profile, result))

	if req.SessionID != "" {
		err := h.sessions.Modify(ctx, req.SessionID, func(s *session.Session) error {
			s.RecordPlan(&profile, result, h.config.Session.HistoryLimit, time.Now())
			return nil
		})
		if err != nil {
			logging.Ctx(ctx).Warn().Err(err).Str("session_id", req.SessionID).Msg("plan not recorded in session")
		}
	}

	rw.Success(result)
}

// Recommendations handles POST /api/v1/recommendations.
//
// @Summary Rank destinations for a tourist profile
// @Tags Planning
// @Accept json
// @Produce json
// @Param request body RecommendationsRequest true "Tourist profile, count and mode"
// @Success 200 {object} APIResponse{data=models.RecommendationResult}
// @Failure 400 {object} APIResponse "Validation failed"
// @Router /recommendations [post]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req RecommendationsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(rw, err)
		return
	}

	count := h.config.Recommend.Limits.DefaultCount
	if req.Count != nil {
		count = *req.Count
	}
	mode := models.RecommendationMode(req.Mode)

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	result, err := h.recommender.Recommend(ctx, &req.TouristProfile, count, mode)
	if err != nil {
		writeError(rw, err)
		return
	}

	served := events.RecommendationsServed{
		Mode:      mode,
		Requested: count,
		Returned:  result.Count,
	}
	if served.Mode == "" {
		served.Mode = models.ModeAll
	}
	if len(result.Recommendations) > 0 {
		served.TopName = result.Recommendations[0].Name
		served.TopScore = result.Recommendations[0].Score
	}
	h.publish(ctx, events.TopicRecommendationsServed, served)

	rw.Success(result)
}
