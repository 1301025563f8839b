// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/wayfarer/internal/analytics"
	"github.com/tomtom215/wayfarer/internal/dataset"
	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/models"
	"github.com/tomtom215/wayfarer/internal/recommend"
	"github.com/tomtom215/wayfarer/internal/session"
	"github.com/tomtom215/wayfarer/internal/supervisor/services"
)

// Common API errors
var (
	// ErrInvalidJSON indicates a request body that is not a JSON object.
	ErrInvalidJSON = errors.New("request body must be a JSON object")

	// ErrNoItinerary indicates a session with no successful plan yet.
	ErrNoItinerary = errors.New("session has no itinerary")
)

// writeError maps a domain error to its status code and error code. Errors
// without a mapping are logged and reported as INTERNAL_ERROR without
// exposing their text.
func writeError(rw *ResponseWriter, err error) {
	var verr *models.ValidationError
	var lerr *models.DataLoadError

	switch {
	case errors.As(err, &verr):
		rw.ValidationError(verr.Error(), validationDetails(verr))
	case errors.Is(err, ErrInvalidJSON):
		rw.BadRequest(err.Error())
	case errors.Is(err, recommend.ErrNoDataset), errors.Is(err, analytics.ErrNoDataset):
		rw.ServiceUnavailable("dataset not loaded")
	case errors.Is(err, context.DeadlineExceeded):
		rw.Error(http.StatusGatewayTimeout, ErrCodeTimeout, "request timed out")
	case errors.Is(err, session.ErrNotFound):
		rw.NotFound("session not found")
	case errors.Is(err, session.ErrExpired):
		rw.Error(http.StatusGone, ErrCodeSessionExpired, "session expired")
	case errors.Is(err, ErrNoItinerary):
		rw.Error(http.StatusNotFound, ErrCodeNoItinerary, err.Error())
	case errors.Is(err, services.ErrReloadThrottled):
		rw.TooManyRequests("dataset reload throttled, try again later")
	case errors.Is(err, dataset.ErrNoSource):
		rw.Error(http.StatusConflict, ErrCodeDatasetLoadFailed, "no dataset path configured")
	case errors.As(err, &lerr):
		logging.Ctx(rw.r.Context()).Error().Err(err).Msg("dataset load failed")
		rw.ErrorWithDetails(http.StatusInternalServerError, ErrCodeDatasetLoadFailed,
			"dataset load failed", map[string]string{"reason": lerr.Reason})
	default:
		logging.Ctx(rw.r.Context()).Error().Err(err).Msg("request failed")
		rw.InternalError("internal server error")
	}
}

func validationDetails(verr *models.ValidationError) map[string]interface{} {
	if len(verr.Fields) > 0 {
		return map[string]interface{}{"fields": verr.Fields}
	}
	if verr.Field != "" {
		return map[string]interface{}{"field": verr.Field}
	}
	return nil
}
