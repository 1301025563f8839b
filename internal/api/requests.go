// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wayfarer/internal/models"
	"github.com/tomtom215/wayfarer/internal/validation"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// ItineraryRequest is the body of POST /itinerary: a tourist profile plus
// optional start date and session. The profile itself is validated by the
// planner.
type ItineraryRequest struct {
	models.TouristProfile `validate:"-"`

	StartDate string `json:"start_date,omitempty" validate:"omitempty,isodate"`
	SessionID string `json:"session_id,omitempty" validate:"omitempty,uuid"`
}

// RecommendationsRequest is the body of POST /recommendations. A missing
// count uses the configured default.
type RecommendationsRequest struct {
	models.TouristProfile `validate:"-"`

	Count *int   `json:"count,omitempty"`
	Mode  string `json:"mode,omitempty" validate:"omitempty,oneof=all cities sites"`
}

// decodeJSON reads a size-limited JSON body into v and validates the
// envelope fields. It returns ErrInvalidJSON or a *models.ValidationError.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: body exceeds %d bytes", ErrInvalidJSON, tooLarge.Limit)
		}
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: body is empty", ErrInvalidJSON)
		}
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if verr := validation.ValidateStruct(v); verr != nil {
		return verr.ToModelError()
	}
	return nil
}
