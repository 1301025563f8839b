// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package events

import (
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/goccy/go-json"

	"github.com/tomtom215/wayfarer/internal/models"
)

// Topics published on the bus.
const (
	TopicItineraryGenerated    = "itinerary.generated"
	TopicRecommendationsServed = "recommendations.served"
	TopicDatasetReloaded       = "dataset.reloaded"
)

// Topics lists every topic, in the order consumers subscribe.
var Topics = []string{
	TopicItineraryGenerated,
	TopicRecommendationsServed,
	TopicDatasetReloaded,
}

// Event is the envelope carried in every message payload.
type Event struct {
	ID        string          `json:"event_id"`
	Topic     string          `json:"topic"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"request_id,omitempty"`
	SessionID string          `json:"session_id,omitempty"`
	Data      json.RawMessage `json:"data"`
}

// ItineraryGenerated is published after every planning request, successful
// or not.
type ItineraryGenerated struct {
	Status       string            `json:"status"`
	Message      string            `json:"message,omitempty"`
	Days         int               `json:"days"`
	Cities       []string          `json:"cities"`
	TotalCostUSD models.Cents      `json:"total_cost_usd"`
	Budget       models.BudgetTier `json:"budget"`
	Interests    []string          `json:"interests"`
}

// NewItineraryGenerated summarizes a planner result.
func NewItineraryGenerated(profile *models.TouristProfile, result *models.ItineraryResult) ItineraryGenerated {
	e := ItineraryGenerated{
		Status:    result.Status,
		Message:   result.Message,
		Cities:    []string{},
		Budget:    profile.BudgetPreference,
		Interests: profile.InterestStrings(),
	}
	if result.IsSuccess() {
		e.Days = result.Itinerary.TotalDays
		e.Cities = append(e.Cities, result.Itinerary.CitiesVisited...)
		e.TotalCostUSD = result.Itinerary.TotalCostUSD
	}
	return e
}

// RecommendationsServed is published after every recommendation request.
type RecommendationsServed struct {
	Mode      models.RecommendationMode `json:"mode"`
	Requested int                       `json:"requested"`
	Returned  int                       `json:"returned"`
	TopName   string                    `json:"top_name,omitempty"`
	TopScore  float64                   `json:"top_score,omitempty"`
}

// DatasetReloaded is published after a successful dataset reload.
type DatasetReloaded struct {
	Version string `json:"version"`
	Source  string `json:"source"`
	Records int    `json:"records"`
	Trigger string `json:"trigger"`
}

// NewEvent wraps payload in an envelope with a fresh ID.
func NewEvent(topic string, payload any) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", topic, err)
	}
	return &Event{
		ID:        watermill.NewUUID(),
		Topic:     topic,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}, nil
}

// Validate checks the envelope fields every consumer relies on.
func (e *Event) Validate() error {
	switch {
	case e.ID == "":
		return errors.New("event_id is required")
	case e.Topic == "":
		return errors.New("topic is required")
	case e.Timestamp.IsZero():
		return errors.New("timestamp is required")
	}
	return nil
}

// Decode unmarshals the event data into v.
func (e *Event) Decode(v any) error {
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("decode %s data: %w", e.Topic, err)
	}
	return nil
}

// Marshal validates and encodes an event.
func Marshal(e *Event) ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("validate event: %w", err)
	}
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return data, nil
}

// Unmarshal decodes and validates an event.
func Unmarshal(data []byte) (*Event, error) {
	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("unmarshal event: %w", err)
	}
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("validate event: %w", err)
	}
	return &e, nil
}
