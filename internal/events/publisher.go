// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package events

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/metrics"
)

// ErrPublisherClosed is returned by Publish after Close.
var ErrPublisherClosed = errors.New("publisher is closed")

// PublisherConfig configures the circuit breaker around publishing.
type PublisherConfig struct {
	Name string

	// FailureThreshold consecutive failures open the breaker.
	FailureThreshold uint32

	// Timeout is how long the breaker stays open before a half-open probe.
	Timeout time.Duration
}

// DefaultPublisherConfig returns the breaker defaults.
func DefaultPublisherConfig() PublisherConfig {
	return PublisherConfig{
		Name:             "events-publisher",
		FailureThreshold: 5,
		Timeout:          30 * time.Second,
	}
}

// Publisher publishes domain events through a circuit breaker. A nil
// *Publisher is valid and drops every event, which is how the API runs when
// events are disabled.
type Publisher struct {
	pub     message.Publisher
	breaker *gobreaker.CircuitBreaker[any]
	closed  atomic.Bool
	logger  zerolog.Logger
}

// NewPublisher wraps pub.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewPublisher(pub message.Publisher, cfg PublisherConfig, logger zerolog.Logger) *Publisher {
	if cfg.Name == "" {
		cfg.Name = "events-publisher"
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}
	logger = logger.With().Str("component", "events").Logger()

	p := &Publisher{pub: pub, logger: logger}
	p.breaker = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.RecordCircuitBreakerTransition(name, from.String(), to.String())
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Event publisher circuit breaker changed state")
		},
	})
	return p
}

// Publish wraps payload in an Event and publishes it on topic. Request and
// correlation IDs in ctx are copied into the envelope and message metadata.
func (p *Publisher) Publish(ctx context.Context, topic string, payload any) error {
	if p == nil {
		return nil
	}
	if p.closed.Load() {
		return ErrPublisherClosed
	}

	event, err := NewEvent(topic, payload)
	if err != nil {
		metrics.RecordEventPublish(topic, "failure")
		return err
	}
	event.RequestID = logging.RequestID(ctx)
	return p.PublishEvent(ctx, event)
}

// PublishEvent publishes a prepared envelope.
func (p *Publisher) PublishEvent(ctx context.Context, event *Event) error {
	if p == nil {
		return nil
	}
	if p.closed.Load() {
		return ErrPublisherClosed
	}

	data, err := Marshal(event)
	if err != nil {
		metrics.RecordEventPublish(event.Topic, "failure")
		return err
	}

	msg := message.NewMessage(event.ID, data)
	msg.SetContext(ctx)
	if event.RequestID != "" {
		msg.Metadata.Set("request_id", event.RequestID)
	}
	if id := logging.CorrelationID(ctx); id != "" {
		msg.Metadata.Set("correlation_id", id)
	}

	_, err = p.breaker.Execute(func() (any, error) {
		return nil, p.pub.Publish(event.Topic, msg)
	})
	switch {
	case err == nil:
		metrics.RecordEventPublish(event.Topic, "success")
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.RecordEventPublish(event.Topic, "rejected")
	default:
		metrics.RecordEventPublish(event.Topic, "failure")
		p.logger.Debug().Err(err).Str("topic", event.Topic).Msg("Event publish failed")
	}
	return err
}

// State returns the breaker state: closed, half-open or open.
func (p *Publisher) State() string {
	if p == nil {
		return "disabled"
	}
	return p.breaker.State().String()
}

// Close stops publishing. The underlying publisher is owned by the Bus.
func (p *Publisher) Close() {
	if p != nil {
		p.closed.Store(true)
	}
}
