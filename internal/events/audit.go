// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package events

import (
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"

	"github.com/tomtom215/wayfarer/internal/metrics"
)

// DefaultAuditCapacity is how many recent events the audit log keeps.
const DefaultAuditCapacity = 100

// Audit consumes every topic, logs each event and keeps per-topic counts
// plus a ring of the most recent events.
type Audit struct {
	mu       sync.RWMutex
	counts   map[string]int64
	recent   []Event
	next     int
	full     bool
	rejected int64
	logger   zerolog.Logger
}

// NewAudit creates an audit consumer keeping capacity recent events.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewAudit(capacity int, logger zerolog.Logger) *Audit {
	if capacity <= 0 {
		capacity = DefaultAuditCapacity
	}
	return &Audit{
		counts: make(map[string]int64),
		recent: make([]Event, capacity),
		logger: logger.With().Str("component", "events.audit").Logger(),
	}
}

// Handle is a Watermill consumer handler. Malformed payloads are logged and
// acknowledged; retrying them cannot succeed.
func (a *Audit) Handle(msg *message.Message) error {
	event, err := Unmarshal(msg.Payload)
	if err != nil {
		a.mu.Lock()
		a.rejected++
		a.mu.Unlock()
		a.logger.Warn().Err(err).Str("message_uuid", msg.UUID).Msg("Dropping malformed event")
		return nil
	}
	a.record(event)

	metrics.RecordEventConsumed(event.Topic)
	a.logger.Info().
		Str("event_id", event.ID).
		Str("topic", event.Topic).
		Str("request_id", event.RequestID).
		RawJSON("data", event.Data).
		Msg("Event received")
	return nil
}

func (a *Audit) record(e *Event) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.counts[e.Topic]++
	a.recent[a.next] = *e
	a.next = (a.next + 1) % len(a.recent)
	if a.next == 0 {
		a.full = true
	}
}

// Counts returns a copy of the per-topic event counts.
func (a *Audit) Counts() map[string]int64 {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make(map[string]int64, len(a.counts))
	for k, v := range a.counts {
		out[k] = v
	}
	return out
}

// Rejected returns how many malformed messages were dropped.
func (a *Audit) Rejected() int64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.rejected
}

// Recent returns up to n of the most recent events, newest first.
func (a *Audit) Recent(n int) []Event {
	a.mu.RLock()
	defer a.mu.RUnlock()

	size := a.next
	if a.full {
		size = len(a.recent)
	}
	if n <= 0 || n > size {
		n = size
	}

	out := make([]Event, 0, n)
	for i := 1; i <= n; i++ {
		idx := (a.next - i + len(a.recent)) % len(a.recent)
		out = append(out, a.recent[idx])
	}
	return out
}
