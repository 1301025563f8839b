// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package events

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/rs/zerolog"

	"github.com/tomtom215/wayfarer/internal/logging"
)

// DefaultBufferSize is the per-subscriber channel buffer when unset.
const DefaultBufferSize = 256

// Bus is the in-process pub/sub. Messages published while no consumer is
// subscribed are dropped.
type Bus struct {
	pubsub *gochannel.GoChannel
	logger watermill.LoggerAdapter
}

// NewBus creates a Go channel backed bus. Watermill's own logging goes
// through the zerolog logger.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBus(bufferSize int64, logger zerolog.Logger) *Bus {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	adapter := watermill.NewSlogLogger(logging.NewSlogLogger(logger.With().Str("component", "events").Logger()))

	return &Bus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: bufferSize,
		}, adapter),
		logger: adapter,
	}
}

// Publisher returns the raw Watermill publisher.
func (b *Bus) Publisher() message.Publisher { return b.pubsub }

// Subscriber returns the raw Watermill subscriber.
func (b *Bus) Subscriber() message.Subscriber { return b.pubsub }

// Logger returns the Watermill logger adapter used by the bus.
func (b *Bus) Logger() watermill.LoggerAdapter { return b.logger }

// Close closes every subscription.
func (b *Bus) Close() error {
	return b.pubsub.Close()
}
