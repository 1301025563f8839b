// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

// RouterConfig holds configuration for the Watermill router.
type RouterConfig struct {
	// CloseTimeout is how long to wait for handlers to finish when closing.
	CloseTimeout time.Duration

	RetryMaxRetries      int
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration
	RetryMultiplier      float64
}

// DefaultRouterConfig returns production defaults for the router.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		CloseTimeout:         10 * time.Second,
		RetryMaxRetries:      3,
		RetryInitialInterval: 100 * time.Millisecond,
		RetryMaxInterval:     5 * time.Second,
		RetryMultiplier:      2.0,
	}
}

// Router runs the audit consumer on every topic behind recovery and retry
// middleware. Each Serve builds a fresh Watermill router, since one cannot be
// run twice, so the supervisor can restart it.
type Router struct {
	cfg    RouterConfig
	sub    message.Subscriber
	audit  *Audit
	logger watermill.LoggerAdapter

	current   atomic.Pointer[message.Router]
	ready     chan struct{}
	readyOnce sync.Once
}

// NewRouter creates a router that feeds every topic from sub into audit.
func NewRouter(cfg RouterConfig, sub message.Subscriber, audit *Audit, logger watermill.LoggerAdapter) (*Router, error) {
	if sub == nil {
		return nil, errors.New("subscriber is required")
	}
	if audit == nil {
		return nil, errors.New("audit consumer is required")
	}
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	return &Router{
		cfg:    cfg,
		sub:    sub,
		audit:  audit,
		logger: logger,
		ready:  make(chan struct{}),
	}, nil
}

func (r *Router) build() (*message.Router, error) {
	wmRouter, err := message.NewRouter(message.RouterConfig{CloseTimeout: r.cfg.CloseTimeout}, r.logger)
	if err != nil {
		return nil, fmt.Errorf("create watermill router: %w", err)
	}

	// Outer to inner: recover panics, then retry with backoff.
	wmRouter.AddMiddleware(middleware.Recoverer)
	retry := middleware.Retry{
		MaxRetries:      r.cfg.RetryMaxRetries,
		InitialInterval: r.cfg.RetryInitialInterval,
		MaxInterval:     r.cfg.RetryMaxInterval,
		Multiplier:      r.cfg.RetryMultiplier,
		Logger:          r.logger,
	}
	wmRouter.AddMiddleware(retry.Middleware)

	for _, topic := range Topics {
		wmRouter.AddConsumerHandler("audit."+topic, topic, r.sub, r.audit.Handle)
	}
	return wmRouter, nil
}

// Serve runs the router until ctx is canceled. It implements suture.Service.
func (r *Router) Serve(ctx context.Context) error {
	wmRouter, err := r.build()
	if err != nil {
		return err
	}
	r.current.Store(wmRouter)
	defer r.current.Store(nil)

	go func() {
		select {
		case <-wmRouter.Running():
			r.readyOnce.Do(func() { close(r.ready) })
		case <-ctx.Done():
		}
	}()

	if err := wmRouter.Run(ctx); err != nil {
		return fmt.Errorf("event router: %w", err)
	}
	return ctx.Err()
}

// Ready is closed once the first run has subscribed every handler. Events
// published before then are dropped by the bus.
func (r *Router) Ready() <-chan struct{} {
	return r.ready
}

// IsRunning reports whether the router is processing messages.
func (r *Router) IsRunning() bool {
	wm := r.current.Load()
	return wm != nil && wm.IsRunning()
}

// Audit returns the audit consumer.
func (r *Router) Audit() *Audit {
	return r.audit
}

// String returns the service name for logging.
func (r *Router) String() string {
	return "event-router"
}
