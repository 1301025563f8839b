// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package events is the in-process event bus.

Every planning request, recommendation request and dataset reload publishes
an Event on one of three topics:

	itinerary.generated
	recommendations.served
	dataset.reloaded

The bus is a Watermill Go channel pub/sub (no broker). Publisher wraps it in a
gobreaker circuit breaker so a stuck bus cannot slow requests down: after
FailureThreshold consecutive failures publishing is rejected until the
breaker's timeout elapses. A nil *Publisher drops events silently.

Router subscribes the Audit consumer to every topic with panic recovery and
retry middleware. Audit logs each event through zerolog, counts events per
topic for the metrics endpoint and keeps a small ring of recent events.

	bus := events.NewBus(cfg.Events.BufferSize, logger)
	pub := events.NewPublisher(bus.Publisher(), events.DefaultPublisherConfig(), logger)
	router, err := events.NewRouter(events.DefaultRouterConfig(), bus.Subscriber(),
	    events.NewAudit(0, logger), bus.Logger())

Router implements suture.Service and runs in the messaging layer of the
supervisor tree.
*/
package events
