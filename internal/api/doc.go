// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package api provides the HTTP API for Wayfarer.

Routes are served by chi (see SetupChi):

	POST   /api/v1/itinerary                     generate an itinerary
	POST   /api/v1/recommendations               rank cities and sites
	GET    /api/v1/analytics                     dataset analytics summary
	POST   /api/v1/sessions                      start a planning session
	GET    /api/v1/sessions/{id}                 session with plan history
	DELETE /api/v1/sessions/{id}                 end a session
	GET    /api/v1/sessions/{id}/itinerary       last successful plan
	GET    /api/v1/sessions/{id}/itinerary/report  last plan as a text report
	GET    /api/v1/dataset                       loaded dataset info
	POST   /api/v1/dataset/reload                reload the dataset from disk
	GET    /api/v1/health[/live|/ready]          health probes
	GET    /metrics                              Prometheus metrics
	GET    /swagger/*                            Swagger UI and doc.json

The OpenAPI document lives in the docs package and follows the swag
annotations on each handler.

# Response Format

Every JSON response uses the same envelope:

	{
	  "success": true,
	  "data": {...},
	  "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 3}
	}

Errors set success to false and carry error.code, error.message, optional
error.details and the request ID. Invalid input is 400 VALIDATION_FAILED with
the failing fields in details. A profile that matches no destination is not
an error: the itinerary endpoint answers 200 with data.status "error".

# Middleware

Global: request ID, request logging, real IP, panic recovery and CORS. API
routes add per-IP rate limits (go-chi/httprate), security headers,
Prometheus metrics and gzip compression. Planning and reload routes have
their own tighter limits.
*/
package api
