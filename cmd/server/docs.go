// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

// @title Wayfarer API
// @version 1.0
// @description Tourism recommendation and itinerary planning over a tourist experience dataset.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/wayfarer/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Planning
// @tag.description Tourist profile planning: itineraries and ranked destinations
//
// @tag.name Sessions
// @tag.description Per-client planning sessions and their history
//
// @tag.name Analytics
// @tag.description Aggregate statistics over the loaded dataset
//
// @tag.name Dataset
// @tag.description Dataset version and reload
//
// @tag.name Health
// @tag.description Liveness, readiness and overall status
package main
