// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

// Package docs registers the Wayfarer OpenAPI document with swag. The
// document follows the annotations on the internal/api handlers and the
// general API info in cmd/server/docs.go; keep them in step.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/tomtom215/wayfarer/issues"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/analytics": {
            "get": {
                "description": "Dataset stats, popular destinations, cost analysis, demographics and satisfaction metrics for the loaded dataset.",
                "produces": ["application/json"],
                "tags": ["Analytics"],
                "summary": "Dataset analytics summary",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.AnalyticsSummary"}}}
                            ]
                        }
                    },
                    "503": {"description": "Dataset not loaded", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/dataset": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dataset"],
                "summary": "Loaded dataset version and size",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/dataset.Info"}}}
                            ]
                        }
                    },
                    "503": {"description": "Dataset not loaded", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/dataset/reload": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Dataset"],
                "summary": "Reload the dataset from disk",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/dataset.Info"}}}
                            ]
                        }
                    },
                    "429": {"description": "Reload throttled", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "500": {"description": "Dataset load failed", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Get system health status",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/api.HealthStatus"}}}
                            ]
                        }
                    }
                }
            }
        },
        "/health/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "503": {"description": "Not ready", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/itinerary": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Planning"],
                "summary": "Generate a day-by-day itinerary",
                "parameters": [
                    {
                        "description": "Tourist profile",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/api.ItineraryRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.ItineraryResult"}}}
                            ]
                        }
                    },
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "404": {"description": "Session not found", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "410": {"description": "Session expired", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/recommendations": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Planning"],
                "summary": "Rank destinations for a tourist profile",
                "parameters": [
                    {
                        "description": "Tourist profile, count and mode",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/api.RecommendationsRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.RecommendationResult"}}}
                            ]
                        }
                    },
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/sessions": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Start a planning session",
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/session.Session"}}}
                            ]
                        }
                    }
                }
            }
        },
        "/sessions/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Get a planning session",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/session.Session"}}}
                            ]
                        }
                    },
                    "404": {"description": "Session not found", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "410": {"description": "Session expired", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            },
            "delete": {
                "tags": ["Sessions"],
                "summary": "End a planning session",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/sessions/{id}/itinerary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Most recent itinerary of a session",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.ItineraryResult"}}}
                            ]
                        }
                    },
                    "404": {"description": "Session or itinerary not found", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "410": {"description": "Session expired", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/sessions/{id}/itinerary/report": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["Sessions"],
                "summary": "Plain text report of a session's most recent itinerary",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}},
                    "404": {"description": "Session or itinerary not found", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "410": {"description": "Session expired", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {},
                "message": {"type": "string"},
                "request_id": {"type": "string"}
            }
        },
        "api.APIMeta": {
            "type": "object",
            "properties": {
                "duration_ms": {"type": "integer"},
                "request_id": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "api.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/api.APIError"},
                "meta": {"$ref": "#/definitions/api.APIMeta"},
                "success": {"type": "boolean"}
            }
        },
        "api.HealthStatus": {
            "type": "object",
            "properties": {
                "dataset": {"$ref": "#/definitions/dataset.Info"},
                "dataset_loaded": {"type": "boolean"},
                "events": {"type": "string"},
                "session_store": {"type": "string"},
                "sessions": {"type": "integer"},
                "status": {"type": "string"},
                "uptime_seconds": {"type": "number"},
                "version": {"type": "string"}
            }
        },
        "api.ItineraryRequest": {
            "type": "object",
            "required": ["budget_preference", "interests"],
            "properties": {
                "accessibility_needs": {"type": "boolean"},
                "age": {"type": "integer", "maximum": 80, "minimum": 18},
                "budget_preference": {"type": "string", "enum": ["Mid-range", "Luxury"]},
                "climate_preference": {"type": "string"},
                "interests": {"type": "array", "minItems": 1, "items": {"type": "string"}},
                "preferred_duration": {"type": "integer", "maximum": 14, "minimum": 1},
                "season_preference": {"type": "string"},
                "session_id": {"type": "string"},
                "start_date": {"type": "string", "example": "2026-06-01"}
            }
        },
        "api.RecommendationsRequest": {
            "type": "object",
            "required": ["budget_preference", "interests"],
            "properties": {
                "accessibility_needs": {"type": "boolean"},
                "age": {"type": "integer", "maximum": 80, "minimum": 18},
                "budget_preference": {"type": "string", "enum": ["Mid-range", "Luxury"]},
                "climate_preference": {"type": "string"},
                "count": {"type": "integer", "minimum": 1},
                "interests": {"type": "array", "minItems": 1, "items": {"type": "string"}},
                "mode": {"type": "string", "enum": ["all", "cities", "sites"]},
                "preferred_duration": {"type": "integer", "maximum": 14, "minimum": 1},
                "season_preference": {"type": "string"}
            }
        },
        "dataset.Info": {
            "type": "object",
            "properties": {
                "cities": {"type": "integer"},
                "loaded_at": {"type": "string"},
                "records": {"type": "integer"},
                "source": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "models.AgeBucket": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "group": {"type": "string"}
            }
        },
        "models.AnalyticsSummary": {
            "type": "object",
            "properties": {
                "cost_analysis": {"$ref": "#/definitions/models.CostAnalysis"},
                "dataset_stats": {"$ref": "#/definitions/models.DatasetStats"},
                "popular_destinations": {"$ref": "#/definitions/models.PopularDestinations"},
                "satisfaction_metrics": {"$ref": "#/definitions/models.SatisfactionMetrics"},
                "tourist_demographics": {"$ref": "#/definitions/models.TouristDemographics"}
            }
        },
        "models.CostAnalysis": {
            "type": "object",
            "properties": {
                "avg_daily_cost_usd": {"type": "number"},
                "budget_distribution": {
                    "type": "object",
                    "additionalProperties": {"$ref": "#/definitions/models.TierCost"}
                },
                "max_cost_usd": {"type": "number"},
                "min_cost_usd": {"type": "number"}
            }
        },
        "models.DatasetStats": {
            "type": "object",
            "properties": {
                "total_records": {"type": "integer"},
                "unique_cities": {"type": "integer"},
                "unique_countries": {"type": "integer"},
                "unique_tourists": {"type": "integer"}
            }
        },
        "models.DaySchedule": {
            "type": "object",
            "properties": {
                "activities": {"type": "array", "items": {"type": "string"}},
                "city": {"type": "string"},
                "country": {"type": "string"},
                "date": {"type": "string"},
                "day": {"type": "integer"},
                "estimated_cost_usd": {"type": "number"},
                "notes": {"type": "string"},
                "sites": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.Itinerary": {
            "type": "object",
            "properties": {
                "avg_daily_cost_usd": {"type": "number"},
                "cities_visited": {"type": "array", "items": {"type": "string"}},
                "daily_schedule": {"type": "array", "items": {"$ref": "#/definitions/models.DaySchedule"}},
                "end_date": {"type": "string"},
                "start_date": {"type": "string"},
                "total_cost_usd": {"type": "number"},
                "total_days": {"type": "integer"}
            }
        },
        "models.ItineraryResult": {
            "type": "object",
            "properties": {
                "generated_at": {"type": "string"},
                "itinerary": {"$ref": "#/definitions/models.Itinerary"},
                "message": {"type": "string"},
                "recommendations": {"$ref": "#/definitions/models.TravelRecommendations"},
                "status": {"type": "string"},
                "tourist_profile": {"$ref": "#/definitions/models.ProfileSummary"}
            }
        },
        "models.NamedCount": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "visits": {"type": "integer"}
            }
        },
        "models.PopularDestinations": {
            "type": "object",
            "properties": {
                "top_cities": {"type": "array", "items": {"$ref": "#/definitions/models.NamedCount"}},
                "top_countries": {"type": "array", "items": {"$ref": "#/definitions/models.NamedCount"}}
            }
        },
        "models.ProfileSummary": {
            "type": "object",
            "properties": {
                "accessibility_needs": {"type": "boolean"},
                "budget": {"type": "string"},
                "duration": {"type": "integer"},
                "interests": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.Recommendation": {
            "type": "object",
            "properties": {
                "avg_cost_usd": {"type": "number"},
                "city": {"type": "string"},
                "cost_usd": {"type": "number"},
                "country": {"type": "string"},
                "match_quality": {"type": "string"},
                "name": {"type": "string"},
                "reason": {"type": "string"},
                "score": {"type": "number"},
                "type": {"type": "string"},
                "unesco_site": {"type": "boolean"}
            }
        },
        "models.RecommendationResult": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "recommendations": {"type": "array", "items": {"$ref": "#/definitions/models.Recommendation"}},
                "status": {"type": "string"}
            }
        },
        "models.SatisfactionMetrics": {
            "type": "object",
            "properties": {
                "avg_satisfaction": {"type": "number"},
                "avg_tourist_rating": {"type": "number"},
                "recommendation_accuracy": {"type": "number"}
            }
        },
        "models.TierCost": {
            "type": "object",
            "properties": {
                "avg_cost_usd": {"type": "number"},
                "records": {"type": "integer"}
            }
        },
        "models.TouristDemographics": {
            "type": "object",
            "properties": {
                "accessibility_needs_pct": {"type": "number"},
                "age_distribution": {"type": "array", "items": {"$ref": "#/definitions/models.AgeBucket"}},
                "avg_age": {"type": "number"}
            }
        },
        "models.TouristProfile": {
            "type": "object",
            "properties": {
                "accessibility_needs": {"type": "boolean"},
                "age": {"type": "integer"},
                "budget_preference": {"type": "string"},
                "climate_preference": {"type": "string"},
                "interests": {"type": "array", "items": {"type": "string"}},
                "preferred_duration": {"type": "integer"},
                "season_preference": {"type": "string"}
            }
        },
        "models.TravelRecommendations": {
            "type": "object",
            "properties": {
                "accessibility_info": {"type": "object", "additionalProperties": {"type": "string"}},
                "best_season": {"type": "string"},
                "packing_tips": {"type": "array", "items": {"type": "string"}}
            }
        },
        "session.PlanEntry": {
            "type": "object",
            "properties": {
                "cities": {"type": "array", "items": {"type": "string"}},
                "message": {"type": "string"},
                "planned_at": {"type": "string"},
                "profile": {"$ref": "#/definitions/models.TouristProfile"},
                "status": {"type": "string"},
                "total_cost_usd": {"type": "number"},
                "total_days": {"type": "integer"}
            }
        },
        "session.Session": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "expires_at": {"type": "string"},
                "history": {"type": "array", "items": {"$ref": "#/definitions/session.PlanEntry"}},
                "id": {"type": "string"},
                "last_accessed_at": {"type": "string"},
                "last_itinerary": {"$ref": "#/definitions/models.ItineraryResult"}
            }
        }
    },
    "tags": [
        {"description": "Tourist profile planning: itineraries and ranked destinations", "name": "Planning"},
        {"description": "Per-client planning sessions and their history", "name": "Sessions"},
        {"description": "Aggregate statistics over the loaded dataset", "name": "Analytics"},
        {"description": "Dataset version and reload", "name": "Dataset"},
        {"description": "Liveness, readiness and overall status", "name": "Health"}
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Wayfarer API",
	Description:      "Tourism recommendation and itinerary planning over a tourist experience dataset.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
