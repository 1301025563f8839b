// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Command wayfarer runs the recommendation engine, itinerary planner and
dataset tools from the command line, without the HTTP server.

Usage:

	wayfarer plan -interests Art,History -duration 5 -budget Mid-range
	wayfarer plan -interests Nature -season Summer -format json
	wayfarer recommend -interests Food -mode cities -count 10
	wayfarer analytics -backend duckdb
	wayfarer enhance -catalog data/cities.json -tourists 500 -out data/tourism_dataset.csv

Every command accepts -config, -dataset and -log-level. Configuration is
resolved the same way as the server: defaults, then the YAML file, then
the environment. Logs go to stderr in console format.

plan prints a styled itinerary by default; -format text gives the plain
report and -format json the raw result.

Exit status is 0 on success, 1 on failure or when no itinerary matches the
profile, and 2 on invalid flags or profile values.
*/
package main
