// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package itinerary assembles day-by-day travel plans.

A plan is built in four steps:

 1. Cities are ranked with the recommendation engine. The trip visits
    ceil(duration / MaxDaysPerCity) of them, and days are split evenly with
    the remainder going to higher-ranked cities.
 2. Each day takes the best unseen sites of its city, spreading what is left
    over the remaining days and capping at MaxSitesPerDay. A city that has run
    out of sites gets a free day.
 3. Dates run consecutively from the start date.
 4. A day costs the mean of its site costs (the city mean on a free day)
    plus DailyBaselineUSD. All amounts are integer cents, so the total is
    exactly the sum of the days.

Best season, packing tips and accessibility guidance are derived from the
records of the visited cities.

A profile that matches no city yields a result with status "error" and a
message rather than a Go error.
*/
package itinerary
