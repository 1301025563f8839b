// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package itinerary

// CityCount returns how many ranked cities a trip visits: enough to keep each
// stay within maxDaysPerCity, but never more than are available or than
// there are days.
func CityCount(duration, available, maxDaysPerCity int) int {
	if duration <= 0 || available <= 0 || maxDaysPerCity <= 0 {
		return 0
	}
	n := ceilDiv(duration, maxDaysPerCity)
	return min(n, available, duration)
}

// AllocateDays splits duration days across cities as evenly as possible.
// Remainder days go to the higher-ranked cities first.
func AllocateDays(duration, cities int) []int {
	if duration <= 0 || cities <= 0 {
		return nil
	}
	cities = min(cities, duration)
	out := make([]int, cities)
	base, rem := duration/cities, duration%cities
	for i := range out {
		out[i] = base
		if i < rem {
			out[i]++
		}
	}
	return out
}

// SitesForDay returns how many of the unseen sites to schedule today so that
// the rest spread over the remaining days in the city. The result is zero
// only when nothing is left to see.
func SitesForDay(unseen, remainingDays, maxPerDay int) int {
	if unseen <= 0 {
		return 0
	}
	if remainingDays < 1 {
		remainingDays = 1
	}
	k := ceilDiv(unseen, remainingDays)
	return max(1, min(k, maxPerDay, unseen))
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
