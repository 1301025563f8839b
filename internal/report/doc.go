// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package report lays out an itinerary result as a printable document.

The document has four sections in a fixed order: a cover page (destinations,
dates, duration, budget, interests, generation date), the daily schedule, a
cost table ending in a TOTAL row, and travel recommendations. The renderer
consumes the planner's output verbatim and never reads the dataset.

Two renderers share one layout (Build):

  - RenderText writes plain text, used by the HTTP report endpoint
  - RenderStyled returns a lipgloss-styled string for terminals, used by the CLI

Error results render only their message.
*/
package report
