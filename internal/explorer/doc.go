// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

/*
Package explorer implements search, faceted filtering and viewport fitting
over an in-memory list of map points.

The engine state is a text query plus four selections (category, province,
time period, person), all empty at start. A point is visible when it passes
every active filter:

  - query: case-insensitive substring of name or description
  - category, province: the point's value is selected
  - time period, person: at least one of the point's values is selected

Usage:

	e := explorer.NewEngine(points)
	stop := e.Subscribe(func(s explorer.Snapshot) { render(s.Points, s.Camera) })
	defer stop()

	e.SetQuery("gorge")
	_ = e.Toggle(explorer.FacetCategory, "natural")
	e.Clear()

Fit chooses the camera for the visible points with Web Mercator math: the
smallest view containing them, inset by padding and capped at a maximum
zoom.
*/
package explorer
