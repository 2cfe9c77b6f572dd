// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

package models

// Price is a display price derived from a place's access options.
type Price struct {
	Title       string   `json:"title"`
	EntranceFee *float64 `json:"entranceFee,omitempty"`
}

// MapPoint is the flattened place shape consumed by the map explorer.
type MapPoint struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Kind        string        `json:"kind"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	Location    Location      `json:"location"`
	Prices      []Price       `json:"prices,omitempty"`
	Links       []Link        `json:"links,omitempty"`
	People      []PlacePerson `json:"people,omitempty"`
	TimePeriods []string      `json:"timePeriods,omitempty"`
}
