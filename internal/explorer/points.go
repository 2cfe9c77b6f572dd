// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

package explorer

import (
	"sort"

	"github.com/tomtom215/mrrakc/internal/models"
)

// PointFromPlace flattens a place into the shape the explorer filters.
// The category is spec.category, or the record kind when none is authored.
// Prices come from the access options.
func PointFromPlace(p *models.Place) models.MapPoint {
	category := p.Spec.Category
	if category == "" {
		category = p.Kind
	}

	point := models.MapPoint{
		ID:          p.ID,
		Name:        p.Spec.Name,
		Kind:        p.Kind,
		Category:    category,
		Description: p.Spec.Description,
		Location:    p.Spec.Location,
		Links:       p.Spec.Links,
		People:      p.Spec.People,
		TimePeriods: p.Spec.TimePeriods,
	}

	if p.Spec.Access != nil && len(p.Spec.Access.Options) > 0 {
		point.Prices = make([]models.Price, 0, len(p.Spec.Access.Options))
		for _, opt := range p.Spec.Access.Options {
			point.Prices = append(point.Prices, models.Price{
				Title:       opt.Title,
				EntranceFee: opt.EntranceFee,
			})
		}
	}

	return point
}

// PointsFromPlaces projects every place, sorted by id.
func PointsFromPlaces(places []*models.Place) []models.MapPoint {
	points := make([]models.MapPoint, 0, len(places))
	for _, p := range places {
		points = append(points, PointFromPlace(p))
	}
	sort.Slice(points, func(i, j int) bool { return points[i].ID < points[j].ID })
	return points
}
