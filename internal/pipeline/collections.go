// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/mrrakc/internal/catalog"
	"github.com/tomtom215/mrrakc/internal/config"
	"github.com/tomtom215/mrrakc/internal/models"
)

// Collections holds everything a build reads from disk.
type Collections struct {
	Places     []*models.Place
	People     []*models.Person
	Maps       []*models.MapDefinition
	Plans      []*models.Plan
	ContentIDs map[string]struct{}
}

// LoadCollections reads the four collections and the plan content ids
// concurrently. The loads share nothing, and all of them finish before any
// resolution starts. The first fatal error cancels the others.
func LoadCollections(ctx context.Context, data config.DataConfig) (*Collections, error) {
	c := &Collections{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		places, err := catalog.LoadPlaces(gctx, data.PlacesRoot())
		if err != nil {
			return fmt.Errorf("load places: %w", err)
		}
		c.Places = places
		return nil
	})

	g.Go(func() error {
		people, err := catalog.LoadPeople(gctx, data.PeopleRoot())
		if err != nil {
			return fmt.Errorf("load people: %w", err)
		}
		c.People = people
		return nil
	})

	g.Go(func() error {
		maps, err := catalog.LoadMaps(gctx, data.MapsRoot())
		if err != nil {
			return fmt.Errorf("load maps: %w", err)
		}
		c.Maps = maps
		return nil
	})

	g.Go(func() error {
		plans, err := catalog.LoadPlans(gctx, data.PlansRoot())
		if err != nil {
			return fmt.Errorf("load plans: %w", err)
		}
		c.Plans = plans
		return nil
	})

	g.Go(func() error {
		ids, err := catalog.LoadContentIDs(gctx, data.PlanContent)
		if err != nil {
			return fmt.Errorf("load plan content: %w", err)
		}
		c.ContentIDs = ids
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return c, nil
}
