// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

package planresolve

import (
	"context"

	"github.com/tomtom215/mrrakc/internal/catalog"
	"github.com/tomtom215/mrrakc/internal/logging"
	"github.com/tomtom215/mrrakc/internal/metrics"
	"github.com/tomtom215/mrrakc/internal/models"
)

// Resolver expands the place and person references of plans. It only reads
// the collections it was built from and may be shared between goroutines.
type Resolver struct {
	places *catalog.Index[*models.Place]
	people *catalog.Index[*models.Person]
}

// NewResolver indexes the loaded places and people.
func NewResolver(places []*models.Place, people []*models.Person) *Resolver {
	return &Resolver{
		places: catalog.NewIndex(places),
		people: catalog.NewIndex(people),
	}
}

// Resolve returns a copy of plan in which every step, at every depth, has
// its placeIds expanded into places and its people entries enriched with
// details. The input plan is not modified.
func (r *Resolver) Resolve(plan *models.Plan) *models.Plan {
	out := *plan
	out.Spec.Steps = r.resolveSteps(plan.Spec.Steps)
	return &out
}

func (r *Resolver) resolveSteps(steps []models.Step) []models.Step {
	if steps == nil {
		return nil
	}
	out := make([]models.Step, len(steps))
	for i := range steps {
		out[i] = r.resolveStep(steps[i])
	}
	return out
}

// resolveStep resolves one step, then its children. Nothing in a step
// depends on its parent or siblings.
func (r *Resolver) resolveStep(step models.Step) models.Step {
	if step.PlaceIDs != nil {
		step.Places = r.resolvePlaces(step.PlaceIDs)
	}

	if step.People != nil {
		people := make([]models.StepPerson, len(step.People))
		for i, sp := range step.People {
			if person, ok := r.people.Resolve(sp.ID, models.CollectionPeople); ok {
				sp.Details = person
			}
			people[i] = sp
		}
		step.People = people
	}

	step.SubSteps = r.resolveSteps(step.SubSteps)
	return step
}

// resolvePlaces strips the places/ prefix once from each reference and keeps
// the places that exist, each at most once, in reference order.
func (r *Resolver) resolvePlaces(refs []string) []*models.Place {
	places := make([]*models.Place, 0, len(refs))
	seen := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		place, ok := r.places.Resolve(ref, models.CollectionPlaces)
		if !ok {
			continue
		}
		if _, dup := seen[place.ID]; dup {
			continue
		}
		seen[place.ID] = struct{}{}
		places = append(places, place)
	}
	return places
}

// Emit resolves the plans that have a content page and keys them by plan
// id. Plans without a page are logged and left out.
func (r *Resolver) Emit(ctx context.Context, plans []*models.Plan, contentIDs map[string]struct{}) models.PlansBundle {
	logger := logging.CtxComponent(ctx, "planresolve")
	bundle := make(models.PlansBundle, len(plans))

	for _, plan := range plans {
		if _, ok := contentIDs[plan.ID]; !ok {
			logger.Info().Str("plan_id", plan.ID).Msg("Skipping plan without a content page")
			metrics.PlansOrphaned.Inc()
			continue
		}
		bundle[plan.ID] = r.Resolve(plan)
		metrics.PlansEmitted.Inc()
	}

	logger.Info().Int("plans", len(bundle)).Int("orphaned", len(plans)-len(bundle)).Msg("Resolved plans")
	return bundle
}
