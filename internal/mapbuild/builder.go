// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

package mapbuild

import (
	"context"
	"fmt"

	"github.com/jmespath/go-jmespath"

	"github.com/tomtom215/mrrakc/internal/catalog"
	"github.com/tomtom215/mrrakc/internal/logging"
	"github.com/tomtom215/mrrakc/internal/metrics"
	"github.com/tomtom215/mrrakc/internal/models"
)

// Builder resolves map definitions against a loaded places collection.
// It is not safe for concurrent use.
type Builder struct {
	places      []*models.Place
	index       *catalog.Index[*models.Place]
	projections []any
}

// NewBuilder returns a Builder over places. Places are kept in load order,
// which is the order query matches are reported in.
func NewBuilder(places []*models.Place) *Builder {
	return &Builder{
		places: places,
		index:  catalog.NewIndex(places),
	}
}

// Build resolves every map definition and keys the results by map id.
// When two definitions share an id the later one wins.
func (b *Builder) Build(ctx context.Context, defs []*models.MapDefinition) models.MapsBundle {
	logger := logging.CtxComponent(ctx, "mapbuild")
	bundle := make(models.MapsBundle, len(defs))

	for _, def := range defs {
		key := def.Key()
		if prev, dup := bundle[key]; dup {
			logger.Warn().
				Str("map_id", key).
				Str("file", def.ID).
				Str("previous_title", prev.Title).
				Msg("Duplicate map id, later definition wins")
		}
		bundle[key] = b.Resolve(ctx, def)
	}

	logger.Info().Int("maps", len(bundle)).Msg("Built maps")
	return bundle
}

// Resolve computes the place ids of one map: the explicit ids in authored
// order, then the query matches, deduplicated with the first occurrence
// kept. Explicit ids are matched verbatim.
func (b *Builder) Resolve(ctx context.Context, def *models.MapDefinition) models.ResolvedMap {
	logger := logging.CtxComponent(ctx, "mapbuild").With().Str("map_id", def.Key()).Logger()
	strategy := def.Spec.Strategy

	var selected []string
	if strategy.UsesIDs() {
		for _, id := range def.Spec.Content.IDs {
			if b.index.Has(id) {
				selected = append(selected, id)
			}
		}
	}
	if strategy.UsesQuery() && def.Spec.Content.Query != "" {
		ids, err := b.Query(def.Spec.Content.Query)
		if err != nil {
			metrics.MapQueryErrors.Inc()
			logger.Error().Err(err).Str("query", def.Spec.Content.Query).Msg("Map query failed, no places selected by it")
		}
		selected = append(selected, ids...)
	}
	if !strategy.UsesIDs() && !strategy.UsesQuery() {
		logger.Warn().Str("strategy", string(strategy)).Msg("Unknown map strategy, map is empty")
	}

	placeIDs := dedupe(selected)
	metrics.RecordMap(string(strategy), len(placeIDs))
	logger.Debug().Str("strategy", string(strategy)).Int("places", len(placeIDs)).Msg("Resolved map")

	return models.ResolvedMap{
		ID:          def.Key(),
		Title:       def.Spec.Title,
		Description: def.Spec.Description,
		Tags:        def.Tags(),
		PlaceIDs:    placeIDs,
	}
}

// Query evaluates a boolean filter expression against every place
// projection, as "[?<expr>]", and returns the matching place ids in load
// order.
func (b *Builder) Query(expr string) ([]string, error) {
	jp, err := jmespath.Compile("[?" + expr + "]")
	if err != nil {
		return nil, fmt.Errorf("compile query %q: %w", expr, err)
	}

	result, err := jp.Search(b.projected())
	if err != nil {
		return nil, fmt.Errorf("evaluate query %q: %w", expr, err)
	}

	matches, ok := result.([]any)
	if !ok {
		return nil, fmt.Errorf("query %q returned %T, want a list", expr, result)
	}

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		obj, ok := m.(map[string]any)
		if !ok {
			continue
		}
		if id, ok := obj[IDField].(string); ok && b.index.Has(id) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// projected returns the place projections, building them on first use.
func (b *Builder) projected() []any {
	if b.projections == nil {
		b.projections = make([]any, 0, len(b.places))
		for _, p := range b.places {
			b.projections = append(b.projections, Projection(p))
		}
	}
	return b.projections
}

// dedupe removes repeated ids, keeping the first occurrence. The result is
// never nil so it encodes as [].
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
