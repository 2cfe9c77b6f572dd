// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

/*
Package models defines the authored records and generated bundles of the
Mrrakc site.

Every authored record shares an envelope:

	{ "version": "...", "kind": "...", "metadata": { "tags": [...] }, "spec": { ... } }

Record ids are never authored. They are derived from the record's file path
relative to its collection root with the .json extension removed, so
data/places/azilal/foo.json has id "azilal/foo". See internal/catalog.

Key Components:

  - Place, Person: read-only records; Fields keeps the whole authored
    document so freeform spec fields survive into the generated bundles.
  - MapDefinition: declares how to select places (explicit, query, mixed).
  - Plan, Step: itineraries; steps recurse through SubSteps. Both keep the
    authored object too, and only the resolved keys (places, people,
    subSteps, steps) are replaced when they are encoded.
  - ResolvedMap, MapsBundle, PlansBundle: the shapes written to maps.json
    and plans.json for the page renderer.
  - MapPoint: the shape the browser map explorer filters over.
*/
package models
