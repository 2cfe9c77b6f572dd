// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

package models

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Strategy selects how a map definition picks its places.
type Strategy string

const (
	// StrategyExplicit selects the places listed in content.ids.
	StrategyExplicit Strategy = "explicit"
	// StrategyQuery selects the places matching content.query.
	StrategyQuery Strategy = "query"
	// StrategyMixed is the explicit list followed by the query matches.
	StrategyMixed Strategy = "mixed"
)

// UsesIDs reports whether the strategy reads content.ids.
func (s Strategy) UsesIDs() bool {
	return s == StrategyExplicit || s == StrategyMixed
}

// UsesQuery reports whether the strategy evaluates content.query.
func (s Strategy) UsesQuery() bool {
	return s == StrategyQuery || s == StrategyMixed
}

// MapContent lists the selection inputs of a map definition.
type MapContent struct {
	IDs   []string `json:"ids,omitempty" validate:"dive,slug"`
	Query string   `json:"query,omitempty"`
}

// MapSpec is the authored body of a map definition.
type MapSpec struct {
	ID          string     `json:"id"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description,omitempty"`
	Strategy    Strategy   `json:"strategy" validate:"oneof=explicit query mixed"`
	Content     MapContent `json:"content"`
}

// MapDefinition declares a named collection of places.
type MapDefinition struct {
	// ID is derived from the file path; the bundle is keyed by Spec.ID.
	ID       string    `json:"-"`
	Version  string    `json:"version" validate:"required"`
	Kind     string    `json:"kind,omitempty"`
	Metadata *Metadata `json:"metadata,omitempty"`
	Spec     MapSpec   `json:"spec"`
}

// RecordID implements catalog.Identified.
func (m *MapDefinition) RecordID() string { return m.ID }

// Key is the bundle key of the map: spec.id, or the derived id when
// spec.id is empty.
func (m *MapDefinition) Key() string {
	if m.Spec.ID != "" {
		return m.Spec.ID
	}
	return m.ID
}

// Tags returns the map's tags, never nil.
func (m *MapDefinition) Tags() []string {
	if m.Metadata == nil || m.Metadata.Tags == nil {
		return []string{}
	}
	return m.Metadata.Tags
}

// DecodeMap decodes an authored map definition.
func DecodeMap(id string, raw []byte) (*MapDefinition, error) {
	m := &MapDefinition{}
	if err := json.Unmarshal(raw, m); err != nil {
		return nil, fmt.Errorf("decode map %s: %w", id, err)
	}
	m.ID = id
	return m, nil
}

// ResolvedMap is one entry of maps.json. It carries place ids only; the
// renderer joins them back against the places collection.
type ResolvedMap struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags"`
	PlaceIDs    []string `json:"placeIds"`
}

// MapsBundle is the content of maps.json, keyed by map id.
type MapsBundle map[string]ResolvedMap
