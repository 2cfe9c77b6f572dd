// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

package models

import (
	"fmt"

	"github.com/goccy/go-json"
)

// EstimatedDuration is how long a plan takes, e.g. {2, "days"}.
type EstimatedDuration struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Transport describes how to get from one step to the next.
type Transport struct {
	Mode        string  `json:"mode" validate:"required"`
	DurationMin float64 `json:"durationMin" validate:"gte=0"`
	Advice      string  `json:"advice,omitempty"`
}

// StepPerson references a person from a plan step. Details is filled by
// the plan resolver when the reference resolves.
type StepPerson struct {
	ID      string  `json:"id" validate:"required,slug"`
	Role    string  `json:"role,omitempty"`
	Details *Person `json:"details,omitempty" validate:"-"`
}

// Step is one node of a plan's step tree.
type Step struct {
	Title           string       `json:"title" validate:"required"`
	Description     string       `json:"description,omitempty"`
	Type            string       `json:"type"`
	Optional        bool         `json:"optional,omitempty"`
	PlaceIDs        []string     `json:"placeIds,omitempty" validate:"dive,slug"`
	People          []StepPerson `json:"people,omitempty" validate:"dive"`
	TransportToNext *Transport   `json:"transportToNext,omitempty"`
	SubSteps        []Step       `json:"subSteps,omitempty" validate:"dive"`

	// Places is set by the plan resolver when PlaceIDs was authored, and is
	// then always encoded, as [] when nothing resolved.
	Places []*Place `json:"-" validate:"-"`

	// Fields is the authored step object.
	Fields map[string]any `json:"-"`
}

// UnmarshalJSON decodes the typed step and keeps the authored object.
func (s *Step) UnmarshalJSON(data []byte) error {
	type plain Step
	var typed plain
	if err := json.Unmarshal(data, &typed); err != nil {
		return err
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*s = Step(typed)
	s.Fields = fields
	return nil
}

// MarshalJSON emits the authored step with places, people and subSteps
// replaced by their resolved forms. Other authored fields pass through.
func (s Step) MarshalJSON() ([]byte, error) {
	out, err := s.baseFields()
	if err != nil {
		return nil, err
	}
	if s.PlaceIDs != nil {
		places := s.Places
		if places == nil {
			places = []*Place{}
		}
		out["places"] = places
	}
	if s.People != nil {
		out["people"] = s.peopleFields()
	}
	if s.SubSteps != nil {
		out["subSteps"] = s.SubSteps
	}
	return json.Marshal(out)
}

// baseFields returns a copy of the authored object, or of the typed step
// when it was built in code.
func (s Step) baseFields() (map[string]any, error) {
	if s.Fields != nil {
		out := make(map[string]any, len(s.Fields)+1)
		for k, v := range s.Fields {
			out[k] = v
		}
		return out, nil
	}
	type plain Step
	raw, err := json.Marshal(plain(s))
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// peopleFields merges each person's details into the authored entry so
// extra authored keys survive.
func (s Step) peopleFields() []any {
	authored, _ := s.Fields["people"].([]any)
	out := make([]any, len(s.People))
	for i, sp := range s.People {
		var entry map[string]any
		if len(authored) == len(s.People) {
			entry, _ = authored[i].(map[string]any)
		}
		if entry == nil {
			out[i] = sp
			continue
		}
		merged := make(map[string]any, len(entry)+1)
		for k, v := range entry {
			merged[k] = v
		}
		if sp.Details != nil {
			merged["details"] = sp.Details
		}
		out[i] = merged
	}
	return out
}

// PlanSpec is the authored body of a plan.
type PlanSpec struct {
	Title             string            `json:"title" validate:"required"`
	Description       string            `json:"description,omitempty"`
	EstimatedDuration EstimatedDuration `json:"estimatedDuration"`
	Difficulty        string            `json:"difficulty,omitempty"`
	Steps             []Step            `json:"steps" validate:"dive"`
}

// Plan is an authored itinerary.
type Plan struct {
	ID string `json:"id"`
	Envelope
	Spec PlanSpec `json:"spec"`

	// Fields is the whole authored document.
	Fields map[string]any `json:"-"`
}

// MarshalJSON emits the authored document with "id" set to the derived id
// and spec.steps replaced by the typed, possibly resolved, steps.
func (p Plan) MarshalJSON() ([]byte, error) {
	if p.Fields == nil {
		type plain Plan
		return json.Marshal(plain(p))
	}
	out := withID(p.Fields, p.ID)
	spec := map[string]any{}
	if authored, ok := p.Fields["spec"].(map[string]any); ok {
		for k, v := range authored {
			spec[k] = v
		}
	}
	if p.Spec.Steps != nil {
		spec["steps"] = p.Spec.Steps
	}
	out["spec"] = spec
	return json.Marshal(out)
}

// RecordID implements catalog.Identified.
func (p *Plan) RecordID() string { return p.ID }

// WalkSteps calls fn for every step in depth-first order, parent before
// children.
func (p *Plan) WalkSteps(fn func(*Step)) {
	walkSteps(p.Spec.Steps, fn)
}

func walkSteps(steps []Step, fn func(*Step)) {
	for i := range steps {
		fn(&steps[i])
		walkSteps(steps[i].SubSteps, fn)
	}
}

// DecodePlan decodes an authored plan and attaches its derived id.
func DecodePlan(id string, raw []byte) (*Plan, error) {
	p := &Plan{}
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("decode plan %s: %w", id, err)
	}
	if err := json.Unmarshal(raw, &p.Fields); err != nil {
		return nil, fmt.Errorf("decode plan %s: %w", id, err)
	}
	p.ID = id
	return p, nil
}

// PlansBundle is the content of plans.json, keyed by plan id.
type PlansBundle map[string]*Plan
