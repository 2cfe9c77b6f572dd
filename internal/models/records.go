// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

package models

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Collection names. They double as the directory names under the data root
// and as the reference prefixes used in authored cross-references.
const (
	CollectionPlaces = "places"
	CollectionPeople = "people"
	CollectionMaps   = "maps"
	CollectionPlans  = "plans"
)

// Metadata carries free-form tags shared by every record kind.
type Metadata struct {
	Tags []string `json:"tags,omitempty"`
}

// Envelope is the header common to all authored records.
type Envelope struct {
	Version  string    `json:"version" validate:"required"`
	Kind     string    `json:"kind" validate:"required"`
	Metadata *Metadata `json:"metadata,omitempty"`
}

// Tags returns the record's tags, never nil.
func (e *Envelope) Tags() []string {
	if e.Metadata == nil || e.Metadata.Tags == nil {
		return []string{}
	}
	return e.Metadata.Tags
}

// Location is a geographic position with an optional province reference.
type Location struct {
	Province  string   `json:"province,omitempty"`
	Latitude  float64  `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64  `json:"longitude" validate:"gte=-180,lte=180"`
	Altitude  *float64 `json:"altitude,omitempty"`
}

// PlacePerson links a place to a person record.
type PlacePerson struct {
	ID           string   `json:"id" validate:"required,slug"`
	Relationship []string `json:"relationship,omitempty"`
	Comment      string   `json:"comment,omitempty"`
}

// Link is an external resource attached to a place.
type Link struct {
	URL   string `json:"url" validate:"required,url"`
	Type  string `json:"type"`
	Title string `json:"title"`
}

// AccessOption is one way of visiting a place, with an optional fee.
type AccessOption struct {
	Title       string   `json:"title" validate:"required"`
	Modality    string   `json:"modality,omitempty"`
	Audience    string   `json:"audience,omitempty"`
	EntranceFee *float64 `json:"entranceFee,omitempty" validate:"omitempty,gte=0"`
}

// Access describes how a place can be visited.
type Access struct {
	Type    string         `json:"type"`
	Status  string         `json:"status,omitempty"`
	Options []AccessOption `json:"options,omitempty" validate:"dive"`
}

// PlaceSpec holds the typed part of a place's spec. Fields not named here
// are kept in Place.Fields.
type PlaceSpec struct {
	ID          string        `json:"id,omitempty"`
	Name        string        `json:"name" validate:"required"`
	Description string        `json:"description"`
	Category    string        `json:"category,omitempty"`
	Location    Location      `json:"location"`
	People      []PlacePerson `json:"people,omitempty" validate:"dive"`
	TimePeriods []string      `json:"timePeriods,omitempty"`
	Links       []Link        `json:"links,omitempty" validate:"dive"`
	Access      *Access       `json:"access,omitempty"`
}

// Place is an authored point of interest.
type Place struct {
	// ID is derived from the file path, never from content.
	ID string `json:"id"`
	Envelope
	Spec PlaceSpec `json:"spec"`

	// Fields is the whole authored document.
	Fields map[string]any `json:"-"`
}

// RecordID implements catalog.Identified.
func (p *Place) RecordID() string { return p.ID }

// MarshalJSON emits the authored document with "id" set to the derived id.
func (p Place) MarshalJSON() ([]byte, error) {
	if p.Fields == nil {
		type plain Place
		return json.Marshal(plain(p))
	}
	return json.Marshal(withID(p.Fields, p.ID))
}

// PersonSpec holds the typed part of a person's spec.
type PersonSpec struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name" validate:"required"`
	Role string `json:"role,omitempty"`
	Bio  string `json:"bio,omitempty"`
}

// Person is an authored record about an individual.
type Person struct {
	ID string `json:"id"`
	Envelope
	Spec PersonSpec `json:"spec"`

	Fields map[string]any `json:"-"`
}

// RecordID implements catalog.Identified.
func (p *Person) RecordID() string { return p.ID }

// MarshalJSON emits the authored document with "id" set to the derived id.
func (p Person) MarshalJSON() ([]byte, error) {
	if p.Fields == nil {
		type plain Person
		return json.Marshal(plain(p))
	}
	return json.Marshal(withID(p.Fields, p.ID))
}

// withID returns a shallow copy of fields with "id" overwritten.
func withID(fields map[string]any, id string) map[string]any {
	out := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["id"] = id
	return out
}

// DecodePlace decodes an authored place document and attaches its derived id.
func DecodePlace(id string, raw []byte) (*Place, error) {
	p := &Place{}
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("decode place %s: %w", id, err)
	}
	if err := json.Unmarshal(raw, &p.Fields); err != nil {
		return nil, fmt.Errorf("decode place %s: %w", id, err)
	}
	p.ID = id
	return p, nil
}

// DecodePerson decodes an authored person document and attaches its derived id.
func DecodePerson(id string, raw []byte) (*Person, error) {
	p := &Person{}
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("decode person %s: %w", id, err)
	}
	if err := json.Unmarshal(raw, &p.Fields); err != nil {
		return nil, fmt.Errorf("decode person %s: %w", id, err)
	}
	p.ID = id
	return p, nil
}
