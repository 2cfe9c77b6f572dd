// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

package explorer

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"golang.org/x/text/cases"

	"github.com/tomtom215/mrrakc/internal/models"
)

// ErrUnknownFacet is returned for a facet name the engine does not filter on.
var ErrUnknownFacet = errors.New("unknown facet")

// Facet is a filterable dimension of the point list.
type Facet string

const (
	FacetCategory Facet = "category"
	FacetProvince Facet = "province"
	FacetPeriod   Facet = "period"
	FacetPerson   Facet = "person"
)

// Facets lists every facet in display order.
var Facets = []Facet{FacetCategory, FacetProvince, FacetPeriod, FacetPerson}

// ParseFacet converts a facet name to a Facet.
func ParseFacet(name string) (Facet, error) {
	f := Facet(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Facets {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFacet, name)
}

// Selection is the set of selected values of one facet.
type Selection map[string]struct{}

// NewSelection returns a selection holding values.
func NewSelection(values ...string) Selection {
	s := make(Selection, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Has reports whether v is selected.
func (s Selection) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Values returns the selected values, sorted.
func (s Selection) Values() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON encodes the selection as a sorted list.
func (s Selection) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

func (s Selection) clone() Selection {
	out := make(Selection, len(s))
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}

// Filters is the complete filter state. The zero value applies no filter.
type Filters struct {
	Query      string    `json:"query"`
	Categories Selection `json:"categories"`
	Provinces  Selection `json:"provinces"`
	Periods    Selection `json:"timePeriods"`
	People     Selection `json:"people"`
}

// Empty reports whether no filter is active.
func (f Filters) Empty() bool {
	return f.Query == "" && len(f.Categories) == 0 && len(f.Provinces) == 0 &&
		len(f.Periods) == 0 && len(f.People) == 0
}

// Clone returns a deep copy of f.
func (f Filters) Clone() Filters {
	return Filters{
		Query:      f.Query,
		Categories: f.Categories.clone(),
		Provinces:  f.Provinces.clone(),
		Periods:    f.Periods.clone(),
		People:     f.People.clone(),
	}
}

// selection returns a pointer to the selection of facet.
func (f *Filters) selection(facet Facet) (*Selection, error) {
	switch facet {
	case FacetCategory:
		return &f.Categories, nil
	case FacetProvince:
		return &f.Provinces, nil
	case FacetPeriod:
		return &f.Periods, nil
	case FacetPerson:
		return &f.People, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFacet, facet)
}

// Match reports whether point passes every active filter.
//
// The text query is a case-insensitive substring match on name or
// description. Category and province must be selected values. Time periods
// and people pass when any of the point's values is selected.
func Match(point models.MapPoint, f Filters) bool {
	return newMatcher(f).match(point)
}

// matcher holds the folded query. A cases.Caser keeps state, so one matcher
// is used per goroutine.
type matcher struct {
	f     Filters
	fold  cases.Caser
	query string
}

func newMatcher(f Filters) *matcher {
	m := &matcher{f: f, fold: cases.Fold()}
	if f.Query != "" {
		m.query = m.fold.String(f.Query)
	}
	return m
}

func (m *matcher) match(p models.MapPoint) bool {
	if m.query != "" &&
		!strings.Contains(m.fold.String(p.Name), m.query) &&
		!strings.Contains(m.fold.String(p.Description), m.query) {
		return false
	}
	if len(m.f.Categories) > 0 && !m.f.Categories.Has(p.Category) {
		return false
	}
	if len(m.f.Provinces) > 0 && !m.f.Provinces.Has(p.Location.Province) {
		return false
	}
	if len(m.f.Periods) > 0 && !anySelected(m.f.Periods, p.TimePeriods) {
		return false
	}
	if len(m.f.People) > 0 {
		found := false
		for _, person := range p.People {
			if m.f.People.Has(person.ID) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func anySelected(sel Selection, values []string) bool {
	for _, v := range values {
		if sel.Has(v) {
			return true
		}
	}
	return false
}

// Options holds the distinct facet values of a point list, each sorted.
type Options struct {
	Categories []string `json:"categories"`
	Provinces  []string `json:"provinces"`
	Periods    []string `json:"timePeriods"`
	People     []string `json:"people"`
}

// ExtractOptions collects the non-empty facet values observed in points.
func ExtractOptions(points []models.MapPoint) Options {
	categories := Selection{}
	provinces := Selection{}
	periods := Selection{}
	people := Selection{}

	for _, p := range points {
		if p.Category != "" {
			categories[p.Category] = struct{}{}
		}
		if p.Location.Province != "" {
			provinces[p.Location.Province] = struct{}{}
		}
		for _, tp := range p.TimePeriods {
			if tp != "" {
				periods[tp] = struct{}{}
			}
		}
		for _, person := range p.People {
			if person.ID != "" {
				people[person.ID] = struct{}{}
			}
		}
	}

	return Options{
		Categories: categories.Values(),
		Provinces:  provinces.Values(),
		Periods:    periods.Values(),
		People:     people.Values(),
	}
}

// Values returns the option list of facet.
func (o Options) Values(facet Facet) []string {
	switch facet {
	case FacetCategory:
		return o.Categories
	case FacetProvince:
		return o.Provinces
	case FacetPeriod:
		return o.Periods
	case FacetPerson:
		return o.People
	}
	return nil
}
