// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

package explorer

import (
	"sync"

	"github.com/tomtom215/mrrakc/internal/models"
)

// Snapshot is the engine state after one transition.
type Snapshot struct {
	Filters Filters           `json:"filters"`
	Options Options           `json:"options"`
	Points  []models.MapPoint `json:"points"`
	Camera  Camera            `json:"camera"`
	Total   int               `json:"total"`
}

// Option configures an Engine.
type Option func(*Engine)

// WithViewport sets the viewport used to fit the camera.
func WithViewport(v ViewportOptions) Option {
	return func(e *Engine) { e.viewport = v }
}

// Engine keeps a filtered view over a fixed point list. Every state change
// is one atomic transition: the filtered points, facet options and camera
// are recomputed before subscribers are notified, and each subscriber sees
// exactly one snapshot per transition.
type Engine struct {
	mu       sync.Mutex
	viewport ViewportOptions
	points   []models.MapPoint
	filters  Filters
	options  Options
	visible  []models.MapPoint
	camera   Camera

	subMu  sync.Mutex
	nextID int
	subs   map[int]func(Snapshot)
	order  []int
}

// NewEngine returns an engine over points with no filter applied.
func NewEngine(points []models.MapPoint, opts ...Option) *Engine {
	e := &Engine{
		viewport: DefaultViewport(),
		filters:  emptyFilters(""),
		subs:     make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.points = points
	e.options = ExtractOptions(points)
	e.recompute()
	return e
}

func emptyFilters(query string) Filters {
	return Filters{
		Query:      query,
		Categories: Selection{},
		Provinces:  Selection{},
		Periods:    Selection{},
		People:     Selection{},
	}
}

// Subscribe registers fn to receive a snapshot after every transition and
// returns a function that removes it. Subscribers run synchronously on the
// goroutine that changed the state, in registration order.
func (e *Engine) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	e.subMu.Lock()
	defer e.subMu.Unlock()

	id := e.nextID
	e.nextID++
	e.subs[id] = fn
	e.order = append(e.order, id)

	return func() {
		e.subMu.Lock()
		defer e.subMu.Unlock()
		delete(e.subs, id)
		for i, v := range e.order {
			if v == id {
				e.order = append(e.order[:i], e.order[i+1:]...)
				break
			}
		}
	}
}

// SetPoints replaces the point list, recomputing facet options. The current
// filters are kept.
func (e *Engine) SetPoints(points []models.MapPoint) {
	e.transition(func() error {
		e.points = points
		e.options = ExtractOptions(points)
		return nil
	})
}

// SetQuery sets the free-text query. An empty query disables text search.
func (e *Engine) SetQuery(query string) {
	e.transition(func() error {
		e.filters.Query = query
		return nil
	})
}

// Toggle adds value to the selection of facet, or removes it when already
// selected.
func (e *Engine) Toggle(facet Facet, value string) error {
	return e.transition(func() error {
		sel, err := e.filters.selection(facet)
		if err != nil {
			return err
		}
		if sel.Has(value) {
			delete(*sel, value)
		} else {
			(*sel)[value] = struct{}{}
		}
		return nil
	})
}

// Clear resets every selection and the query in one transition.
func (e *Engine) Clear() {
	e.transition(func() error {
		e.filters = emptyFilters("")
		return nil
	})
}

// Apply replaces the whole filter state in one transition.
func (e *Engine) Apply(f Filters) {
	e.transition(func() error {
		next := emptyFilters(f.Query)
		for facet, src := range map[Facet]Selection{
			FacetCategory: f.Categories,
			FacetProvince: f.Provinces,
			FacetPeriod:   f.Periods,
			FacetPerson:   f.People,
		} {
			dst, _ := next.selection(facet)
			*dst = src.clone()
		}
		e.filters = next
		return nil
	})
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// transition applies change under the state lock, recomputes the derived
// view and then notifies subscribers outside the lock. A failed change
// leaves the state untouched and notifies nobody.
func (e *Engine) transition(change func() error) error {
	e.mu.Lock()
	if err := change(); err != nil {
		e.mu.Unlock()
		return err
	}
	e.recompute()
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.notify(snap)
	return nil
}

// recompute derives the visible points and camera. Caller holds mu.
func (e *Engine) recompute() {
	m := newMatcher(e.filters)
	visible := make([]models.MapPoint, 0, len(e.points))
	for _, p := range e.points {
		if m.match(p) {
			visible = append(visible, p)
		}
	}
	e.visible = visible
	e.camera = Fit(visible, e.viewport)
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Filters: e.filters.Clone(),
		Options: e.options,
		Points:  e.visible,
		Camera:  e.camera,
		Total:   len(e.points),
	}
}

func (e *Engine) notify(snap Snapshot) {
	e.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(e.order))
	for _, id := range e.order {
		fns = append(fns, e.subs[id])
	}
	e.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
