// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

package explorer

import (
	"errors"
	"reflect"
	"testing"
)

func TestEngine_InitialState(t *testing.T) {
	t.Parallel()

	e := NewEngine(testPoints())
	snap := e.Snapshot()

	if !snap.Filters.Empty() {
		t.Errorf("initial filters = %+v, want empty", snap.Filters)
	}
	if !reflect.DeepEqual(ids(snap.Points), ids(testPoints())) {
		t.Errorf("initial points = %v, want all", ids(snap.Points))
	}
	if snap.Total != 4 {
		t.Errorf("Total = %d, want 4", snap.Total)
	}
	if len(snap.Options.Categories) != 3 {
		t.Errorf("Options = %+v", snap.Options)
	}
	if snap.Camera == DefaultViewport().Default {
		t.Error("camera was not fitted to the initial points")
	}
}

func TestEngine_ToggleTwiceRestores(t *testing.T) {
	t.Parallel()

	for _, facet := range Facets {
		t.Run(string(facet), func(t *testing.T) {
			t.Parallel()

			e := NewEngine(testPoints())
			if err := e.Toggle(facet, "x"); err != nil {
				t.Fatal(err)
			}
			if err := e.Toggle(facet, "x"); err != nil {
				t.Fatal(err)
			}
			if !e.Snapshot().Filters.Empty() {
				t.Errorf("filters after double toggle = %+v", e.Snapshot().Filters)
			}
		})
	}
}

func TestEngine_FilteredIsSubset(t *testing.T) {
	t.Parallel()

	e := NewEngine(testPoints())
	all := map[string]bool{}
	for _, id := range ids(testPoints()) {
		all[id] = true
	}

	steps := []func(){
		func() { _ = e.Toggle(FacetCategory, "film") },
		func() { _ = e.Toggle(FacetProvince, "casablanca") },
		func() { e.SetQuery("RIALTO") },
		func() { _ = e.Toggle(FacetPerson, "omar") },
	}
	for i, step := range steps {
		step()
		for _, p := range e.Snapshot().Points {
			if !all[p.ID] {
				t.Errorf("step %d: point %q not in input", i, p.ID)
			}
		}
	}
	if n := len(e.Snapshot().Points); n != 0 {
		t.Errorf("after all filters got %d points, want 0", n)
	}
}

func TestEngine_ClearRestoresAll(t *testing.T) {
	t.Parallel()

	e := NewEngine(testPoints())
	_ = e.Toggle(FacetCategory, "art")
	_ = e.Toggle(FacetPeriod, "modern")
	e.SetQuery("gallery")
	if got := ids(e.Snapshot().Points); !reflect.DeepEqual(got, []string{"casablanca/gallery"}) {
		t.Fatalf("filtered = %v", got)
	}

	e.Clear()
	snap := e.Snapshot()
	if !snap.Filters.Empty() || snap.Filters.Query != "" {
		t.Errorf("filters after Clear = %+v", snap.Filters)
	}
	if !reflect.DeepEqual(ids(snap.Points), ids(testPoints())) {
		t.Errorf("points after Clear = %v, want all", ids(snap.Points))
	}
}

func TestEngine_SubscribeOneSnapshotPerTransition(t *testing.T) {
	t.Parallel()

	e := NewEngine(testPoints())
	_ = e.Toggle(FacetCategory, "film")
	_ = e.Toggle(FacetProvince, "casablanca")
	e.SetQuery("cinema")

	var snaps []Snapshot
	stop := e.Subscribe(func(s Snapshot) { snaps = append(snaps, s) })

	e.Clear()

	if len(snaps) != 1 {
		t.Fatalf("Clear produced %d snapshots, want 1", len(snaps))
	}
	if !snaps[0].Filters.Empty() {
		t.Errorf("subscriber saw partially cleared filters %+v", snaps[0].Filters)
	}
	if len(snaps[0].Points) != 4 {
		t.Errorf("subscriber saw %d points, want 4", len(snaps[0].Points))
	}

	_ = e.Toggle(FacetCategory, "art")
	if len(snaps) != 2 {
		t.Fatalf("Toggle produced %d snapshots in total, want 2", len(snaps))
	}

	stop()
	e.SetQuery("x")
	if len(snaps) != 2 {
		t.Errorf("unsubscribed callback still called")
	}
}

func TestEngine_SnapshotIsolation(t *testing.T) {
	t.Parallel()

	e := NewEngine(testPoints())
	_ = e.Toggle(FacetCategory, "film")
	before := e.Snapshot()

	_ = e.Toggle(FacetCategory, "art")
	if before.Filters.Categories.Has("art") {
		t.Error("earlier snapshot changed after a later transition")
	}
}

func TestEngine_UnknownFacet(t *testing.T) {
	t.Parallel()

	e := NewEngine(testPoints())
	calls := 0
	e.Subscribe(func(Snapshot) { calls++ })

	if err := e.Toggle(Facet("colour"), "red"); !errors.Is(err, ErrUnknownFacet) {
		t.Errorf("Toggle() error = %v, want ErrUnknownFacet", err)
	}
	if calls != 0 {
		t.Errorf("failed transition notified %d times", calls)
	}
}

func TestEngine_SetPointsKeepsFilters(t *testing.T) {
	t.Parallel()

	e := NewEngine(nil)
	if cam := e.Snapshot().Camera; cam != DefaultViewport().Default {
		t.Errorf("empty engine camera = %+v, want default", cam)
	}

	_ = e.Toggle(FacetCategory, "film")
	e.SetPoints(testPoints())

	snap := e.Snapshot()
	if got := ids(snap.Points); !reflect.DeepEqual(got, []string{"casablanca/cinema", "unknown/site"}) {
		t.Errorf("points = %v", got)
	}
	if len(snap.Options.Provinces) != 2 {
		t.Errorf("options not recomputed: %+v", snap.Options)
	}
}

func TestEngine_Apply(t *testing.T) {
	t.Parallel()

	e := NewEngine(testPoints())
	in := Filters{Query: "art", Categories: NewSelection("art")}
	e.Apply(in)

	if got := ids(e.Snapshot().Points); !reflect.DeepEqual(got, []string{"casablanca/gallery"}) {
		t.Errorf("points = %v", got)
	}

	in.Categories["film"] = struct{}{}
	if e.Snapshot().Filters.Categories.Has("film") {
		t.Error("Apply() kept a reference to the caller's selection")
	}
}

func TestEngine_WithViewport(t *testing.T) {
	t.Parallel()

	v := DefaultViewport()
	v.SinglePointZoom = 10
	e := NewEngine(testPoints()[:1], WithViewport(v))
	if z := e.Snapshot().Camera.Zoom; z != 10 {
		t.Errorf("Zoom = %v, want 10", z)
	}
}
