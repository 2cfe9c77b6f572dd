// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

package planresolve

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/mrrakc/internal/metrics"
	"github.com/tomtom215/mrrakc/internal/models"
)

func fixtures(t *testing.T) ([]*models.Place, []*models.Person) {
	t.Helper()
	foo, err := models.DecodePlace("azilal/foo", []byte(`{"version":"v1","kind":"natural","spec":{"name":"Foo Gorge","location":{"province":"azilal"}}}`))
	if err != nil {
		t.Fatal(err)
	}
	bar, err := models.DecodePlace("azilal/bar", []byte(`{"version":"v1","kind":"cultural","spec":{"name":"Bar"}}`))
	if err != nil {
		t.Fatal(err)
	}
	jane, err := models.DecodePerson("jane-doe", []byte(`{"version":"v1","kind":"person","spec":{"name":"Jane Doe","role":"guide"}}`))
	if err != nil {
		t.Fatal(err)
	}
	return []*models.Place{foo, bar}, []*models.Person{jane}
}

func TestResolve_PlaceScenario(t *testing.T) {
	t.Parallel()

	places, people := fixtures(t)
	r := NewResolver(places, people)

	plan := &models.Plan{ID: "p", Spec: models.PlanSpec{Steps: []models.Step{
		{Title: "s", PlaceIDs: []string{"places/azilal/foo"}},
	}}}
	got := r.Resolve(plan)

	step := got.Spec.Steps[0]
	if len(step.Places) != 1 || step.Places[0].ID != "azilal/foo" {
		t.Fatalf("places = %v, want [azilal/foo]", step.Places)
	}

	data, err := json.Marshal(step)
	if err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		Places []map[string]any `json:"places"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Places[0]["id"] != "azilal/foo" || decoded.Places[0]["kind"] != "natural" {
		t.Errorf("encoded place = %v", decoded.Places[0])
	}
}

func TestResolve_Places(t *testing.T) {
	t.Parallel()

	places, people := fixtures(t)
	r := NewResolver(places, people)

	tests := []struct {
		name string
		refs []string
		want []string
	}{
		{"prefixed", []string{"places/azilal/foo"}, []string{"azilal/foo"}},
		{"bare", []string{"azilal/bar"}, []string{"azilal/bar"}},
		{"unresolved dropped", []string{"places/nope", "azilal/foo"}, []string{"azilal/foo"}},
		{"prefix stripped once", []string{"places/places/azilal/foo"}, []string{}},
		{"duplicates collapse", []string{"places/azilal/foo", "azilal/foo", "azilal/bar"}, []string{"azilal/foo", "azilal/bar"}},
		{"empty", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := r.resolvePlaces(tt.refs)
			if len(got) != len(tt.want) {
				t.Fatalf("resolved %d places, want %d", len(got), len(tt.want))
			}
			for i, p := range got {
				if p.ID != tt.want[i] {
					t.Errorf("places[%d] = %q, want %q", i, p.ID, tt.want[i])
				}
			}
		})
	}
}

func TestResolve_PeopleAndSubSteps(t *testing.T) {
	t.Parallel()

	places, people := fixtures(t)
	r := NewResolver(places, people)

	plan := &models.Plan{ID: "p", Spec: models.PlanSpec{Title: "Plan", Steps: []models.Step{
		{
			Title:  "day 1",
			People: []models.StepPerson{{ID: "people/jane-doe", Role: "guide"}, {ID: "people/ghost", Role: "cook"}},
			SubSteps: []models.Step{
				{Title: "morning", PlaceIDs: []string{"places/azilal/bar"}, SubSteps: []models.Step{
					{Title: "coffee", People: []models.StepPerson{{ID: "jane-doe"}}},
				}},
			},
		},
		{Title: "day 2"},
	}}}

	got := r.Resolve(plan)

	day1 := got.Spec.Steps[0]
	if len(day1.People) != 2 {
		t.Fatalf("people = %v, want both entries kept", day1.People)
	}
	if day1.People[0].Details == nil || day1.People[0].Details.Spec.Name != "Jane Doe" {
		t.Errorf("people[0].details = %v", day1.People[0].Details)
	}
	if day1.People[0].Role != "guide" {
		t.Errorf("role lost: %q", day1.People[0].Role)
	}
	if day1.People[1].Details != nil {
		t.Errorf("unresolved person got details %v", day1.People[1].Details)
	}
	if day1.Places != nil {
		t.Errorf("step without placeIds got places %v", day1.Places)
	}

	morning := day1.SubSteps[0]
	if len(morning.Places) != 1 || morning.Places[0].ID != "azilal/bar" {
		t.Errorf("sub step places = %v", morning.Places)
	}
	coffee := morning.SubSteps[0]
	if coffee.People[0].Details == nil {
		t.Error("second level sub step person not resolved")
	}

	if got.Spec.Steps[1].Title != "day 2" || got.Spec.Title != "Plan" {
		t.Errorf("plan body changed: %+v", got.Spec)
	}
}

func TestResolve_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	places, people := fixtures(t)
	r := NewResolver(places, people)

	plan := &models.Plan{ID: "p", Spec: models.PlanSpec{Steps: []models.Step{
		{Title: "s", PlaceIDs: []string{"azilal/foo"}, People: []models.StepPerson{{ID: "jane-doe"}},
			SubSteps: []models.Step{{Title: "c", PlaceIDs: []string{"azilal/bar"}}}},
	}}}

	got := r.Resolve(plan)
	if got == plan {
		t.Fatal("Resolve() returned its input")
	}

	step := plan.Spec.Steps[0]
	if step.Places != nil || step.People[0].Details != nil || step.SubSteps[0].Places != nil {
		t.Errorf("input plan was modified: %+v", step)
	}
}

// Not parallel: asserts on shared counters.
func TestEmit(t *testing.T) {
	places, people := fixtures(t)
	r := NewResolver(places, people)

	plans := []*models.Plan{
		{ID: "atlas/loop", Spec: models.PlanSpec{Steps: []models.Step{{Title: "a", PlaceIDs: []string{"places/azilal/foo"}}}}},
		{ID: "draft", Spec: models.PlanSpec{Title: "No page yet"}},
	}
	content := map[string]struct{}{"atlas/loop": {}, "unrelated": {}}

	emittedBefore := testutil.ToFloat64(metrics.PlansEmitted)
	orphanedBefore := testutil.ToFloat64(metrics.PlansOrphaned)

	bundle := r.Emit(context.Background(), plans, content)

	if len(bundle) != 1 {
		t.Fatalf("bundle = %v, want only atlas/loop", bundle)
	}
	loop, ok := bundle["atlas/loop"]
	if !ok {
		t.Fatal("atlas/loop missing from bundle")
	}
	if loop.Spec.Steps[0].Places[0].ID != "azilal/foo" {
		t.Error("emitted plan was not resolved")
	}
	if _, ok := bundle["draft"]; ok {
		t.Error("orphan plan emitted")
	}

	if d := testutil.ToFloat64(metrics.PlansEmitted) - emittedBefore; d != 1 {
		t.Errorf("PlansEmitted delta = %v, want 1", d)
	}
	if d := testutil.ToFloat64(metrics.PlansOrphaned) - orphanedBefore; d != 1 {
		t.Errorf("PlansOrphaned delta = %v, want 1", d)
	}
}

func TestEmit_NoContent(t *testing.T) {
	places, people := fixtures(t)
	r := NewResolver(places, people)

	bundle := r.Emit(context.Background(), []*models.Plan{{ID: "a"}, {ID: "b"}}, map[string]struct{}{})
	if len(bundle) != 0 {
		t.Errorf("bundle = %v, want empty", bundle)
	}
}

func TestResolve_KeepsAuthoredFields(t *testing.T) {
	t.Parallel()

	places, people := fixtures(t)
	r := NewResolver(places, people)

	raw := `{"version":"v1","kind":"plan","spec":{"title":"Loop","image":"loop.jpg","steps":[
		{"title":"s","type":"waypoint","image":"x.jpg","durationMin":30,"placeIds":["places/azilal/foo"],
		 "people":[{"id":"people/jane-doe","note":"meets you at the gate"}],
		 "subSteps":[{"title":"c","type":"stop","tip":"bring water","placeIds":["nowhere"]}]}
	]}}`
	plan, err := models.DecodePlan("atlas/loop", []byte(raw))
	if err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(r.Resolve(plan))
	if err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got["id"] != "atlas/loop" {
		t.Errorf("id = %v", got["id"])
	}
	spec := got["spec"].(map[string]any)
	if spec["image"] != "loop.jpg" {
		t.Errorf("spec.image = %v, want loop.jpg", spec["image"])
	}

	step := spec["steps"].([]any)[0].(map[string]any)
	if step["image"] != "x.jpg" || step["durationMin"] != float64(30) {
		t.Errorf("authored step fields lost: %v", step)
	}
	if ps, _ := step["places"].([]any); len(ps) != 1 || ps[0].(map[string]any)["id"] != "azilal/foo" {
		t.Errorf("step places = %v", step["places"])
	}

	person := step["people"].([]any)[0].(map[string]any)
	if person["note"] != "meets you at the gate" || person["details"] == nil {
		t.Errorf("step person = %v, want note kept and details added", person)
	}

	sub := step["subSteps"].([]any)[0].(map[string]any)
	if sub["tip"] != "bring water" {
		t.Errorf("sub step tip lost: %v", sub)
	}
	ps, ok := sub["places"].([]any)
	if !ok || len(ps) != 0 {
		t.Errorf("sub step places = %#v, want [] when placeIds resolve to nothing", sub["places"])
	}
}
