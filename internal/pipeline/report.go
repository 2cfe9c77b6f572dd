// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

package pipeline

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/tomtom215/mrrakc/internal/catalog"
	"github.com/tomtom215/mrrakc/internal/logging"
	"github.com/tomtom215/mrrakc/internal/metrics"
	"github.com/tomtom215/mrrakc/internal/models"
	"github.com/tomtom215/mrrakc/internal/validation"
)

// Issue is one field that failed validation.
type Issue struct {
	Collection string `json:"collection"`
	ID         string `json:"id"`
	Field      string `json:"field,omitempty"`
	Message    string `json:"message"`
}

// DanglingRef is a reference to a record that does not exist. Dangling
// references are dropped from the bundles and are reported, not fatal.
type DanglingRef struct {
	Collection string `json:"collection"`
	ID         string `json:"id"`
	Target     string `json:"target"`
	Ref        string `json:"ref"`
}

// Report is the result of checking loaded collections.
type Report struct {
	Checked  map[string]int `json:"checked"`
	Invalid  []Issue        `json:"invalid"`
	Dangling []DanglingRef  `json:"dangling"`
	Orphans  []string       `json:"orphanPlans"`
}

// InvalidCount returns the number of distinct invalid records.
func (r *Report) InvalidCount() int {
	seen := make(map[string]struct{})
	for _, is := range r.Invalid {
		seen[is.Collection+"\x00"+is.ID] = struct{}{}
	}
	return len(seen)
}

// Issues returns the validation issues in collection then load order.
func (r *Report) Issues() []Issue { return r.Invalid }

// OK reports whether every record is valid.
func (r *Report) OK() bool { return len(r.Invalid) == 0 }

// Check validates every record of cols and looks for dangling references
// and plans without a content page.
func Check(cols *Collections) *Report {
	r := &Report{
		Checked:  make(map[string]int),
		Invalid:  []Issue{},
		Dangling: []DanglingRef{},
		Orphans:  []string{},
	}

	for _, p := range cols.Places {
		r.validate(models.CollectionPlaces, p.ID, p)
	}
	for _, p := range cols.People {
		r.validate(models.CollectionPeople, p.ID, p)
	}
	for _, m := range cols.Maps {
		r.validate(models.CollectionMaps, m.ID, m)
	}
	for _, p := range cols.Plans {
		r.validate(models.CollectionPlans, p.ID, p)
	}

	places := catalog.NewIndex(cols.Places)
	people := catalog.NewIndex(cols.People)

	for _, p := range cols.Places {
		for _, pp := range p.Spec.People {
			if _, ok := people.Resolve(pp.ID, models.CollectionPeople); !ok {
				r.dangling(models.CollectionPlaces, p.ID, models.CollectionPeople, pp.ID)
			}
		}
	}
	for _, m := range cols.Maps {
		if !m.Spec.Strategy.UsesIDs() {
			continue
		}
		for _, id := range m.Spec.Content.IDs {
			if !places.Has(id) {
				r.dangling(models.CollectionMaps, m.ID, models.CollectionPlaces, id)
			}
		}
	}
	for _, plan := range cols.Plans {
		plan.WalkSteps(func(s *models.Step) {
			for _, ref := range s.PlaceIDs {
				if _, ok := places.Resolve(ref, models.CollectionPlaces); !ok {
					r.dangling(models.CollectionPlans, plan.ID, models.CollectionPlaces, ref)
				}
			}
			for _, sp := range s.People {
				if _, ok := people.Resolve(sp.ID, models.CollectionPeople); !ok {
					r.dangling(models.CollectionPlans, plan.ID, models.CollectionPeople, sp.ID)
				}
			}
		})
		if _, ok := cols.ContentIDs[plan.ID]; !ok {
			r.Orphans = append(r.Orphans, plan.ID)
		}
	}
	sort.Strings(r.Orphans)

	return r
}

func (r *Report) validate(collection, id string, record any) {
	r.Checked[collection]++
	verr := validation.ValidateStruct(record)
	if verr == nil {
		return
	}
	metrics.RecordInvalid(collection)
	for _, fe := range verr.Errors() {
		r.Invalid = append(r.Invalid, Issue{
			Collection: collection,
			ID:         id,
			Field:      fe.Namespace(),
			Message:    fe.Error(),
		})
	}
}

func (r *Report) dangling(collection, id, target, ref string) {
	r.Dangling = append(r.Dangling, DanglingRef{Collection: collection, ID: id, Target: target, Ref: ref})
}

// WriteText prints the report grouped by collection.
func (r *Report) WriteText(w io.Writer) error {
	collections := []string{models.CollectionPlaces, models.CollectionPeople, models.CollectionMaps, models.CollectionPlans}

	for _, c := range collections {
		invalid := 0
		for _, is := range r.Invalid {
			if is.Collection == c {
				invalid++
			}
		}
		status := "ok"
		if invalid > 0 {
			status = fmt.Sprintf("%d problem(s)", invalid)
		}
		if _, err := fmt.Fprintf(w, "%-8s %4d checked  %s\n", c, r.Checked[c], status); err != nil {
			return err
		}
		for _, is := range r.Invalid {
			if is.Collection != c {
				continue
			}
			if _, err := fmt.Fprintf(w, "  %s: %s\n", is.ID, is.Message); err != nil {
				return err
			}
		}
	}

	if len(r.Dangling) > 0 {
		if _, err := fmt.Fprintf(w, "\ndangling references: %d\n", len(r.Dangling)); err != nil {
			return err
		}
		for _, d := range r.Dangling {
			if _, err := fmt.Fprintf(w, "  %s/%s -> %s %q\n", d.Collection, d.ID, d.Target, d.Ref); err != nil {
				return err
			}
		}
	}

	if len(r.Orphans) > 0 {
		if _, err := fmt.Fprintf(w, "\nplans without a content page: %d\n", len(r.Orphans)); err != nil {
			return err
		}
		for _, id := range r.Orphans {
			if _, err := fmt.Fprintf(w, "  %s\n", id); err != nil {
				return err
			}
		}
	}
	return nil
}

// Validate loads every collection and checks it without writing bundles.
// When reportPath is set the report is also written there as JSON.
func (p *Pipeline) Validate(ctx context.Context, reportPath string) (*Report, error) {
	ctx = logging.ContextWithNewBuildID(ctx)
	logger := logging.CtxComponent(ctx, "validate")

	cols, err := LoadCollections(ctx, p.cfg.Data)
	if err != nil {
		return nil, err
	}

	report := Check(cols)
	logger.Info().
		Int("invalid", report.InvalidCount()).
		Int("dangling", len(report.Dangling)).
		Int("orphan_plans", len(report.Orphans)).
		Msg("Validation finished")

	if reportPath != "" {
		if _, err := WriteJSON(reportPath, report, p.cfg.Output.Indent); err != nil {
			return report, fmt.Errorf("write report: %w", err)
		}
	}
	return report, nil
}
