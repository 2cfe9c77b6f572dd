// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

package mapbuild

import (
	"github.com/goccy/go-json"

	"github.com/tomtom215/mrrakc/internal/models"
)

// IDField carries the derived place id through a query. An authored spec.id
// overwrites "id" in the projection, so the derived id travels separately.
const IDField = "_id"

// Projection returns the queryable shape of a place: the record's top-level
// fields with "id" set to the derived id, overlaid by every spec field, plus
// IDField. Queries can therefore say location.province instead of
// spec.location.province. The place itself is not modified.
func Projection(p *models.Place) map[string]any {
	fields := p.Fields
	if fields == nil {
		fields = typedFields(p)
	}

	out := make(map[string]any, len(fields)+8)
	for k, v := range fields {
		out[k] = v
	}
	out["id"] = p.ID

	if spec, ok := fields["spec"].(map[string]any); ok {
		for k, v := range spec {
			out[k] = v
		}
	}

	out[IDField] = p.ID
	return out
}

// typedFields renders a place built in code (no authored document) into the
// generic shape the query evaluator walks.
func typedFields(p *models.Place) map[string]any {
	raw, err := json.Marshal(p)
	if err != nil {
		return map[string]any{}
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return map[string]any{}
	}
	return fields
}
