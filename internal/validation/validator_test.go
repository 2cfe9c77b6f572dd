// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

package validation

import (
	"strings"
	"testing"
)

// ===================================================================================================
// Singleton Validator Tests
// ===================================================================================================

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

// ===================================================================================================
// ValidateStruct Tests
// ===================================================================================================

type testLocation struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

type testSpec struct {
	Name     string       `json:"name" validate:"required"`
	Strategy string       `json:"strategy" validate:"oneof=explicit query mixed"`
	Ref      string       `json:"ref,omitempty" validate:"omitempty,slug"`
	Location testLocation `json:"location"`
}

type testRecord struct {
	Kind string   `json:"kind" validate:"required"`
	Spec testSpec `json:"spec"`
}

func validRecord() testRecord {
	return testRecord{
		Kind: "place",
		Spec: testSpec{
			Name:     "Foo Gorge",
			Strategy: "explicit",
			Ref:      "azilal/foo",
			Location: testLocation{Latitude: 31.9, Longitude: -6.5},
		},
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	rec := validRecord()
	if err := ValidateStruct(&rec); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *testRecord)
		namespace string
		tag       string
		contains  string
	}{
		{
			name:      "missing name",
			mutate:    func(r *testRecord) { r.Spec.Name = "" },
			namespace: "spec.name",
			tag:       "required",
			contains:  "spec.name is required",
		},
		{
			name:      "unknown strategy",
			mutate:    func(r *testRecord) { r.Spec.Strategy = "random" },
			namespace: "spec.strategy",
			tag:       "oneof",
			contains:  "must be one of: explicit query mixed",
		},
		{
			name:      "latitude out of range",
			mutate:    func(r *testRecord) { r.Spec.Location.Latitude = 123 },
			namespace: "spec.location.latitude",
			tag:       "lte",
			contains:  "less than or equal to 90",
		},
		{
			name:      "bad slug",
			mutate:    func(r *testRecord) { r.Spec.Ref = "Azilal Foo" },
			namespace: "spec.ref",
			tag:       "slug",
			contains:  "lowercase slug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord()
			tt.mutate(&rec)

			err := ValidateStruct(&rec)
			if err == nil {
				t.Fatal("expected validation error")
			}
			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(errs), err)
			}
			if errs[0].Namespace() != tt.namespace {
				t.Errorf("Namespace() = %q, want %q", errs[0].Namespace(), tt.namespace)
			}
			if errs[0].Tag() != tt.tag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.tag)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("Error() = %q, want it to contain %q", err.Error(), tt.contains)
			}
		})
	}
}

func TestRecordValidationError_MultipleErrors(t *testing.T) {
	rec := validRecord()
	rec.Kind = ""
	rec.Spec.Name = ""

	err := ValidateStruct(&rec)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(err.Errors()) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(err.Errors()))
	}
	if !strings.Contains(err.Error(), "; ") {
		t.Errorf("expected joined messages, got %q", err.Error())
	}
}

func TestRecordValidationError_Empty(t *testing.T) {
	err := &RecordValidationError{}
	if err.Error() != "validation failed" {
		t.Errorf("Error() = %q, want 'validation failed'", err.Error())
	}
}
