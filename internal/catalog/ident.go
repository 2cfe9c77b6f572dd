// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

package catalog

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// RecordExt is the extension of authored record files.
const RecordExt = ".json"

// ErrOutsideRoot is returned by DeriveID when the file is not under root.
var ErrOutsideRoot = errors.New("path is outside the collection root")

// DeriveID returns the id of the record stored at path: the path relative
// to root with one trailing ".json" removed, always "/"-separated.
//
//	DeriveID("data/places", "data/places/azilal/foo.json") // "azilal/foo"
func DeriveID(root, path string) (string, error) {
	return deriveID(root, path, RecordExt)
}

func deriveID(root, path, ext string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", fmt.Errorf("derive id for %s: %w", path, err)
	}
	rel = normalizeSlashes(rel)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("derive id for %s: %w", path, ErrOutsideRoot)
	}
	return strings.TrimSuffix(rel, ext), nil
}

// normalizeSlashes converts host separators and stray backslashes to "/".
func normalizeSlashes(p string) string {
	return strings.ReplaceAll(filepath.ToSlash(p), `\`, "/")
}

// StripPrefix removes one leading "<prefix>/" from ref. References without
// the prefix are returned unchanged.
func StripPrefix(ref, prefix string) string {
	if prefix == "" {
		return ref
	}
	return strings.TrimPrefix(ref, prefix+"/")
}

// Identified is implemented by every loaded record.
type Identified interface {
	RecordID() string
}

// ResolveReference strips prefix from ref once and returns the record whose
// id equals the remainder. It performs no I/O.
func ResolveReference[T Identified](ref, prefix string, records []T) (T, bool) {
	id := StripPrefix(ref, prefix)
	for _, r := range records {
		if r.RecordID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// Index is an id lookup over a loaded collection. It is built once per
// build and only read afterwards.
type Index[T Identified] struct {
	byID  map[string]T
	order []string
}

// NewIndex indexes records by id. When two records share an id the first
// one is kept.
func NewIndex[T Identified](records []T) *Index[T] {
	idx := &Index[T]{
		byID:  make(map[string]T, len(records)),
		order: make([]string, 0, len(records)),
	}
	for _, r := range records {
		id := r.RecordID()
		if _, dup := idx.byID[id]; dup {
			continue
		}
		idx.byID[id] = r
		idx.order = append(idx.order, id)
	}
	return idx
}

// Get returns the record with the exact id.
func (idx *Index[T]) Get(id string) (T, bool) {
	r, ok := idx.byID[id]
	return r, ok
}

// Has reports whether id is present.
func (idx *Index[T]) Has(id string) bool {
	_, ok := idx.byID[id]
	return ok
}

// Resolve has the semantics of ResolveReference with a constant-time lookup.
func (idx *Index[T]) Resolve(ref, prefix string) (T, bool) {
	return idx.Get(StripPrefix(ref, prefix))
}

// Len returns the number of indexed records.
func (idx *Index[T]) Len() int { return len(idx.order) }

// Records returns the indexed records in load order.
func (idx *Index[T]) Records() []T {
	out := make([]T, 0, len(idx.order))
	for _, id := range idx.order {
		out = append(out, idx.byID[id])
	}
	return out
}
