// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/tomtom215/mrrakc/internal/logging"
	"github.com/tomtom215/mrrakc/internal/metrics"
	"github.com/tomtom215/mrrakc/internal/models"
)

// ContentExts are the extensions of authored content pages.
var ContentExts = []string{".md", ".mdx"}

// LoadPlaces loads the places collection recursively.
func LoadPlaces(ctx context.Context, root string) ([]*models.Place, error) {
	return loadTyped(ctx, models.CollectionPlaces, root, Recursive, models.DecodePlace)
}

// LoadPeople loads the people collection recursively.
func LoadPeople(ctx context.Context, root string) ([]*models.Person, error) {
	return loadTyped(ctx, models.CollectionPeople, root, Recursive, models.DecodePerson)
}

// LoadMaps loads the map definitions. The maps directory is flat.
func LoadMaps(ctx context.Context, root string) ([]*models.MapDefinition, error) {
	return loadTyped(ctx, models.CollectionMaps, root, Flat, models.DecodeMap)
}

// LoadPlans loads the plans collection recursively.
func LoadPlans(ctx context.Context, root string) ([]*models.Plan, error) {
	return loadTyped(ctx, models.CollectionPlans, root, Recursive, models.DecodePlan)
}

// loadTyped reads a collection and decodes every document. A document that
// is valid JSON but does not fit the record shape is skipped like a
// malformed file.
func loadTyped[T any](
	ctx context.Context,
	collection, root string,
	mode Mode,
	decode func(id string, raw []byte) (T, error),
) ([]T, error) {
	docs, err := loadDocuments(ctx, collection, root, mode)
	if err != nil {
		return nil, err
	}

	logger := logging.CtxComponent(ctx, "loader")
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		rec, err := decode(doc.ID, doc.Raw)
		if err != nil {
			logger.Warn().Err(err).
				Str("collection", collection).
				Str("path", doc.Path).
				Str("field", mismatchedField(err)).
				Msg("Skipping record that does not match its schema")
			metrics.RecordSkip(collection, metrics.ReasonDecode)
			continue
		}
		out = append(out, rec)
	}

	metrics.RecordLoad(collection, len(out))
	logger.Info().Str("collection", collection).Int("records", len(out)).Msg("Loaded collection")
	return out, nil
}

// mismatchedField names the struct field a type mismatch was found in, or
// returns "" when err is not a type mismatch.
func mismatchedField(err error) string {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return ""
	}
	if typeErr.Struct != "" && typeErr.Field != "" {
		return typeErr.Struct + "." + typeErr.Field
	}
	return typeErr.Field
}

// LoadContentIDs returns the ids of the content pages under root: the path
// relative to root with the .md or .mdx extension removed. A missing root
// yields an empty set.
func LoadContentIDs(ctx context.Context, root string) (map[string]struct{}, error) {
	ids := make(map[string]struct{})

	info, err := os.Stat(root)
	if errors.Is(err, fs.ErrNotExist) {
		logger := logging.CtxComponent(ctx, "loader")
		logger.Debug().Str("root", root).Msg("Content directory missing")
		return ids, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat content root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content root %s: %w", root, ErrNotDirectory)
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if !isContentExt(ext) {
			return nil
		}
		id, err := deriveID(root, path, ext)
		if err != nil {
			return err
		}
		ids[id] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read content root %s: %w", root, err)
	}
	return ids, nil
}

func isContentExt(ext string) bool {
	for _, e := range ContentExts {
		if ext == e {
			return true
		}
	}
	return false
}
