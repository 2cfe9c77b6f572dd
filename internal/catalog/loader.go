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
)

// ErrNotDirectory is returned when a collection root exists but is not a
// directory.
var ErrNotDirectory = errors.New("collection root is not a directory")

// Mode selects how deep a collection is read.
type Mode int

const (
	// Recursive reads every .json file below the root.
	Recursive Mode = iota
	// Flat reads only the files directly inside the root.
	Flat
)

// String returns the mode name for logs.
func (m Mode) String() string {
	if m == Flat {
		return "flat"
	}
	return "recursive"
}

// Document is one parsed record file.
type Document struct {
	ID   string
	Path string
	Raw  []byte
}

// LoadDocuments reads every record file under root and attaches its derived
// id. The collection name used in logs and metrics is the root's base name.
//
// A missing root yields no documents and no error. A malformed or unreadable
// file is logged and skipped. Only a root that cannot be listed is an error.
func LoadDocuments(ctx context.Context, root string, mode Mode) ([]Document, error) {
	return loadDocuments(ctx, filepath.Base(root), root, mode)
}

func loadDocuments(ctx context.Context, collection, root string, mode Mode) ([]Document, error) {
	logger := logging.CtxComponent(ctx, "loader").With().
		Str("collection", collection).
		Str("root", root).
		Logger()

	info, err := os.Stat(root)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug().Msg("Collection directory missing, treating as empty")
		return []Document{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s root %s: %w", collection, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s root %s: %w", collection, root, ErrNotDirectory)
	}

	var docs []Document
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable entry")
			metrics.RecordSkip(collection, metrics.ReasonUnreadable)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if d.IsDir() {
			if path != root && mode == Flat {
				return fs.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != RecordExt {
			return nil
		}

		id, err := DeriveID(root, path)
		if err != nil {
			return err
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable record")
			metrics.RecordSkip(collection, metrics.ReasonUnreadable)
			return nil
		}
		if !json.Valid(raw) {
			logger.Warn().Str("path", path).Msg("Skipping malformed record")
			metrics.RecordSkip(collection, metrics.ReasonMalformed)
			return nil
		}

		docs = append(docs, Document{ID: id, Path: path, Raw: raw})
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("read %s root %s: %w", collection, root, walkErr)
	}

	logger.Debug().Int("documents", len(docs)).Str("mode", mode.String()).Msg("Read collection")
	if docs == nil {
		docs = []Document{}
	}
	return docs, nil
}
