// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tomtom215/mrrakc/internal/catalog"
	"github.com/tomtom215/mrrakc/internal/logging"
)

// Watch builds once, then rebuilds whenever a record or plan content file
// changes. Bursts of events are collapsed: a rebuild starts only after the
// configured quiet period passes without further changes. A failed build
// is logged and watching continues. Watch returns when ctx is cancelled.
func (p *Pipeline) Watch(ctx context.Context) error {
	logger := logging.WithComponent("watch")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() {
		if cerr := watcher.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("Error closing watcher")
		}
	}()

	watched := 0
	for _, root := range p.cfg.Data.Roots() {
		n, err := addTree(watcher, root)
		if err != nil {
			return err
		}
		watched += n
	}
	logger.Info().Int("directories", watched).Dur("quiet_period", p.cfg.Build.QuietPeriod).Msg("Watching for changes")

	p.rebuild(ctx)

	// Stop and Reset never leave a stale tick in C since Go 1.23.
	quiet := p.cfg.Build.QuietPeriod
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Watch stopped")
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if _, err := addTree(watcher, ev.Name); err != nil {
						logger.Warn().Err(err).Str("path", ev.Name).Msg("Could not watch new directory")
					}
				}
			}
			if !p.relevant(ev) {
				continue
			}
			logger.Debug().Str("path", ev.Name).Str("op", ev.Op.String()).Msg("Change detected")
			timer.Reset(quiet)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("Watcher error")

		case <-timer.C:
			p.rebuild(ctx)
		}
	}
}

// rebuild runs one build and reports its outcome without failing the watch.
func (p *Pipeline) rebuild(ctx context.Context) {
	res, err := p.Build(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger := logging.WithComponent("watch")
		logger.Error().Err(err).Msg("Rebuild failed, waiting for the next change")
	}
	if p.onBuild != nil {
		p.onBuild(res, err)
	}
}

// relevant reports whether ev can change a bundle. Events under the output
// directory are ignored so writing bundles never triggers another build.
func (p *Pipeline) relevant(ev fsnotify.Event) bool {
	if ev.Has(fsnotify.Chmod) && !ev.Has(fsnotify.Write) {
		return false
	}
	if out, err := filepath.Abs(p.cfg.Output.Dir); err == nil {
		if name, err := filepath.Abs(ev.Name); err == nil && within(out, name) {
			return false
		}
	}

	base := filepath.Base(ev.Name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	switch strings.ToLower(filepath.Ext(base)) {
	case catalog.RecordExt:
		return true
	case "":
		// Removed or renamed directories take their records with them.
		return ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Create)
	}
	for _, ext := range catalog.ContentExts {
		if strings.EqualFold(filepath.Ext(base), ext) {
			return true
		}
	}
	return false
}

func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// addTree watches root and every directory below it. A missing root is not
// an error: the collection is simply empty until it is created.
func addTree(w *fsnotify.Watcher, root string) (int, error) {
	if root == "" {
		return 0, nil
	}
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}

	n := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		n++
		return nil
	})
	if err != nil {
		return n, err
	}
	return n, nil
}
