// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/mrrakc/internal/config"
	"github.com/tomtom215/mrrakc/internal/explorer"
	"github.com/tomtom215/mrrakc/internal/logging"
	"github.com/tomtom215/mrrakc/internal/mapbuild"
	"github.com/tomtom215/mrrakc/internal/metrics"
	"github.com/tomtom215/mrrakc/internal/planresolve"
)

// ErrInvalidRecords is returned by a strict build when any record fails
// validation.
var ErrInvalidRecords = errors.New("invalid records")

// Bundle names used in logs and the mrrakc_bundle_bytes metric.
const (
	BundleMaps   = "maps"
	BundlePlans  = "plans"
	BundlePoints = "points"
)

// Result summarizes one build.
type Result struct {
	BuildID  string
	Places   int
	People   int
	Maps     int
	Plans    int
	Points   int
	Invalid  int
	Written  map[string]string
	Duration time.Duration
}

// Pipeline runs builds for one configuration.
type Pipeline struct {
	cfg *config.Config

	// onBuild, when set, observes every build started by Watch.
	onBuild func(*Result, error)
}

// New returns a pipeline for cfg. Every path it reads or writes comes from
// cfg.
func New(cfg *config.Config) *Pipeline {
	return &Pipeline{cfg: cfg}
}

// Build loads the collections, resolves maps and plans and writes the
// bundles. Per-record problems are logged and skipped; only an unreadable
// collection root, a failed write or, in strict mode, an invalid record
// fails the build.
func (p *Pipeline) Build(ctx context.Context) (res *Result, err error) {
	ctx = logging.ContextWithNewBuildID(ctx)
	logger := logging.CtxComponent(ctx, "pipeline")
	start := time.Now()

	defer func() {
		elapsed := time.Since(start)
		metrics.RecordBuild(elapsed, err)
		if res != nil {
			res.Duration = elapsed
		}
		p.writeMetrics(ctx)
	}()

	logger.Info().Str("data", p.cfg.Data.Root).Str("output", p.cfg.Output.Dir).Msg("Build started")

	cols, err := LoadCollections(ctx, p.cfg.Data)
	if err != nil {
		logger.Error().Err(err).Msg("Build failed while loading")
		return nil, err
	}

	res = &Result{
		BuildID: logging.BuildIDFromContext(ctx),
		Places:  len(cols.Places),
		People:  len(cols.People),
		Written: make(map[string]string),
	}

	report := Check(cols)
	res.Invalid = report.InvalidCount()
	for _, issue := range report.Issues() {
		logger.Warn().
			Str("collection", issue.Collection).
			Str("record", issue.ID).
			Str("problem", issue.Message).
			Msg("Record failed validation")
	}
	if res.Invalid > 0 && p.cfg.Build.Strict {
		err = fmt.Errorf("%w: %d record(s) failed validation", ErrInvalidRecords, res.Invalid)
		logger.Error().Err(err).Msg("Strict build aborted")
		return res, err
	}

	maps := mapbuild.NewBuilder(cols.Places).Build(ctx, cols.Maps)
	res.Maps = len(maps)
	if err = p.emit(ctx, res, BundleMaps, p.cfg.Output.MapsPath(), maps); err != nil {
		return res, err
	}

	plans := planresolve.NewResolver(cols.Places, cols.People).Emit(ctx, cols.Plans, cols.ContentIDs)
	res.Plans = len(plans)
	if err = p.emit(ctx, res, BundlePlans, p.cfg.Output.PlansPath(), plans); err != nil {
		return res, err
	}

	if p.cfg.Output.Points {
		points := explorer.PointsFromPlaces(cols.Places)
		res.Points = len(points)
		if err = p.emit(ctx, res, BundlePoints, p.cfg.Output.PointsPath(), points); err != nil {
			return res, err
		}
	}

	logger.Info().
		Int("places", res.Places).
		Int("people", res.People).
		Int("maps", res.Maps).
		Int("plans", res.Plans).
		Int("points", res.Points).
		Int("invalid", res.Invalid).
		Dur("elapsed", time.Since(start)).
		Msg("Build finished")
	return res, nil
}

// emit writes one bundle. A write failure is fatal for the build.
func (p *Pipeline) emit(ctx context.Context, res *Result, name, path string, v any) error {
	logger := logging.CtxComponent(ctx, "pipeline")
	n, err := WriteJSON(path, v, p.cfg.Output.Indent)
	if err != nil {
		logger.Error().Err(err).Str("bundle", name).Msg("Bundle write failed")
		return fmt.Errorf("write %s bundle: %w", name, err)
	}
	metrics.RecordBundle(name, n)
	res.Written[name] = path
	logger.Debug().Str("bundle", name).Str("path", path).Int("bytes", n).Msg("Wrote bundle")
	return nil
}

// writeMetrics exports the registry when a metrics file is configured.
// A failure here is logged and does not fail the build.
func (p *Pipeline) writeMetrics(ctx context.Context) {
	if p.cfg.Build.MetricsFile == "" {
		return
	}
	if err := metrics.WriteTextfile(p.cfg.Build.MetricsFile); err != nil {
		logger := logging.CtxComponent(ctx, "pipeline")
		logger.Warn().Err(err).Msg("Could not write metrics file")
	}
}
