// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/mrrakc/internal/catalog"
	"github.com/tomtom215/mrrakc/internal/config"
	"github.com/tomtom215/mrrakc/internal/explorer"
	"github.com/tomtom215/mrrakc/internal/logging"
	"github.com/tomtom215/mrrakc/internal/models"
	"github.com/tomtom215/mrrakc/internal/pipeline"
)

// exitError reports a completed command whose outcome is a failure, such as
// a validation run that found invalid records.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }
func (e *exitError) ExitCode() int { return e.code }

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func newFlagSet(name string, std stdio) *flag.FlagSet {
	fs := flag.NewFlagSet("mrrakc "+name, flag.ContinueOnError)
	fs.SetOutput(std.err)
	return fs
}

// parseFlags parses subcommand flags. The flag package has already printed
// the error and the command usage when a parse fails.
func parseFlags(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", errUsage, err)
}

func runBuild(cfg *config.Config, args []string, std stdio) error {
	fs := newFlagSet("build", std)
	strict := fs.Bool("strict", cfg.Build.Strict, "fail when any record is invalid")
	out := fs.String("out", cfg.Output.Dir, "output directory")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	cfg.Build.Strict = *strict
	cfg.Output.Dir = *out

	ctx, stop := signalContext()
	defer stop()

	res, err := pipeline.New(cfg).Build(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(std.out, "built %d map(s), %d plan(s), %d point(s) in %s\n",
		res.Maps, res.Plans, res.Points, res.Duration.Round(time.Millisecond))
	return err
}

func runValidate(cfg *config.Config, args []string, std stdio) error {
	fs := newFlagSet("validate", std)
	reportPath := fs.String("report", "", "also write the report as JSON to this file")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	report, err := pipeline.New(cfg).Validate(ctx, *reportPath)
	if err != nil {
		return err
	}
	if err := report.WriteText(std.out); err != nil {
		return err
	}
	if !report.OK() {
		return &exitError{code: 1, msg: fmt.Sprintf("%d invalid record(s)", report.InvalidCount())}
	}
	return nil
}

func runWatch(cfg *config.Config, args []string, std stdio) error {
	fs := newFlagSet("watch", std)
	quiet := fs.Duration("quiet", cfg.Build.QuietPeriod, "quiet period before a rebuild")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	cfg.Build.QuietPeriod = *quiet

	ctx, stop := signalContext()
	defer stop()

	return pipeline.New(cfg).Watch(ctx)
}

// valueList is a repeatable string flag.
type valueList []string

func (v *valueList) String() string { return strings.Join(*v, ",") }

func (v *valueList) Set(s string) error {
	*v = append(*v, s)
	return nil
}

func runExplore(cfg *config.Config, args []string, std stdio) error {
	fs := newFlagSet("explore", std)
	pointsPath := fs.String("points", "", "points bundle to read (default: load places from the data root)")
	query := fs.String("q", "", "free-text search")
	selected := make(map[explorer.Facet]*valueList, len(explorer.Facets))
	for _, facet := range explorer.Facets {
		list := &valueList{}
		selected[facet] = list
		fs.Var(list, string(facet), "select a "+string(facet)+" value (repeatable)")
	}
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	points, err := explorePoints(ctx, cfg, *pointsPath)
	if err != nil {
		return err
	}

	engine := explorer.NewEngine(points, explorer.WithViewport(viewportOptions(cfg.Viewport)))
	engine.SetQuery(*query)
	for _, facet := range explorer.Facets {
		for _, value := range *selected[facet] {
			if err := engine.Toggle(facet, value); err != nil {
				return err
			}
		}
	}

	snap := engine.Snapshot()
	logger := logging.WithComponent("explore")
	logger.Debug().
		Int("visible", len(snap.Points)).
		Int("total", snap.Total).
		Msg("Explorer view computed")

	data, err := json.MarshalIndent(snap, "", cfg.Output.Indent)
	if err != nil {
		return fmt.Errorf("encode view: %w", err)
	}
	_, err = fmt.Fprintln(std.out, string(data))
	return err
}

// explorePoints reads a points bundle, or derives the points from the places
// collection when no bundle is given.
func explorePoints(ctx context.Context, cfg *config.Config, path string) ([]models.MapPoint, error) {
	if path == "" {
		places, err := catalog.LoadPlaces(ctx, cfg.Data.PlacesRoot())
		if err != nil {
			return nil, err
		}
		return explorer.PointsFromPlaces(places), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read points: %w", err)
	}
	var points []models.MapPoint
	if err := json.Unmarshal(data, &points); err != nil {
		return nil, fmt.Errorf("decode points %s: %w", path, err)
	}
	return points, nil
}

func viewportOptions(v config.ViewportConfig) explorer.ViewportOptions {
	return explorer.ViewportOptions{
		Width:           v.Width,
		Height:          v.Height,
		Padding:         v.Padding,
		MaxZoom:         v.MaxZoom,
		SinglePointZoom: v.SinglePointZoom,
		Default: explorer.Camera{
			Longitude: v.DefaultLongitude,
			Latitude:  v.DefaultLatitude,
			Zoom:      v.DefaultZoom,
		},
	}
}
