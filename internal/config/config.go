// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

package config

import (
	"path/filepath"
	"time"
)

// Config holds all builder configuration loaded from defaults, an optional
// YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in values matching the repository layout
//  2. Config File: optional mrrakc.yaml for per-site settings
//  3. Environment Variables: override any mapped setting
//
// Example:
//
//	cfg, err := config.LoadWithKoanf("")
//	if err != nil {
//	    return err
//	}
//	placesRoot := cfg.Data.PlacesRoot()
type Config struct {
	Data     DataConfig     `koanf:"data"`
	Output   OutputConfig   `koanf:"output"`
	Build    BuildConfig    `koanf:"build"`
	Viewport ViewportConfig `koanf:"viewport"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DataConfig locates the authored collections. Collection directories are
// resolved against Root unless they are absolute.
type DataConfig struct {
	// Root is the directory holding the collection directories.
	// Default: data
	Root string `koanf:"root"`

	Places string `koanf:"places"`
	People string `koanf:"people"`
	Maps   string `koanf:"maps"`
	Plans  string `koanf:"plans"`

	// PlanContent holds the authored .md/.mdx pages. A plan without a page
	// is not emitted. It is not resolved against Root.
	// Default: web/src/content/plans
	PlanContent string `koanf:"plan_content"`
}

// PlacesRoot returns the resolved places directory.
func (d DataConfig) PlacesRoot() string { return d.resolve(d.Places) }

// PeopleRoot returns the resolved people directory.
func (d DataConfig) PeopleRoot() string { return d.resolve(d.People) }

// MapsRoot returns the resolved maps directory.
func (d DataConfig) MapsRoot() string { return d.resolve(d.Maps) }

// PlansRoot returns the resolved plans directory.
func (d DataConfig) PlansRoot() string { return d.resolve(d.Plans) }

// Roots returns every directory the builder reads, for watch mode.
func (d DataConfig) Roots() []string {
	return []string{d.PlacesRoot(), d.PeopleRoot(), d.MapsRoot(), d.PlansRoot(), d.PlanContent}
}

func (d DataConfig) resolve(dir string) string {
	if filepath.IsAbs(dir) || d.Root == "" {
		return dir
	}
	return filepath.Join(d.Root, dir)
}

// OutputConfig controls where generated bundles are written.
type OutputConfig struct {
	// Dir is the directory receiving the bundles.
	// Default: web/src/data/generated
	Dir string `koanf:"dir"`

	MapsFile   string `koanf:"maps_file"`
	PlansFile  string `koanf:"plans_file"`
	PointsFile string `koanf:"points_file"`

	// Points enables the points bundle consumed by the map explorer.
	// Default: true
	Points bool `koanf:"points"`

	// Indent is the indentation of the pretty-printed bundles.
	// Default: two spaces
	Indent string `koanf:"indent"`
}

// MapsPath returns the full path of the maps bundle.
func (o OutputConfig) MapsPath() string { return filepath.Join(o.Dir, o.MapsFile) }

// PlansPath returns the full path of the plans bundle.
func (o OutputConfig) PlansPath() string { return filepath.Join(o.Dir, o.PlansFile) }

// PointsPath returns the full path of the points bundle.
func (o OutputConfig) PointsPath() string { return filepath.Join(o.Dir, o.PointsFile) }

// BuildConfig tunes a build run.
type BuildConfig struct {
	// Strict makes the build fail when any record fails validation.
	// Default: false (invalid records are reported, not fatal)
	Strict bool `koanf:"strict"`

	// MetricsFile, when set, receives the build metrics in node_exporter
	// textfile format after every build.
	MetricsFile string `koanf:"metrics_file"`

	// QuietPeriod is how long watch mode waits after the last file event
	// before rebuilding.
	// Default: 300ms
	QuietPeriod time.Duration `koanf:"quiet_period"`
}

// ViewportConfig holds the map explorer camera settings.
type ViewportConfig struct {
	Width           float64 `koanf:"width"`
	Height          float64 `koanf:"height"`
	Padding         float64 `koanf:"padding"`
	MaxZoom         float64 `koanf:"max_zoom"`
	SinglePointZoom float64 `koanf:"single_point_zoom"`

	// Default camera used when no point is visible.
	DefaultLongitude float64 `koanf:"default_longitude"`
	DefaultLatitude  float64 `koanf:"default_latitude"`
	DefaultZoom      float64 `koanf:"default_zoom"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: console
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}
