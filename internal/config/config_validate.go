// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

package config

import (
	"fmt"
	"strings"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateData(); err != nil {
		return err
	}

	if err := c.validateOutput(); err != nil {
		return err
	}

	if err := c.validateBuild(); err != nil {
		return err
	}

	if err := c.validateViewport(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateData requires every collection directory to be named
func (c *Config) validateData() error {
	dirs := []struct {
		key, value string
	}{
		{"data.places", c.Data.Places},
		{"data.people", c.Data.People},
		{"data.maps", c.Data.Maps},
		{"data.plans", c.Data.Plans},
	}
	for _, d := range dirs {
		if strings.TrimSpace(d.value) == "" {
			return fmt.Errorf("%s is required", d.key)
		}
	}
	return nil
}

// validateOutput requires an output directory and distinct bundle names
func (c *Config) validateOutput() error {
	if strings.TrimSpace(c.Output.Dir) == "" {
		return fmt.Errorf("OUTPUT_DIR is required")
	}
	if c.Output.MapsFile == "" || c.Output.PlansFile == "" {
		return fmt.Errorf("output.maps_file and output.plans_file are required")
	}
	if c.Output.MapsFile == c.Output.PlansFile {
		return fmt.Errorf("output.maps_file and output.plans_file must differ, both are %q", c.Output.MapsFile)
	}
	if c.Output.Points {
		if c.Output.PointsFile == "" {
			return fmt.Errorf("output.points_file is required when output.points is enabled")
		}
		if c.Output.PointsFile == c.Output.MapsFile || c.Output.PointsFile == c.Output.PlansFile {
			return fmt.Errorf("output.points_file %q collides with another bundle", c.Output.PointsFile)
		}
	}
	if strings.Trim(c.Output.Indent, " \t") != "" {
		return fmt.Errorf("output.indent must contain only spaces or tabs")
	}
	return nil
}

// validateBuild validates build tuning values
func (c *Config) validateBuild() error {
	if c.Build.QuietPeriod < 0 {
		return fmt.Errorf("WATCH_QUIET_PERIOD must not be negative, got %v", c.Build.QuietPeriod)
	}
	return nil
}

// maxZoomLevel is the deepest zoom supported by web map tile schemes.
const maxZoomLevel = 24

// validateViewport validates the explorer camera settings
func (c *Config) validateViewport() error {
	v := c.Viewport
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("viewport width and height must be positive, got %vx%v", v.Width, v.Height)
	}
	if v.Padding < 0 {
		return fmt.Errorf("viewport.padding must not be negative, got %v", v.Padding)
	}
	if v.Padding*2 >= v.Width || v.Padding*2 >= v.Height {
		return fmt.Errorf("viewport.padding %v leaves no room in a %vx%v viewport", v.Padding, v.Width, v.Height)
	}
	zooms := []struct {
		name string
		zoom float64
	}{
		{"viewport.max_zoom", v.MaxZoom},
		{"viewport.single_point_zoom", v.SinglePointZoom},
		{"viewport.default_zoom", v.DefaultZoom},
	}
	for _, z := range zooms {
		if z.zoom < 0 || z.zoom > maxZoomLevel {
			return fmt.Errorf("%s must be between 0 and %d, got %v", z.name, maxZoomLevel, z.zoom)
		}
	}
	if v.DefaultLatitude < -90 || v.DefaultLatitude > 90 {
		return fmt.Errorf("viewport.default_latitude must be between -90 and 90, got %v", v.DefaultLatitude)
	}
	if v.DefaultLongitude < -180 || v.DefaultLongitude > 180 {
		return fmt.Errorf("viewport.default_longitude must be between -180 and 180, got %v", v.DefaultLongitude)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
