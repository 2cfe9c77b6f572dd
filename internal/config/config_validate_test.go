// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"missing places dir", func(c *Config) { c.Data.Places = " " }, "data.places"},
		{"missing output dir", func(c *Config) { c.Output.Dir = "" }, "OUTPUT_DIR"},
		{"same bundle names", func(c *Config) { c.Output.PlansFile = "maps.json" }, "must differ"},
		{"points collides", func(c *Config) { c.Output.PointsFile = "plans.json" }, "collides"},
		{"points disabled ignores name", func(c *Config) {
			c.Output.Points = false
			c.Output.PointsFile = ""
		}, ""},
		{"bad indent", func(c *Config) { c.Output.Indent = "--" }, "indent"},
		{"negative quiet period", func(c *Config) { c.Build.QuietPeriod = -1 }, "WATCH_QUIET_PERIOD"},
		{"zero width", func(c *Config) { c.Viewport.Width = 0 }, "width and height"},
		{"padding too large", func(c *Config) { c.Viewport.Padding = 500 }, "no room"},
		{"max zoom out of range", func(c *Config) { c.Viewport.MaxZoom = 30 }, "viewport.max_zoom"},
		{"default latitude", func(c *Config) { c.Viewport.DefaultLatitude = 91 }, "default_latitude"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
