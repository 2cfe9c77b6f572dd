// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"mrrakc.yaml",
	"mrrakc.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config matching the repository layout the site
// generator expects. Defaults are applied first, then overridden by the
// config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Root:        "data",
			Places:      "places",
			People:      "people",
			Maps:        "maps",
			Plans:       "plans",
			PlanContent: "web/src/content/plans",
		},
		Output: OutputConfig{
			Dir:        "web/src/data/generated",
			MapsFile:   "maps.json",
			PlansFile:  "plans.json",
			PointsFile: "points.json",
			Points:     true,
			Indent:     "  ",
		},
		Build: BuildConfig{
			Strict:      false,
			MetricsFile: "",
			QuietPeriod: 300 * time.Millisecond,
		},
		Viewport: ViewportConfig{
			Width:            1024,
			Height:           768,
			Padding:          100,
			MaxZoom:          16,
			SinglePointZoom:  16,
			DefaultLongitude: -7.61,
			DefaultLatitude:  33.59,
			DefaultZoom:      12,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Caller: false,
		},
	}
}

// Default returns the built-in configuration without reading any file or
// environment variable. Tests and library callers use it as a base.
func Default() *Config {
	return defaultConfig()
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources.
// An explicit path takes precedence over CONFIG_PATH and the default search
// paths; a missing explicit path is an error.
func LoadWithKoanf(path string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := path
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("config file %s: %w", configPath, err)
		}
	} else {
		configPath = findConfigFile()
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// DATA_DIR -> data.root, OUTPUT_DIR -> output.dir, ...
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envMappings maps environment variable names (lowercased) to koanf paths.
var envMappings = map[string]string{
	"data_dir":         "data.root",
	"places_dir":       "data.places",
	"people_dir":       "data.people",
	"maps_dir":         "data.maps",
	"plans_dir":        "data.plans",
	"plan_content_dir": "data.plan_content",

	"output_dir":  "output.dir",
	"emit_points": "output.points",

	"build_strict":       "build.strict",
	"metrics_file":       "build.metrics_file",
	"watch_quiet_period": "build.quiet_period",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - DATA_DIR -> data.root
//   - OUTPUT_DIR -> output.dir
//   - LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// Unmapped keys are skipped so unrelated variables never pollute config.
	return ""
}
