// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

// Command mrrakc builds the data bundles of the Mrrakc travel site from the
// authored JSON records.
//
// # Commands
//
//	mrrakc build      load, resolve and write maps.json, plans.json, points.json
//	mrrakc validate   check every record; exit status 1 when any is invalid
//	mrrakc watch      build, then rebuild after every change under the data roots
//	mrrakc explore    filter explorer points and print the resulting view as JSON
//	mrrakc version    print the version
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables (DATA_DIR, OUTPUT_DIR, BUILD_STRICT, LOG_LEVEL, ...)
//   - Config file (-config, $CONFIG_PATH, or mrrakc.yaml in the working directory)
//   - Built-in defaults
//
// # Example Usage
//
// Build with a strict check, as in CI:
//
//	mrrakc build -strict
//
// Write a machine-readable validation report:
//
//	mrrakc validate -report build/report.json
//
// Rebuild while editing, with a longer debounce:
//
//	mrrakc watch -quiet 1s
//
// Show the explorer view for two categories in one province:
//
//	mrrakc explore -category gorge -category kasbah -province azilal
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the running command. Bundles are replaced
// atomically, so an interrupted build leaves the previous bundles intact.
package main
