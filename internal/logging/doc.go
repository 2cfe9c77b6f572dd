// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

// Package logging provides centralized zerolog-based structured logging for Mrrakc.
//
// The build tooling logs every skipped record, orphaned plan and emitted
// bundle through this package, so a run can be audited from its log alone.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "console",
//	})
//
//	logger := logging.WithComponent("loader")
//	logger.Info().Str("dir", root).Msg("Loading places")
//	logger.Warn().Err(err).Str("path", path).Msg("Skipping malformed record")
//
// Override the level for one run, as -log-level does:
//
//	if err := logging.SetLevel("debug"); err != nil {
//	    return err
//	}
//
// # Build-scoped logging
//
// Each build run carries a short build id in its context. Loggers obtained
// with Ctx stamp it on every line, which keeps overlapping rebuilds in watch
// mode apart:
//
//	ctx = logging.ContextWithNewBuildID(ctx)
//	logging.Ctx(ctx).Info().Msg("Build started")
//
// # Configuration
//
// Environment Variables (mapped through internal/config):
//
//	LOG_LEVEL   - Minimum log level: trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - Output format: json, console (default: json)
//	LOG_CALLER  - Include caller file:line: true, false (default: false)
//
// Always terminate log chains with .Msg() or .Send():
//
//	logger.Info().Str("key", "value").Msg("message")  // Correct
//	logger.Info().Str("key", "value")                 // WRONG - log not emitted
//
// # Testing
//
//	var buf bytes.Buffer
//	logging.SetLogger(logging.NewTestLogger(&buf))
package logging
