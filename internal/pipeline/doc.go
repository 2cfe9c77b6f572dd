// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

/*
Package pipeline runs a complete build: load, check, resolve, emit.

A build loads the four collections and the plan content ids concurrently,
validates every record, then writes

  - maps.json, the resolved map definitions keyed by map id
  - plans.json, the plans with a content page, references expanded
  - points.json, the explorer points sorted by id (optional)

Bundles are encoded with sorted keys and replaced atomically, so two
builds over the same input produce byte-identical files and a reader never
observes a half-written bundle.

Failure model:

  - a malformed or undecodable record is skipped and logged
  - an invalid record is reported; a strict build aborts before writing
  - an unreadable collection root or a failed write fails the build

Watch mode rebuilds after changes under any data root, once the configured
quiet period has passed with no further events:

	p := pipeline.New(cfg)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := p.Watch(ctx); err != nil {
	    return err
	}
*/
package pipeline
