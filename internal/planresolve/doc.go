// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

// Package planresolve expands the references in plan step trees.
//
// For every step, depth first and parent before children:
//
//   - placeIds ("places/azilal/foo" or "azilal/foo") become places, the full
//     place records; unknown ids are dropped
//   - people[].id ("people/jane-doe") gains details, the person record; the
//     entry is kept when the person is unknown
//
// Only plans with an authored content page are emitted.
package planresolve
