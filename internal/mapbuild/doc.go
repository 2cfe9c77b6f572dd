// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

/*
Package mapbuild materializes map definitions into the maps bundle.

A map definition selects places with one of three strategies:

  - explicit: content.ids, matched verbatim against derived place ids
  - query: content.query, a JMESPath boolean expression
  - mixed: the explicit ids followed by the query matches

Queries run over a projection of each place in which spec fields are
promoted to the top level, so authors write

	location.province == 'azilal' && kind == 'natural'

rather than spec.location.province. The projection also carries the derived
id in _id, which is how matches are mapped back to places.

A query that fails to compile or evaluate is logged, counted in
mrrakc_map_query_errors_total, and selects nothing; the rest of the build
is unaffected.
*/
package mapbuild
