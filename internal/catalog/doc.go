// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

/*
Package catalog loads authored record collections from disk and resolves
references between them.

Loading is best effort: a missing collection directory is an empty
collection, and a file that cannot be read or parsed is logged, counted in
mrrakc_records_skipped_total and left out. Only a collection root that
exists but cannot be listed stops the build.

Identifiers are derived from paths, never from content:

	data/places/azilal/foo.json  ->  azilal/foo

Authored references carry a collection prefix that is stripped once before
lookup:

	idx := catalog.NewIndex(places)
	place, ok := idx.Resolve("places/azilal/foo", models.CollectionPlaces)

Unresolved references are not errors; callers drop them.
*/
package catalog
