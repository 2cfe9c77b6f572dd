// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

/*
Package metrics provides Prometheus metrics for site data builds.

The builder is a short-lived process, so nothing is scraped over HTTP.
Instead the registry is written in the node_exporter textfile collector
format after each build when build.metrics_file is configured:

	mrrakc build -metrics-file /var/lib/node_exporter/textfile/mrrakc.prom

# Available Metrics

Loader:
  - mrrakc_records_loaded_total{collection}
  - mrrakc_records_skipped_total{collection, reason}
    reason: malformed, unreadable, decode, invalid

Maps and plans:
  - mrrakc_maps_built_total{strategy}
  - mrrakc_map_query_errors_total
  - mrrakc_map_places (histogram)
  - mrrakc_plans_emitted_total
  - mrrakc_plans_orphaned_total

Build:
  - mrrakc_build_duration_seconds (histogram)
  - mrrakc_builds_total{outcome}
  - mrrakc_build_last_success_timestamp_seconds
  - mrrakc_bundle_bytes{bundle}
*/
package metrics
