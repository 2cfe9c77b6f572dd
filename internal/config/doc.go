// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

/*
Package config provides layered configuration for the site data builder.

Configuration is loaded with Koanf v2 from three layers, later layers
overriding earlier ones:

 1. Struct defaults (see defaultConfig)
 2. A YAML file: the -config flag, CONFIG_PATH, mrrakc.yaml or mrrakc.yml
 3. Environment variables listed in envMappings

Example mrrakc.yaml:

	data:
	  root: data
	  plan_content: web/src/content/plans
	output:
	  dir: web/src/data/generated
	  points: true
	build:
	  strict: true
	  metrics_file: /var/lib/node_exporter/mrrakc.prom
	logging:
	  level: debug

Environment Variables:

	DATA_DIR, PLACES_DIR, PEOPLE_DIR, MAPS_DIR, PLANS_DIR, PLAN_CONTENT_DIR
	OUTPUT_DIR, EMIT_POINTS
	BUILD_STRICT, METRICS_FILE, WATCH_QUIET_PERIOD
	LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Bundle paths are always read from Config and handed to the pipeline; no
package holds them as constants.
*/
package config
