// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds every build metric. It is separate from the default
// registerer so the textfile only contains mrrakc series.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	// Loader metrics
	RecordsLoaded = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mrrakc_records_loaded_total",
			Help: "Records successfully loaded, by collection",
		},
		[]string{"collection"},
	)

	RecordsSkipped = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mrrakc_records_skipped_total",
			Help: "Records excluded from the build, by collection and reason",
		},
		[]string{"collection", "reason"},
	)

	RecordsInvalid = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mrrakc_records_invalid_total",
			Help: "Loaded records that failed validation, by collection",
		},
		[]string{"collection"},
	)

	// Map builder metrics
	MapsBuilt = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mrrakc_maps_built_total",
			Help: "Map definitions resolved, by selection strategy",
		},
		[]string{"strategy"},
	)

	MapQueryErrors = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "mrrakc_map_query_errors_total",
			Help: "Map query expressions that failed to compile or evaluate",
		},
	)

	MapPlaces = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mrrakc_map_places",
			Help:    "Number of places selected per map",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	// Plan resolver metrics
	PlansEmitted = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "mrrakc_plans_emitted_total",
			Help: "Plans written to the plans bundle",
		},
	)

	PlansOrphaned = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "mrrakc_plans_orphaned_total",
			Help: "Plans dropped because no content document exists for them",
		},
	)

	// Build metrics
	BuildDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mrrakc_build_duration_seconds",
			Help:    "Wall time of a full build",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)

	BuildsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mrrakc_builds_total",
			Help: "Builds run, by outcome",
		},
		[]string{"outcome"},
	)

	BuildLastSuccess = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "mrrakc_build_last_success_timestamp_seconds",
			Help: "Unix timestamp of the last successful build",
		},
	)

	BundleBytes = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "mrrakc_bundle_bytes",
			Help: "Size of each emitted bundle in bytes",
		},
		[]string{"bundle"},
	)
)

// Skip reasons used with RecordsSkipped.
const (
	ReasonMalformed  = "malformed"
	ReasonUnreadable = "unreadable"
	ReasonDecode     = "decode"
)

// RecordLoad records successfully loaded records for a collection.
func RecordLoad(collection string, count int) {
	RecordsLoaded.WithLabelValues(collection).Add(float64(count))
}

// RecordSkip records one record excluded from a collection.
func RecordSkip(collection, reason string) {
	RecordsSkipped.WithLabelValues(collection, reason).Inc()
}

// RecordInvalid records one loaded record that failed validation.
func RecordInvalid(collection string) {
	RecordsInvalid.WithLabelValues(collection).Inc()
}

// RecordMap records one resolved map and its size.
func RecordMap(strategy string, places int) {
	MapsBuilt.WithLabelValues(strategy).Inc()
	MapPlaces.Observe(float64(places))
}

// RecordBuild records the outcome of a build run.
func RecordBuild(duration time.Duration, err error) {
	BuildDuration.Observe(duration.Seconds())
	if err != nil {
		BuildsTotal.WithLabelValues("failure").Inc()
		return
	}
	BuildsTotal.WithLabelValues("success").Inc()
	BuildLastSuccess.Set(float64(time.Now().Unix()))
}

// RecordBundle records the size of an emitted bundle.
func RecordBundle(name string, size int) {
	BundleBytes.WithLabelValues(name).Set(float64(size))
}

// WriteTextfile writes the registry in the node_exporter textfile
// collector format. The write goes through a temporary file and rename.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}
