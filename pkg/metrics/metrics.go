// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roam_http_requests_total",
			Help: "HTTP requests by route and status.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roam_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: []float64{.01, .05, .1, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "route"},
	)

	// ItineraryGenerations counts pipeline outcomes: success, quota_exhausted,
	// no_matching_vibe, insufficient_venues, malformed_model_output, upstream_unavailable, error.
	ItineraryGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roam_itinerary_generations_total",
			Help: "Itinerary generation attempts by outcome.",
		},
		[]string{"outcome"},
	)

	ItineraryStopsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "roam_itinerary_stops_returned",
			Help:    "Stops in successful itinerary responses.",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		},
	)

	PlaceSearches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roam_place_searches_total",
			Help: "Place search calls by result: ok, error, rejected.",
		},
		[]string{"result"},
	)

	PlaceSearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "roam_place_search_duration_seconds",
			Help:    "Place search round-trip latency.",
			Buckets: prometheus.DefBuckets,
		},
	)

	CuratorCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roam_curator_calls_total",
			Help: "Generative model calls by provider and result.",
		},
		[]string{"provider", "result"},
	)

	// CircuitBreakerState is 0=closed, 1=half-open, 2=open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "roam_circuit_breaker_state",
			Help: "Circuit breaker state per upstream.",
		},
		[]string{"name"},
	)

	SpotlightCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roam_spotlight_cache_lookups_total",
			Help: "Spotlight cache lookups by result: hit, miss.",
		},
		[]string{"result"},
	)
)
