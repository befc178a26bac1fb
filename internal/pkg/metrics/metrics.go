package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// HTTPRequestsTotal counts handled API requests by route and status code.
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "token_analyzer_http_requests_total",
			Help: "Total number of handled HTTP requests.",
		},
		[]string{"route", "status"},
	)

	// HTTPRequestDuration observes request latency per route.
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "token_analyzer_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// UpstreamErrorsTotal counts failed calls to external data providers.
	UpstreamErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "token_analyzer_upstream_errors_total",
			Help: "Total number of failed upstream provider calls.",
		},
		[]string{"provider"},
	)

	// AnalysisCacheHitsTotal counts analyze-token responses served from cache.
	AnalysisCacheHitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "token_analyzer_analysis_cache_hits_total",
			Help: "Total number of analyses served from the results cache.",
		},
	)
)

// MustRegisterMetrics registers all application metrics with the default
// registry. Call once at startup.
func MustRegisterMetrics() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		UpstreamErrorsTotal,
		AnalysisCacheHitsTotal,
	)
}
