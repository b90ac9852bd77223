// Package metrics provides Prometheus metrics definitions.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "incidentconsole"

var (
	// HTTPRequestDuration tracks HTTP request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "route", "status_code"},
	)

	// UpstreamRequestDuration tracks outbound calls to third-party APIs.
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Upstream API request duration in seconds",
			Buckets:   []float64{.025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"upstream", "status"},
	)

	// FixtureFallbacks counts upstream failures silently served from fixture data.
	FixtureFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "fixture_fallbacks_total",
			Help:      "Upstream reads substituted with fixture data",
		},
		[]string{"upstream"},
	)

	// AssistantDispatches counts chat messages routed per domain.
	AssistantDispatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "assistant",
			Name:      "dispatches_total",
			Help:      "Chat messages dispatched to each domain",
		},
		[]string{"domain"},
	)
)

// RecordUpstreamRequest records one outbound API call.
func RecordUpstreamRequest(upstream, status string, duration time.Duration) {
	UpstreamRequestDuration.WithLabelValues(upstream, status).Observe(duration.Seconds())
}

// RecordFixtureFallback records one silent fallback to fixture data.
func RecordFixtureFallback(upstream string) {
	FixtureFallbacks.WithLabelValues(upstream).Inc()
}

// RecordAssistantDispatch records one chat message routed to a domain.
func RecordAssistantDispatch(domain string) {
	AssistantDispatches.WithLabelValues(domain).Inc()
}
