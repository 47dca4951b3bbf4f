// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// ChatTurnsTotal tracks processed chat turns per tenant and detected intent.
	ChatTurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_turns_total",
			Help: "Total chat turns processed",
		},
		[]string{"client_id", "intent"},
	)

	// LeadScore tracks the distribution of computed lead scores.
	LeadScore = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lead_score",
			Help:    "Lead score computed per chat turn",
			Buckets: []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
		[]string{"client_id"},
	)

	// ResponseSourceTotal tracks which resolution step produced the reply.
	ResponseSourceTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "response_source_total",
			Help: "Replies by resolution source (keyword, intent, llm, filler, fallback)",
		},
		[]string{"client_id", "source"},
	)

	// LLMRequestDuration tracks generative model call duration.
	LLMRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_request_duration_seconds",
			Help:    "Generative model request duration",
			Buckets: []float64{.1, .25, .5, 1, 2, 5, 10, 20, 30},
		},
		[]string{"provider", "status"},
	)

	// SessionsActive tracks the number of live conversation sessions.
	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sessions_active",
			Help: "Number of active conversation sessions",
		},
	)

	// SessionsReapedTotal tracks sessions removed by the idle reaper.
	SessionsReapedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sessions_reaped_total",
			Help: "Total sessions evicted for idleness",
		},
	)

	// LeadEventsTotal tracks qualified-lead events published.
	LeadEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_events_total",
			Help: "Qualified-lead events published",
		},
		[]string{"client_id", "status"},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordChatTurn records metrics for one processed chat turn.
func RecordChatTurn(clientID, intent string, score int) {
	ChatTurnsTotal.WithLabelValues(clientID, intent).Inc()
	LeadScore.WithLabelValues(clientID).Observe(float64(score))
}

// RecordLLMRequest records metrics for a generative model call.
func RecordLLMRequest(provider, status string, seconds float64) {
	LLMRequestDuration.WithLabelValues(provider, status).Observe(seconds)
}
