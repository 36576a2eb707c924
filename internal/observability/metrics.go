package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Console metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wa_console",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "wa_console",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"method", "route"},
	)

	// GatewayCallsTotal counts calls to the WhatsApp Cloud API by operation and outcome.
	GatewayCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wa_console",
			Subsystem: "gateway",
			Name:      "calls_total",
			Help:      "Total WhatsApp gateway calls",
		},
		[]string{"operation", "status"},
	)

	GatewayCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "wa_console",
			Subsystem: "gateway",
			Name:      "call_duration_seconds",
			Help:      "WhatsApp gateway call duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"operation"},
	)

	// OutboundJobsTotal counts fire-and-forget sends handled by the outbound pool.
	OutboundJobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wa_console",
			Subsystem: "outbound",
			Name:      "jobs_total",
			Help:      "Total outbound message jobs by result",
		},
		[]string{"result"},
	)

	TemplateFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "wa_console",
			Subsystem: "templates",
			Name:      "fallbacks_total",
			Help:      "Template listings served from the local cache",
		},
	)
)

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(method, route string, status int, latency time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(latency.Seconds())
}

// RecordGatewayCall records one outbound gateway call.
func RecordGatewayCall(operation string, err error, latency time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}
	GatewayCallsTotal.WithLabelValues(operation, status).Inc()
	GatewayCallDuration.WithLabelValues(operation).Observe(latency.Seconds())
}
