package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	lifecycleTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lifecycle_transitions_total",
			Help: "Total number of contact lifecycle transitions",
		},
		[]string{"transition", "result"},
	)

	bulkItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bulk_operation_items_total",
			Help: "Total number of per-item bulk operation outcomes",
		},
		[]string{"operation", "result"},
	)

	workflowDispatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workflow_dispatches_total",
			Help: "Total number of workflow event dispatches",
		},
		[]string{"event", "status"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordLifecycleTransition(transition, result string) {
	lifecycleTransitions.WithLabelValues(transition, result).Inc()
}

func RecordBulkItems(operation string, succeeded, failed int) {
	bulkItems.WithLabelValues(operation, "success").Add(float64(succeeded))
	bulkItems.WithLabelValues(operation, "failure").Add(float64(failed))
}

func RecordWorkflowDispatch(event, status string) {
	workflowDispatches.WithLabelValues(event, status).Inc()
}
