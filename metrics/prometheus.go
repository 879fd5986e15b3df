package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"time"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "endpoint", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations.",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)
	productsNormalizedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_products_normalized_total",
			Help: "Total number of products normalized, per supplier.",
		},
		[]string{"supplier"},
	)
	validationIssuesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_validation_issues_total",
			Help: "Total number of validation issues, per supplier and issue.",
		},
		[]string{"supplier", "issue"},
	)
	syncFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_sync_failures_total",
			Help: "Total number of failed supplier sync operations.",
		},
		[]string{"supplier"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(productsNormalizedTotal)
	prometheus.MustRegister(validationIssuesTotal)
	prometheus.MustRegister(syncFailuresTotal)
}

// RecordRequest records metrics for one handled HTTP request.
func RecordRequest(method, endpoint string, statusCode int, duration time.Duration) {
	status := classifyStatus(statusCode)
	httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

// RecordNormalized counts products produced by the normalizer for a supplier.
func RecordNormalized(supplier string, count int) {
	productsNormalizedTotal.WithLabelValues(supplier).Add(float64(count))
}

// RecordValidationIssue counts one publish-readiness defect.
func RecordValidationIssue(supplier, issue string) {
	validationIssuesTotal.WithLabelValues(supplier, issue).Inc()
}

// RecordSyncFailure counts one failed sync pass.
func RecordSyncFailure(supplier string) {
	syncFailuresTotal.WithLabelValues(supplier).Inc()
}

func classifyStatus(statusCode int) string {
	if statusCode >= 200 && statusCode < 300 {
		return "2xx"
	} else if statusCode >= 300 && statusCode < 400 {
		return "3xx"
	} else if statusCode >= 400 && statusCode < 500 {
		return "4xx"
	} else if statusCode >= 500 && statusCode < 600 {
		return "5xx"
	}
	return "unknown"
}

// MetricsHandler returns the HTTP handler exporting Prometheus metrics.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
