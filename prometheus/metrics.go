package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/prophetofdie/shop-backoffice/pkg/config"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Query engine metrics
	QueryOperationsCounter prometheus.CounterVec

	// Report metrics
	ReportDuration prometheus.HistogramVec
	ReportRowsQty  prometheus.GaugeVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Database operation metrics
	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	// Query engine metrics
	QueryOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_query_operations_total",
			Help: "Total number of query engine operations",
		},
		[]string{"operation", "result"},
	)

	// Report metrics
	ReportDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_report_duration_seconds",
			Help:    "Duration of report generation in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"report"},
	)

	ReportRowsQty = *promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: prefix + "_report_rows",
			Help: "Number of rows in the last generated report",
		},
		[]string{"report"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordQueryOperation increments the counter for query engine operations
func RecordQueryOperation(operation, result string) {
	QueryOperationsCounter.WithLabelValues(operation, result).Inc()
}

// TrackReport returns a function that records report generation duration
func TrackReport(report string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		ReportDuration.WithLabelValues(report).Observe(duration)
	}
}

// RecordReportRows updates the gauge for the last report's row count
func RecordReportRows(report string, rows float64) {
	ReportRowsQty.WithLabelValues(report).Set(rows)
}
