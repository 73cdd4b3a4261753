// Package metrics provides Prometheus metrics for the Pacely API server.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TasksCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pacely_tasks_created_total",
			Help: "Total number of tasks created",
		},
	)
	TasksCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pacely_tasks_completed_total",
			Help: "Total number of tasks completed",
		},
	)
	TasksDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pacely_tasks_deleted_total",
			Help: "Total number of tasks deleted",
		},
	)
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pacely_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pacely_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

// RecordTaskCreated increments the created-task counter.
func RecordTaskCreated() { TasksCreated.Inc() }

// RecordTaskCompleted increments the completed-task counter.
func RecordTaskCompleted() { TasksCompleted.Inc() }

// RecordTaskDeleted increments the deleted-task counter.
func RecordTaskDeleted() { TasksDeleted.Inc() }

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(method, endpoint, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}
