// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPRequestsTotal counts handled requests by route template, method and status.
var HTTPRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "blog_http_requests_total",
		Help: "Total number of HTTP requests handled",
	},
	[]string{"path", "method", "status"},
)

// HTTPRequestDuration records request latency by route template and method.
var HTTPRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "blog_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"path", "method"},
)

// PostStoreErrors counts failed data-access calls by operation
// (get_all, get_by_category, get_by_tag, get_by_slug, insert, update, delete).
var PostStoreErrors = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "blog_posts_store_errors_total",
		Help: "Total number of failed post store operations",
	},
	[]string{"operation"},
)

// NotificationEnqueueErrors counts post-added jobs that could not be enqueued.
var NotificationEnqueueErrors = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "blog_notification_enqueue_errors_total",
		Help: "Total number of post notifications that failed to enqueue",
	},
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal, HTTPRequestDuration)
	prometheus.MustRegister(PostStoreErrors, NotificationEnqueueErrors)
}
