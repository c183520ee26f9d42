// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "library_http_requests_total",
		Help: "HTTP requests by method, route and status code",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "library_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "route"})

	ValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "library_validation_failures_total",
		Help: "Rejected book submissions by operation",
	}, []string{"operation"})

	RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "library_rate_limited_total",
		Help: "Requests rejected by the rate limiter, by backend",
	}, []string{"backend"})

	Exports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "library_exports_total",
		Help: "Catalog snapshot exports by result",
	}, []string{"result"})
)
