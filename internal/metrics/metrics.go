// Package metrics defines the Prometheus metrics exported on /metrics.
//
// All metrics register with the default registry at package init.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "easylog"

// Entity operation labels
const (
	OpAdd    = "add"
	OpRemove = "remove"
)

// EntriesCreatedTotal counts appended journal entries.
// Label:
//   - category: "client" or "customer"
var EntriesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_created_total",
		Help:      "Total number of journal entries created, by category.",
	},
	[]string{"category"},
)

// EntityOperationsTotal counts registry mutations that changed state.
// Labels:
//   - category: "client" or "customer"
//   - operation: "add" or "remove"
var EntityOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_operations_total",
		Help:      "Total number of entities added or removed, by category.",
	},
	[]string{"category", "operation"},
)

// LoginsTotal counts successful mock logins.
// Label:
//   - role: "admin" or "staff"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins, by role.",
	},
	[]string{"role"},
)

// HTTPRequestsTotal counts handled requests by route template.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests, by method, route and status code.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration measures handler latency by route template.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests, by method and route.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// Handler serves the default registry in the Prometheus exposition format
func Handler() http.Handler {
	return promhttp.Handler()
}
