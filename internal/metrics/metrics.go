// Package metrics defines the Prometheus metrics exported by the server.
// All metrics are registered with the default registry via promauto at
// package init; the /metrics endpoint serves them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "printcare"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts by result.",
	},
	[]string{"result"},
)

// AccessDeniedTotal counts requests rejected by the session/role gate.
// Label:
//   - reason: "unauthenticated" or "forbidden"
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of requests denied by the auth gate.",
	},
	[]string{"reason"},
)

// AuditRecordsTotal counts audit records written.
// Labels:
//   - table: the affected table
//   - action: the recorded action
var AuditRecordsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_records_total",
		Help:      "Total number of audit records written.",
	},
	[]string{"table", "action"},
)

// HTTPRequestsTotal counts completed HTTP requests.
// Labels:
//   - method: HTTP method
//   - status: numeric response status
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by method and status.",
	},
	[]string{"method", "status"},
)
