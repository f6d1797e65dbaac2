// Package metrics defines and registers all custom Prometheus metrics for
// the portfolio backend. It is the single source of truth for metric names,
// labels, and help strings; registration happens at import time via
// promauto against the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

// SignupsTotal counts signup attempts.
// Label:
//   - outcome: assigned role ("USER", "ADMIN"), "duplicate", or "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by outcome.",
	},
	[]string{"outcome"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenValidationsTotal counts bearer-token checks performed by the request
// authenticator.
// Label:
//   - result: "authenticated", "invalid", "unknown_subject", or "anonymous"
//     (no usable Authorization header on the request)
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of bearer token evaluations, by result.",
	},
	[]string{"result"},
)

// AuthorizationDeniedTotal counts requests rejected by the authorization
// gate.
// Label:
//   - reason: "unauthenticated" or "forbidden"
var AuthorizationDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_denied_total",
		Help:      "Total number of requests denied by the authorization policy.",
	},
	[]string{"reason"},
)
