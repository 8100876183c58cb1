// Package metrics defines and registers all custom Prometheus metrics for the
// access-control core. It is the single source of truth for metric names,
// labels, and help strings.
//
// promauto registers everything with the default registry at package init;
// the router exposes it on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "accessd"

// IdentityResolutionsTotal counts per-request identity resolutions.
// Label:
//   - outcome: "authenticated", "guest", or "store_error"
var IdentityResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "identity_resolutions_total",
		Help:      "Total identity resolutions performed by the request interceptor, by outcome.",
	},
	[]string{"outcome"},
)

// TokenVerificationsTotal counts bearer token verifications.
// Label:
//   - result: "ok", "expired", "malformed", or "signature_invalid"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total bearer token verifications, by result.",
	},
	[]string{"result"},
)

// PrivilegeDenialsTotal counts requests rejected by a privilege gate.
// Label:
//   - required: the minimum level the gate demanded (e.g. "admin")
var PrivilegeDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "privilege_denials_total",
		Help:      "Total requests rejected for insufficient privilege, by required level.",
	},
	[]string{"required"},
)

// GuardRejectionsTotal counts rejections by route guards.
// Label:
//   - guard: "query_secret" or "bearer"
var GuardRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_rejections_total",
		Help:      "Total requests rejected by a route guard before reaching the handler.",
	},
	[]string{"guard"},
)

// LoginsTotal counts login attempts.
// Label:
//   - outcome: "success", "rejected", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - outcome: "success", "rejected", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total registration attempts, by outcome.",
	},
	[]string{"outcome"},
)

// StoreLookupDuration measures credential store lookups as seen by the API
// layer, including any cache in front of the store.
// Label:
//   - op: "api_key", "username", or "id"
var StoreLookupDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "store_lookup_duration_seconds",
		Help:      "Duration of credential store lookups.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"op"},
)
