// Package metrics defines all custom Prometheus metrics for the
// storefront API. It is the single source of truth for metric names,
// labels, and help strings, and sits outside both the api and core
// layers so either side can record without importing the other.
// Metrics register with the default registry at package init via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - outcome: "created", "conflict", "invalid", "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of account registration attempts, by outcome.",
	},
	[]string{"outcome"},
)

// LoginsTotal counts login attempts.
// Label:
//   - outcome: "success", "rejected", "invalid", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// SearchesTotal counts catalog searches.
// Label:
//   - cache: "hit" (served from Redis) or "miss" (served from the store)
var SearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of product searches, labelled by cache result.",
	},
	[]string{"cache"},
)

// ── Provider metrics ──────────────────────────────────────────────────────────

// CheckoutSessionsTotal counts payment-session creations.
// Label:
//   - outcome: "created" or "error"
var CheckoutSessionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkout_sessions_total",
		Help:      "Total number of checkout session creation attempts, by outcome.",
	},
	[]string{"outcome"},
)

// ChatRequestsTotal counts chat proxy calls.
// Label:
//   - outcome: "ok" or "error"
var ChatRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_requests_total",
		Help:      "Total number of chat completion proxy calls, by outcome.",
	},
	[]string{"outcome"},
)

// ChatRequestDuration measures end-to-end latency of upstream chat calls.
var ChatRequestDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "chat_request_duration_seconds",
		Help:      "Duration of upstream chat completion calls.",
		Buckets:   prometheus.DefBuckets,
	},
)
