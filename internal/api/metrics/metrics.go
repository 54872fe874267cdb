// Package metrics defines all custom Prometheus metrics for the client
// portal. It is the single source of truth for metric names, labels, and
// help strings; promauto registers everything with the default registry at
// package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── Authentication metrics ────────────────────────────────────────────────────

// LoginsTotal counts login submissions by outcome.
// Label:
//   - outcome: "admin", "client", "demo", "rejected", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login submissions, by decision outcome.",
	},
	[]string{"outcome"},
)

// SessionsActive tracks the number of sessions currently held in memory.
var SessionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_active",
		Help:      "Current number of live sessions in the registry.",
	},
)

// ── Record store metrics ──────────────────────────────────────────────────────

// ClientMutationsTotal counts administrator CRUD mutations.
// Labels:
//   - op: "insert", "update", or "delete"
//   - result: "ok" or "error"
var ClientMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_mutations_total",
		Help:      "Total number of client record mutations, by operation and result.",
	},
	[]string{"op", "result"},
)

// ── Assistant metrics ─────────────────────────────────────────────────────────

// AssistantRequestsTotal counts generation calls by outcome.
// Label:
//   - outcome: "ok", "unconfigured", "error", or "empty"
var AssistantRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assistant_requests_total",
		Help:      "Total number of assistant generation calls, by outcome.",
	},
	[]string{"outcome"},
)

// AssistantRequestDuration measures end-to-end generation call latency.
var AssistantRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "assistant_request_duration_seconds",
		Help:      "Duration of assistant generation calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)
