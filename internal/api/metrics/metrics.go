// Package metrics defines and registers all custom Prometheus metrics for
// the clinic portal auth facade. It is the single source of truth for
// metric names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinicauth"

// LoginsTotal counts completed login attempts.
// Label:
//   - outcome: "success", "account_not_found", "invalid_credentials",
//     "role_mismatch", or "cancelled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// RegistrationsTotal counts completed registration attempts.
// Label:
//   - outcome: "success", "email_taken", "invalid_phone", or "cancelled"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by outcome.",
	},
	[]string{"outcome"},
)

// AuthDuration measures how long an auth operation takes end-to-end,
// including the simulated network latency.
// Label:
//   - operation: "login" or "register"
var AuthDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "auth_duration_seconds",
		Help:      "Duration of auth operations from request to result delivery.",
		Buckets:   []float64{.25, .5, 1, 1.5, 2, 2.5, 5},
	},
	[]string{"operation"},
)

// SessionRestoresTotal counts startup slot restores.
// Label:
//   - result: "restored", "empty", or "malformed"
var SessionRestoresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_restores_total",
		Help:      "Total number of persisted-session restore attempts, by result.",
	},
	[]string{"result"},
)

// ActiveSession reports whether an identity is currently active (0 or 1;
// the client is single-user).
var ActiveSession = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_session",
		Help:      "1 when an identity is active, 0 when unauthenticated.",
	},
)
