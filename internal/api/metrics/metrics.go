// Package metrics defines and registers all custom Prometheus metrics for the
// health leave API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "health_leave"

// ── Submission metrics ────────────────────────────────────────────────────────

// SubmissionsCreatedTotal counts newly submitted leave requests.
// Label:
//   - leave_time: the requested duration as entered (e.g. "1 Day", "First Half")
var SubmissionsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_created_total",
		Help:      "Total number of leave requests submitted, by requested duration.",
	},
	[]string{"leave_time"},
)

// TransitionsTotal counts lifecycle transitions applied to submissions.
// Label:
//   - status: the resulting status ("Approved" or "Rejected")
var TransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transitions_total",
		Help:      "Total number of submission status transitions, by resulting status.",
	},
	[]string{"status"},
)

// SubmissionsDeletedTotal counts hard deletions of submission records.
var SubmissionsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_deleted_total",
		Help:      "Total number of submissions hard-deleted by the super admin.",
	},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsTotal counts webhook delivery attempts.
// Labels:
//   - kind: "submitted", "approved", or "rejected"
//   - result: "sent" or "failed"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of Discord webhook deliveries, by kind and result.",
	},
	[]string{"kind", "result"},
)

// ── Account metrics ───────────────────────────────────────────────────────────

// SignInsTotal counts sign-in attempts.
// Label:
//   - result: "ok", "invalid_token", "domain_refused", or "error"
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sign_ins_total",
		Help:      "Total number of Google sign-in attempts, by result.",
	},
	[]string{"result"},
)

// RoleChangesTotal counts role assignments applied by the super admin.
// Label:
//   - role: the newly assigned role ("user" or "admin")
var RoleChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_changes_total",
		Help:      "Total number of role assignments, by new role.",
	},
	[]string{"role"},
)
