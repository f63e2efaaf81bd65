// Package metrics defines all custom Prometheus metrics for the FF&E portal.
// It is the single source of truth for metric names, labels, and help strings.
//
// Metrics are registered with the default Prometheus registry at init time
// via promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ffe"

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsSentTotal counts notification jobs that were delivered.
// Label:
//   - kind: the notification kind (e.g. "invoice_status")
var NotificationsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of notification emails successfully sent.",
	},
	[]string{"kind"},
)

// NotificationsErrorsTotal counts notification jobs that failed delivery.
// Label:
//   - kind: the notification kind
var NotificationsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_errors_total",
		Help:      "Total number of notification jobs that failed.",
	},
	[]string{"kind"},
)

// NotificationsQueueDepth tracks pending jobs per dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotificationsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notifications_queue_depth",
		Help:      "Current number of jobs pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Invoice metrics ───────────────────────────────────────────────────────────

// InvoiceTransitionsTotal counts invoice status changes.
// Label:
//   - status: the status applied (e.g. "approved")
var InvoiceTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invoice_transitions_total",
		Help:      "Total number of invoice status transitions applied.",
	},
	[]string{"status"},
)

// InvoicePDFDuration measures how long a single invoice render takes.
var InvoicePDFDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "invoice_pdf_duration_seconds",
		Help:      "Duration of invoice PDF rendering.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)
