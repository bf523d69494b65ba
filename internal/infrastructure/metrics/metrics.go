package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PortalMetrics holds every counter the portal records.
type PortalMetrics struct {
	// Authentication
	LoginsSuccessTotal  prometheus.CounterVec
	LoginsFailedTotal   prometheus.CounterVec
	AccountsLockedTotal prometheus.CounterVec

	// Payment lifecycle
	PaymentsCreatedTotal       prometheus.CounterVec
	PaymentsCreatedAmountTotal prometheus.CounterVec
	PaymentsVerifiedTotal      prometheus.CounterVec
	PaymentsRejectedTotal      prometheus.CounterVec
	PaymentsSubmittedTotal     prometheus.CounterVec

	// Audit
	AuditWriteFailuresTotal prometheus.Counter
}

func NewPortalMetrics() *PortalMetrics {
	return &PortalMetrics{
		LoginsSuccessTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logins_success_total",
				Help: "Successful logins by principal kind",
			},
			[]string{"kind"},
		),

		LoginsFailedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logins_failed_total",
				Help: "Failed login attempts by principal kind",
			},
			[]string{"kind"},
		),

		AccountsLockedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "accounts_locked_total",
				Help: "Accounts locked out after repeated failures",
			},
			[]string{"kind"},
		),

		PaymentsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_created_total",
				Help: "Payments created",
			},
			[]string{"currency"},
		),

		PaymentsCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_created_amount_total",
				Help: "Total amount of created payments",
			},
			[]string{"currency"},
		),

		PaymentsVerifiedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_verified_total",
				Help: "Payments verified by employees",
			},
			[]string{"currency"},
		),

		PaymentsRejectedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_rejected_total",
				Help: "Payments rejected by employees",
			},
			[]string{"currency"},
		),

		PaymentsSubmittedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_submitted_total",
				Help: "Payments submitted to the settlement network",
			},
			[]string{"currency"},
		),

		AuditWriteFailuresTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "audit_write_failures_total",
				Help: "Audit trail writes that failed and were dropped",
			},
		),
	}
}
