package domain

import (
	"context"
	"time"
)

type AuditAction string

const (
	ActionLoginSuccess        AuditAction = "LOGIN_SUCCESS"
	ActionLoginFailed         AuditAction = "LOGIN_FAILED"
	ActionRegister            AuditAction = "REGISTER"
	ActionPaymentCreate       AuditAction = "PAYMENT_CREATE"
	ActionViewPaymentDetails  AuditAction = "VIEW_PAYMENT_DETAILS"
	ActionViewPendingPayments AuditAction = "VIEW_PENDING_PAYMENTS"
	ActionVerifyPayment       AuditAction = "VERIFY_PAYMENT"
	ActionRejectPayment       AuditAction = "REJECT_PAYMENT"
	ActionSubmitToSwift       AuditAction = "SUBMIT_TO_SWIFT"
	ActionViewAuditTrail      AuditAction = "VIEW_AUDIT_TRAIL"
)

type AuditSeverity string

const (
	SeverityLow      AuditSeverity = "LOW"
	SeverityMedium   AuditSeverity = "MEDIUM"
	SeverityHigh     AuditSeverity = "HIGH"
	SeverityCritical AuditSeverity = "CRITICAL"
)

// AuditEntry is append-only: entries are never updated or deleted.
type AuditEntry struct {
	ID          string
	ActorID     string
	ActorKind   PrincipalKind
	Action      AuditAction
	EntityType  string
	EntityID    string
	Description string
	IPAddress   string
	UserAgent   string
	Severity    AuditSeverity
	Timestamp   time.Time
}

type AuditFilters struct {
	ActorKind PrincipalKind
	Action    AuditAction
	Severity  AuditSeverity
	DateFrom  time.Time
	DateTo    time.Time
}

// AuditSink is the narrow port the authenticator and the lifecycle engine
// depend on. Record must never fail the caller's primary operation.
type AuditSink interface {
	Record(ctx context.Context, entry AuditEntry)
}

type AuditRepository interface {
	CreateEntry(ctx context.Context, entry *AuditEntry) error
	GetEntries(ctx context.Context, filters AuditFilters, page, limit int64) ([]*AuditEntry, int64, error)
}
