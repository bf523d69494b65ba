package domain

import (
	"context"
	"time"
)

type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *Payment) error
	GetPaymentByID(ctx context.Context, paymentID string) (*Payment, error)
	GetPaymentsByStatus(ctx context.Context, status PaymentStatus) ([]*Payment, error)
	GetPaymentsByCustomerID(ctx context.Context, customerID string) ([]*Payment, error)

	// UpdateStatusIfPending performs a conditional update: the transition is
	// applied only if the payment is still PENDING. Returns false when the
	// status check failed, so concurrent reviewers cannot both win.
	UpdateStatusIfPending(ctx context.Context, paymentID string, newStatus PaymentStatus, reviewerID string, reviewedAt time.Time, rejectionReason *string) (bool, error)

	// MarkSubmittedIfVerified is the VERIFIED -> SUBMITTED compare-and-swap.
	MarkSubmittedIfVerified(ctx context.Context, paymentID string, submittedAt time.Time) (bool, error)
}
