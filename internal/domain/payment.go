package domain

import (
	"fmt"
	"strings"
	"time"
)

type PaymentStatus string

const (
	StatusPending   PaymentStatus = "PENDING"
	StatusVerified  PaymentStatus = "VERIFIED"
	StatusSubmitted PaymentStatus = "SUBMITTED"
	StatusRejected  PaymentStatus = "REJECTED"
)

type Payment struct {
	ID              string
	CustomerID      string
	Amount          float64
	Currency        string
	Provider        string
	PayeeName       string
	PayeeAccount    string
	SwiftCode       string
	Status          PaymentStatus
	VerifiedBy      *string
	VerifiedAt      *time.Time
	RejectionReason *string
	SubmittedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ReferenceNumber derives the customer-facing payment reference from the
// payment id. It is stable for the payment's lifetime because the id is.
func (p *Payment) ReferenceNumber() string {
	raw := strings.ReplaceAll(p.ID, "-", "")
	if len(raw) > 8 {
		raw = raw[len(raw)-8:]
	}
	return fmt.Sprintf("PAY-%s", strings.ToUpper(raw))
}

type PaymentFilters struct {
	CustomerID string
	Statuses   []PaymentStatus
	DateFrom   time.Time
	DateTo     time.Time
}

// SubmissionReceipt is returned for every payment included in a settlement
// batch. BatchReference is shared by all receipts of one SubmitBatch call.
type SubmissionReceipt struct {
	PaymentID       string
	ReferenceNumber string
	BatchReference  string
	Status          PaymentStatus
	SubmittedAt     time.Time
}
