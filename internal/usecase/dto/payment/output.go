package paymentdto

import (
	"time"

	"github.com/securebank/payment-portal-service/internal/domain"
)

type PaymentOutput struct {
	ID              string
	ReferenceNumber string
	CustomerID      string
	Amount          float64
	Currency        string
	Provider        string
	PayeeName       string
	PayeeAccount    string
	SwiftCode       string
	Status          domain.PaymentStatus
	VerifiedBy      *string
	VerifiedAt      *time.Time
	RejectionReason *string
	SubmittedAt     *time.Time
	CreatedAt       time.Time
}

func ToPaymentOutput(payment *domain.Payment) *PaymentOutput {
	return &PaymentOutput{
		ID:              payment.ID,
		ReferenceNumber: payment.ReferenceNumber(),
		CustomerID:      payment.CustomerID,
		Amount:          payment.Amount,
		Currency:        payment.Currency,
		Provider:        payment.Provider,
		PayeeName:       payment.PayeeName,
		PayeeAccount:    payment.PayeeAccount,
		SwiftCode:       payment.SwiftCode,
		Status:          payment.Status,
		VerifiedBy:      payment.VerifiedBy,
		VerifiedAt:      payment.VerifiedAt,
		RejectionReason: payment.RejectionReason,
		SubmittedAt:     payment.SubmittedAt,
		CreatedAt:       payment.CreatedAt,
	}
}
