package models

import (
	"time"

	"github.com/securebank/payment-portal-service/internal/domain"
)

type PaymentModel struct {
	ID              string               `gorm:"primaryKey;type:uuid"`
	CustomerID      string               `gorm:"type:uuid;not null;index:idx_customer_status"`
	Amount          float64              `gorm:"not null"`
	Currency        string               `gorm:"not null"`
	Provider        string               `gorm:"not null;default:SWIFT"`
	PayeeName       string               `gorm:"not null"`
	PayeeAccount    string               `gorm:"not null"`
	SwiftCode       string               `gorm:"not null"`
	Status          domain.PaymentStatus `gorm:"not null;index:idx_customer_status;index:idx_status_created"`
	VerifiedBy      *string              `gorm:"type:uuid"`
	VerifiedAt      *time.Time
	RejectionReason *string
	SubmittedAt     *time.Time
	CreatedAt       time.Time `gorm:"index:idx_status_created"`
	UpdatedAt       time.Time
}
