package mappers

import (
	"github.com/securebank/payment-portal-service/internal/domain"
	"github.com/securebank/payment-portal-service/internal/infrastructure/postgres/models"
)

func ToDomainPayment(model *models.PaymentModel) *domain.Payment {
	return &domain.Payment{
		ID:              model.ID,
		CustomerID:      model.CustomerID,
		Amount:          model.Amount,
		Currency:        model.Currency,
		Provider:        model.Provider,
		PayeeName:       model.PayeeName,
		PayeeAccount:    model.PayeeAccount,
		SwiftCode:       model.SwiftCode,
		Status:          model.Status,
		VerifiedBy:      model.VerifiedBy,
		VerifiedAt:      model.VerifiedAt,
		RejectionReason: model.RejectionReason,
		SubmittedAt:     model.SubmittedAt,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func ToGORMPayment(payment *domain.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID:              payment.ID,
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
		UpdatedAt:       payment.UpdatedAt,
	}
}
