package repository

import (
	"context"
	"errors"
	"time"

	"github.com/securebank/payment-portal-service/internal/domain"
	"github.com/securebank/payment-portal-service/internal/infrastructure/postgres/mappers"
	"github.com/securebank/payment-portal-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPaymentRepository struct {
	DB *gorm.DB
}

func NewDefaultPaymentRepository(db *gorm.DB) *DefaultPaymentRepository {
	return &DefaultPaymentRepository{DB: db}
}

func (r *DefaultPaymentRepository) CreatePayment(ctx context.Context, payment *domain.Payment) error {
	paymentModel := mappers.ToGORMPayment(payment)
	if err := r.DB.WithContext(ctx).Create(paymentModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultPaymentRepository) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	var payment models.PaymentModel
	if err := r.DB.WithContext(ctx).First(&payment, "id = ?", paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}

	return mappers.ToDomainPayment(&payment), nil
}

func (r *DefaultPaymentRepository) GetPaymentsByStatus(ctx context.Context, status domain.PaymentStatus) ([]*domain.Payment, error) {
	var paymentModels []models.PaymentModel
	err := r.DB.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&paymentModels).Error
	if err != nil {
		return nil, err
	}

	payments := make([]*domain.Payment, len(paymentModels))
	for i, paymentModel := range paymentModels {
		payments[i] = mappers.ToDomainPayment(&paymentModel)
	}

	return payments, nil
}

func (r *DefaultPaymentRepository) GetPaymentsByCustomerID(ctx context.Context, customerID string) ([]*domain.Payment, error) {
	var paymentModels []models.PaymentModel
	err := r.DB.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&paymentModels).Error
	if err != nil {
		return nil, err
	}

	payments := make([]*domain.Payment, len(paymentModels))
	for i, paymentModel := range paymentModels {
		payments[i] = mappers.ToDomainPayment(&paymentModel)
	}

	return payments, nil
}

// UpdateStatusIfPending applies the PENDING -> VERIFIED/REJECTED transition as
// a single conditional UPDATE. Only the first concurrent reviewer wins; the
// second observes zero affected rows.
func (r *DefaultPaymentRepository) UpdateStatusIfPending(
	ctx context.Context,
	paymentID string,
	newStatus domain.PaymentStatus,
	reviewerID string,
	reviewedAt time.Time,
	rejectionReason *string,
) (bool, error) {
	updates := map[string]interface{}{
		"status":      newStatus,
		"verified_by": reviewerID,
		"verified_at": reviewedAt,
	}
	if rejectionReason != nil {
		updates["rejection_reason"] = *rejectionReason
	}

	res := r.DB.WithContext(ctx).
		Model(&models.PaymentModel{}).
		Where("id = ? AND status = ?", paymentID, domain.StatusPending).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

func (r *DefaultPaymentRepository) MarkSubmittedIfVerified(ctx context.Context, paymentID string, submittedAt time.Time) (bool, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.PaymentModel{}).
		Where("id = ? AND status = ?", paymentID, domain.StatusVerified).
		Updates(map[string]interface{}{
			"status":       domain.StatusSubmitted,
			"submitted_at": submittedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}
