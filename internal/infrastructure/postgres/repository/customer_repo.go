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

type DefaultCustomerRepository struct {
	DB *gorm.DB
}

func NewDefaultCustomerRepository(db *gorm.DB) *DefaultCustomerRepository {
	return &DefaultCustomerRepository{DB: db}
}

func (r *DefaultCustomerRepository) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	customerModel := mappers.ToGORMCustomer(customer)
	if err := r.DB.WithContext(ctx).Create(customerModel).Error; err != nil {
		return err
	}
	return nil
}

// GetActiveByUsername looks the customer up by exact-value equality only.
func (r *DefaultCustomerRepository) GetActiveByUsername(ctx context.Context, username string) (*domain.Customer, error) {
	var customer models.CustomerModel
	err := r.DB.WithContext(ctx).
		Where("username = ? AND is_active = ?", username, true).
		First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPrincipalNotFound
		}
		return nil, err
	}

	return mappers.ToDomainCustomer(&customer), nil
}

func (r *DefaultCustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	var customer models.CustomerModel
	if err := r.DB.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPrincipalNotFound
		}
		return nil, err
	}

	return mappers.ToDomainCustomer(&customer), nil
}

func (r *DefaultCustomerRepository) ExistsByUniqueFields(ctx context.Context, username, accountNumber, idNumber string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Where("username = ? OR account_number = ? OR id_number = ?", username, accountNumber, idNumber).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// IncrementFailedAttempts bumps the counter atomically and returns the new
// value, so concurrent failed logins are all counted.
func (r *DefaultCustomerRepository) IncrementFailedAttempts(ctx context.Context, id string) (int, error) {
	var newCount int
	err := r.DB.WithContext(ctx).Raw(
		"UPDATE customer_models SET failed_attempts = failed_attempts + 1, updated_at = NOW() WHERE id = ? RETURNING failed_attempts",
		id,
	).Scan(&newCount).Error
	if err != nil {
		return 0, err
	}

	return newCount, nil
}

func (r *DefaultCustomerRepository) Lock(ctx context.Context, id string, until time.Time) error {
	return r.DB.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"lock_until":      until,
			"failed_attempts": 0,
		}).Error
}

func (r *DefaultCustomerRepository) ResetLockout(ctx context.Context, id string, lastLogin time.Time) error {
	return r.DB.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"failed_attempts": 0,
			"lock_until":      nil,
			"last_login":      lastLogin,
		}).Error
}
