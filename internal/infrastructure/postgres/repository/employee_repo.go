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

type DefaultEmployeeRepository struct {
	DB *gorm.DB
}

func NewDefaultEmployeeRepository(db *gorm.DB) *DefaultEmployeeRepository {
	return &DefaultEmployeeRepository{DB: db}
}

func (r *DefaultEmployeeRepository) CreateEmployee(ctx context.Context, employee *domain.Employee) error {
	employeeModel := mappers.ToGORMEmployee(employee)
	if err := r.DB.WithContext(ctx).Create(employeeModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultEmployeeRepository) GetActiveByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	var employee models.EmployeeModel
	err := r.DB.WithContext(ctx).
		Where("username = ? AND is_active = ?", username, true).
		First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPrincipalNotFound
		}
		return nil, err
	}

	return mappers.ToDomainEmployee(&employee), nil
}

func (r *DefaultEmployeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	var employee models.EmployeeModel
	if err := r.DB.WithContext(ctx).First(&employee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPrincipalNotFound
		}
		return nil, err
	}

	return mappers.ToDomainEmployee(&employee), nil
}

func (r *DefaultEmployeeRepository) IncrementFailedAttempts(ctx context.Context, id string) (int, error) {
	var newCount int
	err := r.DB.WithContext(ctx).Raw(
		"UPDATE employee_models SET failed_attempts = failed_attempts + 1, updated_at = NOW() WHERE id = ? RETURNING failed_attempts",
		id,
	).Scan(&newCount).Error
	if err != nil {
		return 0, err
	}

	return newCount, nil
}

func (r *DefaultEmployeeRepository) Lock(ctx context.Context, id string, until time.Time) error {
	return r.DB.WithContext(ctx).
		Model(&models.EmployeeModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"lock_until":      until,
			"failed_attempts": 0,
		}).Error
}

func (r *DefaultEmployeeRepository) ResetLockout(ctx context.Context, id string, lastLogin time.Time) error {
	return r.DB.WithContext(ctx).
		Model(&models.EmployeeModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"failed_attempts": 0,
			"lock_until":      nil,
			"last_login":      lastLogin,
		}).Error
}
