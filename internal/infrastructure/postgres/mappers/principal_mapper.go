package mappers

import (
	"github.com/securebank/payment-portal-service/internal/domain"
	"github.com/securebank/payment-portal-service/internal/infrastructure/postgres/models"
)

func ToDomainCustomer(model *models.CustomerModel) *domain.Customer {
	return &domain.Customer{
		ID:             model.ID,
		FullName:       model.FullName,
		IDNumber:       model.IDNumber,
		AccountNumber:  model.AccountNumber,
		Username:       model.Username,
		PasswordHash:   model.PasswordHash,
		IsActive:       model.IsActive,
		FailedAttempts: model.FailedAttempts,
		LockUntil:      model.LockUntil,
		LastLogin:      model.LastLogin,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

func ToGORMCustomer(customer *domain.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		ID:             customer.ID,
		FullName:       customer.FullName,
		IDNumber:       customer.IDNumber,
		AccountNumber:  customer.AccountNumber,
		Username:       customer.Username,
		PasswordHash:   customer.PasswordHash,
		IsActive:       customer.IsActive,
		FailedAttempts: customer.FailedAttempts,
		LockUntil:      customer.LockUntil,
		LastLogin:      customer.LastLogin,
		CreatedAt:      customer.CreatedAt,
		UpdatedAt:      customer.UpdatedAt,
	}
}

func ToDomainEmployee(model *models.EmployeeModel) *domain.Employee {
	return &domain.Employee{
		ID:             model.ID,
		EmployeeNumber: model.EmployeeNumber,
		Username:       model.Username,
		FullName:       model.FullName,
		PasswordHash:   model.PasswordHash,
		Role:           model.Role,
		Department:     model.Department,
		IsActive:       model.IsActive,
		FailedAttempts: model.FailedAttempts,
		LockUntil:      model.LockUntil,
		LastLogin:      model.LastLogin,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

func ToGORMEmployee(employee *domain.Employee) *models.EmployeeModel {
	return &models.EmployeeModel{
		ID:             employee.ID,
		EmployeeNumber: employee.EmployeeNumber,
		Username:       employee.Username,
		FullName:       employee.FullName,
		PasswordHash:   employee.PasswordHash,
		Role:           employee.Role,
		Department:     employee.Department,
		IsActive:       employee.IsActive,
		FailedAttempts: employee.FailedAttempts,
		LockUntil:      employee.LockUntil,
		LastLogin:      employee.LastLogin,
		CreatedAt:      employee.CreatedAt,
		UpdatedAt:      employee.UpdatedAt,
	}
}
