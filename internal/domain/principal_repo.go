package domain

import (
	"context"
	"time"
)

type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *Customer) error
	// GetActiveByUsername must match the username by exact equality only.
	GetActiveByUsername(ctx context.Context, username string) (*Customer, error)
	GetByID(ctx context.Context, id string) (*Customer, error)
	ExistsByUniqueFields(ctx context.Context, username, accountNumber, idNumber string) (bool, error)

	// IncrementFailedAttempts atomically bumps the counter and returns the
	// new value, so two simultaneous wrong-password submissions both count.
	IncrementFailedAttempts(ctx context.Context, id string) (int, error)
	Lock(ctx context.Context, id string, until time.Time) error
	ResetLockout(ctx context.Context, id string, lastLogin time.Time) error
}

type EmployeeRepository interface {
	CreateEmployee(ctx context.Context, employee *Employee) error
	GetActiveByUsername(ctx context.Context, username string) (*Employee, error)
	GetByID(ctx context.Context, id string) (*Employee, error)

	IncrementFailedAttempts(ctx context.Context, id string) (int, error)
	Lock(ctx context.Context, id string, until time.Time) error
	ResetLockout(ctx context.Context, id string, lastLogin time.Time) error
}
