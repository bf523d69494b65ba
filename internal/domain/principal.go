package domain

import "time"

type PrincipalKind string

const (
	KindCustomer PrincipalKind = "CUSTOMER"
	KindEmployee PrincipalKind = "EMPLOYEE"
)

type EmployeeRole string

const (
	RoleEmployee EmployeeRole = "employee"
	RoleManager  EmployeeRole = "manager"
	RoleAdmin    EmployeeRole = "admin"
)

const (
	MaxFailedLoginAttempts = 5
	LockoutWindow          = 2 * time.Hour
)

type Customer struct {
	ID             string
	FullName       string
	IDNumber       string
	AccountNumber  string
	Username       string
	PasswordHash   string
	IsActive       bool
	FailedAttempts int
	LockUntil      *time.Time
	LastLogin      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Employee struct {
	ID             string
	EmployeeNumber string
	Username       string
	FullName       string
	PasswordHash   string
	Role           EmployeeRole
	Department     string
	IsActive       bool
	FailedAttempts int
	LockUntil      *time.Time
	LastLogin      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsLocked reports whether the lockout window is still open at the given time.
func (c *Customer) IsLocked(now time.Time) bool {
	return c.LockUntil != nil && c.LockUntil.After(now)
}

func (e *Employee) IsLocked(now time.Time) bool {
	return e.LockUntil != nil && e.LockUntil.After(now)
}

// ClientContext carries request metadata passed explicitly into every core
// operation instead of living on ambient request state.
type ClientContext struct {
	IP        string
	UserAgent string
}
