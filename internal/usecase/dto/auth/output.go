package authdto

import (
	"time"

	"github.com/securebank/payment-portal-service/internal/domain"
)

type TokenOutput struct {
	Token     string
	ExpiresAt time.Time
}

type CustomerLoginOutput struct {
	TokenOutput
	CustomerID    string
	FullName      string
	AccountNumber string
}

type EmployeeLoginOutput struct {
	TokenOutput
	EmployeeID     string
	EmployeeNumber string
	FullName       string
	Role           domain.EmployeeRole
	Department     string
}
