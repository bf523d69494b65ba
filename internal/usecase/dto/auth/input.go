package authdto

import "github.com/securebank/payment-portal-service/internal/domain"

type LoginInput struct {
	Username string
	Password string
	Client   domain.ClientContext
}

type RegisterCustomerInput struct {
	FullName      string
	IDNumber      string
	AccountNumber string
	Username      string
	Password      string
	Client        domain.ClientContext
}
