package paymentdto

import "github.com/securebank/payment-portal-service/internal/domain"

type CreatePaymentInput struct {
	CustomerID   string
	Amount       float64
	Currency     string
	Provider     string
	PayeeName    string
	PayeeAccount string
	SwiftCode    string
	Client       domain.ClientContext
}

type ReviewPaymentInput struct {
	EmployeeID string
	PaymentID  string
	Client     domain.ClientContext
}

type RejectPaymentInput struct {
	EmployeeID string
	PaymentID  string
	Reason     string
	Client     domain.ClientContext
}

type SubmitBatchInput struct {
	EmployeeID string
	PaymentIDs []string
	Client     domain.ClientContext
}
