package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account temporarily locked")

	ErrInvalidToken = errors.New("token is not valid")

	ErrWrongPrincipalKind = errors.New("access denied")
	ErrInsufficientRole   = errors.New("access denied: insufficient role")

	ErrPaymentNotFound    = errors.New("payment not found")
	ErrPaymentNotPending  = errors.New("payment is not pending verification")
	ErrReasonTooShort     = errors.New("rejection reason must be at least 10 characters")
	ErrNoEligiblePayments = errors.New("no verified payments found for submission")

	ErrDuplicatePrincipal = errors.New("principal already exists")
	ErrPrincipalNotFound  = errors.New("principal not found")
)

// ValidationError reports the first violated format rule for an input field.
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Rule)
}
