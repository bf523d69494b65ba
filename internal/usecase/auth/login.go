package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/securebank/payment-portal-service/internal/domain"
	authdto "github.com/securebank/payment-portal-service/internal/usecase/dto/auth"
	"golang.org/x/crypto/bcrypt"
)

func (uc *DefaultAuthUsecase) LoginCustomer(ctx context.Context, input *authdto.LoginInput) (*authdto.CustomerLoginOutput, error) {
	if err := domain.ValidateUsername(input.Username); err != nil {
		// Malformed handle can never match a stored one; same response as a
		// wrong password so nothing is leaked about account existence.
		return nil, domain.ErrInvalidCredentials
	}

	customer, err := uc.CustomerRepo.GetActiveByUsername(ctx, input.Username)
	if err != nil {
		uc.Metrics.LoginsFailedTotal.WithLabelValues(string(domain.KindCustomer)).Inc()
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	if customer.IsLocked(now) {
		return nil, domain.ErrAccountLocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(input.Password)); err != nil {
		if err := uc.handleFailedAttempt(ctx, uc.CustomerRepo.IncrementFailedAttempts, uc.CustomerRepo.Lock, customer.ID, customer.Username, domain.KindCustomer, input.Client); err != nil {
			return nil, err
		}
		return nil, domain.ErrInvalidCredentials
	}

	if err := uc.CustomerRepo.ResetLockout(ctx, customer.ID, now); err != nil {
		return nil, fmt.Errorf("failed to reset lockout state: %w", err)
	}

	token, expiresAt, err := uc.issueToken(customer.ID, customer.Username, domain.KindCustomer, "", uc.customerTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	uc.Metrics.LoginsSuccessTotal.WithLabelValues(string(domain.KindCustomer)).Inc()
	uc.AuditSink.Record(ctx, domain.AuditEntry{
		ActorID:     customer.ID,
		ActorKind:   domain.KindCustomer,
		Action:      domain.ActionLoginSuccess,
		EntityType:  "Customer",
		EntityID:    customer.ID,
		Description: fmt.Sprintf("Successful login for customer: %s", customer.Username),
		IPAddress:   input.Client.IP,
		UserAgent:   input.Client.UserAgent,
		Severity:    domain.SeverityLow,
	})

	return &authdto.CustomerLoginOutput{
		TokenOutput:   authdto.TokenOutput{Token: token, ExpiresAt: expiresAt},
		CustomerID:    customer.ID,
		FullName:      customer.FullName,
		AccountNumber: customer.AccountNumber,
	}, nil
}

func (uc *DefaultAuthUsecase) LoginEmployee(ctx context.Context, input *authdto.LoginInput) (*authdto.EmployeeLoginOutput, error) {
	if err := domain.ValidateUsername(input.Username); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	employee, err := uc.EmployeeRepo.GetActiveByUsername(ctx, input.Username)
	if err != nil {
		uc.Metrics.LoginsFailedTotal.WithLabelValues(string(domain.KindEmployee)).Inc()
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	if employee.IsLocked(now) {
		return nil, domain.ErrAccountLocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(input.Password)); err != nil {
		if err := uc.handleFailedAttempt(ctx, uc.EmployeeRepo.IncrementFailedAttempts, uc.EmployeeRepo.Lock, employee.ID, employee.Username, domain.KindEmployee, input.Client); err != nil {
			return nil, err
		}
		return nil, domain.ErrInvalidCredentials
	}

	if err := uc.EmployeeRepo.ResetLockout(ctx, employee.ID, now); err != nil {
		return nil, fmt.Errorf("failed to reset lockout state: %w", err)
	}

	token, expiresAt, err := uc.issueToken(employee.ID, employee.Username, domain.KindEmployee, employee.Role, uc.employeeTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	uc.Metrics.LoginsSuccessTotal.WithLabelValues(string(domain.KindEmployee)).Inc()
	uc.AuditSink.Record(ctx, domain.AuditEntry{
		ActorID:     employee.ID,
		ActorKind:   domain.KindEmployee,
		Action:      domain.ActionLoginSuccess,
		EntityType:  "Employee",
		EntityID:    employee.ID,
		Description: fmt.Sprintf("Successful login for employee: %s", employee.Username),
		IPAddress:   input.Client.IP,
		UserAgent:   input.Client.UserAgent,
		Severity:    domain.SeverityLow,
	})

	return &authdto.EmployeeLoginOutput{
		TokenOutput:    authdto.TokenOutput{Token: token, ExpiresAt: expiresAt},
		EmployeeID:     employee.ID,
		EmployeeNumber: employee.EmployeeNumber,
		FullName:       employee.FullName,
		Role:           employee.Role,
		Department:     employee.Department,
	}, nil
}

// handleFailedAttempt counts the failure atomically and locks the account on
// the fifth consecutive one. Locking resets the counter so the window starts
// clean after it elapses.
func (uc *DefaultAuthUsecase) handleFailedAttempt(
	ctx context.Context,
	increment func(context.Context, string) (int, error),
	lock func(context.Context, string, time.Time) error,
	principalID, username string,
	kind domain.PrincipalKind,
	client domain.ClientContext,
) error {
	uc.Metrics.LoginsFailedTotal.WithLabelValues(string(kind)).Inc()

	attempts, err := increment(ctx, principalID)
	if err != nil {
		return fmt.Errorf("failed to count login attempt: %w", err)
	}

	severity := domain.SeverityMedium
	description := fmt.Sprintf("Failed login attempt for %s: %s", kindLabel(kind), username)

	if attempts >= domain.MaxFailedLoginAttempts {
		until := time.Now().Add(domain.LockoutWindow)
		if err := lock(ctx, principalID, until); err != nil {
			return fmt.Errorf("failed to lock account: %w", err)
		}
		uc.Metrics.AccountsLockedTotal.WithLabelValues(string(kind)).Inc()
		severity = domain.SeverityHigh
		description = fmt.Sprintf("Account locked after %d failed attempts for %s: %s", attempts, kindLabel(kind), username)
	}

	uc.AuditSink.Record(ctx, domain.AuditEntry{
		ActorID:     principalID,
		ActorKind:   kind,
		Action:      domain.ActionLoginFailed,
		EntityType:  entityType(kind),
		EntityID:    principalID,
		Description: description,
		IPAddress:   client.IP,
		UserAgent:   client.UserAgent,
		Severity:    severity,
	})

	return nil
}

func kindLabel(kind domain.PrincipalKind) string {
	if kind == domain.KindEmployee {
		return "employee"
	}
	return "customer"
}

func entityType(kind domain.PrincipalKind) string {
	if kind == domain.KindEmployee {
		return "Employee"
	}
	return "Customer"
}
