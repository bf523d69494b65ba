package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/securebank/payment-portal-service/internal/domain"
	authdto "github.com/securebank/payment-portal-service/internal/usecase/dto/auth"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

func (uc *DefaultAuthUsecase) RegisterCustomer(ctx context.Context, input *authdto.RegisterCustomerInput) error {
	if err := domain.ValidateFullName(input.FullName); err != nil {
		return err
	}
	if err := domain.ValidateIDNumber(input.IDNumber); err != nil {
		return err
	}
	if err := domain.ValidateAccountNumber(input.AccountNumber); err != nil {
		return err
	}
	if err := domain.ValidateUsername(input.Username); err != nil {
		return err
	}
	if err := domain.ValidatePassword(input.Password); err != nil {
		return err
	}

	exists, err := uc.CustomerRepo.ExistsByUniqueFields(ctx, input.Username, input.AccountNumber, input.IDNumber)
	if err != nil {
		return fmt.Errorf("failed to check existing customers: %w", err)
	}
	if exists {
		return domain.ErrDuplicatePrincipal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	customer := &domain.Customer{
		ID:            uuid.New().String(),
		FullName:      input.FullName,
		IDNumber:      input.IDNumber,
		AccountNumber: input.AccountNumber,
		Username:      input.Username,
		PasswordHash:  string(hash),
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.CustomerRepo.CreateCustomer(ctx, customer); err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	uc.AuditSink.Record(ctx, domain.AuditEntry{
		ActorID:     customer.ID,
		ActorKind:   domain.KindCustomer,
		Action:      domain.ActionRegister,
		EntityType:  "Customer",
		EntityID:    customer.ID,
		Description: fmt.Sprintf("Customer registered: %s", customer.Username),
		IPAddress:   input.Client.IP,
		UserAgent:   input.Client.UserAgent,
		Severity:    domain.SeverityLow,
	})

	return nil
}
