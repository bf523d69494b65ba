package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/securebank/payment-portal-service/internal/domain"
	paymentdto "github.com/securebank/payment-portal-service/internal/usecase/dto/payment"
)

// CreatePayment validates every field before anything is persisted. The
// first violated rule is returned and nothing is written.
func (uc *DefaultPaymentUsecase) CreatePayment(ctx context.Context, input *paymentdto.CreatePaymentInput) (*paymentdto.PaymentOutput, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := domain.ValidateCurrency(input.Currency); err != nil {
		return nil, err
	}
	if err := domain.ValidatePayeeName(input.PayeeName); err != nil {
		return nil, err
	}
	if err := domain.ValidatePayeeAccount(input.PayeeAccount); err != nil {
		return nil, err
	}
	if err := domain.ValidateSwiftCode(input.SwiftCode); err != nil {
		return nil, err
	}

	provider := input.Provider
	if provider == "" {
		provider = "SWIFT"
	}

	now := time.Now()
	payment := &domain.Payment{
		ID:           uuid.New().String(),
		CustomerID:   input.CustomerID,
		Amount:       input.Amount,
		Currency:     input.Currency,
		Provider:     provider,
		PayeeName:    input.PayeeName,
		PayeeAccount: input.PayeeAccount,
		SwiftCode:    input.SwiftCode,
		Status:       domain.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.PaymentRepo.CreatePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	uc.Metrics.PaymentsCreatedTotal.WithLabelValues(payment.Currency).Inc()
	uc.Metrics.PaymentsCreatedAmountTotal.WithLabelValues(payment.Currency).Add(payment.Amount)

	uc.AuditSink.Record(ctx, domain.AuditEntry{
		ActorID:     input.CustomerID,
		ActorKind:   domain.KindCustomer,
		Action:      domain.ActionPaymentCreate,
		EntityType:  "Payment",
		EntityID:    payment.ID,
		Description: fmt.Sprintf("Payment created: %s %.2f to %s", payment.Currency, payment.Amount, payment.PayeeName),
		IPAddress:   input.Client.IP,
		UserAgent:   input.Client.UserAgent,
		Severity:    domain.SeverityLow,
	})

	return paymentdto.ToPaymentOutput(payment), nil
}
