package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/securebank/payment-portal-service/internal/domain"
	paymentdto "github.com/securebank/payment-portal-service/internal/usecase/dto/payment"
)

func (uc *DefaultPaymentUsecase) VerifyPayment(ctx context.Context, input *paymentdto.ReviewPaymentInput) (*paymentdto.PaymentOutput, error) {
	// Resolve first so an unknown id is reported as not-found rather than
	// as a state violation.
	if _, err := uc.PaymentRepo.GetPaymentByID(ctx, input.PaymentID); err != nil {
		return nil, err
	}

	ok, err := uc.PaymentRepo.UpdateStatusIfPending(ctx, input.PaymentID, domain.StatusVerified, input.EmployeeID, time.Now(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to verify payment: %w", err)
	}
	if !ok {
		return nil, domain.ErrPaymentNotPending
	}

	payment, err := uc.PaymentRepo.GetPaymentByID(ctx, input.PaymentID)
	if err != nil {
		return nil, err
	}

	uc.Metrics.PaymentsVerifiedTotal.WithLabelValues(payment.Currency).Inc()
	uc.AuditSink.Record(ctx, domain.AuditEntry{
		ActorID:     input.EmployeeID,
		ActorKind:   domain.KindEmployee,
		Action:      domain.ActionVerifyPayment,
		EntityType:  "Payment",
		EntityID:    payment.ID,
		Description: fmt.Sprintf("Payment verified: %s", payment.ReferenceNumber()),
		IPAddress:   input.Client.IP,
		UserAgent:   input.Client.UserAgent,
		Severity:    domain.SeverityMedium,
	})

	return paymentdto.ToPaymentOutput(payment), nil
}
