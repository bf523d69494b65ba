package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/securebank/payment-portal-service/internal/domain"
	paymentdto "github.com/securebank/payment-portal-service/internal/usecase/dto/payment"
)

const minRejectionReasonLength = 10

func (uc *DefaultPaymentUsecase) RejectPayment(ctx context.Context, input *paymentdto.RejectPaymentInput) (*paymentdto.PaymentOutput, error) {
	reason := strings.TrimSpace(input.Reason)
	if len(reason) < minRejectionReasonLength {
		return nil, domain.ErrReasonTooShort
	}

	if _, err := uc.PaymentRepo.GetPaymentByID(ctx, input.PaymentID); err != nil {
		return nil, err
	}

	ok, err := uc.PaymentRepo.UpdateStatusIfPending(ctx, input.PaymentID, domain.StatusRejected, input.EmployeeID, time.Now(), &reason)
	if err != nil {
		return nil, fmt.Errorf("failed to reject payment: %w", err)
	}
	if !ok {
		return nil, domain.ErrPaymentNotPending
	}

	payment, err := uc.PaymentRepo.GetPaymentByID(ctx, input.PaymentID)
	if err != nil {
		return nil, err
	}

	uc.Metrics.PaymentsRejectedTotal.WithLabelValues(payment.Currency).Inc()
	uc.AuditSink.Record(ctx, domain.AuditEntry{
		ActorID:     input.EmployeeID,
		ActorKind:   domain.KindEmployee,
		Action:      domain.ActionRejectPayment,
		EntityType:  "Payment",
		EntityID:    payment.ID,
		Description: fmt.Sprintf("Payment rejected: %s. Reason: %s", payment.ReferenceNumber(), reason),
		IPAddress:   input.Client.IP,
		UserAgent:   input.Client.UserAgent,
		Severity:    domain.SeverityMedium,
	})

	return paymentdto.ToPaymentOutput(payment), nil
}
