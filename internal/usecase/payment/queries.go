package payment

import (
	"context"
	"fmt"

	"github.com/securebank/payment-portal-service/internal/domain"
	paymentdto "github.com/securebank/payment-portal-service/internal/usecase/dto/payment"
)

func (uc *DefaultPaymentUsecase) GetPaymentByID(ctx context.Context, employeeID, paymentID string, client domain.ClientContext) (*paymentdto.PaymentOutput, error) {
	payment, err := uc.PaymentRepo.GetPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	uc.AuditSink.Record(ctx, domain.AuditEntry{
		ActorID:     employeeID,
		ActorKind:   domain.KindEmployee,
		Action:      domain.ActionViewPaymentDetails,
		EntityType:  "Payment",
		EntityID:    payment.ID,
		Description: fmt.Sprintf("Employee viewed payment details: %s", payment.ReferenceNumber()),
		IPAddress:   client.IP,
		UserAgent:   client.UserAgent,
		Severity:    domain.SeverityLow,
	})

	return paymentdto.ToPaymentOutput(payment), nil
}

func (uc *DefaultPaymentUsecase) GetPendingPayments(ctx context.Context, employeeID string, client domain.ClientContext) ([]*paymentdto.PaymentOutput, error) {
	payments, err := uc.PaymentRepo.GetPaymentsByStatus(ctx, domain.StatusPending)
	if err != nil {
		return nil, err
	}

	uc.AuditSink.Record(ctx, domain.AuditEntry{
		ActorID:     employeeID,
		ActorKind:   domain.KindEmployee,
		Action:      domain.ActionViewPendingPayments,
		EntityType:  "Payment",
		Description: fmt.Sprintf("Employee viewed %d pending payments", len(payments)),
		IPAddress:   client.IP,
		UserAgent:   client.UserAgent,
		Severity:    domain.SeverityLow,
	})

	return toOutputs(payments), nil
}

func (uc *DefaultPaymentUsecase) GetVerifiedPayments(ctx context.Context) ([]*paymentdto.PaymentOutput, error) {
	payments, err := uc.PaymentRepo.GetPaymentsByStatus(ctx, domain.StatusVerified)
	if err != nil {
		return nil, err
	}

	return toOutputs(payments), nil
}

func (uc *DefaultPaymentUsecase) GetCustomerPayments(ctx context.Context, customerID string) ([]*paymentdto.PaymentOutput, error) {
	payments, err := uc.PaymentRepo.GetPaymentsByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return toOutputs(payments), nil
}

func toOutputs(payments []*domain.Payment) []*paymentdto.PaymentOutput {
	outputs := make([]*paymentdto.PaymentOutput, len(payments))
	for i, payment := range payments {
		outputs[i] = paymentdto.ToPaymentOutput(payment)
	}
	return outputs
}
