package payment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/securebank/payment-portal-service/internal/domain"
	"github.com/securebank/payment-portal-service/internal/infrastructure/kafka"
	paymentdto "github.com/securebank/payment-portal-service/internal/usecase/dto/payment"
)

// SubmitBatch forwards every requested payment that is currently VERIFIED to
// the settlement network. Ids in any other state are silently excluded from
// the batch rather than individually errored; partial batches are expected.
func (uc *DefaultPaymentUsecase) SubmitBatch(ctx context.Context, input *paymentdto.SubmitBatchInput) ([]*domain.SubmissionReceipt, error) {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	batchReference := idGenerator()

	var receipts []*domain.SubmissionReceipt
	for _, paymentID := range input.PaymentIDs {
		submittedAt := time.Now()

		ok, err := uc.PaymentRepo.MarkSubmittedIfVerified(ctx, paymentID, submittedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to submit payment %s: %w", paymentID, err)
		}
		if !ok {
			continue
		}

		payment, err := uc.PaymentRepo.GetPaymentByID(ctx, paymentID)
		if err != nil {
			return nil, err
		}

		receipts = append(receipts, &domain.SubmissionReceipt{
			PaymentID:       payment.ID,
			ReferenceNumber: payment.ReferenceNumber(),
			BatchReference:  batchReference,
			Status:          payment.Status,
			SubmittedAt:     submittedAt,
		})

		uc.Metrics.PaymentsSubmittedTotal.WithLabelValues(payment.Currency).Inc()

		go func(event kafka.SettlementEvent) {
			if err := uc.Publisher.PublishSettlement(event); err != nil {
				slog.Error("failed to publish settlement event", "payment_id", event.PaymentID, "error", err.Error())
			}
		}(kafka.SettlementEvent{
			PaymentID:       payment.ID,
			ReferenceNumber: payment.ReferenceNumber(),
			BatchReference:  batchReference,
			Amount:          payment.Amount,
			Currency:        payment.Currency,
			PayeeAccount:    payment.PayeeAccount,
			SwiftCode:       payment.SwiftCode,
			SubmittedBy:     input.EmployeeID,
			SubmittedAt:     submittedAt,
		})

		uc.AuditSink.Record(ctx, domain.AuditEntry{
			ActorID:     input.EmployeeID,
			ActorKind:   domain.KindEmployee,
			Action:      domain.ActionSubmitToSwift,
			EntityType:  "Payment",
			EntityID:    payment.ID,
			Description: fmt.Sprintf("Payment submitted to SWIFT: %s (batch %s)", payment.ReferenceNumber(), batchReference),
			IPAddress:   input.Client.IP,
			UserAgent:   input.Client.UserAgent,
			Severity:    domain.SeverityHigh,
		})
	}

	if len(receipts) == 0 {
		return nil, domain.ErrNoEligiblePayments
	}

	return receipts, nil
}
