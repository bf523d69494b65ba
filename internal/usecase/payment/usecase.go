package payment

import (
	"context"

	"github.com/securebank/payment-portal-service/internal/domain"
	"github.com/securebank/payment-portal-service/internal/infrastructure/kafka"
	"github.com/securebank/payment-portal-service/internal/infrastructure/metrics"
	paymentdto "github.com/securebank/payment-portal-service/internal/usecase/dto/payment"
)

type PaymentUsecase interface {
	CreatePayment(ctx context.Context, input *paymentdto.CreatePaymentInput) (*paymentdto.PaymentOutput, error)
	VerifyPayment(ctx context.Context, input *paymentdto.ReviewPaymentInput) (*paymentdto.PaymentOutput, error)
	RejectPayment(ctx context.Context, input *paymentdto.RejectPaymentInput) (*paymentdto.PaymentOutput, error)
	SubmitBatch(ctx context.Context, input *paymentdto.SubmitBatchInput) ([]*domain.SubmissionReceipt, error)

	GetPaymentByID(ctx context.Context, employeeID, paymentID string, client domain.ClientContext) (*paymentdto.PaymentOutput, error)
	GetPendingPayments(ctx context.Context, employeeID string, client domain.ClientContext) ([]*paymentdto.PaymentOutput, error)
	GetVerifiedPayments(ctx context.Context) ([]*paymentdto.PaymentOutput, error)
	GetCustomerPayments(ctx context.Context, customerID string) ([]*paymentdto.PaymentOutput, error)
}

// SettlementPublisher is what the lifecycle engine needs from the simulated
// settlement network.
type SettlementPublisher interface {
	PublishSettlement(event kafka.SettlementEvent) error
}

type DefaultPaymentUsecase struct {
	PaymentRepo domain.PaymentRepository
	AuditSink   domain.AuditSink
	Publisher   SettlementPublisher
	Metrics     *metrics.PortalMetrics
}

func NewDefaultPaymentUsecase(
	paymentRepo domain.PaymentRepository,
	auditSink domain.AuditSink,
	settlementPublisher SettlementPublisher,
	portalMetrics *metrics.PortalMetrics) *DefaultPaymentUsecase {

	return &DefaultPaymentUsecase{
		PaymentRepo: paymentRepo,
		AuditSink:   auditSink,
		Publisher:   settlementPublisher,
		Metrics:     portalMetrics,
	}
}
