package setup

import (
	"github.com/securebank/payment-portal-service/internal/usecase/audit"
	"github.com/securebank/payment-portal-service/internal/usecase/auth"
	"github.com/securebank/payment-portal-service/internal/usecase/payment"
)

type Usecases struct {
	AuthUsecase    auth.AuthUsecase
	PaymentUsecase payment.PaymentUsecase
	AuditUsecase   audit.AuditUsecase
}

func InitializeUsecases(deps *Dependencies) *Usecases {
	auditUsecase := audit.NewDefaultAuditUsecase(deps.Repositories.AuditRepo, deps.Metrics)

	authUsecase := auth.NewDefaultAuthUsecase(
		deps.Repositories.CustomerRepo,
		deps.Repositories.EmployeeRepo,
		auditUsecase,
		deps.Metrics,
		deps.Config.AuthConfig,
	)

	paymentUsecase := payment.NewDefaultPaymentUsecase(
		deps.Repositories.PaymentRepo,
		auditUsecase,
		deps.SettlementPublisher,
		deps.Metrics,
	)

	return &Usecases{
		AuthUsecase:    authUsecase,
		PaymentUsecase: paymentUsecase,
		AuditUsecase:   auditUsecase,
	}
}
