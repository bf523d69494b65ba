package auth

import (
	"context"
	"time"

	"github.com/securebank/payment-portal-service/internal/config"
	"github.com/securebank/payment-portal-service/internal/domain"
	"github.com/securebank/payment-portal-service/internal/infrastructure/metrics"
	authdto "github.com/securebank/payment-portal-service/internal/usecase/dto/auth"
)

type AuthUsecase interface {
	RegisterCustomer(ctx context.Context, input *authdto.RegisterCustomerInput) error
	LoginCustomer(ctx context.Context, input *authdto.LoginInput) (*authdto.CustomerLoginOutput, error)
	LoginEmployee(ctx context.Context, input *authdto.LoginInput) (*authdto.EmployeeLoginOutput, error)

	VerifyToken(rawToken string, wantKind domain.PrincipalKind) (*Claims, error)
}

type DefaultAuthUsecase struct {
	CustomerRepo domain.CustomerRepository
	EmployeeRepo domain.EmployeeRepository
	AuditSink    domain.AuditSink
	Metrics      *metrics.PortalMetrics

	jwtSecret        []byte
	customerTokenTTL time.Duration
	employeeTokenTTL time.Duration
}

func NewDefaultAuthUsecase(
	customerRepo domain.CustomerRepository,
	employeeRepo domain.EmployeeRepository,
	auditSink domain.AuditSink,
	portalMetrics *metrics.PortalMetrics,
	authCfg config.AuthConfig) *DefaultAuthUsecase {

	customerTTL := authCfg.CustomerTokenTTL
	if customerTTL == 0 {
		customerTTL = time.Hour
	}
	employeeTTL := authCfg.EmployeeTokenTTL
	if employeeTTL == 0 {
		employeeTTL = 2 * time.Hour
	}

	return &DefaultAuthUsecase{
		CustomerRepo:     customerRepo,
		EmployeeRepo:     employeeRepo,
		AuditSink:        auditSink,
		Metrics:          portalMetrics,
		jwtSecret:        []byte(authCfg.JWTSecret),
		customerTokenTTL: customerTTL,
		employeeTokenTTL: employeeTTL,
	}
}
