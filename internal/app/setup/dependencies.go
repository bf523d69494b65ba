package setup

import (
	"fmt"

	"github.com/securebank/payment-portal-service/internal/config"
	"github.com/securebank/payment-portal-service/internal/domain"
	"github.com/securebank/payment-portal-service/internal/infrastructure/kafka"
	"github.com/securebank/payment-portal-service/internal/infrastructure/metrics"
	"github.com/securebank/payment-portal-service/internal/infrastructure/postgres"
	"github.com/securebank/payment-portal-service/internal/infrastructure/postgres/repository"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config              *config.PortalConfig
	DB                  *gorm.DB
	SettlementPublisher *kafka.SettlementPublisher
	Metrics             *metrics.PortalMetrics
	Repositories        *Repositories
}

type Repositories struct {
	CustomerRepo domain.CustomerRepository
	EmployeeRepo domain.EmployeeRepository
	PaymentRepo  domain.PaymentRepository
	AuditRepo    domain.AuditRepository
}

func InitializeDependencies() (*Dependencies, error) {
	cfg := config.MustLoad()

	db := postgres.MustInitDB(cfg)

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	settlementPublisher := kafka.NewSettlementPublisher(brokers, cfg.KafkaService.Topic)

	repos := &Repositories{
		CustomerRepo: repository.NewDefaultCustomerRepository(db),
		EmployeeRepo: repository.NewDefaultEmployeeRepository(db),
		PaymentRepo:  repository.NewDefaultPaymentRepository(db),
		AuditRepo:    repository.NewDefaultAuditRepository(db),
	}

	return &Dependencies{
		Config:              cfg,
		DB:                  db,
		SettlementPublisher: settlementPublisher,
		Metrics:             metrics.NewPortalMetrics(),
		Repositories:        repos,
	}, nil
}
