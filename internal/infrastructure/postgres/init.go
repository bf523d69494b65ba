package postgres

import (
	"log"

	"github.com/securebank/payment-portal-service/internal/config"
	"github.com/securebank/payment-portal-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.PortalConfig) *gorm.DB {
	dsn := cfg.PortalDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.CustomerModel{}, &models.EmployeeModel{}, &models.PaymentModel{}, &models.AuditEntryModel{})

	return db
}
