package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/securebank/payment-portal-service/internal/app/setup"
	deliveryhttp "github.com/securebank/payment-portal-service/internal/delivery/http"
	"github.com/securebank/payment-portal-service/internal/delivery/http/handlers"
	"github.com/securebank/payment-portal-service/internal/infrastructure/migrate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	deps, err := setup.InitializeDependencies()
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %v", err)
	}

	if migrationPath := os.Getenv("PORTAL_MIGRATIONS_PATH"); migrationPath != "" {
		if err := migrate.RunMigrations(deps.DB, migrationPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	usecases := setup.InitializeUsecases(deps)

	authHandler := handlers.NewAuthHandler(usecases.AuthUsecase)
	paymentHandler := handlers.NewPaymentHandler(usecases.PaymentUsecase)
	employeeHandler := handlers.NewEmployeeHandler(usecases.PaymentUsecase, usecases.AuditUsecase)

	router := deliveryhttp.NewRouter(authHandler, paymentHandler, employeeHandler, usecases.AuthUsecase)

	addr := fmt.Sprintf("%s:%s", deps.Config.HTTPServer.Host, deps.Config.HTTPServer.Port)
	log.Printf("payment portal started on %s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
