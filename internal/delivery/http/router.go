package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/securebank/payment-portal-service/internal/delivery/http/handlers"
	"github.com/securebank/payment-portal-service/internal/delivery/http/middleware"
	"github.com/securebank/payment-portal-service/internal/domain"
	"github.com/securebank/payment-portal-service/internal/usecase/auth"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	paymentHandler *handlers.PaymentHandler,
	employeeHandler *handlers.EmployeeHandler,
	authUsecase auth.AuthUsecase,
) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.LoginCustomer)
	}

	customerGroup := r.Group("/api/payments")
	customerGroup.Use(middleware.RequireKind(authUsecase, domain.KindCustomer))
	{
		customerGroup.POST("", paymentHandler.CreatePayment)
		customerGroup.GET("/my", paymentHandler.ListOwnPayments)
	}

	r.POST("/api/employee/login", authHandler.LoginEmployee)

	employeeGroup := r.Group("/api/employee")
	employeeGroup.Use(middleware.RequireKind(authUsecase, domain.KindEmployee))
	{
		employeeGroup.GET("/payments/pending", employeeHandler.ListPendingPayments)
		employeeGroup.GET("/payments/verified", employeeHandler.ListVerifiedPayments)
		employeeGroup.GET("/payments/:paymentId", employeeHandler.GetPayment)
		employeeGroup.PUT("/payments/:paymentId/verify", employeeHandler.VerifyPayment)
		employeeGroup.PUT("/payments/:paymentId/reject", employeeHandler.RejectPayment)
		employeeGroup.POST("/payments/submit", employeeHandler.SubmitBatch)
		employeeGroup.GET("/audit-trail", employeeHandler.GetAuditTrail)
	}

	return r
}
