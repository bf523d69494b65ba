package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/securebank/payment-portal-service/internal/delivery/http/middleware"
	"github.com/securebank/payment-portal-service/internal/usecase/authz"
	paymentdto "github.com/securebank/payment-portal-service/internal/usecase/dto/payment"
	"github.com/securebank/payment-portal-service/internal/usecase/payment"
)

// PaymentHandler serves the customer-facing payment endpoints.
type PaymentHandler struct {
	paymentUsecase payment.PaymentUsecase
}

func NewPaymentHandler(paymentUsecase payment.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{paymentUsecase: paymentUsecase}
}

type createPaymentRequest struct {
	Amount             float64 `json:"amount"`
	Currency           string  `json:"currency"`
	Provider           string  `json:"provider"`
	PayeeName          string  `json:"payeeName"`
	PayeeAccountNumber string  `json:"payeeAccountNumber"`
	SwiftCode          string  `json:"swiftCode"`
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if err := authz.Authorize(claims.Kind, claims.Role, authz.ActionCreatePayment); err != nil {
		respondError(c, err)
		return
	}

	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	out, err := h.paymentUsecase.CreatePayment(c.Request.Context(), &paymentdto.CreatePaymentInput{
		CustomerID:   claims.PrincipalID,
		Amount:       req.Amount,
		Currency:     req.Currency,
		Provider:     req.Provider,
		PayeeName:    req.PayeeName,
		PayeeAccount: req.PayeeAccountNumber,
		SwiftCode:    req.SwiftCode,
		Client:       middleware.GetClientContext(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":         "Payment submitted successfully",
		"referenceNumber": out.ReferenceNumber,
	})
}

func (h *PaymentHandler) ListOwnPayments(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if err := authz.Authorize(claims.Kind, claims.Role, authz.ActionListOwnPayments); err != nil {
		respondError(c, err)
		return
	}

	payments, err := h.paymentUsecase.GetCustomerPayments(c.Request.Context(), claims.PrincipalID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}
