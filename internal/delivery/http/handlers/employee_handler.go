package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/securebank/payment-portal-service/internal/delivery/http/middleware"
	"github.com/securebank/payment-portal-service/internal/domain"
	"github.com/securebank/payment-portal-service/internal/usecase/audit"
	"github.com/securebank/payment-portal-service/internal/usecase/authz"
	auditdto "github.com/securebank/payment-portal-service/internal/usecase/dto/audit"
	paymentdto "github.com/securebank/payment-portal-service/internal/usecase/dto/payment"
	"github.com/securebank/payment-portal-service/internal/usecase/payment"
)

// EmployeeHandler serves the review/settlement endpoints of the employee
// portal plus the admin audit trail.
type EmployeeHandler struct {
	paymentUsecase payment.PaymentUsecase
	auditUsecase   audit.AuditUsecase
}

func NewEmployeeHandler(paymentUsecase payment.PaymentUsecase, auditUsecase audit.AuditUsecase) *EmployeeHandler {
	return &EmployeeHandler{
		paymentUsecase: paymentUsecase,
		auditUsecase:   auditUsecase,
	}
}

func (h *EmployeeHandler) ListPendingPayments(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if err := authz.Authorize(claims.Kind, claims.Role, authz.ActionListPending); err != nil {
		respondError(c, err)
		return
	}

	payments, err := h.paymentUsecase.GetPendingPayments(c.Request.Context(), claims.PrincipalID, middleware.GetClientContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}

func (h *EmployeeHandler) ListVerifiedPayments(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if err := authz.Authorize(claims.Kind, claims.Role, authz.ActionListVerified); err != nil {
		respondError(c, err)
		return
	}

	payments, err := h.paymentUsecase.GetVerifiedPayments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}

func (h *EmployeeHandler) GetPayment(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if err := authz.Authorize(claims.Kind, claims.Role, authz.ActionGetPayment); err != nil {
		respondError(c, err)
		return
	}

	out, err := h.paymentUsecase.GetPaymentByID(c.Request.Context(), claims.PrincipalID, c.Param("paymentId"), middleware.GetClientContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *EmployeeHandler) VerifyPayment(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if err := authz.Authorize(claims.Kind, claims.Role, authz.ActionVerifyPayment); err != nil {
		respondError(c, err)
		return
	}

	out, err := h.paymentUsecase.VerifyPayment(c.Request.Context(), &paymentdto.ReviewPaymentInput{
		EmployeeID: claims.PrincipalID,
		PaymentID:  c.Param("paymentId"),
		Client:     middleware.GetClientContext(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment verified successfully",
		"payment": gin.H{
			"id":              out.ID,
			"referenceNumber": out.ReferenceNumber,
			"status":          out.Status,
			"verifiedAt":      out.VerifiedAt,
		},
	})
}

type rejectPaymentRequest struct {
	RejectionReason string `json:"rejectionReason"`
}

func (h *EmployeeHandler) RejectPayment(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if err := authz.Authorize(claims.Kind, claims.Role, authz.ActionRejectPayment); err != nil {
		respondError(c, err)
		return
	}

	var req rejectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	out, err := h.paymentUsecase.RejectPayment(c.Request.Context(), &paymentdto.RejectPaymentInput{
		EmployeeID: claims.PrincipalID,
		PaymentID:  c.Param("paymentId"),
		Reason:     req.RejectionReason,
		Client:     middleware.GetClientContext(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment rejected successfully",
		"payment": gin.H{
			"id":              out.ID,
			"referenceNumber": out.ReferenceNumber,
			"status":          out.Status,
			"rejectionReason": out.RejectionReason,
		},
	})
}

type submitBatchRequest struct {
	PaymentIDs []string `json:"paymentIds"`
}

func (h *EmployeeHandler) SubmitBatch(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if err := authz.Authorize(claims.Kind, claims.Role, authz.ActionSubmitBatch); err != nil {
		respondError(c, err)
		return
	}

	var req submitBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.PaymentIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payment IDs array is required"})
		return
	}

	receipts, err := h.paymentUsecase.SubmitBatch(c.Request.Context(), &paymentdto.SubmitBatchInput{
		EmployeeID: claims.PrincipalID,
		PaymentIDs: req.PaymentIDs,
		Client:     middleware.GetClientContext(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Payments submitted to settlement network",
		"submissions": receipts,
	})
}

func (h *EmployeeHandler) GetAuditTrail(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if err := authz.Authorize(claims.Kind, claims.Role, authz.ActionQueryAuditTrail); err != nil {
		respondError(c, err)
		return
	}

	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)

	input := &auditdto.QueryInput{
		ActorKind: domain.PrincipalKind(c.Query("actorKind")),
		Action:    domain.AuditAction(c.Query("action")),
		Severity:  domain.AuditSeverity(c.Query("severity")),
		Page:      page,
		Limit:     limit,
	}
	if from := c.Query("from"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			input.DateFrom = t
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			input.DateTo = t
		}
	}

	out, err := h.auditUsecase.Query(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	h.auditUsecase.Record(c.Request.Context(), domain.AuditEntry{
		ActorID:     claims.PrincipalID,
		ActorKind:   domain.KindEmployee,
		Action:      domain.ActionViewAuditTrail,
		EntityType:  "AuditTrail",
		Description: "Admin viewed the audit trail",
		IPAddress:   middleware.GetClientContext(c).IP,
		UserAgent:   middleware.GetClientContext(c).UserAgent,
		Severity:    domain.SeverityMedium,
	})

	c.JSON(http.StatusOK, gin.H{
		"entries": out.Entries,
		"total":   out.Total,
		"page":    out.Page,
		"limit":   out.Limit,
	})
}
