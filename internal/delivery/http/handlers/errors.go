package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/securebank/payment-portal-service/internal/domain"
)

// respondError maps core errors onto HTTP statuses. Authorization failures
// collapse into a generic access-denied message.
func respondError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"message": validationErr.Error(), "field": validationErr.Field})
		return
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
	case errors.Is(err, domain.ErrAccountLocked):
		c.JSON(http.StatusLocked, gin.H{"message": "Account is temporarily locked due to multiple failed login attempts. Please try again later."})
	case errors.Is(err, domain.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
	case errors.Is(err, domain.ErrWrongPrincipalKind), errors.Is(err, domain.ErrInsufficientRole):
		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
	case errors.Is(err, domain.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Payment not found"})
	case errors.Is(err, domain.ErrPaymentNotPending):
		c.JSON(http.StatusConflict, gin.H{"message": "Payment is not pending verification"})
	case errors.Is(err, domain.ErrReasonTooShort):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Rejection reason must be at least 10 characters"})
	case errors.Is(err, domain.ErrNoEligiblePayments):
		c.JSON(http.StatusBadRequest, gin.H{"message": "No verified payments found for submission"})
	case errors.Is(err, domain.ErrDuplicatePrincipal):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Account already exists"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}
