package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/securebank/payment-portal-service/internal/domain"
	"github.com/securebank/payment-portal-service/internal/usecase/auth"
	authdto "github.com/securebank/payment-portal-service/internal/usecase/dto/auth"
)

type AuthHandler struct {
	authUsecase auth.AuthUsecase
}

func NewAuthHandler(authUsecase auth.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

type registerRequest struct {
	FullName      string `json:"fullName"`
	IDNumber      string `json:"idNumber"`
	AccountNumber string `json:"accountNumber"`
	Username      string `json:"username"`
	Password      string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func clientContext(c *gin.Context) domain.ClientContext {
	return domain.ClientContext{
		IP:        c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	err := h.authUsecase.RegisterCustomer(c.Request.Context(), &authdto.RegisterCustomerInput{
		FullName:      req.FullName,
		IDNumber:      req.IDNumber,
		AccountNumber: req.AccountNumber,
		Username:      req.Username,
		Password:      req.Password,
		Client:        clientContext(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Customer registered successfully"})
}

func (h *AuthHandler) LoginCustomer(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	out, err := h.authUsecase.LoginCustomer(c.Request.Context(), &authdto.LoginInput{
		Username: req.Username,
		Password: req.Password,
		Client:   clientContext(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     out.Token,
		"expiresAt": out.ExpiresAt,
		"customer": gin.H{
			"id":            out.CustomerID,
			"fullName":      out.FullName,
			"accountNumber": out.AccountNumber,
		},
	})
}

func (h *AuthHandler) LoginEmployee(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	out, err := h.authUsecase.LoginEmployee(c.Request.Context(), &authdto.LoginInput{
		Username: req.Username,
		Password: req.Password,
		Client:   clientContext(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     out.Token,
		"expiresAt": out.ExpiresAt,
		"employee": gin.H{
			"id":             out.EmployeeID,
			"employeeNumber": out.EmployeeNumber,
			"fullName":       out.FullName,
			"role":           out.Role,
			"department":     out.Department,
		},
	})
}
