package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/securebank/payment-portal-service/internal/domain"
	"github.com/securebank/payment-portal-service/internal/usecase/auth"
)

const (
	ClaimsKey = "authClaims"
	ClientKey = "clientContext"
)

// RequireKind validates the bearer token for the expected principal kind and
// stores the claims plus an explicit ClientContext on the request.
func RequireKind(authUsecase auth.AuthUsecase, kind domain.PrincipalKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}

		claims, err := authUsecase.VerifyToken(parts[1], kind)
		if err != nil {
			status := http.StatusUnauthorized
			message := "Token is not valid"
			if err == domain.ErrWrongPrincipalKind {
				status = http.StatusForbidden
				message = "Access denied"
			}
			c.AbortWithStatusJSON(status, gin.H{"message": message})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(ClientKey, domain.ClientContext{
			IP:        c.ClientIP(),
			UserAgent: c.GetHeader("User-Agent"),
		})
		c.Next()
	}
}

func GetClaims(c *gin.Context) *auth.Claims {
	claims, _ := c.Get(ClaimsKey)
	return claims.(*auth.Claims)
}

func GetClientContext(c *gin.Context) domain.ClientContext {
	if v, ok := c.Get(ClientKey); ok {
		return v.(domain.ClientContext)
	}
	return domain.ClientContext{
		IP:        c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	}
}
