package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/securebank/payment-portal-service/internal/domain"
)

// Claims is embedded into every session token. Role is set for employee
// tokens only.
type Claims struct {
	PrincipalID string               `json:"principal_id"`
	Kind        domain.PrincipalKind `json:"kind"`
	Username    string               `json:"username"`
	Role        domain.EmployeeRole  `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func (uc *DefaultAuthUsecase) issueToken(principalID, username string, kind domain.PrincipalKind, role domain.EmployeeRole, ttl time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(ttl)
	claims := Claims{
		PrincipalID: principalID,
		Kind:        kind,
		Username:    username,
		Role:        role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(uc.jwtSecret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// VerifyToken checks signature, expiry and principal kind. A customer token
// never satisfies an employee check and vice versa.
func (uc *DefaultAuthUsecase) VerifyToken(rawToken string, wantKind domain.PrincipalKind) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(rawToken, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return uc.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	if claims.Kind != wantKind {
		return nil, domain.ErrWrongPrincipalKind
	}

	return &claims, nil
}
