package httputil

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/matchwise/matchwise-backend/pkg/config"
	"github.com/matchwise/matchwise-backend/pkg/errors"
)

// Claims represents the verified token claims
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// TokenVerifier validates HS256 bearer tokens issued by the identity provider
type TokenVerifier struct {
	config *config.AuthConfig
}

// NewTokenVerifier creates a new token verifier
func NewTokenVerifier(cfg *config.AuthConfig) *TokenVerifier {
	return &TokenVerifier{config: cfg}
}

// Verify parses and validates a token string and returns its claims
func (v *TokenVerifier) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.TokenInvalid()
		}
		return []byte(v.config.Secret), nil
	}, jwt.WithIssuer(v.config.Issuer))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.TokenExpired()
		}
		return nil, errors.TokenInvalid()
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.TokenInvalid()
	}

	return claims, nil
}
