package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/atelierworks/ffe-portal/internal/core/domain"
)

// ErrSecretNotConfigured is returned when the signing secret is unset at
// construction time. Startup fails fast rather than deferring to first use.
var ErrSecretNotConfigured = errors.New("token service: signing secret is not configured")

// TokenService signs and verifies HS256 session tokens carrying the
// caller's id, email, and role.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, ErrSecretNotConfigured
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs the claims plus an expiry with the process-wide secret.
func (s *TokenService) Issue(claims domain.Claims) (string, error) {
	mc := jwt.MapClaims{
		"sub":   claims.UserID,
		"email": claims.Email,
		"role":  claims.Role,
		"exp":   time.Now().Add(s.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString(s.secret)
}

// Verify checks signature and expiry, then narrows the decoded payload to
// typed claims. The payload is treated as structurally untrusted even after
// the signature check: every field must be present, a string, and the role
// must be one of the enumerated values.
func (s *TokenService) Verify(token string) (domain.Claims, error) {
	mc := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, mc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return domain.Claims{}, domain.ErrInvalidToken
	}

	sub, ok := mc["sub"].(string)
	if !ok || sub == "" {
		return domain.Claims{}, domain.ErrInvalidToken
	}
	email, ok := mc["email"].(string)
	if !ok || email == "" {
		return domain.Claims{}, domain.ErrInvalidToken
	}
	role, ok := mc["role"].(string)
	if !ok || !domain.ValidRole(role) {
		return domain.Claims{}, domain.ErrInvalidToken
	}

	return domain.Claims{UserID: sub, Email: email, Role: role}, nil
}
