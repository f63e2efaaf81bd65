package ports

import "github.com/atelierworks/ffe-portal/internal/core/domain"

// TokenService issues and verifies signed session tokens.
type TokenService interface {
	// Issue signs the claims plus an expiry with the process-wide secret.
	Issue(claims domain.Claims) (string, error)
	// Verify checks signature and expiry and narrows the decoded payload to
	// typed claims. Any failure surfaces as domain.ErrInvalidToken.
	Verify(token string) (domain.Claims, error)
}
