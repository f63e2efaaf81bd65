package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelierworks/ffe-portal/internal/core/domain"
	"github.com/atelierworks/ffe-portal/internal/core/ports"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "ffe_token"

// principalKey is the echo context key under which the verified identity
// is stored.
const principalKey = "principal"

// Auth reads the session cookie, verifies the token, and injects the
// caller's identity into context. Missing and invalid tokens are both 401:
// the response never reveals which check failed.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			claims, err := tokens.Verify(cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(principalKey, domain.Principal{
				UserID: claims.UserID,
				Email:  claims.Email,
				Role:   claims.Role,
			})

			return next(c)
		}
	}
}

// PrincipalFrom returns the identity injected by Auth, or false when the
// middleware has not run on this request.
func PrincipalFrom(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok
}

// SetPrincipal injects an identity directly. Test use only.
func SetPrincipal(c echo.Context, p domain.Principal) {
	c.Set(principalKey, p)
}
