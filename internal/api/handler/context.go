package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelierworks/ffe-portal/internal/api/middleware"
	"github.com/atelierworks/ffe-portal/internal/core/domain"
)

// principal extracts the identity injected by the Auth middleware and
// fast-fails before any service call. An empty user id means the token was
// structurally valid but carries no usable identity; reject with 401.
func principal(c echo.Context) (domain.Principal, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok || p.UserID == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return p, nil
}
