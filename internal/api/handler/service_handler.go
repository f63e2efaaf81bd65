package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelierworks/ffe-portal/internal/core/domain"
	"github.com/atelierworks/ffe-portal/internal/core/ports"
)

// ServiceHandler handles the admin service catalog.
type ServiceHandler struct {
	catalog ports.CatalogService
}

func NewServiceHandler(catalog ports.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

type createServiceRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents" validate:"required,gt=0"`
}

type serviceListResponse struct {
	Services []*domain.Service `json:"services"`
}

// Create handles POST /api/admin/services.
//
// @Summary      Create a catalog service
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        body  body      createServiceRequest  true  "Service details"
// @Success      201   {object}  domain.Service
// @Failure      400   {object}  map[string]string
// @Router       /api/admin/services [post]
func (h *ServiceHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req createServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	svc, err := h.catalog.Create(c.Request().Context(), ports.CreateServiceInput{
		AdminID:     p.UserID,
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, svc)
}

// List handles GET /api/services.
//
// @Summary      List catalog services
// @Tags         services
// @Produce      json
// @Success      200  {object}  serviceListResponse
// @Router       /api/services [get]
func (h *ServiceHandler) List(c echo.Context) error {
	services, err := h.catalog.List(c.Request().Context())
	if err != nil {
		return err
	}
	if services == nil {
		services = []*domain.Service{}
	}
	return c.JSON(http.StatusOK, serviceListResponse{Services: services})
}

// Delete handles DELETE /api/admin/services/:id. The deleted row travels
// back in the response so the caller can render an undo affordance.
//
// @Summary      Delete a catalog service
// @Tags         services
// @Produce      json
// @Param        id  path  string  true  "Service id"
// @Success      200  {object}  domain.Service
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/services/{id} [delete]
func (h *ServiceHandler) Delete(c echo.Context) error {
	svc, err := h.catalog.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}
