package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelierworks/ffe-portal/internal/api/metrics"
	"github.com/atelierworks/ffe-portal/internal/core/domain"
	"github.com/atelierworks/ffe-portal/internal/core/ports"
)

// InvoiceHandler handles the admin invoice review surface.
type InvoiceHandler struct {
	service  ports.InvoiceService
	renderer ports.InvoiceRenderer
}

func NewInvoiceHandler(service ports.InvoiceService, renderer ports.InvoiceRenderer) *InvoiceHandler {
	return &InvoiceHandler{service: service, renderer: renderer}
}

type updateInvoiceRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved paid rejected"`
}

type invoiceListResponse struct {
	Invoices []*domain.Invoice `json:"invoices"`
}

// List handles GET /api/admin/invoices.
//
// @Summary      List all invoices
// @Tags         invoices
// @Produce      json
// @Success      200  {object}  invoiceListResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/invoices [get]
func (h *InvoiceHandler) List(c echo.Context) error {
	invoices, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if invoices == nil {
		invoices = []*domain.Invoice{}
	}
	return c.JSON(http.StatusOK, invoiceListResponse{Invoices: invoices})
}

// UpdateStatus handles PUT /api/admin/invoices/:id.
//
// @Summary      Update an invoice's status
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Invoice id"
// @Param        body  body      updateInvoiceRequest  true  "New status"
// @Success      200   {object}  domain.Invoice
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/admin/invoices/{id} [put]
func (h *InvoiceHandler) UpdateStatus(c echo.Context) error {
	var req updateInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	inv, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.InvoiceStatus(req.Status))
	if err != nil {
		return err
	}
	metrics.InvoiceTransitionsTotal.WithLabelValues(string(inv.Status)).Inc()
	return c.JSON(http.StatusOK, inv)
}

// PDF handles GET /api/admin/invoices/:id/pdf.
//
// @Summary      Download an invoice as PDF
// @Tags         invoices
// @Produce      application/pdf
// @Param        id  path  string  true  "Invoice id"
// @Success      200  {file}    file
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/invoices/{id}/pdf [get]
func (h *InvoiceHandler) PDF(c echo.Context) error {
	inv, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	doc, err := h.renderer.Render(inv)
	if err != nil {
		return fmt.Errorf("render invoice: %w", err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="invoice-%s.pdf"`, inv.Number))
	return c.Blob(http.StatusOK, "application/pdf", doc)
}
