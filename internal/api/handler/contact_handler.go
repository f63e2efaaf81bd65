package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelierworks/ffe-portal/internal/core/domain"
	"github.com/atelierworks/ffe-portal/internal/core/ports"
)

// ContactHandler handles the public contact form and the admin inbox.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type contactListResponse struct {
	Submissions []*domain.ContactSubmission `json:"submissions"`
}

// Submit handles POST /api/contact. Public, no auth.
//
// @Summary      Submit the contact form
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact form fields"
// @Success      200   {object}  domain.ContactSubmission
// @Failure      400   {object}  map[string]string
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Submit(c.Request().Context(), ports.SubmitContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, created)
}

// List handles GET /api/admin/contacts.
//
// @Summary      List contact submissions
// @Tags         contacts
// @Produce      json
// @Success      200  {object}  contactListResponse
// @Router       /api/admin/contacts [get]
func (h *ContactHandler) List(c echo.Context) error {
	submissions, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if submissions == nil {
		submissions = []*domain.ContactSubmission{}
	}
	return c.JSON(http.StatusOK, contactListResponse{Submissions: submissions})
}

// Resolve handles PUT /api/admin/contacts/:id/resolve.
//
// @Summary      Mark a contact submission resolved
// @Tags         contacts
// @Produce      json
// @Param        id  path  string  true  "Submission id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/contacts/{id}/resolve [put]
func (h *ContactHandler) Resolve(c echo.Context) error {
	if err := h.service.Resolve(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "resolved"})
}
