package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelierworks/ffe-portal/internal/core/ports"
)

// EmailHandler exposes the mail collaborator for ad-hoc sends. Unlike
// notifications, delivery here is synchronous: the caller learns whether
// the relay accepted the message.
type EmailHandler struct {
	mailer ports.Mailer
}

func NewEmailHandler(mailer ports.Mailer) *EmailHandler {
	return &EmailHandler{mailer: mailer}
}

type sendEmailRequest struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Text    string `json:"text" validate:"required_without=HTML"`
	HTML    string `json:"html"`
}

// Send handles POST /api/send-email.
//
// @Summary      Send an ad-hoc email
// @Tags         email
// @Accept       json
// @Produce      json
// @Param        body  body      sendEmailRequest  true  "Message; at least one of text and html"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/send-email [post]
func (h *EmailHandler) Send(c echo.Context) error {
	var req sendEmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.mailer.Send(c.Request().Context(), ports.Email{
		To:      req.To,
		Subject: req.Subject,
		Text:    req.Text,
		HTML:    req.HTML,
	})
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "email sent"})
}
