package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/atelierworks/ffe-portal/internal/core/domain"
	"github.com/atelierworks/ffe-portal/internal/core/ports"
)

type stubContactService struct {
	submitFn  func(ctx context.Context, input ports.SubmitContactInput) (*domain.ContactSubmission, error)
	listFn    func(ctx context.Context) ([]*domain.ContactSubmission, error)
	resolveFn func(ctx context.Context, id string) error
}

func (s *stubContactService) Submit(ctx context.Context, input ports.SubmitContactInput) (*domain.ContactSubmission, error) {
	return s.submitFn(ctx, input)
}

func (s *stubContactService) List(ctx context.Context) ([]*domain.ContactSubmission, error) {
	return s.listFn(ctx)
}

func (s *stubContactService) Resolve(ctx context.Context, id string) error {
	return s.resolveFn(ctx, id)
}

func TestContactHandler_Submit(t *testing.T) {
	stub := &stubContactService{
		submitFn: func(ctx context.Context, input ports.SubmitContactInput) (*domain.ContactSubmission, error) {
			if input.Subject != "Quote request" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.ContactSubmission{ID: "c1", Subject: input.Subject}, nil
		},
	}
	h := NewContactHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/contact",
		`{"name":"Dana","email":"dana@example.com","subject":"Quote request","message":"Need FF&E for a 40-room hotel."}`)

	if err := h.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestContactHandler_Submit_MissingField(t *testing.T) {
	fields := []string{
		`{"email":"dana@example.com","subject":"s","message":"m"}`,
		`{"name":"Dana","subject":"s","message":"m"}`,
		`{"name":"Dana","email":"dana@example.com","message":"m"}`,
		`{"name":"Dana","email":"dana@example.com","subject":"s"}`,
	}
	stub := &stubContactService{
		submitFn: func(ctx context.Context, input ports.SubmitContactInput) (*domain.ContactSubmission, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewContactHandler(stub)

	for _, body := range fields {
		c, _ := newTestContext(t, http.MethodPost, "/api/contact", body)
		err := h.Submit(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %v", body, err)
		}
	}
}

func TestContactHandler_Resolve_NotFound(t *testing.T) {
	stub := &stubContactService{
		resolveFn: func(ctx context.Context, id string) error {
			return domain.ErrContactNotFound
		},
	}
	h := NewContactHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/api/admin/contacts/missing/resolve", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Resolve(c); !errors.Is(err, domain.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}
