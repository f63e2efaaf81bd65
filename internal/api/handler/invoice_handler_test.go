package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/atelierworks/ffe-portal/internal/core/domain"
)

type stubInvoiceService struct {
	listFn   func(ctx context.Context) ([]*domain.Invoice, error)
	getFn    func(ctx context.Context, id string) (*domain.Invoice, error)
	updateFn func(ctx context.Context, id string, status domain.InvoiceStatus) (*domain.Invoice, error)
}

func (s *stubInvoiceService) List(ctx context.Context) ([]*domain.Invoice, error) {
	return s.listFn(ctx)
}

func (s *stubInvoiceService) Get(ctx context.Context, id string) (*domain.Invoice, error) {
	return s.getFn(ctx, id)
}

func (s *stubInvoiceService) UpdateStatus(ctx context.Context, id string, status domain.InvoiceStatus) (*domain.Invoice, error) {
	return s.updateFn(ctx, id, status)
}

type stubRenderer struct {
	out []byte
	err error
}

func (s *stubRenderer) Render(*domain.Invoice) ([]byte, error) {
	return s.out, s.err
}

func TestInvoiceHandler_List(t *testing.T) {
	stub := &stubInvoiceService{
		listFn: func(ctx context.Context) ([]*domain.Invoice, error) {
			return []*domain.Invoice{
				{ID: "i1", Number: "INV-001", ContractorName: "Nadia Osei", Status: domain.InvoicePending},
			}, nil
		},
	}
	h := NewInvoiceHandler(stub, &stubRenderer{})

	c, rec := newTestContext(t, http.MethodGet, "/api/admin/invoices", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string][]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	invoices := resp["invoices"]
	if len(invoices) != 1 || invoices[0]["contractor_name"] != "Nadia Osei" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestInvoiceHandler_List_EmptyIsArray(t *testing.T) {
	stub := &stubInvoiceService{
		listFn: func(ctx context.Context) ([]*domain.Invoice, error) { return nil, nil },
	}
	h := NewInvoiceHandler(stub, &stubRenderer{})

	c, rec := newTestContext(t, http.MethodGet, "/api/admin/invoices", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"invoices":[]`) {
		t.Fatalf("empty list must serialize as [], got %s", rec.Body.String())
	}
}

func TestInvoiceHandler_UpdateStatus(t *testing.T) {
	stub := &stubInvoiceService{
		updateFn: func(ctx context.Context, id string, status domain.InvoiceStatus) (*domain.Invoice, error) {
			if id != "i1" || status != domain.InvoiceApproved {
				t.Fatalf("unexpected args: %s %s", id, status)
			}
			return &domain.Invoice{ID: id, Status: status}, nil
		},
	}
	h := NewInvoiceHandler(stub, &stubRenderer{})

	c, rec := newTestContext(t, http.MethodPut, "/api/admin/invoices/i1", `{"status":"approved"}`)
	c.SetParamNames("id")
	c.SetParamValues("i1")

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"approved"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestInvoiceHandler_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	stub := &stubInvoiceService{
		updateFn: func(ctx context.Context, id string, status domain.InvoiceStatus) (*domain.Invoice, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewInvoiceHandler(stub, &stubRenderer{})

	c, _ := newTestContext(t, http.MethodPut, "/api/admin/invoices/i1", `{"status":"archived"}`)
	c.SetParamNames("id")
	c.SetParamValues("i1")

	err := h.UpdateStatus(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestInvoiceHandler_UpdateStatus_PropagatesTransitionError(t *testing.T) {
	stub := &stubInvoiceService{
		updateFn: func(ctx context.Context, id string, status domain.InvoiceStatus) (*domain.Invoice, error) {
			return nil, domain.ErrInvalidTransition
		},
	}
	h := NewInvoiceHandler(stub, &stubRenderer{})

	c, _ := newTestContext(t, http.MethodPut, "/api/admin/invoices/i1", `{"status":"paid"}`)
	c.SetParamNames("id")
	c.SetParamValues("i1")

	if err := h.UpdateStatus(c); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestInvoiceHandler_PDF(t *testing.T) {
	stub := &stubInvoiceService{
		getFn: func(ctx context.Context, id string) (*domain.Invoice, error) {
			return &domain.Invoice{ID: id, Number: "INV-001"}, nil
		},
	}
	h := NewInvoiceHandler(stub, &stubRenderer{out: []byte("%PDF-1.4 fake")})

	c, rec := newTestContext(t, http.MethodGet, "/api/admin/invoices/i1/pdf", "")
	c.SetParamNames("id")
	c.SetParamValues("i1")

	if err := h.PDF(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderContentType); got != "application/pdf" {
		t.Fatalf("content type = %q, want application/pdf", got)
	}
	if !strings.Contains(rec.Header().Get(echo.HeaderContentDisposition), "INV-001") {
		t.Fatalf("content disposition should name the invoice: %q", rec.Header().Get(echo.HeaderContentDisposition))
	}
}

func TestInvoiceHandler_PDF_NotFound(t *testing.T) {
	stub := &stubInvoiceService{
		getFn: func(ctx context.Context, id string) (*domain.Invoice, error) {
			return nil, domain.ErrInvoiceNotFound
		},
	}
	h := NewInvoiceHandler(stub, &stubRenderer{})

	c, _ := newTestContext(t, http.MethodGet, "/api/admin/invoices/missing/pdf", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.PDF(c); !errors.Is(err, domain.ErrInvoiceNotFound) {
		t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
	}
}
