package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/atelierworks/ffe-portal/internal/api/middleware"
	"github.com/atelierworks/ffe-portal/internal/core/domain"
)

type stubContractorService struct {
	requestFn   func(ctx context.Context, contractorID, adminID string) (*domain.ContractorRequest, error)
	decideFn    func(ctx context.Context, adminID, requestID string, status domain.RequestStatus) (*domain.ContractorRequest, error)
	listFn      func(ctx context.Context, adminID string) ([]*domain.ContractorRequest, error)
	connectedFn func(ctx context.Context, contractorID string) ([]*domain.User, error)
	searchFn    func(ctx context.Context, query string) ([]*domain.User, error)
}

func (s *stubContractorService) RequestConnection(ctx context.Context, contractorID, adminID string) (*domain.ContractorRequest, error) {
	return s.requestFn(ctx, contractorID, adminID)
}

func (s *stubContractorService) Decide(ctx context.Context, adminID, requestID string, status domain.RequestStatus) (*domain.ContractorRequest, error) {
	return s.decideFn(ctx, adminID, requestID, status)
}

func (s *stubContractorService) ListRequestsForAdmin(ctx context.Context, adminID string) ([]*domain.ContractorRequest, error) {
	return s.listFn(ctx, adminID)
}

func (s *stubContractorService) ConnectedAdmins(ctx context.Context, contractorID string) ([]*domain.User, error) {
	return s.connectedFn(ctx, contractorID)
}

func (s *stubContractorService) SearchAdmins(ctx context.Context, query string) ([]*domain.User, error) {
	return s.searchFn(ctx, query)
}

func TestContractorHandler_RequestConnection(t *testing.T) {
	stub := &stubContractorService{
		requestFn: func(ctx context.Context, contractorID, adminID string) (*domain.ContractorRequest, error) {
			if contractorID != "ct1" || adminID != "ad1" {
				t.Fatalf("unexpected args: %s %s", contractorID, adminID)
			}
			return &domain.ContractorRequest{ID: "r1", ContractorID: contractorID, AdminID: adminID, Status: domain.RequestPending}, nil
		},
	}
	h := NewContractorHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/contractor/requests", `{"admin_id":"ad1"}`)
	middleware.SetPrincipal(c, domain.Principal{UserID: "ct1", Role: domain.RoleContractor})

	if err := h.RequestConnection(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestContractorHandler_RequestConnection_NoPrincipal(t *testing.T) {
	h := NewContractorHandler(&stubContractorService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/contractor/requests", `{"admin_id":"ad1"}`)

	err := h.RequestConnection(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestContractorHandler_SearchAdmins_EmptyQuery(t *testing.T) {
	stub := &stubContractorService{
		searchFn: func(ctx context.Context, query string) ([]*domain.User, error) {
			if query != "" {
				t.Fatalf("expected empty query, got %q", query)
			}
			return []*domain.User{}, nil
		},
	}
	h := NewContractorHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/contractor/search-admins", "")
	if err := h.SearchAdmins(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string][]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if admins, ok := resp["admins"]; !ok || admins == nil || len(admins) != 0 {
		t.Fatalf("expected empty admins array, got %+v", resp)
	}
}

func TestContractorHandler_Decide(t *testing.T) {
	stub := &stubContractorService{
		decideFn: func(ctx context.Context, adminID, requestID string, status domain.RequestStatus) (*domain.ContractorRequest, error) {
			if adminID != "ad1" || requestID != "r1" || status != domain.RequestApproved {
				t.Fatalf("unexpected args: %s %s %s", adminID, requestID, status)
			}
			return &domain.ContractorRequest{ID: requestID, AdminID: adminID, Status: status}, nil
		},
	}
	h := NewContractorHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/api/admin/contractor-requests/r1", `{"status":"approved"}`)
	c.SetParamNames("id")
	c.SetParamValues("r1")
	middleware.SetPrincipal(c, domain.Principal{UserID: "ad1", Role: domain.RoleAdmin})

	if err := h.Decide(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestContractorHandler_Decide_RejectsPendingStatus(t *testing.T) {
	stub := &stubContractorService{
		decideFn: func(ctx context.Context, adminID, requestID string, status domain.RequestStatus) (*domain.ContractorRequest, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewContractorHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/api/admin/contractor-requests/r1", `{"status":"pending"}`)
	c.SetParamNames("id")
	c.SetParamValues("r1")
	middleware.SetPrincipal(c, domain.Principal{UserID: "ad1", Role: domain.RoleAdmin})

	err := h.Decide(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
