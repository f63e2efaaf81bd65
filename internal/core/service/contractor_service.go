package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/atelierworks/ffe-portal/internal/core/domain"
	"github.com/atelierworks/ffe-portal/internal/core/ports"
)

// ContractorService implements use-cases around contractor-admin connections
// and the admin directory.
type ContractorService struct {
	repo  ports.ContractorRepository
	queue NotificationQueue
	log   zerolog.Logger
}

func NewContractorService(repo ports.ContractorRepository, queue NotificationQueue, log zerolog.Logger) *ContractorService {
	return &ContractorService{repo: repo, queue: queue, log: log}
}

func (s *ContractorService) RequestConnection(ctx context.Context, contractorID, adminID string) (*domain.ContractorRequest, error) {
	now := time.Now().UTC()
	req := &domain.ContractorRequest{
		ID:           uuid.NewString(),
		ContractorID: contractorID,
		AdminID:      adminID,
		Status:       domain.RequestPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.InsertRequest(ctx, req); err != nil {
		return nil, err
	}
	s.log.Info().
		Str("request_id", req.ID).
		Str("contractor_id", contractorID).
		Str("admin_id", adminID).
		Msg("connection request created")
	return req, nil
}

// Decide applies an admin's approval or rejection. Requests addressed to a
// different admin are invisible to the caller and surface as forbidden.
func (s *ContractorService) Decide(ctx context.Context, adminID, requestID string, status domain.RequestStatus) (*domain.ContractorRequest, error) {
	req, err := s.repo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.AdminID != adminID {
		return nil, domain.ErrForbidden
	}
	if !req.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("decide request %s: %w (from %s to %s)",
			requestID, domain.ErrInvalidTransition, req.Status, status)
	}

	if err := s.repo.UpdateRequestStatus(ctx, requestID, status); err != nil {
		return nil, fmt.Errorf("decide request %s: %w", requestID, err)
	}
	req.Status = status

	if s.queue != nil && req.ContractorEmail != "" {
		s.queue.Enqueue(ports.Notification{
			Kind:      ports.NotifyRequestDecided,
			EntityID:  req.ID,
			Status:    string(status),
			Recipient: req.ContractorEmail,
		})
	}

	s.log.Info().
		Str("request_id", requestID).
		Str("status", string(status)).
		Msg("connection request decided")

	return req, nil
}

func (s *ContractorService) ListRequestsForAdmin(ctx context.Context, adminID string) ([]*domain.ContractorRequest, error) {
	return s.repo.ListRequestsForAdmin(ctx, adminID)
}

func (s *ContractorService) ConnectedAdmins(ctx context.Context, contractorID string) ([]*domain.User, error) {
	return s.repo.ListConnectedAdmins(ctx, contractorID)
}

// SearchAdmins performs a case-insensitive substring match on name, email,
// or company. An empty query short-circuits to an empty result without a
// storage round trip.
func (s *ContractorService) SearchAdmins(ctx context.Context, query string) ([]*domain.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*domain.User{}, nil
	}
	return s.repo.SearchAdmins(ctx, query, ports.AdminSearchLimit)
}
