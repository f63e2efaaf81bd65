package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/atelierworks/ffe-portal/internal/core/domain"
	"github.com/atelierworks/ffe-portal/internal/core/ports"
)

// NotificationQueue is the interface services use to hand off fire-and-forget
// notification jobs after the primary operation has committed.
type NotificationQueue interface {
	Enqueue(n ports.Notification)
}

// InvoiceService implements admin use-cases over invoices.
type InvoiceService struct {
	repo  ports.InvoiceRepository
	queue NotificationQueue
	log   zerolog.Logger
}

func NewInvoiceService(repo ports.InvoiceRepository, queue NotificationQueue, log zerolog.Logger) *InvoiceService {
	return &InvoiceService{repo: repo, queue: queue, log: log}
}

func (s *InvoiceService) List(ctx context.Context) ([]*domain.Invoice, error) {
	return s.repo.List(ctx)
}

func (s *InvoiceService) Get(ctx context.Context, id string) (*domain.Invoice, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateStatus applies an admin's status decision. The transition table is
// enforced before the write; the contractor is notified after it, without
// blocking the response or risking a rollback of the committed update.
func (s *InvoiceService) UpdateStatus(ctx context.Context, id string, status domain.InvoiceStatus) (*domain.Invoice, error) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !invoice.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("update invoice %s: %w (from %s to %s)",
			id, domain.ErrInvalidTransition, invoice.Status, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("update invoice %s: %w", id, err)
	}
	invoice.Status = status

	if s.queue != nil && invoice.ContractorEmail != "" {
		s.queue.Enqueue(ports.Notification{
			Kind:      ports.NotifyInvoiceStatus,
			EntityID:  invoice.ID,
			Status:    string(status),
			Recipient: invoice.ContractorEmail,
			Invoice:   invoice,
		})
	}

	s.log.Info().
		Str("invoice_id", invoice.ID).
		Str("status", string(status)).
		Msg("invoice status updated")

	return invoice, nil
}
