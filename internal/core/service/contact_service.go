package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/atelierworks/ffe-portal/internal/core/domain"
	"github.com/atelierworks/ffe-portal/internal/core/ports"
)

// ContactService implements use-cases over public contact submissions.
type ContactService struct {
	repo  ports.ContactRepository
	queue NotificationQueue
	inbox string // operations inbox notified on new submissions
	log   zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, queue NotificationQueue, inbox string, log zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, queue: queue, inbox: inbox, log: log}
}

// Submit stores one submission with a generated id and the unresolved flag,
// then notifies the operations inbox without blocking the response.
func (s *ContactService) Submit(ctx context.Context, input ports.SubmitContactInput) (*domain.ContactSubmission, error) {
	sub := &domain.ContactSubmission{
		ID:         uuid.NewString(),
		Name:       input.Name,
		Email:      input.Email,
		Subject:    input.Subject,
		Message:    input.Message,
		IsResolved: false,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, sub); err != nil {
		return nil, err
	}

	if s.queue != nil && s.inbox != "" {
		s.queue.Enqueue(ports.Notification{
			Kind:      ports.NotifyContactReceived,
			EntityID:  sub.ID,
			Recipient: s.inbox,
			Subject:   sub.Subject,
			Message:   sub.Message,
		})
	}

	s.log.Info().Str("submission_id", sub.ID).Msg("contact submission received")
	return sub, nil
}

func (s *ContactService) List(ctx context.Context) ([]*domain.ContactSubmission, error) {
	return s.repo.List(ctx)
}

func (s *ContactService) Resolve(ctx context.Context, id string) error {
	return s.repo.Resolve(ctx, id)
}
