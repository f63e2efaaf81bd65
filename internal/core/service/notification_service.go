package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/atelierworks/ffe-portal/internal/core/domain"
	"github.com/atelierworks/ffe-portal/internal/core/ports"
)

// NotificationDedup abstracts the idempotency store (Redis). A notification
// for the same (kind, entity, status) triple is delivered at most once
// within the dedup window.
type NotificationDedup interface {
	IsDuplicate(ctx context.Context, kind, entityID, status string) (bool, error)
	Mark(ctx context.Context, kind, entityID, status string) error
}

type notificationService struct {
	mailer   ports.Mailer
	renderer ports.InvoiceRenderer
	dedup    NotificationDedup
	log      zerolog.Logger
}

// NewNotificationService returns a NotificationService that renders each
// job kind into an email and hands it to the mail collaborator.
func NewNotificationService(
	mailer ports.Mailer,
	renderer ports.InvoiceRenderer,
	dedup NotificationDedup,
	log zerolog.Logger,
) ports.NotificationService {
	return &notificationService{
		mailer:   mailer,
		renderer: renderer,
		dedup:    dedup,
		log:      log,
	}
}

// Send delivers one notification job. Dedup failures are logged and the job
// proceeds: losing the once-only guarantee beats dropping the notification
// when Redis is unavailable.
func (s *notificationService) Send(ctx context.Context, n ports.Notification) error {
	isDup, err := s.dedup.IsDuplicate(ctx, string(n.Kind), n.EntityID, n.Status)
	if err != nil {
		s.log.Warn().Err(err).Str("entity_id", n.EntityID).Msg("dedup check failed, sending anyway")
	} else if isDup {
		s.log.Debug().
			Str("kind", string(n.Kind)).
			Str("entity_id", n.EntityID).
			Msg("duplicate notification skipped")
		return nil
	}

	email, err := s.compose(n)
	if err != nil {
		return fmt.Errorf("compose notification: %w", err)
	}

	if markErr := s.dedup.Mark(ctx, string(n.Kind), n.EntityID, n.Status); markErr != nil {
		s.log.Warn().Err(markErr).Str("entity_id", n.EntityID).Msg("failed to set dedup key")
	}

	if err := s.mailer.Send(ctx, email); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	s.log.Info().
		Str("kind", string(n.Kind)).
		Str("entity_id", n.EntityID).
		Str("recipient", n.Recipient).
		Msg("notification sent")

	return nil
}

func (s *notificationService) compose(n ports.Notification) (ports.Email, error) {
	switch n.Kind {
	case ports.NotifyInvoiceStatus:
		return s.composeInvoiceStatus(n)

	case ports.NotifyContactReceived:
		return ports.Email{
			To:      n.Recipient,
			Subject: fmt.Sprintf("New contact submission: %s", n.Subject),
			Text:    n.Message,
		}, nil

	case ports.NotifyRequestDecided:
		return ports.Email{
			To:      n.Recipient,
			Subject: fmt.Sprintf("Your connection request was %s", n.Status),
			Text:    fmt.Sprintf("Request %s is now %s.", n.EntityID, n.Status),
		}, nil

	default:
		return ports.Email{}, fmt.Errorf("unknown notification kind %q", n.Kind)
	}
}

func (s *notificationService) composeInvoiceStatus(n ports.Notification) (ports.Email, error) {
	if n.Invoice == nil {
		return ports.Email{}, fmt.Errorf("invoice notification %s has no invoice payload", n.EntityID)
	}

	email := ports.Email{
		To:      n.Recipient,
		Subject: fmt.Sprintf("Invoice %s is now %s", n.Invoice.Number, n.Status),
		Text: fmt.Sprintf("Invoice %s (%s %.2f) has been marked %s.",
			n.Invoice.Number, n.Invoice.Currency, float64(n.Invoice.AmountCents)/100, n.Status),
	}

	// Attach the rendered invoice once it has been approved. A render
	// failure downgrades to a plain email rather than dropping the job.
	if domain.InvoiceStatus(n.Status) == domain.InvoiceApproved {
		pdf, err := s.renderer.Render(n.Invoice)
		if err != nil {
			s.log.Warn().Err(err).Str("invoice_id", n.Invoice.ID).Msg("invoice render failed, sending without attachment")
			return email, nil
		}
		email.Attachments = []ports.Attachment{{
			Filename: fmt.Sprintf("invoice-%s.pdf", n.Invoice.Number),
			Content:  pdf,
		}}
	}

	return email, nil
}
