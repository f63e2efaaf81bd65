package ports

import (
	"context"

	"github.com/atelierworks/ffe-portal/internal/core/domain"
)

// Attachment is a file attached to an outbound email.
type Attachment struct {
	Filename string
	Content  []byte
}

// Email is the transport-agnostic outbound message. At least one of Text
// and HTML must be set.
type Email struct {
	To          string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}

// Mailer is the transactional-email provider collaborator.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// InvoiceRenderer renders an invoice as a PDF document.
type InvoiceRenderer interface {
	Render(invoice *domain.Invoice) ([]byte, error)
}
