package ports

import (
	"context"

	"github.com/atelierworks/ffe-portal/internal/core/domain"
)

// ContactRepository defines persistence operations for contact submissions.
type ContactRepository interface {
	Insert(ctx context.Context, c *domain.ContactSubmission) error
	List(ctx context.Context) ([]*domain.ContactSubmission, error)
	// Resolve flips the is_resolved flag; domain.ErrContactNotFound when no
	// row matched.
	Resolve(ctx context.Context, id string) error
}

// SubmitContactInput carries the public contact form fields.
type SubmitContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactService defines use-cases over contact submissions.
type ContactService interface {
	Submit(ctx context.Context, input SubmitContactInput) (*domain.ContactSubmission, error)
	List(ctx context.Context) ([]*domain.ContactSubmission, error)
	Resolve(ctx context.Context, id string) error
}
