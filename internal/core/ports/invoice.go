package ports

import (
	"context"

	"github.com/atelierworks/ffe-portal/internal/core/domain"
)

// InvoiceRepository defines persistence operations for invoices.
type InvoiceRepository interface {
	// List returns all invoices joined with the issuing contractor's name.
	List(ctx context.Context) ([]*domain.Invoice, error)
	// FindByID retrieves one invoice (joined with contractor name and email).
	FindByID(ctx context.Context, id string) (*domain.Invoice, error)
	// UpdateStatus sets the invoice's status in a single statement.
	UpdateStatus(ctx context.Context, id string, status domain.InvoiceStatus) error
}

// InvoiceService defines admin use-cases over invoices.
type InvoiceService interface {
	List(ctx context.Context) ([]*domain.Invoice, error)
	Get(ctx context.Context, id string) (*domain.Invoice, error)
	// UpdateStatus enforces the invoice state machine before writing and
	// returns the updated invoice.
	UpdateStatus(ctx context.Context, id string, status domain.InvoiceStatus) (*domain.Invoice, error)
}
