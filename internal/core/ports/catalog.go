package ports

import (
	"context"

	"github.com/atelierworks/ffe-portal/internal/core/domain"
)

// ServiceRepository defines persistence operations for the service catalog.
type ServiceRepository interface {
	Insert(ctx context.Context, s *domain.Service) error
	List(ctx context.Context) ([]*domain.Service, error)
	// Delete removes one row by id and returns the deleted row, or
	// domain.ErrServiceNotFound when no row matched.
	Delete(ctx context.Context, id string) (*domain.Service, error)
}

// CreateServiceInput carries the fields for a new catalog entry.
type CreateServiceInput struct {
	AdminID     string
	Name        string
	Description string
	PriceCents  int64
}

// CatalogService defines use-cases over the service catalog.
type CatalogService interface {
	Create(ctx context.Context, input CreateServiceInput) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Delete(ctx context.Context, id string) (*domain.Service, error)
}
