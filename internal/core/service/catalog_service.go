package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/atelierworks/ffe-portal/internal/core/domain"
	"github.com/atelierworks/ffe-portal/internal/core/ports"
)

// CatalogService implements use-cases over the admin service catalog.
type CatalogService struct {
	repo ports.ServiceRepository
	log  zerolog.Logger
}

func NewCatalogService(repo ports.ServiceRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, log: log}
}

func (s *CatalogService) Create(ctx context.Context, input ports.CreateServiceInput) (*domain.Service, error) {
	svc := &domain.Service{
		ID:          uuid.NewString(),
		AdminID:     input.AdminID,
		Name:        input.Name,
		Description: input.Description,
		PriceCents:  input.PriceCents,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, svc); err != nil {
		return nil, err
	}
	s.log.Info().Str("service_id", svc.ID).Str("name", svc.Name).Msg("catalog service created")
	return svc, nil
}

func (s *CatalogService) List(ctx context.Context) ([]*domain.Service, error) {
	return s.repo.List(ctx)
}

// Delete removes one row by id and returns it. Deleting an absent id yields
// domain.ErrServiceNotFound, making repeated deletes observably idempotent.
func (s *CatalogService) Delete(ctx context.Context, id string) (*domain.Service, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("service_id", id).Msg("catalog service deleted")
	return deleted, nil
}
