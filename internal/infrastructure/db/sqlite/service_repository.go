package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atelierworks/ffe-portal/internal/core/domain"
)

// ServiceRepository implements ports.ServiceRepository on SQLite.
type ServiceRepository struct {
	db *sql.DB
}

func NewServiceRepository(db *sql.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Insert(ctx context.Context, s *domain.Service) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO services (id, admin_id, name, description, price_cents, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.AdminID, s.Name, s.Description, s.PriceCents, formatTime(s.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

func (r *ServiceRepository) List(ctx context.Context) ([]*domain.Service, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, admin_id, name, description, price_cents, created_at
		 FROM services ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var out []*domain.Service
	for rows.Next() {
		var s domain.Service
		var createdAt string
		if err := rows.Scan(&s.ID, &s.AdminID, &s.Name, &s.Description, &s.PriceCents, &createdAt); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		s.CreatedAt = parseTime(createdAt)
		out = append(out, &s)
	}
	return out, rows.Err()
}

// Delete removes one row by id using DELETE ... RETURNING so the deleted
// row travels back in the same statement.
func (r *ServiceRepository) Delete(ctx context.Context, id string) (*domain.Service, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := r.db.QueryRowContext(ctx,
		`DELETE FROM services WHERE id = ?
		 RETURNING id, admin_id, name, description, price_cents, created_at`, id)

	var s domain.Service
	var createdAt string
	err := row.Scan(&s.ID, &s.AdminID, &s.Name, &s.Description, &s.PriceCents, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("delete service: %w", err)
	}
	s.CreatedAt = parseTime(createdAt)
	return &s, nil
}
