package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atelierworks/ffe-portal/internal/core/domain"
)

// ContactRepository implements ports.ContactRepository on SQLite.
type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Insert(ctx context.Context, c *domain.ContactSubmission) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO contact_submissions (id, name, email, subject, message, is_resolved, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Email, c.Subject, c.Message, boolToInt(c.IsResolved), formatTime(c.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert contact submission: %w", err)
	}
	return nil
}

func (r *ContactRepository) List(ctx context.Context) ([]*domain.ContactSubmission, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, subject, message, is_resolved, created_at
		 FROM contact_submissions ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	defer rows.Close()

	var out []*domain.ContactSubmission
	for rows.Next() {
		var c domain.ContactSubmission
		var resolved int
		var createdAt string
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &resolved, &createdAt); err != nil {
			return nil, fmt.Errorf("scan contact submission: %w", err)
		}
		c.IsResolved = resolved != 0
		c.CreatedAt = parseTime(createdAt)
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *ContactRepository) Resolve(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`UPDATE contact_submissions SET is_resolved = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("resolve contact submission: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("resolve contact submission: %w", err)
	}
	if affected == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
