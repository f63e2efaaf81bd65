package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/atelierworks/ffe-portal/internal/core/domain"
)

// ContractorRepository implements ports.ContractorRepository on SQLite.
type ContractorRepository struct {
	db *sql.DB
}

func NewContractorRepository(db *sql.DB) *ContractorRepository {
	return &ContractorRepository{db: db}
}

func (r *ContractorRepository) InsertRequest(ctx context.Context, req *domain.ContractorRequest) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO contractor_requests (id, contractor_id, admin_id, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		req.ID, req.ContractorID, req.AdminID, string(req.Status),
		formatTime(req.CreatedAt), formatTime(req.UpdatedAt))
	if err != nil {
		return fmt.Errorf("insert contractor request: %w", err)
	}
	return nil
}

func (r *ContractorRepository) FindRequestByID(ctx context.Context, id string) (*domain.ContractorRequest, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := r.db.QueryRowContext(ctx,
		`SELECT r.id, r.contractor_id, r.admin_id, r.status, r.created_at, r.updated_at, u.email
		 FROM contractor_requests r
		 JOIN users u ON u.id = r.contractor_id
		 WHERE r.id = ?`, id)

	req, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}
	return req, nil
}

func (r *ContractorRepository) UpdateRequestStatus(ctx context.Context, id string, status domain.RequestStatus) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`UPDATE contractor_requests SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), formatTime(time.Now()), id)
	if err != nil {
		return fmt.Errorf("update request status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update request status: %w", err)
	}
	if affected == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *ContractorRepository) ListRequestsForAdmin(ctx context.Context, adminID string) ([]*domain.ContractorRequest, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT r.id, r.contractor_id, r.admin_id, r.status, r.created_at, r.updated_at, u.email
		 FROM contractor_requests r
		 JOIN users u ON u.id = r.contractor_id
		 WHERE r.admin_id = ?
		 ORDER BY r.created_at DESC`, adminID)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	var out []*domain.ContractorRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

// ListConnectedAdmins returns the admins linked to the contractor through
// an approved request. The approved filter is the relationship contract:
// pending or rejected requests grant no visibility.
func (r *ContractorRepository) ListConnectedAdmins(ctx context.Context, contractorID string) ([]*domain.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT u.id, u.name, u.email, u.password_hash, u.role, u.company, u.created_at, u.updated_at
		 FROM contractor_requests r
		 JOIN users u ON u.id = r.admin_id
		 WHERE r.contractor_id = ? AND r.status = ?
		 ORDER BY u.name`, contractorID, string(domain.RequestApproved))
	if err != nil {
		return nil, fmt.Errorf("list connected admins: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

// SearchAdmins matches admin users by case-insensitive substring on name,
// email, or company. LIKE on ASCII is case-insensitive in SQLite by
// default; lower() keeps the behavior explicit.
func (r *ContractorRepository) SearchAdmins(ctx context.Context, query string, limit int) ([]*domain.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	pattern := "%" + escapeLike(query) + "%"
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, password_hash, role, company, created_at, updated_at
		 FROM users
		 WHERE role = ?
		   AND (lower(name) LIKE lower(?) ESCAPE '\'
		     OR lower(email) LIKE lower(?) ESCAPE '\'
		     OR lower(company) LIKE lower(?) ESCAPE '\')
		 ORDER BY name
		 LIMIT ?`, domain.RoleAdmin, pattern, pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("search admins: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

func scanRequest(row rowScanner) (*domain.ContractorRequest, error) {
	var req domain.ContractorRequest
	var status, createdAt, updatedAt string
	err := row.Scan(&req.ID, &req.ContractorID, &req.AdminID, &status, &createdAt, &updatedAt, &req.ContractorEmail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan request: %w", err)
	}
	req.Status = domain.RequestStatus(status)
	req.CreatedAt = parseTime(createdAt)
	req.UpdatedAt = parseTime(updatedAt)
	return &req, nil
}

func collectUsers(rows *sql.Rows) ([]*domain.User, error) {
	var out []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
