package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/atelierworks/ffe-portal/internal/core/domain"
)

// InvoiceRepository implements ports.InvoiceRepository on SQLite.
type InvoiceRepository struct {
	db *sql.DB
}

func NewInvoiceRepository(db *sql.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

const invoiceColumns = `
	i.id, i.number, i.admin_id, i.contractor_id, i.client_id, i.description,
	i.amount_cents, i.currency, i.status, i.created_at, i.updated_at,
	u.name, u.email`

// List returns all invoices joined with the issuing contractor's name,
// newest first.
func (r *InvoiceRepository) List(ctx context.Context) ([]*domain.Invoice, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT`+invoiceColumns+`
		 FROM invoices i
		 JOIN users u ON u.id = i.contractor_id
		 ORDER BY i.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var out []*domain.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id string) (*domain.Invoice, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := r.db.QueryRowContext(ctx,
		`SELECT`+invoiceColumns+`
		 FROM invoices i
		 JOIN users u ON u.id = i.contractor_id
		 WHERE i.id = ?`, id)

	inv, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, err
	}
	return inv, nil
}

// UpdateStatus sets the status and updated_at in a single statement.
func (r *InvoiceRepository) UpdateStatus(ctx context.Context, id string, status domain.InvoiceStatus) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`UPDATE invoices SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), formatTime(time.Now()), id)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	if affected == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

func scanInvoice(row rowScanner) (*domain.Invoice, error) {
	var inv domain.Invoice
	var createdAt, updatedAt, status string
	err := row.Scan(
		&inv.ID, &inv.Number, &inv.AdminID, &inv.ContractorID, &inv.ClientID,
		&inv.Description, &inv.AmountCents, &inv.Currency, &status,
		&createdAt, &updatedAt, &inv.ContractorName, &inv.ContractorEmail,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan invoice: %w", err)
	}
	inv.Status = domain.InvoiceStatus(status)
	inv.CreatedAt = parseTime(createdAt)
	inv.UpdatedAt = parseTime(updatedAt)
	return &inv, nil
}
