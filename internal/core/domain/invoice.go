package domain

import (
	"errors"
	"time"
)

// InvoiceStatus represents the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoicePending  InvoiceStatus = "pending"
	InvoiceApproved InvoiceStatus = "approved"
	InvoicePaid     InvoiceStatus = "paid"
	InvoiceRejected InvoiceStatus = "rejected"
)

// invoiceTransitions defines the allowed state machine transitions.
// Paid and rejected are terminal.
var invoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoicePending:  {InvoiceApproved, InvoiceRejected},
	InvoiceApproved: {InvoicePaid},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrInvoiceNotFound = errors.New("invoice not found")

// CanTransitionTo reports whether a transition from the current status to
// next is allowed.
func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	for _, allowed := range invoiceTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Invoice is issued by a contractor against a client project and reviewed
// by an admin.
type Invoice struct {
	ID             string        `json:"id"`
	Number         string        `json:"number"`
	AdminID        string        `json:"admin_id"`
	ContractorID   string        `json:"contractor_id"`
	ClientID       string        `json:"client_id"`
	ContractorName string        `json:"contractor_name,omitempty"`
	// ContractorEmail is populated by joins for notification delivery and
	// never serialized.
	ContractorEmail string `json:"-"`

	Description string        `json:"description"`
	AmountCents int64         `json:"amount_cents"`
	Currency    string        `json:"currency"`
	Status      InvoiceStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
