package ports

import (
	"context"

	"github.com/atelierworks/ffe-portal/internal/core/domain"
)

// NotificationKind identifies the template a notification job renders.
type NotificationKind string

const (
	NotifyInvoiceStatus   NotificationKind = "invoice_status"
	NotifyContactReceived NotificationKind = "contact_received"
	NotifyRequestDecided  NotificationKind = "request_decided"
)

// Notification is a fire-and-forget job handed to the dispatcher after a
// primary operation has committed. EntityID doubles as the shard key, so
// notifications about the same entity are delivered in order.
type Notification struct {
	Kind      NotificationKind
	EntityID  string
	Status    string
	Recipient string
	Subject   string
	Message   string
	// Invoice is set on NotifyInvoiceStatus jobs so the sender can render
	// the PDF attachment without re-reading storage.
	Invoice *domain.Invoice
}

// NotificationService delivers a single notification job.
type NotificationService interface {
	Send(ctx context.Context, n Notification) error
}
