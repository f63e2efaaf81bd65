package ports

import (
	"context"

	"github.com/atelierworks/ffe-portal/internal/core/domain"
)

// AdminSearchLimit caps the number of rows returned by a directory search.
const AdminSearchLimit = 5

// ContractorRepository defines persistence operations for contractor-admin
// relationships and the admin directory.
type ContractorRepository interface {
	InsertRequest(ctx context.Context, r *domain.ContractorRequest) error
	FindRequestByID(ctx context.Context, id string) (*domain.ContractorRequest, error)
	// UpdateRequestStatus sets the request status in a single statement.
	UpdateRequestStatus(ctx context.Context, id string, status domain.RequestStatus) error
	// ListRequestsForAdmin returns requests addressed to the given admin.
	ListRequestsForAdmin(ctx context.Context, adminID string) ([]*domain.ContractorRequest, error)
	// ListConnectedAdmins returns the admins linked to the contractor through
	// an approved request.
	ListConnectedAdmins(ctx context.Context, contractorID string) ([]*domain.User, error)
	// SearchAdmins matches admin-role users by case-insensitive substring on
	// name, email, or company, capped at limit rows.
	SearchAdmins(ctx context.Context, query string, limit int) ([]*domain.User, error)
}

// ContractorService defines use-cases around contractor-admin connections.
type ContractorService interface {
	RequestConnection(ctx context.Context, contractorID, adminID string) (*domain.ContractorRequest, error)
	// Decide applies an admin's approval or rejection, enforcing the request
	// state machine. Only the admin the request is addressed to may decide it.
	Decide(ctx context.Context, adminID, requestID string, status domain.RequestStatus) (*domain.ContractorRequest, error)
	ListRequestsForAdmin(ctx context.Context, adminID string) ([]*domain.ContractorRequest, error)
	ConnectedAdmins(ctx context.Context, contractorID string) ([]*domain.User, error)
	// SearchAdmins returns an empty slice without touching storage when the
	// query is empty.
	SearchAdmins(ctx context.Context, query string) ([]*domain.User, error)
}
