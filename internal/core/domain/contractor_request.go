package domain

import (
	"errors"
	"time"
)

// RequestStatus represents the lifecycle state of a contractor connection
// request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestPending: {RequestApproved, RequestRejected},
}

var ErrRequestNotFound = errors.New("contractor request not found")

// CanTransitionTo reports whether a transition from the current status to
// next is allowed. Approved and rejected are terminal.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ContractorRequest links a contractor to an admin. Only approved requests
// make the pair "connected"; every relationship-scoped query filters on
// the approved status.
type ContractorRequest struct {
	ID           string `json:"id"`
	ContractorID string `json:"contractor_id"`
	// ContractorEmail is populated by joins for notification delivery and
	// never serialized.
	ContractorEmail string `json:"-"`

	AdminID   string        `json:"admin_id"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
