package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin      = "admin"
	RoleClient     = "client"
	RoleContractor = "contractor"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidRole reports whether role is one of the three enumerated roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleClient || role == RoleContractor
}

// User models an account in the portal. Admins run the FF&E operation,
// clients commission projects, contractors supply and invoice them.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Company      string    `json:"company,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
