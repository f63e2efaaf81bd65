package domain

import (
	"errors"
	"time"
)

var ErrContactNotFound = errors.New("contact submission not found")

// ContactSubmission is a message received through the public contact form.
type ContactSubmission struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	IsResolved bool      `json:"is_resolved"`
	CreatedAt  time.Time `json:"created_at"`
}
