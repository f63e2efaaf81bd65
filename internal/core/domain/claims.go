package domain

import "errors"

var ErrInvalidToken = errors.New("invalid token")
var ErrForbidden = errors.New("access forbidden")

// Claims is the identity carried by a session token: the subject user id,
// email, and role. A verified Claims value is trusted as the caller's
// identity for the remainder of the request.
type Claims struct {
	UserID string
	Email  string
	Role   string
}

// Principal is the verified identity attached to a request after the auth
// middleware has accepted its token. Request-scoped, never persisted.
type Principal struct {
	UserID string
	Email  string
	Role   string
}
