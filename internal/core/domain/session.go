package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// Session is the authentication state of one logged-in actor. A session is
// always in exactly one of two shapes: admin with no client record, or
// client with a sanitized record attached. Unauthenticated simply means no
// session exists.
type Session struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Client    *Client   `json:"client,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Valid reports whether the session satisfies the role/record invariant.
// A client session that has lost its record is unusable and must be revoked.
func (s *Session) Valid() bool {
	switch s.Role {
	case RoleAdmin:
		return s.Client == nil
	case RoleClient:
		return s.Client != nil
	default:
		return false
	}
}
