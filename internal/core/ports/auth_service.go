package ports

import (
	"context"

	"github.com/assoimpresa360/client-portal/internal/core/domain"
)

// LoginResult is returned on a successful authentication.
type LoginResult struct {
	Token   string
	Session *domain.Session
}

// AuthService decides the outcome of a credential submission and owns the
// session lifecycle.
type AuthService interface {
	// Login runs the decision procedure: administrator pair, then record
	// store lookup, then (store unconfigured only) the demo pair. Any other
	// pair yields domain.ErrInvalidCredentials with no state change.
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// Logout revokes the session, returning it to the unauthenticated state.
	Logout(ctx context.Context, sessionID string)
}
