package ports

import "github.com/assoimpresa360/client-portal/internal/core/domain"

// SessionRegistry is the single authority over authentication state. It is
// purely in-memory: sessions do not survive a process restart, matching the
// portal's no-persistence rule.
type SessionRegistry interface {
	Put(session *domain.Session)
	// Get returns the session, or domain.ErrSessionNotFound. A client
	// session that fails the role/record invariant is revoked on sight and
	// reported as domain.ErrSessionCorrupted.
	Get(id string) (*domain.Session, error)
	Delete(id string)
	// Append adds a message to the session's transcript.
	Append(id string, msg domain.ChatMessage) error
	// Transcript returns a snapshot of the session's messages in order.
	Transcript(id string) ([]domain.ChatMessage, error)
	Count() int
}
