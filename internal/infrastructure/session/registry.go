// Package session holds authentication state in process memory. Nothing
// here is persisted: a restart logs everyone out, which is the intended
// behavior for this portal.
package session

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/assoimpresa360/client-portal/internal/core/domain"
)

type entry struct {
	session    *domain.Session
	transcript []domain.ChatMessage
}

// Registry is the single authority over live sessions and their chat
// transcripts. All methods are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
	log     zerolog.Logger
}

func NewRegistry(log zerolog.Logger) *Registry {
	return &Registry{entries: make(map[string]*entry), log: log}
}

func (r *Registry) Put(s *domain.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[s.ID] = &entry{session: s}
}

// Get returns the session for the given id. A client session that has lost
// its record violates the session invariant and is revoked on sight; the
// caller sees ErrSessionCorrupted and the actor is effectively logged out.
func (r *Registry) Get(id string) (*domain.Session, error) {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if !e.session.Valid() {
		r.log.Warn().Str("session_id", id).Str("role", e.session.Role).Msg("invalid session revoked")
		r.Delete(id)
		return nil, domain.ErrSessionCorrupted
	}
	return e.session, nil
}

func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

// Append adds a message to the session's transcript. A session revoked
// mid-request reports ErrSessionNotFound and the message is lost with it.
func (r *Registry) Append(id string, msg domain.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return domain.ErrSessionNotFound
	}
	e.transcript = append(e.transcript, msg)
	return nil
}

// Transcript returns a copy of the session's messages in append order.
func (r *Registry) Transcript(id string) ([]domain.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	out := make([]domain.ChatMessage, len(e.transcript))
	copy(out, e.transcript)
	return out, nil
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
