package session

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/assoimpresa360/client-portal/internal/core/domain"
)

func clientSession(id string) *domain.Session {
	return &domain.Session{
		ID:   id,
		Role: domain.RoleClient,
		Client: &domain.Client{
			ID:          "c1",
			Username:    "giulia",
			FullName:    "Giulia Bianchi",
			CompanyName: "Bianchi SNC",
		},
		CreatedAt: time.Now().UTC(),
	}
}

func TestRegistry_PutGetDelete(t *testing.T) {
	r := NewRegistry(zerolog.Nop())

	s := clientSession("s1")
	r.Put(s)
	if r.Count() != 1 {
		t.Fatalf("expected 1 session, got %d", r.Count())
	}

	got, err := r.Get("s1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != s {
		t.Fatalf("get returned a different session")
	}

	r.Delete("s1")
	if _, err := r.Get("s1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
	if r.Count() != 0 {
		t.Fatalf("expected empty registry, got %d", r.Count())
	}
}

func TestRegistry_Get_RevokesInvalidSession(t *testing.T) {
	r := NewRegistry(zerolog.Nop())

	// A client session that lost its record is revoked on sight.
	r.Put(&domain.Session{ID: "s1", Role: domain.RoleClient, CreatedAt: time.Now().UTC()})

	if _, err := r.Get("s1"); !errors.Is(err, domain.ErrSessionCorrupted) {
		t.Fatalf("expected ErrSessionCorrupted, got %v", err)
	}
	if r.Count() != 0 {
		t.Fatalf("invalid session must be removed, registry holds %d", r.Count())
	}
}

func TestRegistry_Get_AdminNeedsNoRecord(t *testing.T) {
	r := NewRegistry(zerolog.Nop())
	r.Put(&domain.Session{ID: "a1", Role: domain.RoleAdmin, CreatedAt: time.Now().UTC()})

	if _, err := r.Get("a1"); err != nil {
		t.Fatalf("admin session without record must be valid, got %v", err)
	}
}

func TestRegistry_Transcript(t *testing.T) {
	r := NewRegistry(zerolog.Nop())
	r.Put(clientSession("s1"))

	first := domain.ChatMessage{ID: "m1", Role: domain.ChatRoleModel, Text: "ciao"}
	second := domain.ChatMessage{ID: "m2", Role: domain.ChatRoleUser, Text: "aiuto"}
	if err := r.Append("s1", first); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := r.Append("s1", second); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	got, err := r.Transcript("s1")
	if err != nil {
		t.Fatalf("transcript failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "m1" || got[1].ID != "m2" {
		t.Fatalf("transcript out of order: %+v", got)
	}

	// The returned slice is a copy; mutating it must not touch the registry.
	got[0].Text = "tampered"
	again, _ := r.Transcript("s1")
	if again[0].Text != "ciao" {
		t.Fatalf("transcript copy leaked internal state")
	}
}

func TestRegistry_Append_UnknownSession(t *testing.T) {
	r := NewRegistry(zerolog.Nop())

	err := r.Append("ghost", domain.ChatMessage{ID: "m1"})
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := r.Transcript("ghost"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
