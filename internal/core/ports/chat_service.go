package ports

import (
	"context"

	"github.com/assoimpresa360/client-portal/internal/core/domain"
)

// ChatExchange is the pair of messages produced by one submission: the
// user's message and the assistant's reply (which may be a fallback string).
type ChatExchange struct {
	User  domain.ChatMessage
	Reply domain.ChatMessage
}

// ChatService manages per-session chat transcripts and forwards user
// messages to the assistant gateway.
type ChatService interface {
	// Messages returns the session's transcript in append order.
	Messages(ctx context.Context, session *domain.Session) ([]domain.ChatMessage, error)
	// Send appends the user message, obtains a reply, appends it, and
	// returns both. An empty message is rejected before any side effect.
	Send(ctx context.Context, session *domain.Session, text string) (*ChatExchange, error)
}

// AssistantGateway is the boundary to the external text-generation service.
// Generate never fails: service misconfiguration and transport errors are
// downgraded to in-band Italian fallback strings so the chat always renders
// a reply.
type AssistantGateway interface {
	Generate(ctx context.Context, userMessage, clientContext string) string
}

// ChatGuard limits each session to one in-flight assistant request.
type ChatGuard interface {
	// Acquire reserves the session's chat slot; it returns false when a
	// request is already in flight.
	Acquire(ctx context.Context, sessionID string) (bool, error)
	Release(ctx context.Context, sessionID string)
}
