package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/assoimpresa360/client-portal/internal/core/domain"
	"github.com/assoimpresa360/client-portal/internal/core/ports"
)

// ChatService owns the per-session transcript and forwards user messages to
// the assistant gateway. Replies are always strings: gateway failures arrive
// here already downgraded to fallback text, so sending never errors past
// validation and the in-flight guard.
type ChatService struct {
	sessions ports.SessionRegistry
	gateway  ports.AssistantGateway
	guard    ports.ChatGuard
	log      zerolog.Logger
}

func NewChatService(sessions ports.SessionRegistry, gateway ports.AssistantGateway, guard ports.ChatGuard, log zerolog.Logger) *ChatService {
	return &ChatService{sessions: sessions, gateway: gateway, guard: guard, log: log}
}

// Messages returns the transcript, seeding the welcome greeting on first
// access so a freshly opened widget is never empty.
func (s *ChatService) Messages(_ context.Context, session *domain.Session) ([]domain.ChatMessage, error) {
	if err := s.ensureWelcome(session); err != nil {
		return nil, err
	}
	return s.sessions.Transcript(session.ID)
}

// Send appends the user message, obtains a reply and appends it. The user
// message is appended before the gateway call and stays in the transcript
// even when the reply is a fallback.
func (s *ChatService) Send(ctx context.Context, session *domain.Session, text string) (*ports.ChatExchange, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyMessage
	}
	if err := s.ensureWelcome(session); err != nil {
		return nil, err
	}

	ok, err := s.guard.Acquire(ctx, session.ID)
	if err != nil {
		// Guard trouble must not take the chat down; proceed unguarded.
		s.log.Warn().Err(err).Str("session_id", session.ID).Msg("chat guard unavailable, proceeding")
	} else if !ok {
		return nil, domain.ErrChatBusy
	}
	defer s.guard.Release(ctx, session.ID)

	userMsg := newMessage(domain.ChatRoleUser, text)
	if err := s.sessions.Append(session.ID, userMsg); err != nil {
		return nil, err
	}

	reply := s.gateway.Generate(ctx, text, clientContext(session.Client))

	replyMsg := newMessage(domain.ChatRoleModel, reply)
	if err := s.sessions.Append(session.ID, replyMsg); err != nil {
		return nil, err
	}

	return &ports.ChatExchange{User: userMsg, Reply: replyMsg}, nil
}

// ensureWelcome seeds the greeting into an empty client transcript.
func (s *ChatService) ensureWelcome(session *domain.Session) error {
	if session.Client == nil {
		return domain.ErrSessionCorrupted
	}
	transcript, err := s.sessions.Transcript(session.ID)
	if err != nil {
		return err
	}
	if len(transcript) > 0 {
		return nil
	}
	greeting := fmt.Sprintf(
		"Ciao %s, sono l'assistente virtuale di Assoimpresa360. Come posso aiutarti oggi con i tuoi documenti?",
		firstName(session.Client.FullName),
	)
	return s.sessions.Append(session.ID, newMessage(domain.ChatRoleModel, greeting))
}

func newMessage(role domain.ChatRole, text string) domain.ChatMessage {
	return domain.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
}

// clientContext builds the short context string sent alongside every
// message: the client's name and company, nothing else. Prior turns are
// never resent.
func clientContext(client *domain.Client) string {
	return fmt.Sprintf("Cliente: %s, Azienda: %s", client.FullName, client.CompanyName)
}

func firstName(fullName string) string {
	if i := strings.IndexByte(fullName, ' '); i > 0 {
		return fullName[:i]
	}
	return fullName
}
