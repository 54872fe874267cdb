package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/assoimpresa360/client-portal/internal/api/middleware"
	"github.com/assoimpresa360/client-portal/internal/core/domain"
	"github.com/assoimpresa360/client-portal/internal/core/ports"
)

type stubChatService struct {
	messages []domain.ChatMessage
	exchange *ports.ChatExchange
	err      error
	lastText string
}

func (s *stubChatService) Messages(context.Context, *domain.Session) ([]domain.ChatMessage, error) {
	return s.messages, s.err
}

func (s *stubChatService) Send(_ context.Context, _ *domain.Session, text string) (*ports.ChatExchange, error) {
	s.lastText = text
	if s.err != nil {
		return nil, s.err
	}
	return s.exchange, nil
}

func TestChatHandler_Messages(t *testing.T) {
	svc := &stubChatService{messages: []domain.ChatMessage{
		{ID: "m1", Role: domain.ChatRoleModel, Text: "Ciao Giulia"},
	}}
	h := NewChatHandler(svc)

	c, rec := newContext(t, http.MethodGet, "/v1/chat/messages", "")
	c.Set(middleware.CtxSession, clientTestSession())

	if err := h.Messages(c); err != nil {
		t.Fatalf("messages failed: %v", err)
	}
	var resp chatMessagesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Messages) != 1 || resp.Messages[0].ID != "m1" {
		t.Fatalf("unexpected transcript payload: %+v", resp)
	}
}

func TestChatHandler_Send(t *testing.T) {
	svc := &stubChatService{exchange: &ports.ChatExchange{
		User:  domain.ChatMessage{ID: "m1", Role: domain.ChatRoleUser, Text: "ciao"},
		Reply: domain.ChatMessage{ID: "m2", Role: domain.ChatRoleModel, Text: "Ciao!"},
	}}
	h := NewChatHandler(svc)

	c, rec := newContext(t, http.MethodPost, "/v1/chat/messages", `{"text":"ciao"}`)
	c.Set(middleware.CtxSession, clientTestSession())

	if err := h.Send(c); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if svc.lastText != "ciao" {
		t.Fatalf("message not forwarded, got %q", svc.lastText)
	}
	var resp chatExchangeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User.ID != "m1" || resp.Reply.ID != "m2" {
		t.Fatalf("unexpected exchange payload: %+v", resp)
	}
}

func TestChatHandler_Send_EmptyMessage(t *testing.T) {
	h := NewChatHandler(&stubChatService{err: domain.ErrEmptyMessage})

	c, _ := newContext(t, http.MethodPost, "/v1/chat/messages", `{"text":"   "}`)
	c.Set(middleware.CtxSession, clientTestSession())

	if err := h.Send(c); !errors.Is(err, domain.ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestChatHandler_Send_Busy(t *testing.T) {
	h := NewChatHandler(&stubChatService{err: domain.ErrChatBusy})

	c, _ := newContext(t, http.MethodPost, "/v1/chat/messages", `{"text":"ciao"}`)
	c.Set(middleware.CtxSession, clientTestSession())

	if err := h.Send(c); !errors.Is(err, domain.ErrChatBusy) {
		t.Fatalf("expected ErrChatBusy, got %v", err)
	}
}

func TestChatHandler_SessionWithoutRecord(t *testing.T) {
	h := NewChatHandler(&stubChatService{})

	c, _ := newContext(t, http.MethodGet, "/v1/chat/messages", "")
	c.Set(middleware.CtxSession, &domain.Session{ID: "s1", Role: domain.RoleClient})

	err := h.Messages(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestPortalHandler_Dashboard(t *testing.T) {
	h := NewPortalHandler()

	c, rec := newContext(t, http.MethodGet, "/v1/portal", "")
	c.Set(middleware.CtxSession, clientTestSession())

	if err := h.Dashboard(c); err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	var resp portalResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.OneDriveURL != "https://onedrive.live.com/x" {
		t.Fatalf("folder link missing: %+v", resp)
	}
	if resp.FullName != "Giulia Bianchi" || resp.CompanyName != "Bianchi SNC" {
		t.Fatalf("display fields missing: %+v", resp)
	}
}
