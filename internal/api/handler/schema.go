package handler

import (
	"time"

	"github.com/assoimpresa360/client-portal/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Role      string         `json:"role"`
	Client    *domain.Client `json:"client,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Session sessionResponse `json:"session"`
}

// --- Admin CRUD ---

// clientRequest carries the full editable field set; update has
// full-replace semantics so every field is required in both modes. The
// password travels in plain text: the administrator issues and reads
// client credentials through this form.
type clientRequest struct {
	Username    string `json:"username"     validate:"required"`
	Password    string `json:"password"     validate:"required"`
	FullName    string `json:"full_name"    validate:"required"`
	CompanyName string `json:"company_name" validate:"required"`
	OneDriveURL string `json:"onedrive_url" validate:"required,url"`
}

type clientListResponse struct {
	Clients []domain.Client `json:"clients"`
	Count   int             `json:"count"`
}

// clientMutationResponse embeds the refreshed table after every mutation so
// the admin view updates from a single round trip.
type clientMutationResponse struct {
	Client  *domain.Client  `json:"client,omitempty"`
	Clients []domain.Client `json:"clients"`
	Count   int             `json:"count"`
}

// --- Portal / chat ---

type portalResponse struct {
	FullName    string `json:"full_name"`
	CompanyName string `json:"company_name"`
	OneDriveURL string `json:"onedrive_url"`
}

type chatSendRequest struct {
	Text string `json:"text" validate:"required"`
}

type chatMessagesResponse struct {
	Messages []domain.ChatMessage `json:"messages"`
}

type chatExchangeResponse struct {
	User  domain.ChatMessage `json:"user"`
	Reply domain.ChatMessage `json:"reply"`
}
