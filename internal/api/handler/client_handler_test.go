package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/assoimpresa360/client-portal/internal/core/domain"
	"github.com/assoimpresa360/client-portal/internal/core/ports"
)

type stubClientService struct {
	clients  []domain.Client
	mutation *ports.MutationResult
	err      error
	lastID   string
}

func (s *stubClientService) List(context.Context) ([]domain.Client, error) {
	return s.clients, s.err
}

func (s *stubClientService) Create(_ context.Context, _ ports.ClientInput) (*ports.MutationResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.mutation, nil
}

func (s *stubClientService) Update(_ context.Context, id string, _ ports.ClientInput) (*ports.MutationResult, error) {
	s.lastID = id
	if s.err != nil {
		return nil, s.err
	}
	return s.mutation, nil
}

func (s *stubClientService) Delete(_ context.Context, id string) ([]domain.Client, error) {
	s.lastID = id
	return s.clients, s.err
}

const validClientBody = `{
	"username": "giulia",
	"password": "pw",
	"full_name": "Giulia Bianchi",
	"company_name": "Bianchi SNC",
	"onedrive_url": "https://onedrive.live.com/x"
}`

func TestClientHandler_List(t *testing.T) {
	svc := &stubClientService{clients: []domain.Client{{ID: "c1", CompanyName: "Bianchi SNC"}}}
	h := NewClientHandler(svc)

	c, rec := newContext(t, http.MethodGet, "/v1/clients", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	var resp clientListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 1 || len(resp.Clients) != 1 {
		t.Fatalf("unexpected list payload: %+v", resp)
	}
}

func TestClientHandler_List_StoreUnavailable(t *testing.T) {
	h := NewClientHandler(&stubClientService{err: domain.ErrStoreUnavailable})

	c, _ := newContext(t, http.MethodGet, "/v1/clients", "")
	if err := h.List(c); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestClientHandler_Create(t *testing.T) {
	created := &domain.Client{ID: "c9", Username: "giulia", CompanyName: "Bianchi SNC"}
	svc := &stubClientService{mutation: &ports.MutationResult{
		Client:  created,
		Clients: []domain.Client{*created},
	}}
	h := NewClientHandler(svc)

	c, rec := newContext(t, http.MethodPost, "/v1/clients", validClientBody)
	if err := h.Create(c); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp clientMutationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Client == nil || resp.Client.ID != "c9" {
		t.Fatalf("created record missing: %+v", resp)
	}
	if resp.Count != 1 {
		t.Fatalf("re-listed table missing: %+v", resp)
	}
}

func TestClientHandler_Create_Invalid(t *testing.T) {
	h := NewClientHandler(&stubClientService{})

	// onedrive_url must be a URL
	body := `{"username":"g","password":"p","full_name":"G","company_name":"B","onedrive_url":"not-a-url"}`
	c, _ := newContext(t, http.MethodPost, "/v1/clients", body)
	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestClientHandler_Create_DuplicateUsername(t *testing.T) {
	h := NewClientHandler(&stubClientService{err: domain.ErrUsernameTaken})

	c, _ := newContext(t, http.MethodPost, "/v1/clients", validClientBody)
	if err := h.Create(c); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestClientHandler_Create_StoreFailureCollapses(t *testing.T) {
	h := NewClientHandler(&stubClientService{err: errors.New("connection reset")})

	c, _ := newContext(t, http.MethodPost, "/v1/clients", validClientBody)
	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %v", err)
	}
}

func TestClientHandler_Update(t *testing.T) {
	updated := &domain.Client{ID: "c1", Username: "giulia", CompanyName: "Bianchi & Figli SNC"}
	svc := &stubClientService{mutation: &ports.MutationResult{
		Client:  updated,
		Clients: []domain.Client{*updated},
	}}
	h := NewClientHandler(svc)

	c, rec := newContext(t, http.MethodPut, "/v1/clients/c1", validClientBody)
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := h.Update(c); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastID != "c1" {
		t.Fatalf("path id not forwarded, got %q", svc.lastID)
	}
}

func TestClientHandler_Update_NotFound(t *testing.T) {
	h := NewClientHandler(&stubClientService{err: domain.ErrClientNotFound})

	c, _ := newContext(t, http.MethodPut, "/v1/clients/ghost", validClientBody)
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if err := h.Update(c); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientHandler_Delete(t *testing.T) {
	svc := &stubClientService{clients: []domain.Client{}}
	h := NewClientHandler(svc)

	c, rec := newContext(t, http.MethodDelete, "/v1/clients/c1", "")
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastID != "c1" {
		t.Fatalf("path id not forwarded, got %q", svc.lastID)
	}
	var resp clientListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Clients == nil {
		t.Fatalf("clients must serialize as an empty array, not null")
	}
}

func TestClientHandler_Delete_StoreFailure(t *testing.T) {
	h := NewClientHandler(&stubClientService{err: errors.New("connection reset")})

	c, _ := newContext(t, http.MethodDelete, "/v1/clients/c1", "")
	c.SetParamNames("id")
	c.SetParamValues("c1")

	err := h.Delete(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %v", err)
	}
}
