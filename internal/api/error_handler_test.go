package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/assoimpresa360/client-portal/internal/core/domain"
)

func render(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	return rec.Code, body.Error
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Credenziali non valide"},
		{"username taken", domain.ErrUsernameTaken, http.StatusConflict, "Errore durante il salvataggio. Assicurati che lo username sia unico."},
		{"client not found", domain.ErrClientNotFound, http.StatusNotFound, "Cliente non trovato"},
		{"store unavailable", domain.ErrStoreUnavailable, http.StatusBadGateway, "Errore nel caricamento dei clienti"},
		{"empty message", domain.ErrEmptyMessage, http.StatusUnprocessableEntity, "Il messaggio non può essere vuoto"},
		{"chat busy", domain.ErrChatBusy, http.StatusConflict, "Una richiesta è già in corso"},
		{"session not found", domain.ErrSessionNotFound, http.StatusUnauthorized, "Sessione scaduta"},
		{"session corrupted", domain.ErrSessionCorrupted, http.StatusUnauthorized, "Sessione scaduta"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := render(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			if msg != tc.msg {
				t.Fatalf("expected %q, got %q", tc.msg, msg)
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("lookup"), domain.ErrClientNotFound)
	code, _ := render(t, wrapped)
	if code != http.StatusNotFound {
		t.Fatalf("expected wrapped domain error to resolve, got %d", code)
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	code, msg := render(t, echo.NewHTTPError(http.StatusBadGateway, "Errore durante l'eliminazione"))
	if code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", code)
	}
	if msg != "Errore durante l'eliminazione" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestHTTPErrorHandler_UnexpectedError(t *testing.T) {
	code, msg := render(t, errors.New("mongo: socket closed"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("backend detail must not leak: %q", msg)
	}
}
