package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/assoimpresa360/client-portal/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes and generic
//     Italian messages, leaking no backend detail.
//   - Logs unexpected errors internally with full context.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic codes. The rejection message is
	// deliberately identical for a bad username and a bad password.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Credenziali non valide"
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, "Errore durante il salvataggio. Assicurati che lo username sia unico."
	case errors.Is(err, domain.ErrClientNotFound):
		return http.StatusNotFound, "Cliente non trovato"
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusBadGateway, "Errore nel caricamento dei clienti"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, domain.ErrEmptyMessage):
		return http.StatusUnprocessableEntity, "Il messaggio non può essere vuoto"
	case errors.Is(err, domain.ErrChatBusy):
		return http.StatusConflict, "Una richiesta è già in corso"
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrSessionCorrupted):
		return http.StatusUnauthorized, "Sessione scaduta"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
