package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/assoimpresa360/client-portal/internal/api/middleware"
	"github.com/assoimpresa360/client-portal/internal/core/domain"
)

// ctxSession extracts the session injected by the Auth middleware and
// fast-fails before any service call:
//   - presence proves the middleware ran;
//   - a client session without a record is the fatal invariant violation,
//     rejected here so no handler ever sees it.
func ctxSession(c echo.Context) (*domain.Session, error) {
	session, _ := c.Get(middleware.CtxSession).(*domain.Session)
	if session == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	if session.Role == domain.RoleClient && session.Client == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "session revoked")
	}
	return session, nil
}
