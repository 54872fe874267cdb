package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/assoimpresa360/client-portal/internal/core/domain"
	"github.com/assoimpresa360/client-portal/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxSession = "session"
	CtxRole    = "role"
)

// Auth validates the bearer JWT and resolves the live session it points to.
// The token alone is not enough: the registry is authoritative, so a token
// whose session was logged out (or revoked for violating the client-record
// invariant) is rejected even while its signature is still valid.
func Auth(jwtSecret string, sessions ports.SessionRegistry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sid, _ := claims["sid"].(string)
			session, err := sessions.Get(sid)
			if err != nil {
				if errors.Is(err, domain.ErrSessionCorrupted) {
					return echo.NewHTTPError(http.StatusUnauthorized, "session revoked")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
			}

			c.Set(CtxSession, session)
			c.Set(CtxRole, session.Role)

			return next(c)
		}
	}
}
