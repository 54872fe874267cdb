package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/assoimpresa360/client-portal/internal/api/metrics"
	"github.com/assoimpresa360/client-portal/internal/core/domain"
	"github.com/assoimpresa360/client-portal/internal/core/ports"
)

// Demo credentials let the UI be exercised when no record store is
// configured. They are only honored in that state, never against a live
// store.
const (
	demoUsername = "mario"
	demoPassword = "asso360"
)

var demoClient = domain.Client{
	ID:          "demo-1",
	Username:    demoUsername,
	FullName:    "Mario Rossi",
	CompanyName: "Rossi SRL",
	OneDriveURL: "https://onedrive.live.com/login/",
}

// AuthConfig carries the static credentials the decision procedure needs.
// The administrator password is provided as a bcrypt hash so the literal
// secret never appears in code or in clear in the environment.
type AuthConfig struct {
	AdminUsername     string
	AdminPasswordHash string
	JWTSecret         string
	TokenTTL          time.Duration
	DemoLoginDelay    time.Duration
}

// AuthService implements the login decision procedure and session lifecycle.
// A nil repository means the record store is unconfigured, which is the only
// state in which the demo pair is accepted.
type AuthService struct {
	repo     ports.ClientRepository
	sessions ports.SessionRegistry
	cfg      AuthConfig
	log      zerolog.Logger
}

func NewAuthService(repo ports.ClientRepository, sessions ports.SessionRegistry, cfg AuthConfig, log zerolog.Logger) *AuthService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.DemoLoginDelay <= 0 {
		cfg.DemoLoginDelay = 800 * time.Millisecond
	}
	return &AuthService{repo: repo, sessions: sessions, cfg: cfg, log: log}
}

// Login evaluates the submitted pair in fixed order: administrator
// credentials, record store lookup, demo fallback. First match wins; the
// order must not change. Rejections never reveal which field was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	// 1. Administrator pair, checked before any store traffic so the admin
	// secret is never sent to the record store.
	if s.isAdminPair(username, password) {
		s.log.Info().Msg("administrator login")
		return s.open(domain.RoleAdmin, nil, "admin")
	}

	// 2. Record store lookup. A store error is logged and treated as
	// no-match: the demo branch below stays closed because the store is
	// configured, so an outage still ends in rejection.
	if s.repo != nil {
		client, err := s.repo.FindByCredentials(ctx, username, password)
		switch {
		case err == nil:
			s.log.Info().Str("client_id", client.ID).Str("company", client.CompanyName).Msg("client login")
			return s.open(domain.RoleClient, client, "client")
		case errors.Is(err, domain.ErrClientNotFound):
			// no match, fall through to rejection
		default:
			s.log.Error().Err(err).Msg("record store lookup failed")
		}
	} else if username == demoUsername && password == demoPassword {
		// 3. Demo fallback, only when the store is unconfigured. The delay
		// mimics the latency of a real lookup.
		select {
		case <-time.After(s.cfg.DemoLoginDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		demo := demoClient
		s.log.Info().Msg("demo login (record store unconfigured)")
		return s.open(domain.RoleClient, &demo, "demo")
	}

	metrics.LoginsTotal.WithLabelValues("rejected").Inc()
	return nil, domain.ErrInvalidCredentials
}

// Logout revokes the session. Revoking an unknown session is a no-op.
func (s *AuthService) Logout(_ context.Context, sessionID string) {
	s.sessions.Delete(sessionID)
	metrics.SessionsActive.Set(float64(s.sessions.Count()))
}

func (s *AuthService) isAdminPair(username, password string) bool {
	if s.cfg.AdminUsername == "" || s.cfg.AdminPasswordHash == "" {
		return false
	}
	if username != s.cfg.AdminUsername {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)) == nil
}

// open registers a new session and mints its bearer token. The client record
// is sanitized before it enters session state: the password is needed for
// the lookup but must not outlive it.
func (s *AuthService) open(role string, client *domain.Client, outcome string) (*ports.LoginResult, error) {
	session := &domain.Session{
		ID:        uuid.NewString(),
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if client != nil {
		sanitized := client.Sanitized()
		session.Client = &sanitized
	}

	token, err := s.mintToken(session)
	if err != nil {
		s.log.Error().Err(err).Msg("token signing failed")
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	s.sessions.Put(session)
	metrics.LoginsTotal.WithLabelValues(outcome).Inc()
	metrics.SessionsActive.Set(float64(s.sessions.Count()))

	return &ports.LoginResult{Token: token, Session: session}, nil
}

func (s *AuthService) mintToken(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":  session.ID,
		"role": session.Role,
		"exp":  time.Now().Add(s.cfg.TokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.cfg.JWTSecret))
}
