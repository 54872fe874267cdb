package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/assoimpresa360/client-portal/internal/api/metrics"
	"github.com/assoimpresa360/client-portal/internal/core/domain"
	"github.com/assoimpresa360/client-portal/internal/core/ports"
)

// ClientService implements the administrator CRUD contract. Every mutation
// is followed by a re-list so the caller always receives the current table;
// there is no optimistic update and no partial patch.
type ClientService struct {
	repo ports.ClientRepository
	log  zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, log zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, log: log}
}

func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("client list failed")
		return nil, domain.ErrStoreUnavailable
	}
	return clients, nil
}

func (s *ClientService) Create(ctx context.Context, input ports.ClientInput) (*ports.MutationResult, error) {
	draft := toRecord(input)
	created, err := s.repo.Insert(ctx, &draft)
	if err != nil {
		s.log.Error().Err(err).Str("username", input.Username).Msg("client insert failed")
		metrics.ClientMutationsTotal.WithLabelValues("insert", "error").Inc()
		return nil, err
	}
	metrics.ClientMutationsTotal.WithLabelValues("insert", "ok").Inc()
	s.log.Info().Str("client_id", created.ID).Str("company", created.CompanyName).Msg("client created")
	return s.withRelisted(ctx, created)
}

func (s *ClientService) Update(ctx context.Context, id string, input ports.ClientInput) (*ports.MutationResult, error) {
	record := toRecord(input)
	if err := s.repo.Update(ctx, id, &record); err != nil {
		s.log.Error().Err(err).Str("client_id", id).Msg("client update failed")
		metrics.ClientMutationsTotal.WithLabelValues("update", "error").Inc()
		return nil, err
	}
	record.ID = id
	metrics.ClientMutationsTotal.WithLabelValues("update", "ok").Inc()
	s.log.Info().Str("client_id", id).Msg("client updated")
	return s.withRelisted(ctx, &record)
}

func (s *ClientService) Delete(ctx context.Context, id string) ([]domain.Client, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("client_id", id).Msg("client delete failed")
		metrics.ClientMutationsTotal.WithLabelValues("delete", "error").Inc()
		return nil, err
	}
	metrics.ClientMutationsTotal.WithLabelValues("delete", "ok").Inc()
	s.log.Info().Str("client_id", id).Msg("client deleted")
	return s.List(ctx)
}

// withRelisted pairs the mutated record with the refreshed table. A failed
// re-list does not undo the mutation; the table just comes back empty with
// the error logged.
func (s *ClientService) withRelisted(ctx context.Context, client *domain.Client) (*ports.MutationResult, error) {
	clients, err := s.List(ctx)
	if err != nil {
		clients = nil
	}
	return &ports.MutationResult{Client: client, Clients: clients}, nil
}

func toRecord(in ports.ClientInput) domain.Client {
	return domain.Client{
		Username:    strings.TrimSpace(in.Username),
		Password:    in.Password,
		FullName:    strings.TrimSpace(in.FullName),
		CompanyName: strings.TrimSpace(in.CompanyName),
		OneDriveURL: strings.TrimSpace(in.OneDriveURL),
	}
}
