package ports

import (
	"context"

	"github.com/assoimpresa360/client-portal/internal/core/domain"
)

// ClientInput carries the full editable field set of a client record.
// Update has full-replace semantics, so every field is always provided.
type ClientInput struct {
	Username    string
	Password    string
	FullName    string
	CompanyName string
	OneDriveURL string
}

// MutationResult is returned by every mutating operation. Clients is the
// freshly re-listed table, so the admin view refreshes from one round trip.
type MutationResult struct {
	Client  *domain.Client
	Clients []domain.Client
}

// ClientService implements the administrator CRUD contract over the
// record store.
type ClientService interface {
	List(ctx context.Context) ([]domain.Client, error)
	Create(ctx context.Context, input ClientInput) (*MutationResult, error)
	Update(ctx context.Context, id string, input ClientInput) (*MutationResult, error)
	Delete(ctx context.Context, id string) ([]domain.Client, error)
}
