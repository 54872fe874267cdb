package ports

import (
	"context"

	"github.com/assoimpresa360/client-portal/internal/core/domain"
)

// ClientRepository is the gateway to the external record store's "clients"
// collection.
type ClientRepository interface {
	// List returns every client record ordered by company name ascending.
	List(ctx context.Context) ([]domain.Client, error)
	// FindByCredentials returns the single record whose username and
	// password both match, or domain.ErrClientNotFound.
	FindByCredentials(ctx context.Context, username, password string) (*domain.Client, error)
	// Insert stores a new record and returns it with the store-assigned ID.
	// A duplicate username yields domain.ErrUsernameTaken.
	Insert(ctx context.Context, client *domain.Client) (*domain.Client, error)
	// Update replaces the full field set of the record with the given ID.
	Update(ctx context.Context, id string, client *domain.Client) error
	// Delete removes the record with the given ID.
	Delete(ctx context.Context, id string) error
}
