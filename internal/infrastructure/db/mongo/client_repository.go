package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/assoimpresa360/client-portal/internal/core/domain"
)

const collectionClients = "clients"

// ClientRepository is the record-store gateway over the "clients"
// collection.
type ClientRepository struct {
	col *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{col: db.Collection(collectionClients)}
}

// clientDoc is the persisted shape. The password is stored as submitted:
// the administrator must be able to read and re-issue it.
type clientDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Username    string             `bson:"username"`
	Password    string             `bson:"password"`
	FullName    string             `bson:"full_name"`
	CompanyName string             `bson:"company_name"`
	OneDriveURL string             `bson:"onedrive_url"`
}

// List returns every client record ordered by company name ascending.
func (r *ClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "company_name", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer cursor.Close(ctx)

	var clients []domain.Client
	for cursor.Next(ctx) {
		var doc clientDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode client: %w", err)
		}
		clients = append(clients, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

// FindByCredentials returns the single record matching both username and
// password. The lookup is an equality match on the stored password; the
// administrator reads and re-issues credentials in clear.
func (r *ClientRepository) FindByCredentials(ctx context.Context, username, password string) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc clientDoc
	err := r.col.FindOne(ctx, bson.M{"username": username, "password": password}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	client := doc.toDomain()
	return &client, nil
}

// Insert stores a new record; the store assigns the identifier. A duplicate
// username trips the unique index and surfaces as ErrUsernameTaken.
func (r *ClientRepository) Insert(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, fromDomain(client))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("insert client: %w", err)
	}

	created := *client
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// Update replaces the full field set of the record with the given ID.
func (r *ClientRepository) Update(ctx context.Context, id string, client *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrClientNotFound
	}

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, fromDomain(client))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("update client: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

// Delete removes the record with the given ID.
func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrClientNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

// EnsureIndexes creates the unique username index the insert contract
// depends on.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (d clientDoc) toDomain() domain.Client {
	return domain.Client{
		ID:          d.ID.Hex(),
		Username:    d.Username,
		Password:    d.Password,
		FullName:    d.FullName,
		CompanyName: d.CompanyName,
		OneDriveURL: d.OneDriveURL,
	}
}

func fromDomain(c *domain.Client) clientDoc {
	return clientDoc{
		Username:    c.Username,
		Password:    c.Password,
		FullName:    c.FullName,
		CompanyName: c.CompanyName,
		OneDriveURL: c.OneDriveURL,
	}
}
