package repository

import (
	"context"

	"storefront/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogRepository defines data access for one catalog-shaped collection
// (products, carts, carousels or buys).
type CatalogRepository interface {
	// GetAll retrieves documents in natural order. A limit of zero or less
	// returns the whole collection.
	GetAll(ctx context.Context, limit int64) ([]model.CatalogItem, error)

	// GetByID retrieves a single document by its storage-assigned identifier.
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.CatalogItem, error)

	// Insert stores a new document and returns it with the assigned identifier.
	Insert(ctx context.Context, item *model.CatalogItem) (*model.CatalogItem, error)

	// UpdateByID merges the patch into the stored document and returns the
	// post-update state.
	UpdateByID(ctx context.Context, id primitive.ObjectID, patch bson.M) (*model.CatalogItem, error)

	// DeleteByID removes a document by its storage-assigned identifier.
	DeleteByID(ctx context.Context, id primitive.ObjectID) error

	// DeleteByField removes every document whose field equals value and
	// returns the count removed.
	DeleteByField(ctx context.Context, field, value string) (int64, error)
}

// OrderRepository defines data access for the orders collection. Orders are
// never updated in place.
type OrderRepository interface {
	GetAll(ctx context.Context) ([]model.Order, error)
	Insert(ctx context.Context, order *model.Order) (*model.Order, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

// AccountRepository defines data access for one account collection (users or
// sellers).
type AccountRepository interface {
	Insert(ctx context.Context, account *model.Account) (*model.Account, error)

	// FindByEmail returns model.ErrNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*model.Account, error)
}
