package service

import (
	"context"

	"storefront/internal/model"
)

// CatalogService defines operations over one catalog collection. Identifiers
// are the hex form of the storage-assigned id.
type CatalogService interface {
	// List retrieves items in storage order, capped at limit when positive.
	List(ctx context.Context, limit int64) ([]model.CatalogItem, error)

	// Get retrieves a single item by storage id.
	Get(ctx context.Context, id string) (*model.CatalogItem, error)

	// Create stores a new item.
	Create(ctx context.Context, item *model.CatalogItem) (*model.CatalogItem, error)

	// Update merges a partial document into the stored item and returns the
	// merged result.
	Update(ctx context.Context, id string, patch map[string]interface{}) (*model.CatalogItem, error)

	// Delete removes an item by storage id.
	Delete(ctx context.Context, id string) error

	// DeleteByItemID removes items by their logical id field.
	DeleteByItemID(ctx context.Context, itemID string) error
}

// OrderService defines operations for order management.
type OrderService interface {
	List(ctx context.Context) ([]model.Order, error)

	// Create validates the order's required fields and stores it. Nothing is
	// persisted when validation fails.
	Create(ctx context.Context, order *model.Order) (*model.Order, error)

	Delete(ctx context.Context, id string) error
}

// AuthService defines account registration and credential checks for users
// and sellers.
type AuthService interface {
	// Register hashes the password and stores the account.
	Register(ctx context.Context, kind string, account *model.Account) (*model.Account, error)

	// Login checks the credentials and issues a token. Any mismatch is
	// model.ErrNotFound.
	Login(ctx context.Context, creds model.Credentials) (*model.Account, string, error)

	// Check verifies an email/password pair without issuing a token.
	Check(ctx context.Context, kind, email, password string) (*model.Account, error)
}
