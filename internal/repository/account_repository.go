package repository

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// accountRepository implements AccountRepository over one account collection.
type accountRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewAccountRepository creates a MongoDB-backed account repository for the
// named collection (users or sellers).
func NewAccountRepository(db *mongo.Database, collection string, logger zerolog.Logger) AccountRepository {
	return &accountRepository{
		collection: db.Collection(collection),
		logger:     logger.With().Str("repository", collection).Logger(),
	}
}

// Insert stores a new account and returns it with the assigned identifier.
func (r *accountRepository) Insert(ctx context.Context, account *model.Account) (*model.Account, error) {
	res, err := r.collection.InsertOne(ctx, account)
	if err != nil {
		r.logger.Error().Err(err).Str("email", account.Email).Msg("failed to insert account")
		return nil, fmt.Errorf("failed to insert into %s: %w", r.collection.Name(), err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		account.ID = oid
	}

	return account, nil
}

// FindByEmail retrieves the account matching the email.
func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	var account model.Account
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Debug().Str("email", email).Msg("account not found")
			return nil, model.ErrNotFound
		}
		r.logger.Error().Err(err).Str("email", email).Msg("failed to query account")
		return nil, fmt.Errorf("failed to query %s: %w", r.collection.Name(), err)
	}

	return &account, nil
}
