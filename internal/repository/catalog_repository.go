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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// catalogRepository implements CatalogRepository over a single MongoDB
// collection.
type catalogRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewCatalogRepository creates a MongoDB-backed catalog repository for the
// named collection.
func NewCatalogRepository(db *mongo.Database, collection string, logger zerolog.Logger) CatalogRepository {
	return &catalogRepository{
		collection: db.Collection(collection),
		logger:     logger.With().Str("repository", collection).Logger(),
	}
}

// GetAll retrieves documents in natural order, capped at limit when positive.
func (r *catalogRepository) GetAll(ctx context.Context, limit int64) ([]model.CatalogItem, error) {
	findOpts := options.Find()
	if limit > 0 {
		findOpts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		r.logger.Error().Err(err).Int64("limit", limit).Msg("failed to query collection")
		return nil, fmt.Errorf("failed to query %s: %w", r.collection.Name(), err)
	}
	defer cursor.Close(ctx)

	items := []model.CatalogItem{}
	if err := cursor.All(ctx, &items); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode documents")
		return nil, fmt.Errorf("failed to decode %s: %w", r.collection.Name(), err)
	}

	return items, nil
}

// GetByID retrieves a single document by its storage-assigned identifier.
func (r *catalogRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.CatalogItem, error) {
	var item model.CatalogItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Debug().Str("id", id.Hex()).Msg("document not found")
			return nil, model.ErrNotFound
		}
		r.logger.Error().Err(err).Str("id", id.Hex()).Msg("failed to query document")
		return nil, fmt.Errorf("failed to query %s: %w", r.collection.Name(), err)
	}

	return &item, nil
}

// Insert stores a new document and returns it with the assigned identifier.
func (r *catalogRepository) Insert(ctx context.Context, item *model.CatalogItem) (*model.CatalogItem, error) {
	res, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to insert document")
		return nil, fmt.Errorf("failed to insert into %s: %w", r.collection.Name(), err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid
	}

	return item, nil
}

// UpdateByID merges the patch into the stored document with $set and returns
// the post-update state.
func (r *catalogRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, patch bson.M) (*model.CatalogItem, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated model.CatalogItem
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": patch}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Debug().Str("id", id.Hex()).Msg("document not found for update")
			return nil, model.ErrNotFound
		}
		r.logger.Error().Err(err).Str("id", id.Hex()).Msg("failed to update document")
		return nil, fmt.Errorf("failed to update %s: %w", r.collection.Name(), err)
	}

	return &updated, nil
}

// DeleteByID removes a document by its storage-assigned identifier.
func (r *catalogRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error().Err(err).Str("id", id.Hex()).Msg("failed to delete document")
		return fmt.Errorf("failed to delete from %s: %w", r.collection.Name(), err)
	}

	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}

// DeleteByField removes every document whose field equals value.
func (r *catalogRepository) DeleteByField(ctx context.Context, field, value string) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{field: value})
	if err != nil {
		r.logger.Error().Err(err).Str("field", field).Msg("failed to delete documents")
		return 0, fmt.Errorf("failed to delete from %s: %w", r.collection.Name(), err)
	}

	return res.DeletedCount, nil
}
