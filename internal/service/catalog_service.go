package service

import (
	"context"
	"fmt"

	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// catalogService implements CatalogService.
type catalogService struct {
	repo   repository.CatalogRepository
	logger zerolog.Logger
}

// NewCatalogService creates a catalog service over the given repository. The
// name scopes log entries (product, cart, carousel, buy).
func NewCatalogService(repo repository.CatalogRepository, name string, logger zerolog.Logger) CatalogService {
	return &catalogService{
		repo:   repo,
		logger: logger.With().Str("service", name).Logger(),
	}
}

// List retrieves items in storage order, capped at limit when positive.
func (s *catalogService) List(ctx context.Context, limit int64) ([]model.CatalogItem, error) {
	items, err := s.repo.GetAll(ctx, limit)
	if err != nil {
		s.logger.Error().Err(err).Int64("limit", limit).Msg("failed to list items")
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	s.logger.Debug().Int("count", len(items)).Msg("listed items")
	return items, nil
}

// Get retrieves a single item by its storage id.
func (s *catalogService) Get(ctx context.Context, id string) (*model.CatalogItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrInvalidID
	}

	item, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	return item, nil
}

// Create stores a new item.
func (s *catalogService) Create(ctx context.Context, item *model.CatalogItem) (*model.CatalogItem, error) {
	stored, err := s.repo.Insert(ctx, item)
	if err != nil {
		s.logger.Error().Err(err).Str("name", item.Name).Msg("failed to create item")
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	s.logger.Info().Str("id", stored.ID.Hex()).Str("name", stored.Name).Msg("item created")
	return stored, nil
}

// Update merges the patch into the stored item. The storage id is never
// patchable.
func (s *catalogService) Update(ctx context.Context, id string, patch map[string]interface{}) (*model.CatalogItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrInvalidID
	}

	update := bson.M{}
	for k, v := range patch {
		if k == "_id" {
			continue
		}
		update[k] = v
	}

	// An empty patch is a no-op read; $set rejects empty documents.
	if len(update) == 0 {
		return s.repo.GetByID(ctx, oid)
	}

	item, err := s.repo.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", id).Int("fields", len(update)).Msg("item updated")
	return item, nil
}

// Delete removes an item by its storage id.
func (s *catalogService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.ErrInvalidID
	}

	if err := s.repo.DeleteByID(ctx, oid); err != nil {
		return err
	}

	s.logger.Info().Str("id", id).Msg("item deleted")
	return nil
}

// DeleteByItemID removes items matching the logical id field.
func (s *catalogService) DeleteByItemID(ctx context.Context, itemID string) error {
	count, err := s.repo.DeleteByField(ctx, "id", itemID)
	if err != nil {
		return err
	}

	if count == 0 {
		return model.ErrNotFound
	}

	s.logger.Info().Str("item_id", itemID).Int64("count", count).Msg("items deleted")
	return nil
}
