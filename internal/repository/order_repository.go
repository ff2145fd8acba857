package repository

import (
	"context"
	"fmt"

	"storefront/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// orderRepository implements OrderRepository over the orders collection.
type orderRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewOrderRepository creates a MongoDB-backed order repository.
func NewOrderRepository(db *mongo.Database, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		collection: db.Collection(model.CollectionOrders),
		logger:     logger.With().Str("repository", "order").Logger(),
	}
}

// GetAll retrieves every order in natural order.
func (r *orderRepository) GetAll(ctx context.Context) ([]model.Order, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []model.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode orders")
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	return orders, nil
}

// Insert stores a new order and returns it with the assigned identifier.
func (r *orderRepository) Insert(ctx context.Context, order *model.Order) (*model.Order, error) {
	res, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", order.OrderID).Msg("failed to insert order")
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}

	return order, nil
}

// DeleteByID removes an order by its storage-assigned identifier.
func (r *orderRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error().Err(err).Str("id", id.Hex()).Msg("failed to delete order")
		return fmt.Errorf("failed to delete order: %w", err)
	}

	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}
