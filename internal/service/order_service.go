package service

import (
	"context"
	"fmt"

	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// orderService implements OrderService.
type orderService struct {
	repo   repository.OrderRepository
	logger zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(repo repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		repo:   repo,
		logger: logger.With().Str("service", "order").Logger(),
	}
}

// List retrieves every order.
func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// Create validates the order and stores it. Validation failures leave the
// collection untouched.
func (s *orderService) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if err := order.Validate(); err != nil {
		s.logger.Warn().Err(err).Str("order_id", order.OrderID).Msg("order rejected")
		return nil, err
	}

	stored, err := s.repo.Insert(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("id", stored.ID.Hex()).
		Str("order_id", stored.OrderID).
		Int("products", len(stored.Products)).
		Msg("order created")

	return stored, nil
}

// Delete removes an order by its storage id.
func (s *orderService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.ErrInvalidID
	}

	if err := s.repo.DeleteByID(ctx, oid); err != nil {
		return err
	}

	s.logger.Info().Str("id", id).Msg("order deleted")
	return nil
}
