package handler

import (
	"net/http"

	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(svc service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: svc,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Create handles POST /order requests. Validation failures and storage
// errors are both 400; nothing partial is persisted.
func (h *OrderHandler) Create(c *gin.Context) {
	var order model.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	stored, err := h.service.Create(c.Request.Context(), &order)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusCreated, stored)
}

// List handles GET /order requests.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusBadRequest, "failed to fetch orders")
		return
	}

	c.JSON(http.StatusOK, orders)
}

// Delete handles DELETE /order/:id requests.
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, statusFor(err, http.StatusBadRequest), "order not found")
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: "order deleted successfully"})
}
