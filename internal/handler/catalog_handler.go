package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CatalogHandler serves HTTP requests for one catalog collection. The entity
// name appears in error and delete messages; failStatus is the route family's
// generic failure status (400 for products/cart, 500 for carousel/buy).
type CatalogHandler struct {
	service    service.CatalogService
	entity     string
	failStatus int
	logger     zerolog.Logger
}

// NewCatalogHandler creates a catalog handler.
func NewCatalogHandler(svc service.CatalogService, entity string, failStatus int, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service:    svc,
		entity:     entity,
		failStatus: failStatus,
		logger:     logger.With().Str("handler", entity).Logger(),
	}
}

// List handles GET requests for the collection. An optional _limit query
// caps the result; zero or absent returns everything in storage order.
func (h *CatalogHandler) List(c *gin.Context) {
	var limit int64
	if raw := c.Query("_limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			respondError(c, http.StatusBadRequest, "invalid _limit parameter")
			return
		}
		limit = parsed
	}

	items, err := h.service.List(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.failStatus, "failed to fetch "+h.entity+" items")
		return
	}

	c.JSON(http.StatusOK, items)
}

// Get handles GET requests for a single item by storage id.
func (h *CatalogHandler) Get(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, statusFor(err, h.failStatus), h.entity+" not found")
		return
	}

	c.JSON(http.StatusOK, item)
}

// Create handles POST requests storing a new item.
func (h *CatalogHandler) Create(c *gin.Context) {
	var item model.CatalogItem
	if err := c.ShouldBindJSON(&item); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	stored, err := h.service.Create(c.Request.Context(), &item)
	if err != nil {
		respondError(c, http.StatusBadRequest, "failed to add "+h.entity)
		return
	}

	c.JSON(http.StatusCreated, stored)
}

// Update handles PUT requests merging a partial document into the stored
// item.
func (h *CatalogHandler) Update(c *gin.Context) {
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, statusFor(err, h.failStatus), h.entity+" not found")
		return
	}

	c.JSON(http.StatusOK, item)
}

// Delete handles DELETE requests removing an item by storage id.
func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, statusFor(err, h.failStatus), h.entity+" not found")
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: h.entity + " deleted successfully"})
}

// DeleteByItemID handles DELETE requests removing items by their logical id
// field.
func (h *CatalogHandler) DeleteByItemID(c *gin.Context) {
	if err := h.service.DeleteByItemID(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, statusFor(err, h.failStatus), h.entity+" not found")
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: h.entity + " deleted successfully"})
}
