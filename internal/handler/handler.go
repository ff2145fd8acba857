package handler

import (
	"errors"
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/model"

	"github.com/gin-gonic/gin"
)

// respondError writes the standard JSON error body.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, model.ErrorResponse{
		Error:         message,
		CorrelationID: c.GetString(middleware.RequestIDKey),
	})
}

// statusFor maps domain errors to an HTTP status, falling back to the route's
// generic failure status.
func statusFor(err error, fallback int) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidID):
		return http.StatusBadRequest
	default:
		return fallback
	}
}
