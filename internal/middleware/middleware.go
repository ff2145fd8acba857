package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"storefront/internal/auth"
	"storefront/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Context keys set by the middleware chain.
const (
	RequestIDKey = "request_id"
	ClaimsKey    = "claims"
)

// RequestID honours an incoming X-Request-Id or assigns a fresh one, and
// echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

// Logging logs each request with timing information.
func Logging(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Str("remote_addr", c.ClientIP()).
			Str("request_id", c.GetString(RequestIDKey)).
			Msg("http request")
	}
}

// Recovery recovers from panics and returns a 500 error body.
func Recovery(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error().
					Interface("panic", err).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Msg("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, model.ErrorResponse{
					Error:         "internal server error",
					CorrelationID: c.GetString(RequestIDKey),
				})
			}
		}()

		c.Next()
	}
}

// RequireAuth validates the bearer token and stores its claims on the
// context. A missing token is 403, an invalid or expired one 401.
func RequireAuth(tokens *auth.TokenManager, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenStr := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			status := http.StatusUnauthorized
			if errors.Is(err, auth.ErrMissingToken) {
				status = http.StatusForbidden
			}
			logger.Warn().
				Err(err).
				Str("path", c.Request.URL.Path).
				Str("request_id", c.GetString(RequestIDKey)).
				Msg("rejected request")
			c.AbortWithStatusJSON(status, model.ResultResponse{Result: err.Error()})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}
