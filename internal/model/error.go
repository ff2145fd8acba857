package model

import "errors"

// ErrorResponse is the standard JSON error body.
type ErrorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// ResultResponse mirrors the login API's failure body, which uses a "result"
// field rather than "error".
type ResultResponse struct {
	Result string `json:"result"`
}

// MessageResponse is the body returned by successful deletes.
type MessageResponse struct {
	Message string `json:"message"`
}

// Sentinel errors shared across layers. Handlers map these to HTTP statuses.
var (
	// ErrNotFound signals a missing document or a credential mismatch.
	ErrNotFound = errors.New("not found")

	// ErrInvalidID signals a malformed storage identifier in a request path.
	ErrInvalidID = errors.New("invalid id")
)
