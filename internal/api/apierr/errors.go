package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/easylog/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest         = "INVALID_REQUEST"
	CodeValidationFailed       = "VALIDATION_FAILED"
	CodeUnauthorized           = "UNAUTHORIZED"
	CodeSessionCorrupt         = "SESSION_CORRUPT"
	CodeUnknownCategory        = "UNKNOWN_CATEGORY"
	CodeEntityNotFound         = "ENTITY_NOT_FOUND"
	CodeDefaultEntityProtected = "DEFAULT_ENTITY_PROTECTED"
	CodeConfirmationRequired   = "CONFIRMATION_REQUIRED"
	CodeInternalError          = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Unknown category is a validation error but reads as a missing resource
	case errors.Is(err, model.ErrUnknownCategory):
		return &httpError{http.StatusNotFound, APIError{CodeUnknownCategory, "Unknown category"}}
	case errors.Is(err, model.ErrValidation):
		return &httpError{http.StatusBadRequest, APIError{CodeValidationFailed, err.Error()}}

	case errors.Is(err, model.ErrNoSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
	case errors.Is(err, model.ErrCorruptSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeSessionCorrupt, "Stored session was corrupt and has been cleared"}}

	case errors.Is(err, model.ErrEntityNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeEntityNotFound, "Entity not found"}}
	case errors.Is(err, model.ErrDefaultEntityProtected):
		return &httpError{http.StatusForbidden, APIError{CodeDefaultEntityProtected, "The default entity cannot be deleted"}}
	case errors.Is(err, model.ErrRemovalCancelled):
		return &httpError{http.StatusConflict, APIError{CodeConfirmationRequired, "Deletion must be confirmed with confirm=true"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
