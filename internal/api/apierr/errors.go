// Package apierr maps domain errors onto the HTTP error envelope. Every
// failure a handler surfaces goes through WriteError so the taxonomy stays
// in one place.
package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tsimard/playerdex/internal/model"
	"github.com/tsimard/playerdex/internal/pagination"
	"github.com/tsimard/playerdex/internal/schema"
	"github.com/tsimard/playerdex/internal/services/auth"
	"github.com/tsimard/playerdex/internal/services/player"
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
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeNotFound           = "NOT_FOUND"
	CodePageOutOfRange     = "PAGE_OUT_OF_RANGE"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodeImageNotFound      = "IMAGE_NOT_FOUND"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeUsernameExists     = "USERNAME_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeNotAcceptable      = "NOT_ACCEPTABLE"
	CodeUnsupportedMedia   = "UNSUPPORTED_MEDIA_TYPE"
	CodeInternalError      = "INTERNAL_ERROR"
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
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Validation failures carry the offending field's message
	var fe *schema.FieldError
	if errors.As(err, &fe) {
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, fe.Error()}}
	}

	switch {
	// A page beyond the dataset is unprocessable, not malformed
	case errors.Is(err, pagination.ErrOutOfRange):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodePageOutOfRange, "Sorry, we seem to be unable to process the request"}}

	// Map model errors
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrNoProfilePic):
		return &httpError{http.StatusNotFound, APIError{CodeImageNotFound, "Player has no profile picture"}}
	case errors.Is(err, player.ErrWrongImageFormat):
		return &httpError{http.StatusNotFound, APIError{CodeImageNotFound, "No picture in the requested format"}}
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeUserNotFound, "User not found"}}
	case errors.Is(err, model.ErrUsernameExists):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewForbiddenError creates the gate failure for non-editor writes. The gate
// answers 401 for both missing and insufficient claims, so probing a write
// endpoint does not reveal whether a session exists.
func NewForbiddenError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeForbidden, "Editor role required"}}
}

// NewNotAcceptableError creates a 406 for content the client will not accept
func NewNotAcceptableError(mime string) error {
	return &httpError{http.StatusNotAcceptable, APIError{CodeNotAcceptable, "Response is only available as " + mime}}
}

// NewUnsupportedMediaError creates a 415 for unsupported request bodies
func NewUnsupportedMediaError() error {
	return &httpError{http.StatusUnsupportedMediaType, APIError{CodeUnsupportedMedia, "Unsupported request content type"}}
}

// NewNotFoundError creates a plain not-found error
func NewNotFoundError() error {
	return &httpError{http.StatusNotFound, APIError{CodeNotFound, "Sorry, this path seems to be missing"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
