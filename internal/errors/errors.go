package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// Unknown email and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound is returned when a user record does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
