package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrTransactionNotFound is returned when a transaction is missing or not owned by the caller.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrNoRatePath is returned when no direct or via-base conversion rate exists.
	ErrNoRatePath = errors.New("no conversion rate found")
	// ErrInvalidAmount is returned when an amount is zero or negative.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrForbidden is returned when the caller's role is insufficient.
	ErrForbidden = errors.New("insufficient permissions")
	// ErrAccountBanned is returned when a banned user attempts to log in.
	ErrAccountBanned = errors.New("account is banned")
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
	switch err {
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrCategoryNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "CATEGORY_NOT_FOUND")
	case ErrTransactionNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "TRANSACTION_NOT_FOUND")
	case ErrNoRatePath:
		// Kept at 500 to preserve the existing client contract.
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "CONVERSION_FAILED")
	case ErrInvalidAmount:
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "INVALID_AMOUNT")
	case ErrForbidden:
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case ErrAccountBanned:
		return NewHTTPError(http.StatusForbidden, err.Error(), "ACCOUNT_BANNED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
