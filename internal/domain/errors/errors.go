// Package errors defines the application error taxonomy. Every failure that
// reaches the request boundary is one of these, carrying the HTTP status and
// the user-facing message for the response envelope.
package errors

import (
	stderrors "errors"
	"net/http"

	pkgerrors "github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return pkgerrors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches errors by business code, so a detailed copy produced by
// WithDetails still compares equal to its predefined taxonomy entry.
func (e *BaseError) Is(target error) bool {
	var appErr AppError
	if stderrors.As(target, &appErr) {
		return e.errorCode == appErr.ErrorCode()
	}

	return false
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Profile-related errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"User not found",
		"",
	)

	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_REGISTERED",
		"Email already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email or password is incorrect",
		"",
	)

	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrInvalidPrice = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRICE",
		"Price must be a non-negative decimal with at most two decimal places",
		"",
	)

	// Shopping-state errors
	ErrItemNotFound = NewBaseError(
		http.StatusNotFound,
		"ITEM_NOT_FOUND",
		"Product not found in the target collection",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid or missing required fields",
		"",
	)

	// External collaborator errors. Both are reported to the caller as a
	// generic internal error; the full cause stays in the server-side log.
	ErrPaymentSession = NewBaseError(
		http.StatusInternalServerError,
		"PAYMENT_SESSION_FAILED",
		"Failed to create checkout session",
		"",
	)

	ErrStoreUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"STORE_UNAVAILABLE",
		"Internal Server Error",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal Server Error",
		"",
	)
)
