package errors

import (
	"net/http"

	"walletpass/internal/errors"
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
	return errors.Wrap(e, message)
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
	// Authentication-related errors.
	// A wrong token, an unsupported scheme, and an unknown serial all map to
	// the same error so responses never reveal which serial numbers exist.
	ErrPassUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"PASS_UNAUTHORIZED",
		"invalid authentication for pass",
		"",
	)

	// Pass-related errors
	ErrPassNotFound = NewBaseError(
		http.StatusNotFound,
		"PASS_NOT_FOUND",
		"pass not found",
		"",
	)

	ErrPassCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASS_CREATION_FAILED",
		"failed to create pass",
		"",
	)

	ErrPassUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASS_UPDATE_FAILED",
		"failed to update pass",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"device not found",
		"",
	)

	// Registration-related errors
	ErrRegistrationFailed = NewBaseError(
		http.StatusInternalServerError,
		"REGISTRATION_FAILED",
		"failed to register device",
		"",
	)

	// Pass generation errors
	ErrBundleGenerationFailed = NewBaseError(
		http.StatusBadGateway,
		"BUNDLE_GENERATION_FAILED",
		"failed to generate signed pass bundle",
		"",
	)
)

// NewDatabaseExecuteError creates a database execution error with details
func NewDatabaseExecuteError(err error, message string) *BaseError {
	return NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		message,
		err.Error(),
	)
}
