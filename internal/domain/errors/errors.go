package errors

import (
	"net/http"

	"quill/internal/errors"
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

// Predefined error types.
//
// ErrInvalidCredentials is deliberately shared between the "unknown email"
// and "wrong password" paths: both must be indistinguishable to clients to
// resist account enumeration. The merge happens where the error is
// constructed, not at the HTTP boundary.
var (
	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusForbidden,
		"INVALID_CREDENTIALS",
		"Email or password incorrect",
		"",
	)

	// Authorization-related errors
	ErrAuthHeaderMissing = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_HEADER_MISSING",
		"This endpoint requires an authorization header",
		"",
	)

	ErrAuthHeaderMalformed = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_HEADER_MALFORMED",
		"Your authorization header is malformed",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Your token has been expired, please log in again",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Unauthorized",
		"",
	)

	// Registration-related errors
	ErrEmailTaken = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_TAKEN",
		"A user with this email already exists",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Failed to create user",
		"",
	)

	ErrPostCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"POST_CREATION_FAILED",
		"Failed to create post",
		"",
	)

	// Token issuance errors
	ErrTokenSigningFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_SIGNING_FAILED",
		"Oh no, something unexpected happened",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Oh no, something unexpected happened",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Oh no, something unexpected happened",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Oh no, something unexpected happened"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
