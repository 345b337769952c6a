package errors

import "net/http"

// FieldIssue describes a single field-level validation failure.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the full list of field issues so the HTTP boundary
// can render them as structured details. It implements the AppError interface.
type ValidationError struct {
	Issues []FieldIssue
}

// NewValidationError creates a validation error from field issues.
func NewValidationError(issues []FieldIssue) *ValidationError {
	return &ValidationError{Issues: issues}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message()
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "Some fields in the form were not filled in correctly"
}

// Details returns detailed error information
func (e *ValidationError) Details() string {
	if len(e.Issues) == 0 {
		return ""
	}

	details := e.Issues[0].Message
	for _, issue := range e.Issues[1:] {
		details += "; " + issue.Message
	}

	return details
}
