// Package validator adapts go-playground/validator to echo's Validator
// interface and translates rule failures into field issues.
package validator

import (
	"fmt"
	"strings"

	domainerrors "quill/internal/domain/errors"
	"quill/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// RequestValidator validates request DTOs against their `validate` tags.
type RequestValidator struct {
	validate *playground.Validate
}

// New creates the validator used by the echo server.
func New() *RequestValidator {
	v := playground.New(playground.WithRequiredStructEnabled())

	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator. Rule failures come back as a single
// ValidationError listing every offending field, never just the first one.
func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	issues := make([]domainerrors.FieldIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, domainerrors.FieldIssue{
			Field:   strings.ToLower(fe.Field()),
			Message: describe(fe),
		})
	}

	return domainerrors.NewValidationError(issues)
}

func describe(fe playground.FieldError) string {
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation on rule %q", field, fe.Tag())
	}
}
