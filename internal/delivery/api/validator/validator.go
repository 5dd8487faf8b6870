// Package validator adapts the domain validation rules to echo.
package validator

import (
	domainerrors "profilecard/internal/domain/errors"
	"profilecard/internal/domain/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns an echo.Validator backed by the shared validation rules.
func New() echo.Validator {
	return &CustomValidator{validate: validation.New()}
}

// Validate reports field errors as a VALIDATION_FAILED AppError with one message per field.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return &FieldErrors{
			BaseError: domainerrors.ErrValidationFailed,
			Fields:    validation.Describe(err),
		}
	}

	return nil
}

// FieldErrors is a validation failure that keeps the per-field messages for the response details.
type FieldErrors struct {
	*domainerrors.BaseError
	Fields []string
}

// Error lists the failing fields after the generic message.
func (e *FieldErrors) Error() string {
	if len(e.Fields) == 0 {
		return e.BaseError.Error()
	}

	msg := e.BaseError.Message() + ":"
	for i, f := range e.Fields {
		if i > 0 {
			msg += ";"
		}
		msg += " " + f
	}

	return msg
}

// Unwrap exposes the base error so errors.Is matches ErrValidationFailed.
func (e *FieldErrors) Unwrap() error {
	return e.BaseError
}
