// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"tasktrack/internal/errors"
)

// FieldError is one rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every rejected field of a request body.
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		parts = append(parts, field.Field+": "+field.Message)
	}

	return "validation failed: " + strings.Join(parts, "; ")
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
	return "Validation failed"
}

// Details is empty; field errors are exposed through Fields.
func (e *ValidationError) Details() string {
	return ""
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their json or query name.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}

		return field.Name
	})

	return &CustomValidator{validate: validate}
}

// Validate checks a bound request body.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := errors.Find[validator.ValidationErrors](err)
	if !ok {
		return errors.Wrap(err, "validate request")
	}

	fields := make([]FieldError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, FieldError{
			Field:   fieldErr.Field(),
			Message: describe(fieldErr),
		})
	}

	return &ValidationError{Fields: fields}
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is required"
	case "email":
		return fieldErr.Field() + " must be a valid email"
	case "min":
		if fieldErr.Kind() == reflect.String {
			return fieldErr.Field() + " must be at least " + fieldErr.Param() + " characters"
		}

		return fieldErr.Field() + " must be at least " + fieldErr.Param()
	case "max":
		if fieldErr.Kind() == reflect.String {
			return fieldErr.Field() + " must be at most " + fieldErr.Param() + " characters"
		}

		return fieldErr.Field() + " must be at most " + fieldErr.Param()
	case "oneof":
		return fieldErr.Field() + " must be one of: " + strings.ReplaceAll(fieldErr.Param(), " ", ", ")
	default:
		return fieldErr.Field() + " is invalid"
	}
}
