package domain

import (
	"fmt"
	"strings"
)

// ValidationError describes a single field-level validation failure.
type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates field-level failures so a single response can
// report every invalid field at once.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return strings.Join(msgs, "; ")
}

// FieldMap renders the errors as {field: message}, the shape the frontend
// consumes for inline form errors.
func (e ValidationErrors) FieldMap() map[string]string {
	m := make(map[string]string, len(e))
	for _, ve := range e {
		if _, ok := m[ve.Field]; !ok {
			m[ve.Field] = ve.Message
		}
	}
	return m
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    string(CodeMissingField),
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    string(CodeInvalidFormat),
		Message: fmt.Sprintf("%s has invalid format: %v", field, value),
	}
}

func NewOutOfRangeError(field string, value, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    string(CodeOutOfRange),
		Message: fmt.Sprintf("%s must be between %d and %d, got %d", field, min, max, value),
	}
}

func NewFieldError(field, message string) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    string(CodeValidation),
		Message: message,
	}
}
