package domain

import (
	"fmt"
	"strings"
)

// ValidationError is one rejected field of a study, draft or normalize request.
// Value carries the measured quantity (character count, question count) or the raw input.
type ValidationError struct {
	Code    ErrorCode   `json:"code"`
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is returned as a whole so the client can highlight every field at once.
// The HTTP layer answers it with 400 and the list in request field order.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{
		Code:    CodeMissingField,
		Field:   field,
		Message: fmt.Sprintf("%s must not be empty", field),
	}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{
		Code:    CodeInvalidFormat,
		Field:   field,
		Message: fmt.Sprintf("%s is not in a recognized format", field),
		Value:   value,
	}
}

// NewOutOfRangeError reports a count outside [min, max]. Text fields are measured in characters.
func NewOutOfRangeError(field string, value interface{}, min, max int) ValidationError {
	return ValidationError{
		Code:    CodeOutOfRange,
		Field:   field,
		Message: fmt.Sprintf("%s must be between %d and %d, got %v", field, min, max, value),
		Value:   value,
	}
}
