package posts

import (
	"errors"
	"fmt"
)

// ErrPostNotFound is the absent marker for lookups by id or slug.
// It is a normal outcome, not a backend failure.
var ErrPostNotFound = errors.New("post not found")

// ValidationError represents malformed input caught at the form boundary,
// before it reaches the store.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// IsNotFound checks if error marks an absent post
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound)
}
