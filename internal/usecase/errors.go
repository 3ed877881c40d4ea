package usecase

import (
	"errors"
	"fmt"

	"homecare-booking/internal/data/repository"
	"homecare-booking/pkg/utils"
)

// ErrBookingNotFound is wrapped by every operation that targets a missing booking.
var ErrBookingNotFound = errors.New("booking not found")

// ValidationError reports missing or malformed input, keyed by JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func newValidationError(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

func fieldError(field, message string) error {
	return newValidationError(map[string]string{field: message})
}

func bookingNotFound(id string) error {
	return fmt.Errorf("booking %s: %w", id, ErrBookingNotFound)
}

// isNotFound covers a missing row at read time and a row deleted concurrently
// between the locked read and the write.
func isNotFound(err error) bool {
	return errors.Is(err, ErrBookingNotFound) || errors.Is(err, repository.ErrNotFound)
}

func isValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
