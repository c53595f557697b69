package validation

import (
	"fmt"

	"github.com/vnykmshr/guard/pkg/check"
	gferrors "github.com/vnykmshr/guard/pkg/common/errors"
)

// ValidatePositive validates that an integer value is positive (> 0).
// Returns a ValidationError if the value is not positive.
func ValidatePositive(module, field string, value int) error {
	if err := check.IsTrue(value > 0, "must be positive"); err != nil {
		return fieldError(module, field, value, err).
			WithHint("value must be greater than 0")
	}
	return nil
}

// ValidateNonNegative validates that a numeric value is non-negative (>= 0).
// Returns a ValidationError if the value is negative.
func ValidateNonNegative(module, field string, value float64) error {
	if err := check.IsTrue(value >= 0, "cannot be negative"); err != nil {
		return fieldError(module, field, value, err).
			WithHint("use 0 or a positive value")
	}
	return nil
}

// ValidatePositiveFloat validates that a float64 value is positive (> 0).
// Returns a ValidationError if the value is not positive.
func ValidatePositiveFloat(module, field string, value float64) error {
	if err := check.IsTrue(value > 0, "must be positive"); err != nil {
		return fieldError(module, field, value, err).
			WithHint("value must be greater than 0")
	}
	return nil
}

// ValidateNotNil validates that a value is not nil. Typed nils such as a
// nil pointer are rejected as well.
func ValidateNotNil(module, field string, value interface{}) error {
	if err := check.NotNull(value, "cannot be nil"); err != nil {
		return fieldError(module, field, nil, err).
			WithHint("provide a valid " + field)
	}
	return nil
}

// ValidateNotEmpty validates that a string value is not empty.
// Whitespace counts as content; use ValidateHasText to reject it.
func ValidateNotEmpty(module, field string, value string) error {
	if err := check.NotEmptyString(value, "cannot be empty"); err != nil {
		return fieldError(module, field, value, err).
			WithHint("provide a non-empty " + field)
	}
	return nil
}

// ValidateHasText validates that a string contains at least one
// non-whitespace character.
func ValidateHasText(module, field string, value string) error {
	if err := check.HasText(value, "cannot be blank"); err != nil {
		return fieldError(module, field, fmt.Sprintf("%q", value), err).
			WithHint("provide a non-blank " + field)
	}
	return nil
}

// ValidateNotEmptySlice validates that a slice has at least one element.
func ValidateNotEmptySlice[S ~[]E, E any](module, field string, value S) error {
	if err := check.NotEmpty(value, "must contain at least 1 element"); err != nil {
		return fieldError(module, field, len(value), err).
			WithHint("provide at least one " + field + " entry")
	}
	return nil
}

// ValidateInstanceOf validates that value holds a non-nil T.
func ValidateInstanceOf[T any](module, field string, value interface{}) error {
	if err := check.IsInstanceOf[T](value); err != nil {
		return fieldError(module, field, value, err)
	}
	return nil
}

// fieldError wraps a failed check as a ValidationError whose reason is the
// check's message.
func fieldError(module, field string, value interface{}, cause error) *gferrors.ValidationError {
	return gferrors.NewValidationError(module, field, value, cause.Error()).WithCause(cause)
}
