package errors

import (
	"errors"
	"fmt"
)

// Error kinds signaled by failed precondition checks

var (
	// ErrInvalidArgument indicates that a caller supplied an invalid value
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState indicates that an invariant expected by the running
	// operation does not hold
	ErrInvalidState = errors.New("invalid state")
)

// Kind distinguishes argument violations from state violations.
type Kind int

const (
	// KindArgument marks a violation caused by a bad input value.
	KindArgument Kind = iota
	// KindState marks a violation of an internal invariant.
	KindState
)

// String returns the label used for logging and metrics.
func (k Kind) String() string {
	switch k {
	case KindArgument:
		return "argument"
	case KindState:
		return "state"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// sentinel returns the error that a violation of this kind unwraps to.
func (k Kind) sentinel() error {
	if k == KindState {
		return ErrInvalidState
	}
	return ErrInvalidArgument
}

// Violation is returned by a failed precondition check.
// Error returns Message exactly as resolved by the check.
type Violation struct {
	Kind    Kind
	Check   string // name of the failed check, e.g. "HasText"
	Message string
}

// Error implements the error interface.
func (v *Violation) Error() string {
	return v.Message
}

// Unwrap returns ErrInvalidArgument or ErrInvalidState depending on Kind.
func (v *Violation) Unwrap() error {
	return v.Kind.sentinel()
}

// NewArgumentViolation creates a violation of kind KindArgument.
func NewArgumentViolation(check, message string) *Violation {
	return &Violation{Kind: KindArgument, Check: check, Message: message}
}

// NewStateViolation creates a violation of kind KindState.
func NewStateViolation(check, message string) *Violation {
	return &Violation{Kind: KindState, Check: check, Message: message}
}

// ValidationError represents a field-level validation failure.
type ValidationError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string
	Cause  error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap returns the underlying violation. Without a cause the error is
// treated as an argument violation.
func (e *ValidationError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return ErrInvalidArgument
}

// NewValidationError creates a new validation error.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint sets a hint for resolving the error. Returns the same instance.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

// WithCause records the violation that triggered the error. Returns the same instance.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.Cause = cause
	return e
}

// IsViolation returns true if err is or wraps a *Violation.
func IsViolation(err error) bool {
	var v *Violation
	return errors.As(err, &v)
}

// IsArgumentViolation returns true if err signals a bad argument.
func IsArgumentViolation(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsStateViolation returns true if err signals a broken invariant.
func IsStateViolation(err error) bool {
	return errors.Is(err, ErrInvalidState)
}

// IsValidationError returns true if err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// AsViolation extracts the *Violation from err's chain.
func AsViolation(err error) (*Violation, bool) {
	var v *Violation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
