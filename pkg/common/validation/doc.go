// Package validation provides field-level validation for configuration
// parameters and constructor arguments.
//
// Each function runs a precondition check from package check and, on
// failure, reports it as a *errors.ValidationError naming the module and
// field. The check's violation stays reachable through errors.Is and
// errors.As, so callers can still tell a bad argument from other errors.
package validation
