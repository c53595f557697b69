/*
Package guard provides a Go library of precondition checks: guard clauses
that validate arguments and invariants at the top of an operation and fail
fast with a typed error.

Checks (pkg/check):
  - IsTrue, State: boolean assertions (argument vs. state violation)
  - NotNull: nil and typed-nil detection
  - HasLength, HasText, NotEmptyString: string checks
  - NotEmpty, NotEmptyCollection, NotEmptyMap: emptiness checks
  - IsInstanceOf, IsInstanceOfType: run-time type checks
  - Recorder: Prometheus counters and slog logging for check results

Supporting packages:
  - common/errors: Violation, ValidationError and error-kind sentinels
  - common/validation: field-scoped validation for constructors and config
  - metrics: Prometheus registry and configuration

Example usage:

	import (
		"github.com/vnykmshr/guard/pkg/check"
	)

	func Transfer(from, to *Account, amount int) error {
		if err := check.First(
			check.NotNull(from, "source account is required"),
			check.NotNull(to, "target account is required"),
			check.IsTrue(amount > 0, "amount must be positive"),
		); err != nil {
			return err
		}
		...
	}
*/
package guard
