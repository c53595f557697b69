/*
Package check provides precondition checks for function arguments and
internal invariants.

Each check returns nil when its condition holds and a *errors.Violation
otherwise. A violation carries the message as its whole error text, so
callers can return it unchanged:

	func NewUser(name string, roles []string) (*User, error) {
		if err := check.HasText(name, "user name is required"); err != nil {
			return nil, err
		}
		if err := check.NotEmpty(roles); err != nil {
			return nil, err
		}
		return &User{Name: name, Roles: roles}, nil
	}

Every check except NotEmptyString accepts an optional message. When it is
omitted a fixed default message for the check is used.

# Error Kinds

State reports a broken invariant and unwraps to errors.ErrInvalidState.
Every other check reports a bad argument and unwraps to
errors.ErrInvalidArgument:

	err := check.State(conn != nil, "connection not established")
	if gferrors.IsStateViolation(err) {
		// internal bug, not bad input
	}

# Several Checks

First reports the first failure among several checks:

	if err := check.First(
		check.NotNull(cfg),
		check.HasText(cfg.Addr),
		check.NotEmptyMap(cfg.Routes),
	); err != nil {
		return err
	}

All arguments are evaluated before First runs, so checks that depend on an
earlier one (a nil pointer dereference, for example) must be split.

# Instrumentation

A Recorder counts checks and violations in Prometheus and logs violations
through log/slog:

	rec := check.NewRecorder("api_handlers")
	if err := rec.Record(check.HasText(req.Name)); err != nil {
		return err
	}

# Concurrency

All check functions are stateless and safe for concurrent use. A Recorder
is safe for concurrent use.
*/
package check
