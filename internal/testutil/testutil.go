package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	gferrors "github.com/vnykmshr/guard/pkg/common/errors"
)

// AssertNoError fails the test if err is not nil
func AssertNoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil
func AssertError(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertEqual fails the test if got != want
func AssertEqual[T comparable](t testing.TB, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// AssertArgumentViolation fails the test unless err is an argument
// violation whose message is exactly msg.
func AssertArgumentViolation(t testing.TB, err error, msg string) {
	t.Helper()
	assertViolation(t, err, gferrors.KindArgument, msg)
}

// AssertStateViolation fails the test unless err is a state violation
// whose message is exactly msg.
func AssertStateViolation(t testing.TB, err error, msg string) {
	t.Helper()
	assertViolation(t, err, gferrors.KindState, msg)
}

func assertViolation(t testing.TB, err error, kind gferrors.Kind, msg string) {
	t.Helper()
	require.Error(t, err)

	v, ok := gferrors.AsViolation(err)
	require.Truef(t, ok, "expected *errors.Violation, got %T", err)
	require.Equal(t, kind, v.Kind, "violation kind")
	require.Equal(t, msg, v.Message, "violation message")
	require.Equal(t, msg, err.Error(), "error text must be the message verbatim")

	if kind == gferrors.KindState {
		require.ErrorIs(t, err, gferrors.ErrInvalidState)
		require.NotErrorIs(t, err, gferrors.ErrInvalidArgument)
	} else {
		require.ErrorIs(t, err, gferrors.ErrInvalidArgument)
		require.NotErrorIs(t, err, gferrors.ErrInvalidState)
	}
}
