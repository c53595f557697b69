package testutil

import (
	"errors"
	"testing"

	gferrors "github.com/vnykmshr/guard/pkg/common/errors"
)

func TestAssertNoError(t *testing.T) {
	AssertNoError(t, nil)
}

func TestAssertError(t *testing.T) {
	AssertError(t, errors.New("boom"))
}

func TestAssertEqual(t *testing.T) {
	AssertEqual(t, 42, 42)
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, true, true)
}

func TestAssertArgumentViolation(t *testing.T) {
	AssertArgumentViolation(t, gferrors.NewArgumentViolation("IsTrue", "must hold"), "must hold")
}

func TestAssertStateViolation(t *testing.T) {
	AssertStateViolation(t, gferrors.NewStateViolation("State", "broken"), "broken")
}
