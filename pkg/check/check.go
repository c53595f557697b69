package check

import (
	"reflect"

	gferrors "github.com/vnykmshr/guard/pkg/common/errors"
)

// IsTrue returns an argument violation if expr is false.
//
//	check.IsTrue(i > 0, "the value must be greater than zero")
func IsTrue(expr bool, msg ...string) error {
	if !expr {
		return gferrors.NewArgumentViolation("IsTrue", message(MsgIsTrue, msg))
	}
	return nil
}

// State returns a state violation if expr is false. Use IsTrue to report
// a bad argument instead.
//
//	check.State(s.id == "", "the id must not already be initialized")
func State(expr bool, msg ...string) error {
	if !expr {
		return gferrors.NewStateViolation("State", message(MsgState, msg))
	}
	return nil
}

// NotNull returns an argument violation if v is nil. A typed nil (a nil
// pointer, map, slice, channel, function or interface stored in v) counts
// as nil.
func NotNull(v any, msg ...string) error {
	if isNil(v) {
		return gferrors.NewArgumentViolation("NotNull", message(MsgNotNull, msg))
	}
	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// First returns the first non-nil error in errs, or nil.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Must panics with err if it is non-nil. It is meant for package
// initialization and other paths that cannot return an error.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
