package check

import (
	"reflect"

	gferrors "github.com/vnykmshr/guard/pkg/common/errors"
)

// IsInstanceOf returns an argument violation unless v holds a non-nil
// value of type T. When T is an interface type, any type implementing it
// passes.
//
// The optional prefix is prepended to the generated message and should
// normally end in ": " or ". ":
//
//	check.IsInstanceOf[string](5, "name: ")
//	// name: Object of class 'int' must be an instance of 'string'
func IsInstanceOf[T any](v any, prefix ...string) error {
	return IsInstanceOfType(reflect.TypeOf((*T)(nil)).Elem(), v, prefix...)
}

// IsInstanceOfType is IsInstanceOf for a type known only at run time.
// A nil t is itself an argument violation.
func IsInstanceOfType(t reflect.Type, v any, prefix ...string) error {
	if t == nil {
		return gferrors.NewArgumentViolation("IsInstanceOf", MsgNilType)
	}
	if instanceOf(t, v) {
		return nil
	}

	actual := "[null]"
	if !isNil(v) {
		actual = reflect.TypeOf(v).String()
	}
	return gferrors.NewArgumentViolation("IsInstanceOf", message("", prefix)+
		"Object of class '"+actual+"' must be an instance of '"+t.String()+"'")
}

func instanceOf(t reflect.Type, v any) bool {
	if isNil(v) {
		return false
	}
	vt := reflect.TypeOf(v)
	if t.Kind() == reflect.Interface {
		return vt.Implements(t)
	}
	return vt == t
}
