package check

import (
	gferrors "github.com/vnykmshr/guard/pkg/common/errors"
)

// Collection is any container that reports its size.
type Collection interface {
	Len() int
}

// NotEmpty returns an argument violation if s is nil or has no elements.
func NotEmpty[S ~[]E, E any](s S, msg ...string) error {
	if len(s) == 0 {
		return gferrors.NewArgumentViolation("NotEmpty", message(MsgNotEmptySlice, msg))
	}
	return nil
}

// NotEmptyCollection returns an argument violation if c is nil or its
// Len is zero. A typed nil c is rejected without calling Len.
func NotEmptyCollection(c Collection, msg ...string) error {
	if isNil(c) || c.Len() == 0 {
		return gferrors.NewArgumentViolation("NotEmptyCollection", message(MsgNotEmptyCollection, msg))
	}
	return nil
}

// NotEmptyMap returns an argument violation if m is nil or has no entries.
func NotEmptyMap[M ~map[K]V, K comparable, V any](m M, msg ...string) error {
	if len(m) == 0 {
		return gferrors.NewArgumentViolation("NotEmptyMap", message(MsgNotEmptyMap, msg))
	}
	return nil
}
