package check

import (
	"strings"

	gferrors "github.com/vnykmshr/guard/pkg/common/errors"
)

// HasLength returns an argument violation if s is empty.
func HasLength(s string, msg ...string) error {
	if len(s) < 1 {
		return gferrors.NewArgumentViolation("HasLength", message(MsgHasLength, msg))
	}
	return nil
}

// HasText returns an argument violation if s is empty or contains only
// whitespace.
//
//	check.HasText("  ")  // violation
//	check.HasText(" a ") // nil
func HasText(s string, msg ...string) error {
	if strings.TrimSpace(s) == "" {
		return gferrors.NewArgumentViolation("HasText", message(MsgHasText, msg))
	}
	return nil
}

// NotEmptyString returns an argument violation carrying msg if s is empty.
// Unlike HasText, a string of only whitespace passes.
func NotEmptyString(s, msg string) error {
	if s == "" {
		return gferrors.NewArgumentViolation("NotEmptyString", msg)
	}
	return nil
}
