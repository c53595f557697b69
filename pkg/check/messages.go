package check

// Default messages used when a check is called without a message.
const (
	MsgIsTrue             = "this expression must be true"
	MsgNotNull            = "this argument is required; it cannot be null"
	MsgHasLength          = "this string argument must have length; it cannot be null or empty"
	MsgHasText            = "this string argument must have text; it cannot be null, empty, or blank"
	MsgNotEmptySlice      = "this array must not be empty: it must contain at least 1 element"
	MsgNotEmptyCollection = "this collection must not be empty: it must contain at least 1 element"
	MsgNotEmptyMap        = "this map must not be empty; it must contain at least one entry"
	MsgState              = "this state invariant must be true"

	// MsgNilType is used when IsInstanceOfType is given a nil type.
	MsgNilType = "The type to perform the instance-of check cannot be nil"
)

// message returns the caller's message if one was given, otherwise def.
// Only the first message is used; an explicit empty message is kept.
func message(def string, msg []string) string {
	if len(msg) > 0 {
		return msg[0]
	}
	return def
}
