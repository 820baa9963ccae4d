package domain

import "errors"

// Sentinel errors for the countdown domain.
var (
	// ErrInvalidTarget indicates the target cannot be interpreted as a valid point in time.
	ErrInvalidTarget = errors.New("invalid target date")

	// ErrEngineClosed indicates an operation on a countdown that has been torn down.
	ErrEngineClosed = errors.New("countdown engine closed")
)

// Messages exposed in State.Error.
const (
	MsgInvalidTarget = "Invalid target date."
	MsgUnexpected    = "An unexpected error occurred"
)

// ErrorMessage maps an error to the message a host displays.
// A nil error maps to the empty string.
func ErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidTarget):
		return MsgInvalidTarget
	default:
		return MsgUnexpected
	}
}
