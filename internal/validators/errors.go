package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnknownRule     = errors.New("unknown validation rule")
	ErrUnsupportedType = errors.New("unsupported type for decoding")
)

// Error is returned by services when input fails validation. Data carries
// the best-effort cleaned input for the response.
type Error struct {
	Messages []string
	Data     any
}

func (e *Error) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// NewError builds an *Error from messages and data.
func NewError(messages []string, data any) *Error {
	return &Error{Messages: messages, Data: data}
}
