package anim

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange indicates an event addressing a bar outside the array.
	ErrIndexOutOfRange = errors.New("anim: index out of range")

	// ErrMalformedEvent indicates a swap whose indices and values disagree.
	ErrMalformedEvent = errors.New("anim: malformed event")
)

// EventError wraps a validation failure with the offending position in the log.
type EventError struct {
	Pos     int
	Event   Event
	Wrapped error
}

func (e *EventError) Error() string {
	return fmt.Sprintf("event %d (%s): %v", e.Pos, e.Event.Kind, e.Wrapped)
}

func (e *EventError) Unwrap() error {
	return e.Wrapped
}
