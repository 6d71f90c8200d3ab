package anim

import "fmt"

// Validate checks that every event addresses bars inside an array of length n.
func Validate(log Log, n int) error {
	for pos, e := range log {
		if err := e.check(n); err != nil {
			return &EventError{Pos: pos, Event: e, Wrapped: err}
		}
	}
	return nil
}

func (e Event) check(n int) error {
	for _, i := range e.Bars {
		if i < 0 || i >= n {
			return fmt.Errorf("%w: bar %d, length %d", ErrIndexOutOfRange, i, n)
		}
	}
	if e.Kind != Swap {
		return nil
	}
	if len(e.Indices) == 0 || len(e.Indices) != len(e.Values) {
		return fmt.Errorf("%w: %d indices, %d values", ErrMalformedEvent, len(e.Indices), len(e.Values))
	}
	for _, i := range e.Indices {
		if i < 0 || i >= n {
			return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, n)
		}
	}
	return nil
}

// Apply writes the values carried by a swap event into dst. Highlights are no-ops.
func (e Event) Apply(dst []int) {
	if e.Kind != Swap {
		return
	}
	for k, i := range e.Indices {
		dst[i] = e.Values[k]
	}
}

// Replay applies the log to a copy of values and returns the result.
func Replay(values []int, log Log) ([]int, error) {
	if err := Validate(log, len(values)); err != nil {
		return nil, err
	}
	out := make([]int, len(values))
	copy(out, values)
	for _, e := range log {
		e.Apply(out)
	}
	return out, nil
}

func IsSorted(values []int) bool {
	for i := 1; i < len(values); i++ {
		if values[i-1] > values[i] {
			return false
		}
	}
	return true
}
