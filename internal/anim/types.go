package anim

import "fmt"

type Color int

const (
	Unsorted Color = iota
	Selected
	Sorted
)

func (c Color) String() string {
	switch c {
	case Unsorted:
		return "unsorted"
	case Selected:
		return "selected"
	case Sorted:
		return "sorted"
	default:
		return fmt.Sprintf("color(%d)", int(c))
	}
}

// Hex returns the display color used by the original palette.
func (c Color) Hex() string {
	switch c {
	case Selected:
		return "#ff7043"
	case Sorted:
		return "#54ff51"
	default:
		return "#37aff7"
	}
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	switch string(b) {
	case "unsorted":
		*c = Unsorted
	case "selected":
		*c = Selected
	case "sorted":
		*c = Sorted
	default:
		return fmt.Errorf("%w: unknown color %q", ErrMalformedEvent, string(b))
	}
	return nil
}

type Kind int

const (
	Highlight Kind = iota
	Swap
)

func (k Kind) String() string {
	if k == Swap {
		return "swap"
	}
	return "highlight"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "highlight":
		*k = Highlight
	case "swap":
		*k = Swap
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrMalformedEvent, string(b))
	}
	return nil
}

// Event is one recorded visual change.
//
// A Highlight paints Bars with Color. A Swap writes Values[k] at Indices[k]
// right away and paints Bars with Color once the reset delay has passed.
type Event struct {
	Kind    Kind  `json:"kind"`
	Color   Color `json:"color"`
	Bars    []int `json:"bars"`
	Indices []int `json:"indices,omitempty"`
	Values  []int `json:"values,omitempty"`
}

func NewHighlight(color Color, bars ...int) Event {
	return Event{Kind: Highlight, Color: color, Bars: bars}
}

// NewExchange records positions a and b trading places. va and vb are the
// values held at a and b before the exchange.
func NewExchange(a, b, va, vb int) Event {
	return Event{
		Kind:    Swap,
		Color:   Unsorted,
		Bars:    []int{a, b},
		Indices: []int{a, b},
		Values:  []int{vb, va},
	}
}

// NewWrite records value v landing at dst, highlighted together with src.
func NewWrite(dst, src, v int) Event {
	return Event{
		Kind:    Swap,
		Color:   Unsorted,
		Bars:    []int{dst, src},
		Indices: []int{dst},
		Values:  []int{v},
	}
}

type Log []Event

// Swaps counts events that mutate values.
func (l Log) Swaps() int {
	n := 0
	for _, e := range l {
		if e.Kind == Swap {
			n++
		}
	}
	return n
}

func (l Log) Highlights() int {
	return len(l) - l.Swaps()
}

// Writes counts individual value assignments across all swaps.
func (l Log) Writes() int {
	n := 0
	for _, e := range l {
		if e.Kind == Swap {
			n += len(e.Indices)
		}
	}
	return n
}
