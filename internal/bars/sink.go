package bars

import "github.com/san-kum/sortviz/internal/anim"

// Bar is the presentation state of one position.
type Bar struct {
	Height int
	Color  anim.Color
}

// Sink is an index-addressable set of bars mutated by playback.
type Sink struct {
	bars []Bar
}

func NewSink(values []int) *Sink {
	s := &Sink{}
	s.Reset(values)
	return s
}

// Reset replaces every bar with values, all painted unsorted.
func (s *Sink) Reset(values []int) {
	s.bars = make([]Bar, len(values))
	for i, v := range values {
		s.bars[i] = Bar{Height: v, Color: anim.Unsorted}
	}
}

func (s *Sink) Len() int { return len(s.bars) }

func (s *Sink) SetHeight(i, v int)           { s.bars[i].Height = v }
func (s *Sink) SetColor(i int, c anim.Color) { s.bars[i].Color = c }

func (s *Sink) Height(i int) int       { return s.bars[i].Height }
func (s *Sink) Color(i int) anim.Color { return s.bars[i].Color }
func (s *Sink) Bar(i int) Bar          { return s.bars[i] }

func (s *Sink) Heights() []int {
	out := make([]int, len(s.bars))
	for i, b := range s.bars {
		out[i] = b.Height
	}
	return out
}

func (s *Sink) Paint(c anim.Color) {
	for i := range s.bars {
		s.bars[i].Color = c
	}
}

// Count returns how many bars currently carry color c.
func (s *Sink) Count(c anim.Color) int {
	n := 0
	for _, b := range s.bars {
		if b.Color == c {
			n++
		}
	}
	return n
}
