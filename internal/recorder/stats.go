package recorder

import "github.com/san-kum/sortviz/internal/anim"

type Stats struct {
	Events     int `json:"events"`
	Highlights int `json:"highlights"`
	Swaps      int `json:"swaps"`
	Writes     int `json:"writes"`
}

func Measure(log anim.Log) Stats {
	return Stats{
		Events:     len(log),
		Highlights: log.Highlights(),
		Swaps:      log.Swaps(),
		Writes:     log.Writes(),
	}
}

// Sample records name over a private copy of values.
func (r *Registry) Sample(name string, values []int) (anim.Log, Stats) {
	scratch := make([]int, len(values))
	copy(scratch, values)
	log := r.Record(name, scratch)
	return log, Measure(log)
}
