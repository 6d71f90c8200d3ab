package recorder

import "github.com/san-kum/sortviz/internal/anim"

// tape accumulates the event log for a single run.
type tape struct {
	log anim.Log
}

// exchange swaps v[a] and v[b] and records the highlight/swap pair.
// Exchanging equal values changes nothing on screen and is not recorded.
func (t *tape) exchange(v []int, a, b int) {
	if a == b {
		return
	}
	if v[a] != v[b] {
		t.log = append(t.log,
			anim.NewHighlight(anim.Selected, a, b),
			anim.NewExchange(a, b, v[a], v[b]),
		)
	}
	v[a], v[b] = v[b], v[a]
}

// write records val landing at dst, taken from src in a scratch buffer.
func (t *tape) write(dst, src, val int) {
	t.log = append(t.log,
		anim.NewHighlight(anim.Selected, dst, src),
		anim.NewWrite(dst, src, val),
	)
}

func (t *tape) result() anim.Log {
	if t.log == nil {
		return anim.Log{}
	}
	return t.log
}
