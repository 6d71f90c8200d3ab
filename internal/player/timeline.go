package player

import "time"

type action struct {
	at   time.Duration
	seq  uint64
	fire func()
}

// timeline is a virtual clock with a queue of pending actions ordered by due
// time, then by scheduling order.
type timeline struct {
	now   time.Duration
	seq   uint64
	queue []action
}

func (t *timeline) after(d time.Duration, fire func()) {
	t.seq++
	a := action{at: t.now + d, seq: t.seq, fire: fire}

	i := len(t.queue)
	for i > 0 && t.queue[i-1].at > a.at {
		i--
	}
	t.queue = append(t.queue, action{})
	copy(t.queue[i+1:], t.queue[i:])
	t.queue[i] = a
}

func (t *timeline) advance(d time.Duration) {
	target := t.now + d
	for len(t.queue) > 0 && t.queue[0].at <= target {
		a := t.queue[0]
		t.queue = t.queue[1:]
		t.now = a.at
		a.fire()
	}
	t.now = target
}

func (t *timeline) clear() {
	t.queue = nil
}

func (t *timeline) len() int { return len(t.queue) }
