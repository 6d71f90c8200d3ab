package player

import (
	"time"

	"github.com/san-kum/sortviz/internal/anim"
	"github.com/san-kum/sortviz/internal/logging"
)

const (
	// DefaultSweepInterval is the cadence of the final sorted sweep.
	DefaultSweepInterval = 5 * time.Millisecond

	resetPercent = 95
)

type State int

const (
	Idle State = iota
	Playing
	Sweeping
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Sweeping:
		return "sweeping"
	default:
		return "idle"
	}
}

// Sink is the visual target: bars addressable by index.
type Sink interface {
	Len() int
	SetHeight(i, v int)
	SetColor(i int, c anim.Color)
}

type Observer interface {
	OnEvent(pos int, e anim.Event)
}

// Player replays an event log against a sink. Time only moves through
// Advance, so a frame loop and a test drive it the same way.
type Player struct {
	sink          Sink
	SweepInterval time.Duration
	OnDone        func()

	observers []Observer
	timeline  timeline
	state     State
	log       anim.Log
	interval  time.Duration
	next      int
	swept     int
}

func New(sink Sink) *Player {
	return &Player{
		sink:          sink,
		SweepInterval: DefaultSweepInterval,
		observers:     make([]Observer, 0),
	}
}

func (p *Player) AddObserver(o Observer) { p.observers = append(p.observers, o) }

func (p *Player) State() State            { return p.state }
func (p *Player) Now() time.Duration      { return p.timeline.now }
func (p *Player) Pending() int            { return p.timeline.len() }
func (p *Player) Interval() time.Duration { return p.interval }

// Applied reports how many events of the current log have been applied.
func (p *Player) Applied() int { return p.next }

func (p *Player) Progress() float64 {
	if len(p.log) == 0 {
		if p.state == Idle {
			return 0
		}
		return 1
	}
	return float64(p.next) / float64(len(p.log))
}

// Play starts replaying log, one event per interval. The first event is
// applied before Play returns. Any playback already in progress is cancelled.
func (p *Player) Play(log anim.Log, interval time.Duration) {
	if p.state != Idle {
		p.Cancel()
	}
	p.log = log
	p.interval = interval
	p.next = 0
	p.swept = 0
	p.state = Playing
	logging.Debug("playback started", "events", len(log), "interval", interval)

	if len(log) == 0 {
		p.timeline.after(interval, p.startSweep)
		return
	}
	p.step()
}

// Cancel drops every pending action and returns to Idle. Nothing scheduled
// before the call fires afterwards.
func (p *Player) Cancel() {
	if p.state == Idle && p.timeline.len() == 0 {
		return
	}
	logging.Debug("playback cancelled", "state", p.state, "applied", p.next, "events", len(p.log))
	p.timeline.clear()
	p.state = Idle
	p.log = nil
	p.next = 0
}

// Advance moves the timeline forward by d, firing every action that falls
// due, in order.
func (p *Player) Advance(d time.Duration) {
	p.timeline.advance(d)
}

func (p *Player) step() {
	pos := p.next
	e := p.log[pos]
	p.apply(e)
	p.next++
	for _, o := range p.observers {
		o.OnEvent(pos, e)
	}

	if p.next == len(p.log) {
		p.timeline.after(p.interval, p.startSweep)
		return
	}
	p.timeline.after(p.interval, p.step)
}

func (p *Player) apply(e anim.Event) {
	switch e.Kind {
	case anim.Highlight:
		p.paint(e.Bars, e.Color)
	case anim.Swap:
		for k, i := range e.Indices {
			p.sink.SetHeight(i, e.Values[k])
		}
		bars, color := e.Bars, e.Color
		p.timeline.after(p.interval*resetPercent/100, func() { p.paint(bars, color) })
	}
}

func (p *Player) paint(bars []int, c anim.Color) {
	for _, i := range bars {
		p.sink.SetColor(i, c)
	}
}

func (p *Player) startSweep() {
	p.state = Sweeping
	logging.Debug("sorted sweep started", "bars", p.sink.Len())
	p.sweepStep()
}

func (p *Player) sweepStep() {
	if p.swept >= p.sink.Len() {
		p.finish()
		return
	}
	p.sink.SetColor(p.swept, anim.Sorted)
	p.swept++
	if p.swept == p.sink.Len() {
		p.finish()
		return
	}
	p.timeline.after(p.SweepInterval, p.sweepStep)
}

func (p *Player) finish() {
	p.state = Idle
	p.log = nil
	logging.Debug("playback finished", "at", p.timeline.now)
	if p.OnDone != nil {
		p.OnDone()
	}
}
