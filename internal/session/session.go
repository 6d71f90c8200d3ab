package session

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/sortviz/internal/anim"
	"github.com/san-kum/sortviz/internal/bars"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/player"
	"github.com/san-kum/sortviz/internal/recorder"
)

// ErrBusy is returned when a sort is requested while one is still animating.
var ErrBusy = errors.New("session: animation in progress")

// Session owns the Value Array, the bars it is drawn on, and the single
// player allowed to mutate them. The displayed values change only through
// replayed events.
type Session struct {
	registry  *recorder.Registry
	rng       *rand.Rand
	shape     bars.Shape
	shapeName string
	size      int
	speed     time.Duration
	sink      *bars.Sink
	player    *player.Player
	algorithm string
	stats     recorder.Stats
	logger    *log.Logger
}

func New(cfg *config.Config, rng *rand.Rand, registry *recorder.Registry) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	shape, err := bars.GetShape(cfg.Shape)
	if err != nil {
		return nil, err
	}

	s := &Session{
		registry:  registry,
		rng:       rng,
		shape:     shape,
		shapeName: cfg.Shape,
		size:      cfg.Size,
		speed:     cfg.Speed,
		sink:      bars.NewSink(nil),
		logger:    logging.WithPrefix("session"),
	}
	s.player = player.New(s.sink)
	s.player.OnDone = s.finished
	s.regenerate()
	return s, nil
}

// OnGenerate cancels any animation and draws a fresh array of the current size.
func (s *Session) OnGenerate() {
	s.player.Cancel()
	s.regenerate()
}

// OnResize cancels any animation and draws a fresh array of n bars, clamped
// to the supported range. It returns the size applied.
func (s *Session) OnResize(n int) int {
	s.player.Cancel()
	s.size = bars.ClampSize(n)
	s.regenerate()
	return s.size
}

// OnSetSpeed changes the playback interval. It is ignored unless idle.
func (s *Session) OnSetSpeed(d time.Duration) bool {
	if s.Busy() {
		return false
	}
	s.speed = config.ClampSpeed(d)
	s.logger.Debug("speed changed", "speed", s.speed)
	return true
}

// OnSort records the named algorithm over a clone of the current values and
// starts playing it.
func (s *Session) OnSort(name string) error {
	if s.Busy() {
		return ErrBusy
	}
	a, err := s.registry.Get(name)
	if err != nil {
		return err
	}

	values := s.sink.Heights()
	events := a.Sort(values)
	if err := anim.Validate(events, s.sink.Len()); err != nil {
		return fmt.Errorf("%s produced an invalid log: %w", name, err)
	}

	s.algorithm = name
	s.stats = recorder.Measure(events)
	s.sink.Paint(anim.Unsorted)
	s.logger.Info("sort started", "algorithm", name, "bars", s.sink.Len(), "events", len(events), "speed", s.speed)
	s.player.Play(events, s.speed)
	return nil
}

// SetShape switches the generator used for new arrays and regenerates.
func (s *Session) SetShape(name string) error {
	shape, err := bars.GetShape(name)
	if err != nil {
		return err
	}
	s.player.Cancel()
	s.shape = shape
	s.shapeName = name
	s.regenerate()
	return nil
}

func (s *Session) Advance(d time.Duration) { s.player.Advance(d) }

func (s *Session) AddObserver(o player.Observer) { s.player.AddObserver(o) }

func (s *Session) State() player.State          { return s.player.State() }
func (s *Session) Busy() bool                   { return s.player.State() != player.Idle }
func (s *Session) Progress() float64            { return s.player.Progress() }
func (s *Session) Speed() time.Duration         { return s.speed }
func (s *Session) Size() int                    { return s.size }
func (s *Session) Shape() string                { return s.shapeName }
func (s *Session) Algorithm() string            { return s.algorithm }
func (s *Session) Stats() recorder.Stats        { return s.stats }
func (s *Session) Bars() *bars.Sink             { return s.sink }
func (s *Session) Registry() *recorder.Registry { return s.registry }

// Values returns a copy of the displayed heights.
func (s *Session) Values() []int { return s.sink.Heights() }

func (s *Session) regenerate() {
	s.sink.Reset(s.shape(s.rng, s.size))
	s.algorithm = ""
	s.stats = recorder.Stats{}
	s.logger.Debug("bars regenerated", "size", s.size, "shape", s.shapeName)
}

func (s *Session) finished() {
	s.logger.Info("sort finished", "algorithm", s.algorithm, "sorted", anim.IsSorted(s.sink.Heights()))
}
