package viz

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/anim"
	"github.com/san-kum/sortviz/internal/bars"
	"github.com/san-kum/sortviz/internal/player"
	"github.com/san-kum/sortviz/internal/session"
)

const (
	frameInterval = time.Second / 120
	// Longest stretch of playback time a single frame may cover.
	maxFrameStep = 250 * time.Millisecond

	sizeStep  = 10
	speedStep = 5 * time.Millisecond

	defaultWidth  = 100
	defaultHeight = 30
	chromeHeight  = 9
)

type tickMsg time.Time

type sortMsg string

// eventFeed remembers the most recent event for the status line.
type eventFeed struct {
	pos   int
	event anim.Event
	seen  bool
}

func (f *eventFeed) OnEvent(pos int, e anim.Event) {
	f.pos, f.event, f.seen = pos, e, true
}

func (f *eventFeed) String() string {
	if !f.seen {
		return ""
	}
	e := f.event
	if e.Kind == anim.Highlight {
		return fmt.Sprintf("#%d compare %v", f.pos, e.Bars)
	}
	return fmt.Sprintf("#%d write %v <- %v", f.pos, e.Indices, e.Values)
}

// Model drives a session from the bubbletea frame loop.
type Model struct {
	session   *session.Session
	feed      *eventFeed
	help      help.Model
	progress  progress.Model
	width     int
	height    int
	last      time.Time
	autoStart string
	message   string
	failed    bool
}

func NewModel(s *session.Session, autoStart string) Model {
	feed := &eventFeed{}
	s.AddObserver(feed)
	return Model{
		session:   s,
		feed:      feed,
		help:      help.New(),
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		width:     defaultWidth,
		height:    defaultHeight,
		autoStart: autoStart,
	}
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	if m.autoStart == "" {
		return tick()
	}
	name := m.autoStart
	return tea.Batch(tick(), func() tea.Msg { return sortMsg(name) })
}

// Update handles input and advances playback by the wall time between frames.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.progress.Width = max(msg.Width-4, 10)
	case tickMsg:
		now := time.Time(msg)
		if !m.last.IsZero() {
			m.session.Advance(min(now.Sub(m.last), maxFrameStep))
		}
		m.last = now
		return m, tick()
	case sortMsg:
		m.startSort(string(msg))
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, keys.Sort):
		menu := s.Registry().Menu()
		idx := int(msg.Runes[0] - '1')
		if idx >= 0 && idx < len(menu) {
			m.startSort(menu[idx].Name)
		}
	case key.Matches(msg, keys.Generate):
		s.OnGenerate()
		m.setMessage("new array")
	case key.Matches(msg, keys.Grow):
		m.setMessage(fmt.Sprintf("%d bars", s.OnResize(s.Size()+sizeStep)))
	case key.Matches(msg, keys.Shrink):
		m.setMessage(fmt.Sprintf("%d bars", s.OnResize(s.Size()-sizeStep)))
	case key.Matches(msg, keys.Faster):
		m.setSpeed(s.Speed() - speedStep)
	case key.Matches(msg, keys.Slower):
		m.setSpeed(s.Speed() + speedStep)
	case key.Matches(msg, keys.Shape):
		names := bars.ListShapes()
		next := names[0]
		for i, name := range names {
			if name == s.Shape() {
				next = names[(i+1)%len(names)]
			}
		}
		if err := s.SetShape(next); err != nil {
			m.setError(err)
		} else {
			m.setMessage("shape " + next)
		}
	case key.Matches(msg, keys.Theme):
		NextTheme()
		m.setMessage("theme " + CurrentTheme.Name)
	}
	return m, nil
}

func (m *Model) startSort(name string) {
	err := m.session.OnSort(name)
	switch {
	case errors.Is(err, session.ErrBusy):
		m.setMessage("wait for the current sort to finish")
	case err != nil:
		m.setError(err)
	default:
		m.setMessage("")
	}
}

func (m *Model) setSpeed(d time.Duration) {
	if !m.session.OnSetSpeed(d) {
		m.setMessage("speed is locked while sorting")
		return
	}
	m.setMessage(fmt.Sprintf("speed %v", m.session.Speed()))
}

func (m *Model) setMessage(s string) { m.message, m.failed = s, false }
func (m *Model) setError(err error)  { m.message, m.failed = err.Error(), true }

// View renders the header, chart, status and help.
func (m Model) View() string {
	s := m.session
	theme := CurrentTheme

	var b strings.Builder
	b.WriteString(GradientText("SORTVIZ", theme.Accent, theme.Selected))
	b.WriteString("  " + m.statusLine() + "\n")
	b.WriteString(m.menuLine() + "\n")

	chartW := max(m.width-4, 10)
	chartH := max(m.height-chromeHeight, 4)
	canvas := NewCanvas(chartW, chartH)
	b.WriteString(ChartPanel.BorderForeground(theme.Muted).Render(strings.TrimSuffix(canvas.Render(s.Bars(), theme), "\n")))
	b.WriteString("\n")

	stats := s.Stats()
	info := []string{
		Metric("bars", fmt.Sprint(s.Size())),
		Metric("speed", s.Speed().String()),
		Metric("shape", s.Shape()),
		Metric("swaps", fmt.Sprint(stats.Swaps)),
		Metric("events", fmt.Sprint(stats.Events)),
	}
	b.WriteString(strings.Join(info, "  ") + "\n")
	b.WriteString(m.progress.ViewAs(s.Progress()) + "\n")

	switch {
	case m.failed:
		b.WriteString(ErrorText.Render(m.message))
	case m.message != "":
		b.WriteString(Subtle.Render(m.message))
	default:
		b.WriteString(Subtle.Render(m.feed.String()))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))
	return b.String()
}

func (m Model) statusLine() string {
	s := m.session
	switch s.State() {
	case player.Playing:
		return StatusPlaying.Render("SORTING " + s.Algorithm())
	case player.Sweeping:
		return StatusSweeping.Render("SORTED " + s.Algorithm())
	default:
		return StatusIdle.Render("IDLE")
	}
}

func (m Model) menuLine() string {
	s := m.session
	items := make([]string, 0, 8)
	for i, a := range s.Registry().Menu() {
		label := fmt.Sprintf("%d %s", i+1, a.Title)
		switch {
		case s.Busy() && a.Name == s.Algorithm():
			label = ActiveAlgorithm.Render(label)
		case s.Busy():
			label = Subtle.Faint(true).Render(label)
		default:
			label = lipgloss.NewStyle().Foreground(CurrentTheme.Text).Render(label)
		}
		items = append(items, label)
	}
	return strings.Join(items, "  ")
}

// Run starts the full-screen program.
func Run(s *session.Session, autoStart string) error {
	p := tea.NewProgram(NewModel(s, autoStart), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
