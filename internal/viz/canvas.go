package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/anim"
	"github.com/san-kum/sortviz/internal/bars"
)

// Eighth blocks, indexed by fill level 0..8
var blocks = [9]rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

type column struct {
	level int // fill in eighths of a row
	color anim.Color
}

// Canvas lays bars out as terminal columns. Wide arrays share columns;
// narrow ones get several columns per bar.
type Canvas struct {
	Width, Height int
}

func NewCanvas(w, h int) Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return Canvas{Width: w, Height: h}
}

func (c Canvas) columns(sink *bars.Sink) []column {
	n := sink.Len()
	if n == 0 {
		return nil
	}

	maxLevel := c.Height * 8
	scale := func(v int) int {
		l := v * maxLevel / bars.MaxHeight
		if l < 1 {
			l = 1
		}
		if l > maxLevel {
			l = maxLevel
		}
		return l
	}

	if n <= c.Width {
		per := c.Width / n
		gap := 0
		if per >= 3 {
			gap = 1
		}
		cols := make([]column, 0, n*per)
		for i := 0; i < n; i++ {
			b := sink.Bar(i)
			for k := 0; k < per; k++ {
				if k >= per-gap {
					cols = append(cols, column{})
					continue
				}
				cols = append(cols, column{level: scale(b.Height), color: b.Color})
			}
		}
		return cols
	}

	cols := make([]column, c.Width)
	for x := range cols {
		lo, hi := x*n/c.Width, (x+1)*n/c.Width
		col := column{color: anim.Sorted}
		for i := lo; i < hi; i++ {
			b := sink.Bar(i)
			if l := scale(b.Height); l > col.level {
				col.level = l
			}
			col.color = dominant(col.color, b.Color)
		}
		cols[x] = col
	}
	return cols
}

// dominant picks the color a shared column shows: a selection wins, and a
// column is only sorted when all of its bars are.
func dominant(a, b anim.Color) anim.Color {
	if a == anim.Selected || b == anim.Selected {
		return anim.Selected
	}
	if a == anim.Unsorted || b == anim.Unsorted {
		return anim.Unsorted
	}
	return anim.Sorted
}

func cell(col column, row, height int) rune {
	fill := col.level - (height-1-row)*8
	if fill <= 0 {
		return blocks[0]
	}
	if fill >= 8 {
		return blocks[8]
	}
	return blocks[fill]
}

// Plain renders the chart without colors.
func (c Canvas) Plain(sink *bars.Sink) string {
	cols := c.columns(sink)
	var b strings.Builder
	for row := 0; row < c.Height; row++ {
		for _, col := range cols {
			b.WriteRune(cell(col, row, c.Height))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Render draws the chart with the theme's bar colors, batching runs of equal
// color into a single styled span.
func (c Canvas) Render(sink *bars.Sink, theme Theme) string {
	cols := c.columns(sink)
	styles := map[anim.Color]lipgloss.Style{
		anim.Unsorted: lipgloss.NewStyle().Foreground(theme.Unsorted),
		anim.Selected: lipgloss.NewStyle().Foreground(theme.Selected),
		anim.Sorted:   lipgloss.NewStyle().Foreground(theme.Sorted),
	}

	var b strings.Builder
	var run strings.Builder
	for row := 0; row < c.Height; row++ {
		for x := 0; x < len(cols); {
			color := cols[x].color
			run.Reset()
			for ; x < len(cols) && cols[x].color == color; x++ {
				run.WriteRune(cell(cols[x], row, c.Height))
			}
			b.WriteString(styles[color].Render(run.String()))
		}
		b.WriteString("\n")
	}
	return b.String()
}
