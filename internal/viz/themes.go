package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/anim"
)

// Theme defines the bar palette and chrome colors for the TUI
type Theme struct {
	Name     string
	Unsorted lipgloss.Color
	Selected lipgloss.Color
	Sorted   lipgloss.Color
	Accent   lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:     "classic",
		Unsorted: lipgloss.Color(anim.Unsorted.Hex()),
		Selected: lipgloss.Color(anim.Selected.Hex()),
		Sorted:   lipgloss.Color(anim.Sorted.Hex()),
		Accent:   lipgloss.Color("#00ffff"),
		Text:     lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#666688"),
	}

	ThemeRetroGreen = Theme{
		Name:     "retro",
		Unsorted: lipgloss.Color("#00aa00"), // Green phosphor
		Selected: lipgloss.Color("#ffff00"),
		Sorted:   lipgloss.Color("#88ff88"),
		Accent:   lipgloss.Color("#00ff00"),
		Text:     lipgloss.Color("#00ff00"),
		Muted:    lipgloss.Color("#005500"),
	}

	ThemeMinimal = Theme{
		Name:     "minimal",
		Unsorted: lipgloss.Color("#888888"),
		Selected: lipgloss.Color("#ffffff"),
		Sorted:   lipgloss.Color("#0088ff"),
		Accent:   lipgloss.Color("#0088ff"),
		Text:     lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#555555"),
	}

	ThemeOcean = Theme{
		Name:     "ocean",
		Unsorted: lipgloss.Color("#0077be"), // Ocean blue
		Selected: lipgloss.Color("#ffd700"),
		Sorted:   lipgloss.Color("#00ff88"),
		Accent:   lipgloss.Color("#00a8cc"),
		Text:     lipgloss.Color("#e0f0ff"),
		Muted:    lipgloss.Color("#4488aa"),
	}

	ThemeSunset = Theme{
		Name:     "sunset",
		Unsorted: lipgloss.Color("#ff6b6b"), // Coral
		Selected: lipgloss.Color("#feca57"),
		Sorted:   lipgloss.Color("#5fd068"),
		Accent:   lipgloss.Color("#ff9ff3"),
		Text:     lipgloss.Color("#fff5f5"),
		Muted:    lipgloss.Color("#8b6b8c"),
	}

	// Default theme
	CurrentTheme = ThemeClassic

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// BarColor maps a bar color to the theme palette
func (t Theme) BarColor(c anim.Color) lipgloss.Color {
	switch c {
	case anim.Selected:
		return t.Selected
	case anim.Sorted:
		return t.Sorted
	default:
		return t.Unsorted
	}
}

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme cycles CurrentTheme through Themes
func NextTheme() {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return
		}
	}
	CurrentTheme = ThemeClassic
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
