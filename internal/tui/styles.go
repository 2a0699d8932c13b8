package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared by both themes.
const (
	ColorBrand     = lipgloss.Color("#22c55e")
	ColorDarkBar   = lipgloss.Color("#303030")
	ColorLightText = lipgloss.Color("#f5f5f5")
	ColorDarkText  = lipgloss.Color("#1f2937")
	ColorMuted     = lipgloss.Color("245")
	ColorError     = lipgloss.Color("196")
	ColorNotice    = lipgloss.Color("214")
	ColorHighlight = lipgloss.Color("229")
	ColorSelection = lipgloss.Color("57")
)

// Theme is the set of styles the views render with.
type Theme struct {
	Dark bool

	Header    lipgloss.Style
	Nav       lipgloss.Style
	NavActive lipgloss.Style
	Title     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Focused   lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Notice    lipgloss.Style
	Success   lipgloss.Style
	Panel     lipgloss.Style
	Footer    lipgloss.Style
}

// LightTheme has the green header bar.
func LightTheme() Theme {
	t := baseTheme()
	t.Header = lipgloss.NewStyle().Background(ColorBrand).Foreground(ColorLightText).Bold(true).Padding(0, 1)
	t.Nav = lipgloss.NewStyle().Background(ColorBrand).Foreground(ColorLightText).Padding(0, 1)
	t.NavActive = t.Nav.Underline(true).Bold(true)
	t.Value = lipgloss.NewStyle().Foreground(ColorDarkText).Bold(true)
	t.Panel = t.Panel.BorderForeground(ColorBrand)
	return t
}

// DarkTheme has the charcoal header bar.
func DarkTheme() Theme {
	t := baseTheme()
	t.Dark = true
	t.Header = lipgloss.NewStyle().Background(ColorDarkBar).Foreground(ColorLightText).Bold(true).Padding(0, 1)
	t.Nav = lipgloss.NewStyle().Background(ColorDarkBar).Foreground(ColorLightText).Padding(0, 1)
	t.NavActive = t.Nav.Foreground(ColorBrand).Bold(true)
	t.Value = lipgloss.NewStyle().Foreground(ColorLightText).Bold(true)
	t.Panel = t.Panel.BorderForeground(ColorMuted)
	return t
}

// ThemeFor returns the dark or light theme.
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme()
	}
	return LightTheme()
}

func baseTheme() Theme {
	return Theme{
		Title:   lipgloss.NewStyle().Foreground(ColorBrand).Bold(true),
		Label:   lipgloss.NewStyle().Foreground(ColorMuted),
		Focused: lipgloss.NewStyle().Foreground(ColorHighlight).Background(ColorSelection),
		Muted:   lipgloss.NewStyle().Foreground(ColorMuted).Italic(true),
		Error:   lipgloss.NewStyle().Foreground(ColorError).Bold(true),
		Notice:  lipgloss.NewStyle().Foreground(ColorNotice),
		Success: lipgloss.NewStyle().Foreground(ColorBrand),
		Panel:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Footer:  lipgloss.NewStyle().Foreground(ColorMuted).Italic(true),
	}
}
