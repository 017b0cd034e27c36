package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a named set of ANSI escape codes. An empty code renders as plain
// text, which is how NoColorTheme disables styling without any branching at
// the call sites.
type Theme struct {
	Name      string
	Primary   string // accent for headings and highlighted values
	Secondary string // de-emphasized labels
	Success   string
	Warning   string
	Error     string
	Info      string
	Bold      string
	Underline string
	Reset     string
}

var (
	// DarkTheme targets dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;45m",  // cyan-blue
		Secondary: "\033[38;5;245m", // grey
		Success:   "\033[38;5;46m",  // green
		Warning:   "\033[38;5;214m", // amber
		Error:     "\033[38;5;203m", // red
		Info:      "\033[38;5;147m", // lavender
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// LightTheme targets light terminal backgrounds with darker shades.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;25m",
		Secondary: "\033[38;5;241m",
		Success:   "\033[38;5;22m",
		Warning:   "\033[38;5;94m",
		Error:     "\033[38;5;88m",
		Info:      "\033[38;5;55m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme leaves every code empty. Selected by --no-color or the
	// NO_COLOR environment variable.
	NoColorTheme = Theme{Name: "none"}
)

// themes indexes the selectable themes by name for SetTheme.
var themes = map[string]Theme{
	DarkTheme.Name:    DarkTheme,
	LightTheme.Name:   LightTheme,
	NoColorTheme.Name: NoColorTheme,
}

var (
	activeMu sync.RWMutex
	active   = DarkTheme
)

// TUITheme carries the lipgloss colors for the benchmark dashboard, mirroring
// the ANSI Theme at a richer color depth.
type TUITheme struct {
	Bg      lipgloss.TerminalColor
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
	Info    lipgloss.TerminalColor
}

var (
	// DarkTUITheme is the dashboard palette matching DarkTheme.
	DarkTUITheme = TUITheme{
		Bg:      lipgloss.Color("#000000"),
		Text:    lipgloss.Color("#D8D8D8"),
		Border:  lipgloss.Color("#00AFD7"),
		Accent:  lipgloss.Color("#5FD7FF"),
		Success: lipgloss.Color("#5FD75F"),
		Warning: lipgloss.Color("#FFAF00"),
		Error:   lipgloss.Color("#FF5F5F"),
		Dim:     lipgloss.Color("#5F5F5F"),
		Info:    lipgloss.Color("#AFAFFF"),
	}

	// NoColorTUITheme renders everything in the terminal's default colors.
	NoColorTUITheme = TUITheme{
		Bg:      lipgloss.NoColor{},
		Text:    lipgloss.NoColor{},
		Border:  lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
		Info:    lipgloss.NoColor{},
	}
)

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	activeMu.RLock()
	defer activeMu.RUnlock()
	return active
}

// GetCurrentTUITheme returns the dashboard palette for the active theme:
// NoColorTUITheme for the no-color theme, DarkTUITheme for every other theme
// (there is no light dashboard palette).
func GetCurrentTUITheme() TUITheme {
	activeMu.RLock()
	defer activeMu.RUnlock()
	if active.Name == NoColorTheme.Name {
		return NoColorTUITheme
	}
	return DarkTUITheme
}

// SetCurrentTheme installs t as the active theme. Tests use this to restore
// state around assertions on colored output.
func SetCurrentTheme(t Theme) {
	activeMu.Lock()
	defer activeMu.Unlock()
	active = t
}

// SetTheme selects a theme by name ("dark", "light", "none"). Unknown names
// fall back to dark.
func SetTheme(name string) {
	activeMu.Lock()
	defer activeMu.Unlock()
	t, ok := themes[name]
	if !ok {
		t = DarkTheme
	}
	active = t
}

// InitTheme picks the startup theme. The --no-color flag wins, then the
// NO_COLOR environment variable (any value, per no-color.org), then dark.
func InitTheme(noColor bool) {
	if _, present := os.LookupEnv("NO_COLOR"); noColor || present {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetCurrentTheme(DarkTheme)
}
