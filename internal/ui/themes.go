package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a set of ANSI escape sequences for line-oriented output: results,
// summaries, REPL prompts and error messages.
type Theme struct {
	Name string
	// Primary highlights canonical forms and prompts.
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Info      string
	Bold      string
	Underline string
	Reset     string
}

const (
	ansiBold      = "\033[1m"
	ansiUnderline = "\033[4m"
	ansiReset     = "\033[0m"
)

var (
	// DarkTheme suits dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;44m",  // teal
		Secondary: "\033[38;5;246m", // grey
		Success:   "\033[38;5;78m",
		Warning:   "\033[38;5;221m",
		Error:     "\033[38;5;203m",
		Info:      "\033[38;5;147m",
		Bold:      ansiBold,
		Underline: ansiUnderline,
		Reset:     ansiReset,
	}

	// LightTheme suits light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;30m",
		Secondary: "\033[38;5;240m",
		Success:   "\033[38;5;28m",
		Warning:   "\033[38;5;130m",
		Error:     "\033[38;5;124m",
		Info:      "\033[38;5;61m",
		Bold:      ansiBold,
		Underline: ansiUnderline,
		Reset:     ansiReset,
	}

	// NoColorTheme emits no escape sequences at all. It is selected by
	// --no-color, by NO_COLOR, and when output is not a terminal.
	NoColorTheme = Theme{Name: "none"}

	themes = map[string]Theme{
		DarkTheme.Name:    DarkTheme,
		LightTheme.Name:   LightTheme,
		NoColorTheme.Name: NoColorTheme,
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// TUITheme is the lipgloss palette of the interactive dashboard.
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
	// DarkTUITheme pairs with DarkTheme. Colours adapt to the terminal
	// background so it also reads on light terminals.
	DarkTUITheme = TUITheme{
		Bg:      lipgloss.NoColor{},
		Text:    lipgloss.AdaptiveColor{Light: "#1F2328", Dark: "#E6EDF3"},
		Border:  lipgloss.AdaptiveColor{Light: "#0E7C86", Dark: "#2BC4C4"},
		Accent:  lipgloss.AdaptiveColor{Light: "#0E7C86", Dark: "#4FD6D6"},
		Success: lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#7EE787"},
		Warning: lipgloss.AdaptiveColor{Light: "#9A6700", Dark: "#F2CC60"},
		Error:   lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#FF7B72"},
		Dim:     lipgloss.AdaptiveColor{Light: "#6E7781", Dark: "#8B949E"},
		Info:    lipgloss.AdaptiveColor{Light: "#8250DF", Dark: "#D2A8FF"},
	}

	// NoColorTUITheme renders with the terminal's default colours.
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

// GetCurrentTUITheme returns NoColorTUITheme when colours are disabled and
// DarkTUITheme otherwise.
func GetCurrentTUITheme() TUITheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()

	if currentTheme.Name == NoColorTheme.Name {
		return NoColorTUITheme
	}
	return DarkTUITheme
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme activates a theme by name ("dark", "light" or "none"). Unknown
// names select the dark theme.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	t, ok := themes[name]
	if !ok {
		t = DarkTheme
	}
	currentTheme = t
}

// InitTheme selects the startup theme. Colours are disabled when noColor is
// true or the NO_COLOR environment variable is present (https://no-color.org/).
func InitTheme(noColor bool) {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		noColor = true
	}

	themeMutex.Lock()
	defer themeMutex.Unlock()
	if noColor {
		currentTheme = NoColorTheme
	} else {
		currentTheme = DarkTheme
	}
}
