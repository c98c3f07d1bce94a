package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/numwords/internal/ui"
)

// Styles are rebuilt from the ui theme by initTUIStyles.
var (
	panelStyle     lipgloss.Style
	panelTitle     lipgloss.Style
	headerStyle    lipgloss.Style
	titleStyle     lipgloss.Style
	versionStyle   lipgloss.Style
	elapsedStyle   lipgloss.Style
	canonicalStyle lipgloss.Style
	wordsStyle     lipgloss.Style
	arrowStyle     lipgloss.Style
	hintStyle      lipgloss.Style
	errorStyle     lipgloss.Style
	badgeOnStyle   lipgloss.Style
	badgeOffStyle  lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds every style from the current ui theme. Run calls it
// again after the app has applied --no-color.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	panelTitle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	headerStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Bg).
		Bold(true).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	versionStyle = lipgloss.NewStyle().Foreground(t.Dim)
	elapsedStyle = lipgloss.NewStyle().Foreground(t.Accent)

	canonicalStyle = lipgloss.NewStyle().Foreground(t.Info)
	wordsStyle = lipgloss.NewStyle().Foreground(t.Text)
	arrowStyle = lipgloss.NewStyle().Foreground(t.Dim)
	hintStyle = lipgloss.NewStyle().Foreground(t.Dim).Italic(true)
	errorStyle = lipgloss.NewStyle().Foreground(t.Error)

	badgeOnStyle = lipgloss.NewStyle().Foreground(t.Success).Bold(true)
	badgeOffStyle = lipgloss.NewStyle().Foreground(t.Warning)
}
