package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/numwords/internal/format"
)

// HeaderModel renders the top bar: title, version, exponent-sign mode,
// conversion count and session time.
type HeaderModel struct {
	startTime    time.Time
	version      string
	width        int
	exponentSign bool
	converted    int
	now          func() time.Time
}

// NewHeaderModel creates a header whose session clock starts now.
func NewHeaderModel(version string, exponentSign bool) HeaderModel {
	return HeaderModel{
		startTime:    time.Now(),
		version:      version,
		exponentSign: exponentSign,
		now:          time.Now,
	}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) { h.width = w }

// SetExponentSign updates the mode badge.
func (h *HeaderModel) SetExponentSign(on bool) { h.exponentSign = on }

// AddConverted increases the conversion counter.
func (h *HeaderModel) AddConverted(n int) { h.converted += n }

// View renders the header.
func (h HeaderModel) View() string {
	title := "numwords"
	if h.version != "" && h.version != "dev" {
		title += " " + h.version
	}
	pipe := versionStyle.Render(" | ")

	badge := badgeOffStyle.Render("exponent sign dropped")
	if h.exponentSign {
		badge = badgeOnStyle.Render("exponent sign spelled")
	}

	left := titleStyle.Render(title) + pipe + badge + pipe +
		versionStyle.Render(fmt.Sprintf("%s converted", format.FormatNumberString(fmt.Sprint(h.converted))))
	right := elapsedStyle.Render("Session: " + format.FormatExecutionDuration(h.now().Sub(h.startTime).Truncate(time.Second)))

	gap := h.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	row := left + strings.Repeat(" ", max(gap, 1)) + right
	return headerStyle.Width(h.width).Render(row)
}
