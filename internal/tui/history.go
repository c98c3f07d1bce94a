package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultHistorySize bounds the number of remembered conversions.
const DefaultHistorySize = 200

// HistoryEntry is one converted value as it was rendered.
type HistoryEntry struct {
	Canonical string
	Words     string
}

// HistoryModel keeps the most recent conversions, newest last.
type HistoryModel struct {
	entries []HistoryEntry
	limit   int
}

// NewHistoryModel creates a history holding at most limit entries.
func NewHistoryModel(limit int) HistoryModel {
	if limit <= 0 {
		limit = DefaultHistorySize
	}
	return HistoryModel{limit: limit}
}

// Add appends entries, dropping the oldest beyond the limit.
func (h *HistoryModel) Add(entries ...HistoryEntry) {
	h.entries = append(h.entries, entries...)
	if over := len(h.entries) - h.limit; over > 0 {
		h.entries = append([]HistoryEntry(nil), h.entries[over:]...)
	}
}

// Clear forgets every entry.
func (h *HistoryModel) Clear() { h.entries = nil }

// Len returns the number of entries.
func (h HistoryModel) Len() int { return len(h.entries) }

// Entries returns the entries, oldest first.
func (h HistoryModel) Entries() []HistoryEntry { return h.entries }

// View renders the newest entries that fit in height lines, each truncated
// to width cells.
func (h HistoryModel) View(width, height int) string {
	if len(h.entries) == 0 {
		return hintStyle.Render("No conversions yet.")
	}
	start := max(len(h.entries)-height, 0)
	lines := make([]string, 0, len(h.entries)-start)
	for _, e := range h.entries[start:] {
		lines = append(lines, renderConversion(e.Canonical, e.Words, width))
	}
	return strings.Join(lines, "\n")
}

// renderConversion formats "canonical → words", cutting the words to fit.
func renderConversion(canonical, words string, width int) string {
	prefix := canonicalStyle.Render(canonical) + arrowStyle.Render(" → ")
	room := width - lipgloss.Width(prefix)
	if width > 0 && room > 1 && lipgloss.Width(words) > room {
		words = string([]rune(words)[:room-1]) + "…"
	}
	return prefix + wordsStyle.Render(words)
}
