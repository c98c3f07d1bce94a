// Package tui implements the interactive dashboard started by --tui: a text
// input with a live preview of the canonical form and words of what is being
// typed, and a scrolling history of converted values.
package tui
