// Package format holds presentation helpers shared by the CLI and the TUI:
// durations, progress bars, ETA estimates and digit grouping.
package format
