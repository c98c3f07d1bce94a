// Package ui holds the colour themes shared by the line-oriented CLI output
// and the interactive dashboard. Helpers return empty strings when colours
// are disabled so callers never branch on the theme.
package ui
