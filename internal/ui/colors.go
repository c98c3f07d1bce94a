package ui

// ANSI helpers reading the active theme. They return empty strings under
// NoColorTheme so callers can interpolate them unconditionally.

// ColorRed returns the error colour.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen returns the success colour.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning colour.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorCyan returns the primary colour; canonical forms are shown in it.
func ColorCyan() string { return GetCurrentTheme().Primary }

// ColorBold returns the bold escape.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorReset clears all formatting.
func ColorReset() string { return GetCurrentTheme().Reset }
