package ui

import "testing"

func TestInitTheme_NoColor(t *testing.T) {
	saved := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(saved) })

	InitTheme(true)
	for name, got := range map[string]string{
		"red": ColorRed(), "green": ColorGreen(), "cyan": ColorCyan(),
		"bold": ColorBold(), "reset": ColorReset(),
	} {
		if got != "" {
			t.Errorf("%s = %q under --no-color, want empty", name, got)
		}
	}
	if GetCurrentTUITheme() != NoColorTUITheme {
		t.Error("TUI theme should follow the no-colour theme")
	}
}

func TestInitTheme_EnvNoColor(t *testing.T) {
	saved := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(saved) })

	t.Setenv("NO_COLOR", "1")
	InitTheme(false)
	if GetCurrentTheme().Name != "none" {
		t.Errorf("theme = %q with NO_COLOR set, want none", GetCurrentTheme().Name)
	}
}

func TestSetTheme(t *testing.T) {
	saved := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(saved) })

	tests := []struct{ name, want string }{
		{"dark", "dark"},
		{"light", "light"},
		{"orange", "dark"},
		{"none", "none"},
		{"unknown", "dark"},
	}
	for _, tt := range tests {
		SetTheme(tt.name)
		if got := GetCurrentTheme().Name; got != tt.want {
			t.Errorf("SetTheme(%q) -> %q, want %q", tt.name, got, tt.want)
		}
	}

	SetTheme("dark")
	if ColorGreen() != DarkTheme.Success || ColorReset() != DarkTheme.Reset {
		t.Error("colour helpers do not read the active theme")
	}
}
