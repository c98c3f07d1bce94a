package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/agbru/numwords/internal/ui"
)

func runREPL(t *testing.T, cfg REPLConfig, script string) string {
	t.Helper()
	var out bytes.Buffer
	r := NewREPL(cfg)
	r.SetInput(strings.NewReader(script))
	r.SetOutput(&out)
	r.Start()
	return out.String()
}

func TestREPL(t *testing.T) {
	ui.InitTheme(true)

	tests := []struct {
		name        string
		cfg         REPLConfig
		script      string
		contains    []string
		notContains []string
	}{
		{
			name:     "converts a number",
			script:   "2.345\nexit\n",
			contains: []string{"2.345 → Two point three four five", "Goodbye!"},
		},
		{
			name:     "converts several numbers",
			script:   "-0 NaN\n",
			contains: []string{"-0 → Minus zero", "NaN → Not a Number"},
		},
		{
			name:     "canonical form",
			script:   "canon 1e15\n",
			contains: []string{"1E+15"},
		},
		{
			name:     "canon without argument",
			script:   "canon\n",
			contains: []string{"Usage: canon <n>"},
		},
		{
			name:     "toggle exponent sign",
			script:   "1e-5\nsign\n1e-5\n",
			contains: []string{"One E zero five", "Exponent sign: spelled", "One E minus zero five"},
		},
		{
			name:        "starts with exponent sign",
			cfg:         REPLConfig{ExponentSign: true},
			script:      "status\n1e-5\n",
			contains:    []string{"Exponent sign:  spelled", "One E minus zero five"},
			notContains: []string{"One E zero five"},
		},
		{
			name:     "invalid token",
			script:   "twelve\n",
			contains: []string{`invalid number "twelve"`, "help"},
		},
		{
			name:     "help",
			script:   "help\nquit\n",
			contains: []string{"Available commands:", "canon <n>"},
		},
		{
			name:     "last line without newline",
			script:   "7",
			contains: []string{"7 → Seven", "Goodbye!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runREPL(t, tt.cfg, tt.script)
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			for _, banned := range tt.notContains {
				if strings.Contains(out, banned) {
					t.Errorf("output must not contain %q:\n%s", banned, out)
				}
			}
		})
	}
}

func TestREPL_ExitStopsReading(t *testing.T) {
	ui.InitTheme(true)
	out := runREPL(t, REPLConfig{}, "exit\n42\n")
	if strings.Contains(out, "Four two") {
		t.Errorf("input after exit was processed:\n%s", out)
	}
}
