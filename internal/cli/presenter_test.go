package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agbru/numwords/internal/config"
	apperrors "github.com/agbru/numwords/internal/errors"
	"github.com/agbru/numwords/internal/ui"
)

func TestCLIResultPresenter_PresentResults(t *testing.T) {
	ui.InitTheme(true)
	outFile := filepath.Join(t.TempDir(), "out.txt")

	tests := []struct {
		name        string
		cfg         OutputConfig
		contains    []string
		notContains []string
	}{
		{
			name:        "quiet",
			cfg:         OutputConfig{Format: config.FormatText, Quiet: true},
			contains:    []string{"Two point three four five"},
			notContains: []string{"Converted"},
		},
		{
			name:     "verbose",
			cfg:      OutputConfig{Format: config.FormatText, Verbose: true},
			contains: []string{"Not a Number", "Converted 3 values in 12ms."},
		},
		{
			name:     "saved",
			cfg:      OutputConfig{Format: config.FormatTSV, OutputFile: outFile},
			contains: []string{"Results saved to: " + outFile},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			p := CLIResultPresenter{Config: tt.cfg}
			if err := p.PresentResults(sampleResults(), 12*time.Millisecond, &buf); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q:\n%s", want, buf.String())
				}
			}
			for _, banned := range tt.notContains {
				if strings.Contains(buf.String(), banned) {
					t.Errorf("output must not contain %q:\n%s", banned, buf.String())
				}
			}
		})
	}

	if _, err := os.Stat(outFile); err != nil {
		t.Errorf("output file not written: %v", err)
	}
}

func TestCLIResultPresenter_HandleError(t *testing.T) {
	ui.InitTheme(true)
	tests := []struct {
		name     string
		err      error
		code     int
		contains string
	}{
		{"timeout", context.DeadlineExceeded, apperrors.ExitErrorTimeout, "timed out"},
		{"canceled", context.Canceled, apperrors.ExitErrorCanceled, "canceled"},
		{"input", apperrors.InputError{Token: "x", Line: 2}, apperrors.ExitErrorInput, `Input error: line 2: invalid number "x"`},
		{"generic", errors.New("boom"), apperrors.ExitErrorGeneric, "Error: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			code := CLIResultPresenter{}.HandleError(tt.err, time.Second, &buf)
			if code != tt.code {
				t.Errorf("code = %d, want %d", code, tt.code)
			}
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("output %q missing %q", buf.String(), tt.contains)
			}
		})
	}
}
