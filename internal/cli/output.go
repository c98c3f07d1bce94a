// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayResults], [DisplaySummary], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatResults].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteResultsToFile].

package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/agbru/numwords/internal/config"
	"github.com/agbru/numwords/internal/format"
	"github.com/agbru/numwords/internal/orchestration"
	"github.com/agbru/numwords/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the results (empty for no file output).
	OutputFile string
	// Format is one of config.FormatText, config.FormatTSV, config.FormatJSON.
	Format string
	// Quiet suppresses everything but the results.
	Quiet bool
	// Verbose adds a summary after the results.
	Verbose bool
}

// OutputConfigFrom extracts the output settings from the application
// configuration.
func OutputConfigFrom(cfg config.AppConfig) OutputConfig {
	return OutputConfig{
		OutputFile: cfg.OutputFile,
		Format:     cfg.Format,
		Quiet:      cfg.Quiet,
		Verbose:    cfg.Verbose,
	}
}

// FormatResults renders results in the requested format. Text output holds
// one line of words per value, TSV adds the canonical form as a first
// column, and JSON is an indented array of objects.
func FormatResults(results []orchestration.Result, outputFormat string) (string, error) {
	var buf bytes.Buffer
	switch outputFormat {
	case config.FormatText, "":
		for _, r := range results {
			buf.WriteString(r.Words)
			buf.WriteByte('\n')
		}
	case config.FormatTSV:
		for _, r := range results {
			buf.WriteString(r.Canonical)
			buf.WriteByte('\t')
			buf.WriteString(r.Words)
			buf.WriteByte('\n')
		}
	case config.FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return "", fmt.Errorf("encoding results: %w", err)
		}
	default:
		return "", fmt.Errorf("unsupported output format %q", outputFormat)
	}
	return buf.String(), nil
}

// DisplayResults writes the results to out in the configured format.
func DisplayResults(out io.Writer, results []orchestration.Result, cfg OutputConfig) error {
	s, err := FormatResults(results, cfg.Format)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, s)
	return err
}

// DisplaySummary prints the number of converted values and the elapsed time.
func DisplaySummary(out io.Writer, count int, elapsed time.Duration) {
	fmt.Fprintf(out, "\nConverted %s%s%s values in %s%s%s.\n",
		ui.ColorCyan(), format.FormatNumberString(strconv.Itoa(count)), ui.ColorReset(),
		ui.ColorYellow(), format.FormatExecutionDuration(elapsed), ui.ColorReset())
}

// WriteResultsToFile saves the results to cfg.OutputFile in the configured
// format, creating parent directories as needed. It does nothing when no
// output file is configured.
func WriteResultsToFile(results []orchestration.Result, cfg OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}

	s, err := FormatResults(results, cfg.Format)
	if err != nil {
		return err
	}

	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(cfg.OutputFile, []byte(s), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
