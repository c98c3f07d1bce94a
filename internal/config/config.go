// Package config defines the numwords command-line configuration: flag
// parsing, NUMWORDS_ environment overrides and validation.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/numwords/internal/errors"
	"github.com/agbru/numwords/internal/input"
)

// EnvPrefix is prepended to every environment variable the configuration reads.
const EnvPrefix = "NUMWORDS_"

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatTSV  = "tsv"
	FormatJSON = "json"
)

// Defaults applied before flags and environment variables.
const (
	DefaultTimeout = 1 * time.Minute
	DefaultAddr    = "127.0.0.1:8080"
	DefaultFormat  = FormatText
)

// SupportedShells lists the shells accepted by --completion.
var SupportedShells = []string{"bash", "zsh", "fish"}

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Numbers holds the positional arguments, unparsed.
	Numbers []string
	// InputFile is a file of numbers to convert; "-" reads stdin.
	InputFile string
	// OutputFile, if set, receives a copy of the results.
	OutputFile string
	// Format selects text, tsv or json output.
	Format string
	// Quiet disables progress and summary output.
	Quiet bool
	// Verbose prints a summary after the results.
	Verbose bool
	// ExponentSign spells negative exponent signs as "minus".
	ExponentSign bool
	// Workers bounds the number of concurrent conversion chunks. Zero means
	// one per CPU.
	Workers int
	// ChunkSize is the number of values per conversion chunk. Zero means
	// derived from the input size.
	ChunkSize int
	// Timeout bounds a batch conversion.
	Timeout time.Duration
	// Serve starts the HTTP server instead of converting.
	Serve bool
	// Addr is the listen address used with Serve.
	Addr string
	// TUI launches the interactive dashboard.
	TUI bool
	// Interactive starts the line-oriented REPL.
	Interactive bool
	// NoColor disables ANSI colours.
	NoColor bool
	// Completion names a shell to print a completion script for.
	Completion string
	// ShowVersion prints build information and exits.
	ShowVersion bool
}

// ParseConfig parses the command-line arguments, applies environment
// overrides for flags that were not set explicitly, and validates the result.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: Arguments without the program name.
//   - errorWriter: Destination for usage and flag errors.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when help was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] [number ...]\n\n", programName)
		fmt.Fprintln(fs.Output(), "Converts numbers to their English word form, one character of the canonical form at a time.")
		fmt.Fprintf(fs.Output(), "Flags may also be set through %s* environment variables.\n\nFlags:\n", EnvPrefix)
		fs.PrintDefaults()
	}

	config := AppConfig{}
	fs.StringVar(&config.InputFile, "input", "", "File of numbers to convert (\"-\" for stdin).")
	fs.StringVar(&config.InputFile, "i", "", "Shorthand for --input.")
	fs.StringVar(&config.OutputFile, "output", "", "Write results to this file as well.")
	fs.StringVar(&config.OutputFile, "o", "", "Shorthand for --output.")
	fs.StringVar(&config.Format, "format", DefaultFormat, "Output format: text, tsv or json.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the results.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Print a summary after the results.")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for --verbose.")
	fs.BoolVar(&config.ExponentSign, "exponent-sign", false, "Spell negative exponent signs (\"E minus zero five\").")
	fs.IntVar(&config.Workers, "workers", 0, "Concurrent conversion workers (0 = one per CPU).")
	fs.IntVar(&config.ChunkSize, "chunk-size", 0, "Values per conversion chunk (0 = automatic).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum time for a batch conversion.")
	fs.BoolVar(&config.Serve, "serve", false, "Run the HTTP API server.")
	fs.StringVar(&config.Addr, "addr", DefaultAddr, "Listen address for --serve.")
	fs.BoolVar(&config.TUI, "tui", false, "Launch the interactive dashboard.")
	fs.BoolVar(&config.Interactive, "interactive", false, "Start the interactive prompt.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable coloured output.")
	fs.StringVar(&config.Completion, "completion", "", "Print a completion script for bash, zsh or fish.")
	fs.BoolVar(&config.ShowVersion, "version", false, "Print version information.")
	fs.BoolVar(&config.ShowVersion, "V", false, "Shorthand for --version.")

	numbers, err := parseInterleaved(fs, args)
	if err != nil {
		return AppConfig{}, err
	}
	config.Numbers = numbers

	applyEnvOverrides(&config, fs)
	config = ApplyAdaptiveDefaults(config)

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Error:", err)
		return AppConfig{}, err
	}
	return config, nil
}

// parseInterleaved parses flags that may appear before, between or after
// positional numbers. Tokens such as "-2.5" or "-Infinity" are numbers, not
// flags, unless they follow a flag that takes a value. Everything after "--"
// is positional.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	numbers := []string{}
	rest := args
	for len(rest) > 0 {
		switch {
		case rest[0] == "--":
			return append(numbers, rest[1:]...), nil
		case isNegativeNumber(rest[0]):
			numbers = append(numbers, rest[0])
			rest = rest[1:]
			continue
		}

		end := len(rest)
		for i, a := range rest {
			if a == "--" || (isNegativeNumber(a) && (i == 0 || !expectsValue(fs, rest[i-1]))) {
				end = i
				break
			}
		}
		if err := fs.Parse(rest[:end]); err != nil {
			return nil, err
		}
		leftover := fs.Args()
		next := make([]string, 0, len(rest))
		if len(leftover) > 0 {
			numbers = append(numbers, leftover[0])
			next = append(next, leftover[1:]...)
		}
		rest = append(next, rest[end:]...)
	}
	return numbers, nil
}

// expectsValue reports whether arg is a non-boolean flag written without
// "=value", so the token after it is that flag's value.
func expectsValue(fs *flag.FlagSet, arg string) bool {
	if len(arg) < 2 || arg[0] != '-' || strings.Contains(arg, "=") {
		return false
	}
	f := fs.Lookup(strings.TrimPrefix(arg[1:], "-"))
	if f == nil {
		return false
	}
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return false
	}
	return true
}

func isNegativeNumber(arg string) bool {
	return len(arg) > 1 && arg[0] == '-' && arg[1] != '-' && input.IsNumber(arg)
}

// Validate checks the configuration for invalid or conflicting values. A bad
// single flag yields a ValidationError naming it; conflicting flags yield a
// ConfigError.
func (c AppConfig) Validate() error {
	switch c.Format {
	case FormatText, FormatTSV, FormatJSON:
	default:
		return apperrors.ValidationError{Field: "--format", Message: fmt.Sprintf("unknown format %q (accepted values: text, tsv, json)", c.Format)}
	}
	if c.Workers < 0 {
		return apperrors.ValidationError{Field: "--workers", Message: fmt.Sprintf("must be positive, got %d", c.Workers)}
	}
	if c.ChunkSize < 0 {
		return apperrors.ValidationError{Field: "--chunk-size", Message: fmt.Sprintf("must be positive, got %d", c.ChunkSize)}
	}
	if c.Timeout <= 0 {
		return apperrors.ValidationError{Field: "--timeout", Message: fmt.Sprintf("must be positive, got %s", c.Timeout)}
	}
	if c.Completion != "" && !isSupportedShell(c.Completion) {
		return apperrors.ValidationError{Field: "--completion", Message: fmt.Sprintf("unsupported shell %q (accepted values: %s)", c.Completion, strings.Join(SupportedShells, ", "))}
	}
	if c.Serve && c.Addr == "" {
		return apperrors.NewConfigError("--serve requires a non-empty --addr")
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("--quiet and --verbose are mutually exclusive")
	}

	modes := 0
	for _, on := range []bool{c.Serve, c.TUI, c.Interactive} {
		if on {
			modes++
		}
	}
	if modes > 1 {
		return apperrors.NewConfigError("--serve, --tui and --interactive are mutually exclusive")
	}
	return nil
}

func isSupportedShell(shell string) bool {
	for _, s := range SupportedShells {
		if s == shell {
			return true
		}
	}
	return false
}
