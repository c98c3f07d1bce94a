package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/numwords/internal/cli"
	apperrors "github.com/agbru/numwords/internal/errors"
	"github.com/agbru/numwords/internal/input"
	"github.com/agbru/numwords/internal/logging"
	"github.com/agbru/numwords/internal/orchestration"
)

// stdinName is the --input value that reads standard input.
const stdinName = "-"

// runConvert converts the numbers given on the command line and in the
// input file, then prints and optionally saves the results.
func (a *Application) runConvert(ctx context.Context, out io.Writer) int {
	presenter := cli.CLIResultPresenter{Config: cli.OutputConfigFrom(a.Config)}

	values, err := a.gatherNumbers()
	if err != nil {
		return presenter.HandleError(err, 0, a.ErrWriter)
	}

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	var reporter orchestration.ProgressReporter = orchestration.NullProgressReporter{}
	if !a.Config.Quiet && cli.IsTerminal(a.ErrWriter) {
		reporter = cli.CLIProgressReporter{}
	}

	opts := orchestration.OptionsFromConfig(a.Config)
	a.Logger.Debug("converting",
		logging.Int("values", len(values)),
		logging.Int("workers", opts.Workers),
		logging.Bool("exponent_sign", opts.ExponentSign))

	start := time.Now()
	results, err := orchestration.ConvertAll(ctx, values, opts, reporter, a.ErrWriter)
	elapsed := time.Since(start)
	if err != nil {
		return presenter.HandleError(a.interrupted(err), elapsed, a.ErrWriter)
	}

	if err := presenter.PresentResults(results, elapsed, out); err != nil {
		return presenter.HandleError(err, elapsed, a.ErrWriter)
	}
	a.Logger.Debug("conversion finished", logging.Int("values", len(results)), logging.Duration("elapsed", elapsed))
	return apperrors.ExitSuccess
}

// interrupted logs a conversion cut short by its context and reports a
// deadline hit as a TimeoutError carrying the configured limit. Other errors
// pass through unchanged.
func (a *Application) interrupted(err error) error {
	if !apperrors.IsContextError(err) {
		return err
	}
	a.Logger.Debug("conversion interrupted", logging.Err(err), logging.Duration("timeout", a.Config.Timeout))
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.TimeoutError{Operation: "convert", Limit: a.Config.Timeout}
	}
	return err
}

// gatherNumbers parses the positional numbers followed by those of the input
// file. It fails with a ConfigError when neither source was given.
func (a *Application) gatherNumbers() ([]float64, error) {
	if len(a.Config.Numbers) == 0 && a.Config.InputFile == "" {
		return nil, apperrors.NewConfigError("no numbers to convert: pass them as arguments or use --input")
	}

	values, err := input.ParseAll(a.Config.Numbers)
	if err != nil {
		return nil, err
	}
	if a.Config.InputFile == "" {
		return values, nil
	}

	fromFile, err := a.readInputFile(a.Config.InputFile)
	if err != nil {
		return nil, err
	}
	return append(values, fromFile...), nil
}

func (a *Application) readInputFile(path string) ([]float64, error) {
	if path == stdinName {
		values, err := input.ReadNumbers(a.Stdin)
		if err != nil {
			return nil, apperrors.WrapError(err, "reading standard input")
		}
		return values, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	values, err := input.ReadNumbers(f)
	if err != nil {
		return nil, apperrors.WrapError(err, "reading %s", path)
	}
	return values, nil
}
