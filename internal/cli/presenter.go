package cli

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	apperrors "github.com/agbru/numwords/internal/errors"
	"github.com/agbru/numwords/internal/format"
	"github.com/agbru/numwords/internal/orchestration"
	"github.com/agbru/numwords/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// spinner and progress bar.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for a running batch.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numChunks int, out io.Writer) {
	DisplayProgress(wg, progressChan, numChunks, out)
}

// CLIResultPresenter renders batches and failures on the terminal.
type CLIResultPresenter struct {
	Config OutputConfig
}

var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentResults prints the results, saves them when an output file is
// configured, and adds a summary in verbose mode.
func (p CLIResultPresenter) PresentResults(results []orchestration.Result, elapsed time.Duration, out io.Writer) error {
	if err := DisplayResults(out, results, p.Config); err != nil {
		return err
	}
	if err := WriteResultsToFile(results, p.Config); err != nil {
		return err
	}
	if p.Config.Quiet {
		return nil
	}
	if p.Config.OutputFile != "" {
		fmt.Fprintf(out, "%s✓ Results saved to: %s%s%s\n",
			ui.ColorGreen(), ui.ColorCyan(), p.Config.OutputFile, ui.ColorReset())
	}
	if p.Config.Verbose {
		DisplaySummary(out, len(results), elapsed)
	}
	return nil
}

// HandleError prints a message for err and returns its exit code.
func (CLIResultPresenter) HandleError(err error, elapsed time.Duration, out io.Writer) int {
	code := apperrors.ExitCodeFor(err)
	var inputErr apperrors.InputError
	switch {
	case code == apperrors.ExitErrorTimeout:
		fmt.Fprintf(out, "%sConversion timed out after %s.%s\n", ui.ColorRed(), format.FormatExecutionDuration(elapsed), ui.ColorReset())
	case code == apperrors.ExitErrorCanceled:
		fmt.Fprintf(out, "%sConversion canceled.%s\n", ui.ColorYellow(), ui.ColorReset())
	case errors.As(err, &inputErr):
		fmt.Fprintf(out, "%sInput error: %v%s\n", ui.ColorRed(), inputErr, ui.ColorReset())
	default:
		fmt.Fprintf(out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	}
	return code
}
