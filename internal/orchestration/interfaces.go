package orchestration

import (
	"io"
	"sync"
	"time"
)

// Result is the conversion of one input value. It is the shared domain type
// between orchestration and presentation layers.
type Result struct {
	// Index is the position of the value in the input.
	Index int `json:"index"`
	// Value is the converted number.
	Value float64 `json:"-"`
	// Canonical is the culture-invariant text the words were read from.
	Canonical string `json:"canonical"`
	// Words is the English word form.
	Words string `json:"words"`
}

// ProgressUpdate reports the progress of one conversion chunk.
type ProgressUpdate struct {
	// ChunkIndex identifies the chunk.
	ChunkIndex int
	// Value is the chunk's completion between 0 and 1.
	Value float64
}

// ProgressReporter defines the interface for displaying conversion progress.
// Implementations handle the visual representation of progress (spinners,
// progress bars, etc.) while the orchestration layer coordinates the chunks.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It is called in a separate goroutine and runs until progressChan is
	// closed.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving per-chunk progress updates.
	//   - numChunks: The number of chunks being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numChunks int, out io.Writer)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter renders a finished batch.
type ResultPresenter interface {
	PresentResults(results []Result, elapsed time.Duration, out io.Writer) error
}

// ErrorHandler reports a failed batch and returns the exit code for it.
type ErrorHandler interface {
	HandleError(err error, elapsed time.Duration, out io.Writer) int
}
