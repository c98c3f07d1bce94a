package orchestration

import (
	"context"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/numwords/internal/config"
	apperrors "github.com/agbru/numwords/internal/errors"
	"github.com/agbru/numwords/internal/words"
)

// Options controls a batch conversion.
type Options struct {
	// Workers bounds the number of chunks converted at once. Values below
	// one mean a single worker.
	Workers int
	// ChunkSize is the number of values per chunk. Zero derives it from the
	// input length and worker count.
	ChunkSize int
	// ExponentSign spells negative exponent signs as "minus".
	ExponentSign bool
}

// OptionsFromConfig extracts the conversion options from the application
// configuration.
func OptionsFromConfig(cfg config.AppConfig) Options {
	return Options{Workers: cfg.Workers, ChunkSize: cfg.ChunkSize, ExponentSign: cfg.ExponentSign}
}

// Formatter builds the words.Formatter these options describe.
func (o Options) Formatter() *words.Formatter {
	if o.ExponentSign {
		return words.NewFormatter(words.WithExponentSign())
	}
	return words.NewFormatter()
}

// ConvertAll converts values to words concurrently while preserving order.
//
// The input is split into chunks that an errgroup converts with at most
// opts.Workers in flight. Each finished chunk sends a ProgressUpdate to
// reporter, which runs in its own goroutine and writes to out.
//
// Parameters:
//   - ctx: Cancels the remaining chunks.
//   - values: The numbers to convert. Must be non-nil and non-empty.
//   - opts: Worker, chunk and formatting options.
//   - reporter: Progress display; nil means NullProgressReporter. Once ctx
//     is done the updates it has not consumed yet are discarded.
//   - out: The writer handed to reporter.
//
// Returns:
//   - []Result: One result per input value, in input order.
//   - error: words.ErrMissingInput or words.ErrEmptyInput for unusable
//     input, or the context error when conversion was cut short.
func ConvertAll(ctx context.Context, values []float64, opts Options, reporter ProgressReporter, out io.Writer) ([]Result, error) {
	if values == nil {
		return nil, words.ErrMissingInput
	}
	if len(values) == 0 {
		return nil, words.ErrEmptyInput
	}
	if reporter == nil {
		reporter = NullProgressReporter{}
	}

	workers := max(opts.Workers, 1)
	chunkSize := opts.ChunkSize
	if chunkSize <= 0 {
		chunkSize = config.EstimateChunkSize(len(values), workers)
	}
	numChunks := (len(values) + chunkSize - 1) / chunkSize

	results := make([]Result, len(values))
	// Buffered for every chunk so workers never block on a slow display.
	progressChan := make(chan ProgressUpdate, numChunks)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, numChunks, out)

	formatter := opts.Formatter()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	scheduled := 0
	for c := range numChunks {
		if gctx.Err() != nil {
			break
		}
		start := c * chunkSize
		end := min(start+chunkSize, len(values))
		scheduled++
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			chunk := values[start:end]
			converted, err := formatter.Batch(chunk)
			if err != nil {
				return err
			}
			for i, w := range converted {
				results[start+i] = Result{
					Index:     start + i,
					Value:     chunk[i],
					Canonical: words.FormatInvariant(chunk[i]),
					Words:     w,
				}
			}
			progressChan <- ProgressUpdate{ChunkIndex: c, Value: 1}
			return nil
		})
	}

	err := g.Wait()
	close(progressChan)
	waitForReporter(ctx, &displayWg, progressChan)

	if err == nil && scheduled < numChunks {
		err = ctx.Err()
	}
	if err != nil {
		return nil, apperrors.WrapError(err, "converting %d values", len(values))
	}
	return results, nil
}

// waitForReporter blocks until the reporter returns. If ctx ends first, the
// buffered updates are drained here so the reporter only finishes the one it
// is handling.
func waitForReporter(ctx context.Context, wg *sync.WaitGroup, progressChan <-chan ProgressUpdate) {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return
	case <-ctx.Done():
	}
	DrainChannel(progressChan)
	<-done
}
