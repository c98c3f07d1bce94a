package orchestration

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// slowReporter consumes updates with a delay to simulate a sluggish terminal.
type slowReporter struct {
	delay time.Duration
}

func (r slowReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		time.Sleep(r.delay)
	}
}

// TestOrchestrationNoDeadlock verifies that ConvertAll completes under
// various reporter and chunking combinations.
func TestOrchestrationNoDeadlock(t *testing.T) {
	testCases := []struct {
		name     string
		n        int
		opts     Options
		reporter ProgressReporter
	}{
		{"null_reporter", 1000, Options{Workers: 4, ChunkSize: 1}, NullProgressReporter{}},
		{"slow_reporter", 200, Options{Workers: 8, ChunkSize: 1}, slowReporter{delay: time.Millisecond}},
		{"single_worker_many_chunks", 500, Options{Workers: 1, ChunkSize: 1}, slowReporter{}},
		{"uneven_chunks", 100, Options{Workers: 2, ChunkSize: 3}, slowReporter{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			done := make(chan struct{})
			go func() {
				defer close(done)
				if _, err := ConvertAll(ctx, sequence(tc.n), tc.opts, tc.reporter, io.Discard); err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}()

			select {
			case <-done:
			case <-time.After(10 * time.Second):
				t.Fatal("DEADLOCK: ConvertAll did not complete within timeout")
			}
		})
	}
}

// TestOrchestrationNoDeadlock_ContextCancellation verifies that cancelling
// the context mid-batch returns promptly instead of waiting for the reporter
// to work through every buffered update.
func TestOrchestrationNoDeadlock_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = ConvertAll(ctx, sequence(5000), Options{Workers: 1, ChunkSize: 1}, slowReporter{delay: 100 * time.Microsecond}, io.Discard)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	cancelled := time.Now()

	select {
	case <-done:
		if waited := time.Since(cancelled); waited > time.Second {
			t.Errorf("ConvertAll returned %s after cancellation", waited)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("DEADLOCK after context cancellation")
	}
}

// gatedReporter handles one update, then waits for release before handling
// the rest slowly, counting what it consumed.
type gatedReporter struct {
	started chan struct{}
	release chan struct{}
	handled *atomic.Int64
}

func (r gatedReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	first := true
	for range progressChan {
		r.handled.Add(1)
		if first {
			first = false
			close(r.started)
			<-r.release
			continue
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestConvertAll_CancelDiscardsPendingUpdates(t *testing.T) {
	const chunks = 200
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reporter := gatedReporter{
		started: make(chan struct{}),
		release: make(chan struct{}),
		handled: new(atomic.Int64),
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = ConvertAll(ctx, sequence(chunks), Options{Workers: 1, ChunkSize: 1}, reporter, io.Discard)
	}()

	<-reporter.started
	// Let the workers fill the buffer while the reporter is stuck.
	time.Sleep(20 * time.Millisecond)
	cancel()
	cancelled := time.Now()
	close(reporter.release)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("ConvertAll kept waiting on the reporter after cancellation")
	}
	if waited := time.Since(cancelled); waited > time.Second {
		t.Errorf("ConvertAll returned %s after cancellation, want well under %s", waited, chunks*10*time.Millisecond)
	}
	if got := reporter.handled.Load(); got >= chunks {
		t.Errorf("reporter handled %d updates, want the backlog discarded", got)
	}
}
