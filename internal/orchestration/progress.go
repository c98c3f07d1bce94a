package orchestration

import (
	"time"

	"github.com/agbru/numwords/internal/format"
)

// ProgressAggregator folds per-chunk updates into overall progress and an
// ETA. It wraps format.ProgressWithETA so reporters do not repeat the setup.
type ProgressAggregator struct {
	state     *format.ProgressWithETA
	numChunks int
}

// NewProgressAggregator creates an aggregator for the given number of
// chunks. Returns nil if numChunks <= 0.
func NewProgressAggregator(numChunks int) *ProgressAggregator {
	if numChunks <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:     format.NewProgressWithETA(numChunks),
		numChunks: numChunks,
	}
}

// AggregatedProgress holds the result of processing a single progress update.
type AggregatedProgress struct {
	// ChunkIndex is the chunk that sent the update.
	ChunkIndex int
	// Value is the raw progress value from the update (0.0 to 1.0).
	Value float64
	// AverageProgress is the completion across all chunks.
	AverageProgress float64
	// ETA is the estimated time remaining based on smoothed progress rate.
	ETA time.Duration
}

// Update processes a single progress update and returns the aggregated result.
func (a *ProgressAggregator) Update(update ProgressUpdate) AggregatedProgress {
	avgProgress, eta := a.state.UpdateWithETA(update.ChunkIndex, update.Value)
	return AggregatedProgress{
		ChunkIndex:      update.ChunkIndex,
		Value:           update.Value,
		AverageProgress: avgProgress,
		ETA:             eta,
	}
}

// CalculateAverage returns the current average progress without updating.
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// GetETA returns the current ETA estimate without updating.
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

// NumChunks returns the number of chunks being tracked.
func (a *ProgressAggregator) NumChunks() int {
	return a.numChunks
}

// DrainChannel reads all updates from the channel without processing.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
