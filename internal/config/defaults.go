package config

import "runtime"

// Worker and chunk resolution chain (highest priority first):
//   1. CLI flags (--workers, --chunk-size)
//   2. Environment variables (NUMWORDS_WORKERS, NUMWORDS_CHUNK_SIZE)
//   3. Hardware estimation (this file)

// ApplyAdaptiveDefaults fills in Workers when it is left at its zero
// default. ChunkSize stays zero so the orchestrator can size chunks from the
// input length.
func ApplyAdaptiveDefaults(cfg AppConfig) AppConfig {
	if cfg.Workers == 0 {
		cfg.Workers = EstimateWorkers()
	}
	return cfg
}

// EstimateWorkers returns the default conversion parallelism.
func EstimateWorkers() int {
	return max(runtime.NumCPU(), 1)
}

// EstimateChunkSize splits n values into roughly four chunks per worker so
// a slow chunk does not leave the other workers idle. Small inputs get a
// single chunk.
func EstimateChunkSize(n, workers int) int {
	const minChunk = 64
	if workers < 1 {
		workers = 1
	}
	size := n / (workers * 4)
	if size < minChunk {
		size = minChunk
	}
	return size
}
