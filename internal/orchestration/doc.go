// Package orchestration coordinates concurrent batch conversion of numbers to
// words. It decouples the conversion loop from presentation via the
// ProgressReporter and ResultPresenter interfaces.
package orchestration
