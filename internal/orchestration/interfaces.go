package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/uintcalc/internal/calc"
)

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Expression string
	Verbose    bool
	HexOutput  bool
	Quiet      bool
}

// ProgressReporter defines the interface for displaying evaluation progress.
// This interface decouples the orchestration layer from the presentation
// layer: the orchestration layer coordinates the evaluations while
// implementations handle the visual representation (spinners, progress
// bars, dashboard panes).
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until
	// progressChan is closed.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan calc.ProgressUpdate, numEngines int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements
// ProgressReporter. This allows passing a function directly where a
// ProgressReporter is expected.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan calc.ProgressUpdate, numEngines int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan calc.ProgressUpdate, numEngines int, out io.Writer) {
	f(wg, progressChan, numEngines, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan calc.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		// Drain channel silently
	}
}

// ResultPresenter defines the interface for presenting evaluation results.
// This decouples the orchestration layer from presentation concerns,
// allowing different output formats without modifying the orchestration
// logic.
type ResultPresenter interface {
	// PresentComparisonTable displays the comparison summary table.
	PresentComparisonTable(results []EvaluationResult, out io.Writer)

	// PresentResult displays the final evaluation result.
	PresentResult(result EvaluationResult, opts PresentationOptions, out io.Writer)
}

// DurationFormatter formats durations for display.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}

// ErrorHandler handles evaluation errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
