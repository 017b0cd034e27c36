//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/uintcalc/internal/calc"
	"github.com/agbru/uintcalc/internal/format"
	"github.com/agbru/uintcalc/internal/orchestration"
)

const (
	// TruncationLimit is the digit threshold from which a result is
	// truncated in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of digits to display at the
	// beginning and end of a truncated number.
	DisplayEdges = 25
	// ProgressRefreshRate defines the refresh frequency of the progress
	// display.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows the progress display to be decoupled from a specific spinner
// implementation, facilitating easier testing.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the spinner.Spinner that implements the
// Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

// newSpinner builds the spinner used by DisplayProgress. It is a variable
// so tests can substitute a mock.
var newSpinner = func(options ...spinner.Option) Spinner {
	// Using the same interval as ProgressRefreshRate to synchronize
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress consumes engine progress updates and renders a spinner
// with an aggregated progress bar and ETA. It runs until progressChan is
// closed and then signals wg.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan calc.ProgressUpdate, numEngines int, out io.Writer) {
	defer wg.Done()

	agg := orchestration.NewProgressAggregator(numEngines)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	sp := newSpinner(spinner.WithWriter(out))
	sp.Start()
	defer sp.Stop()

	for update := range progressChan {
		p := agg.Update(update)
		sp.UpdateSuffix(fmt.Sprintf(" %s", format.FormatProgressBarWithETA(p.AverageProgress, p.ETA, ProgressBarWidth)))
	}
}
