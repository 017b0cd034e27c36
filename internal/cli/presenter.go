package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/agbru/uintcalc/internal/calc"
	apperrors "github.com/agbru/uintcalc/internal/errors"
	"github.com/agbru/uintcalc/internal/format"
	"github.com/agbru/uintcalc/internal/orchestration"
	"github.com/agbru/uintcalc/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter for CLI
// output. It wraps the DisplayProgress function to provide a spinner and
// progress bar display during evaluations.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for ongoing
// evaluations.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan calc.ProgressUpdate, numEngines int, out io.Writer) {
	DisplayProgress(wg, progressChan, numEngines, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for CLI
// output. It provides formatted, colorized output for evaluation results in
// the command-line interface.
type CLIResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter   = CLIResultPresenter{}
	_ orchestration.DurationFormatter = CLIResultPresenter{}
	_ orchestration.ErrorHandler      = CLIResultPresenter{}
)

// PresentComparisonTable displays the comparison summary table with engine
// names, durations, and status in a formatted tabular layout. Uses manual
// padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.EvaluationResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	// Find the maximum name and duration widths for proper alignment
	maxNameLen := 6     // "Engine" header length
	maxDurationLen := 8 // "Duration" header length
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		duration := formatResultDuration(res.Duration)
		if len(duration) > maxDurationLen {
			maxDurationLen = len(duration)
		}
	}

	fmt.Fprintf(out, "%sEngine%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight(maxNameLen-6),
		ui.ColorUnderline(), ui.ColorReset(), padRight(maxDurationLen-8),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s✗ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✓ Success%s", ui.ColorGreen(), ui.ColorReset())
		}
		duration := formatResultDuration(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(), padRight(maxNameLen-len(res.Name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight(maxDurationLen-len(duration)),
			status)
	}
}

// PresentResult displays the final evaluation result.
func (CLIResultPresenter) PresentResult(result orchestration.EvaluationResult, opts orchestration.PresentationOptions, out io.Writer) {
	outputCfg := OutputConfig{
		Quiet:     opts.Quiet,
		Verbose:   opts.Verbose,
		HexOutput: opts.HexOutput,
	}
	if opts.Quiet {
		DisplayQuietResult(out, result.Result, opts.HexOutput)
		return
	}
	fmt.Fprintln(out)
	DisplayResult(out, opts.Expression, result.Result, result.Duration, outputCfg)
}

// FormatDuration formats a duration for display.
func (CLIResultPresenter) FormatDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

// HandleError maps an evaluation error to an exit code with a user-facing
// message.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	switch {
	case err == nil:
		return apperrors.ExitSuccess
	case apperrors.IsContextError(err):
		fmt.Fprintf(out, "%sEvaluation canceled after %s.%s\n",
			ui.ColorRed(), format.FormatExecutionDuration(duration), ui.ColorReset())
		return apperrors.ExitErrorCanceled
	default:
		fmt.Fprintf(out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return apperrors.ExitErrorGeneric
	}
}

// formatResultDuration renders a duration, substituting a floor marker for
// unmeasurably fast runs.
func formatResultDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// padRight returns a string of spaces with the given length.
func padRight(length int) string {
	if length <= 0 {
		return ""
	}
	return strings.Repeat(" ", length)
}
