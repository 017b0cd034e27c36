package orchestration

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/uintcalc/internal/calc"
	apperrors "github.com/agbru/uintcalc/internal/errors"
)

// tracerName identifies this package's spans.
const tracerName = "github.com/agbru/uintcalc/internal/orchestration"

// EvaluationResult encapsulates the outcome of a single engine evaluation.
// It serves as a standardized container for results from different engines,
// facilitating comparison and reporting.
type EvaluationResult struct {
	// Name is the identifier of the engine used (e.g., "uintx").
	Name string
	// Result is the computed value. It is nil if an error occurred.
	Result *big.Int
	// Duration is the time taken to complete the evaluation.
	Duration time.Duration
	// Err contains any error that occurred during the evaluation.
	Err error
}

// ProgressBufferMultiplier defines the buffer size multiplier for the
// progress channel. A larger buffer reduces the likelihood of blocking
// evaluation goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// ExecuteEvaluations orchestrates the concurrent evaluation of one
// expression through one or more engines.
//
// It manages the lifecycle of the evaluation goroutines, collects their
// results, and coordinates the display of progress updates. Each engine run
// is wrapped in an OpenTelemetry span carrying the engine name and width.
func ExecuteEvaluations(ctx context.Context, engines []calc.Engine, node calc.Node, opts calc.Options, progressReporter ProgressReporter, out io.Writer) []EvaluationResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]EvaluationResult, len(engines))
	progressChan := make(chan calc.ProgressUpdate, len(engines)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(engines), out)

	tracer := otel.Tracer(tracerName)

	for i, eng := range engines {
		idx, engine := i, eng
		g.Go(func() error {
			spanCtx, span := tracer.Start(ctx, "evaluate")
			span.SetAttributes(
				attribute.String("engine", engine.Name()),
				attribute.Int("width", int(opts.Width)),
			)
			defer span.End()

			report := func(v float64) {
				select {
				case progressChan <- calc.ProgressUpdate{EngineIndex: idx, Value: v}:
				default:
					// Never block an engine on a slow consumer.
				}
			}

			startTime := time.Now()
			res, err := engine.Evaluate(spanCtx, report, node, opts)
			results[idx] = EvaluationResult{
				Name: engine.Name(), Result: res, Duration: time.Since(startTime), Err: err,
			}
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults processes the results from multiple engines and
// generates a summary report.
//
// It sorts the results by execution time, validates consistency across
// successful evaluations, and displays a comparative table. It handles the
// logic for determining global success or failure based on the individual
// outcomes.
func AnalyzeComparisonResults(results []EvaluationResult, opts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValidResult *EvaluationResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
			if firstValidResult == nil {
				firstValidResult = &results[i]
			}
		}
	}

	// Present the comparison table
	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No engine could complete the evaluation.\n")
		return errHandler.HandleError(firstError, 0, out)
	}

	mismatch := false
	for _, res := range results {
		if res.Err == nil && res.Result.Cmp(firstValidResult.Result) != 0 {
			mismatch = true
			break
		}
	}
	if mismatch {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! An inconsistency was detected between the results of the engines.\n")
		return apperrors.ExitErrorMismatch
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	presenter.PresentResult(*firstValidResult, opts, out)
	return apperrors.ExitSuccess
}
