package parallel

import (
	"context"
	"math/big"
	"runtime"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/agbru/uintcalc/internal/calc"
)

// BatchItem is the outcome of evaluating one expression line.
type BatchItem struct {
	// Index is the zero-based line number of the expression.
	Index int
	// Expression is the source text.
	Expression string
	// Result is the computed value; nil on error.
	Result *big.Int
	// Duration is the per-item evaluation time.
	Duration time.Duration
	// Err holds the parse or evaluation failure, if any.
	Err error
}

// EvaluateBatch evaluates each expression through the engine with at most
// jobs concurrent evaluations (one per CPU when jobs <= 0). Results are
// returned in input order. The first context cancellation stops the
// remaining work, leaving the untouched items with the context error.
func EvaluateBatch(ctx context.Context, engine calc.Engine, expressions []string, opts calc.Options, jobs int) []BatchItem {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	items := make([]BatchItem, len(expressions))
	sem := semaphore.NewWeighted(int64(jobs))

	for i, expr := range expressions {
		items[i] = BatchItem{Index: i, Expression: expr}

		if err := sem.Acquire(ctx, 1); err != nil {
			// Context gone: mark the rest and stop spawning.
			for j := i; j < len(expressions); j++ {
				items[j].Index = j
				items[j].Expression = expressions[j]
				items[j].Err = err
			}
			break
		}

		go func(idx int, src string) {
			defer sem.Release(1)

			node, err := calc.Parse(src)
			if err != nil {
				items[idx].Err = err
				return
			}

			start := time.Now()
			result, err := engine.Evaluate(ctx, func(float64) {}, node, opts)
			items[idx].Duration = time.Since(start)
			items[idx].Result = result
			items[idx].Err = err
		}(i, expr)
	}

	// Wait for all in-flight evaluations by draining the semaphore.
	// Acquire cannot fail with Background here.
	_ = sem.Acquire(context.Background(), int64(jobs))

	return items
}
