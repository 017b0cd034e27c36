// Package bench measures the throughput of the core uintx operations.
// It drives the --bench CLI mode and feeds the live dashboard, and can
// persist its results as a profile for later comparison, so regressions in
// the arithmetic kernels show up between runs.
package bench

import (
	"context"
	"math/rand"
	"time"

	"github.com/agbru/uintcalc/uintx"
)

// batchSize is the number of operations timed per clock read.
const batchSize = 1024

// operandSeed fixes the operand stream so profiles are comparable between
// runs.
const operandSeed = 0x75696e7478

// Operation is one benchmarkable core operation.
type Operation struct {
	// Name identifies the operation in results and metrics.
	Name string
	// run executes one batch of the operation over the operand set.
	run func(ops *operands)
}

// Result is the measured throughput of one operation.
type Result struct {
	// Name identifies the operation.
	Name string `json:"name"`
	// OpsPerSecond is the measured throughput.
	OpsPerSecond float64 `json:"ops_per_second"`
	// Iterations is the total number of operations executed.
	Iterations int `json:"iterations"`
	// Elapsed is the wall-clock measurement window used.
	Elapsed time.Duration `json:"elapsed"`
}

// operands is the shared pre-generated input set. Divisors are never zero;
// the modulus keeps its top word populated so the modular fast path is
// exercised.
type operands struct {
	xs, ys   []uintx.Uint256
	divisors []uintx.Uint256
	modulus  uintx.Uint256
	sink     uintx.Uint256
	sink512  uintx.Uint512
}

func newOperands() *operands {
	rng := rand.New(rand.NewSource(operandSeed))
	o := &operands{
		xs:       make([]uintx.Uint256, batchSize),
		ys:       make([]uintx.Uint256, batchSize),
		divisors: make([]uintx.Uint256, batchSize),
	}
	for i := 0; i < batchSize; i++ {
		for w := 0; w < 4; w++ {
			o.xs[i][w] = rng.Uint64()
			o.ys[i][w] = rng.Uint64()
		}
		// Divisor widths cycle through the fast-path classes.
		words := 1 + i%4
		for w := 0; w < words; w++ {
			o.divisors[i][w] = rng.Uint64()
		}
		if o.divisors[i].IsZero() {
			o.divisors[i] = uintx.U256From64(1)
		}
	}
	o.modulus = uintx.MustU256("0xfffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")
	return o
}

// Operations returns the standard benchmark set covering every layer of
// the arithmetic core.
func Operations() []Operation {
	return []Operation{
		{Name: "add", run: func(o *operands) {
			for i := 0; i < batchSize; i++ {
				o.sink = o.xs[i].Add(o.ys[i])
			}
		}},
		{Name: "sub", run: func(o *operands) {
			for i := 0; i < batchSize; i++ {
				o.sink = o.xs[i].Sub(o.ys[i])
			}
		}},
		{Name: "mul", run: func(o *operands) {
			for i := 0; i < batchSize; i++ {
				o.sink = o.xs[i].Mul(o.ys[i])
			}
		}},
		{Name: "mulfull", run: func(o *operands) {
			for i := 0; i < batchSize; i++ {
				o.sink512 = o.xs[i].MulFull(o.ys[i])
			}
		}},
		{Name: "sqr", run: func(o *operands) {
			for i := 0; i < batchSize; i++ {
				o.sink = o.xs[i].Sqr()
			}
		}},
		{Name: "divrem", run: func(o *operands) {
			for i := 0; i < batchSize; i++ {
				o.sink, _ = o.xs[i].DivRem(o.divisors[i])
			}
		}},
		{Name: "addmod", run: func(o *operands) {
			for i := 0; i < batchSize; i++ {
				o.sink = o.xs[i].AddMod(o.ys[i], o.modulus)
			}
		}},
		{Name: "mulmod", run: func(o *operands) {
			for i := 0; i < batchSize; i++ {
				o.sink = o.xs[i].MulMod(o.ys[i], o.modulus)
			}
		}},
		{Name: "lsh", run: func(o *operands) {
			for i := 0; i < batchSize; i++ {
				o.sink = o.xs[i].Lsh(uint(i % 256))
			}
		}},
	}
}

// Run measures each operation over the given window, invoking onResult as
// each finishes (for live display). Cancelled contexts end the run early,
// returning the results collected so far.
func Run(ctx context.Context, operations []Operation, window time.Duration, onResult func(Result)) []Result {
	ops := newOperands()
	results := make([]Result, 0, len(operations))

	for _, op := range operations {
		if ctx.Err() != nil {
			break
		}

		iterations := 0
		start := time.Now()
		var elapsed time.Duration
		for elapsed < window {
			if ctx.Err() != nil {
				break
			}
			op.run(ops)
			iterations += batchSize
			elapsed = time.Since(start)
		}

		res := Result{
			Name:         op.Name,
			OpsPerSecond: float64(iterations) / elapsed.Seconds(),
			Iterations:   iterations,
			Elapsed:      elapsed,
		}
		results = append(results, res)
		if onResult != nil {
			onResult(res)
		}
	}
	return results
}
