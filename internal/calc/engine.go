package calc

import (
	"context"
	"math/big"
	"sort"

	apperrors "github.com/agbru/uintcalc/internal/errors"
)

// Width selects the fixed evaluation width in bits.
type Width int

// Supported evaluation widths.
const (
	Width256 Width = 256
	Width512 Width = 512
)

// Valid reports whether w is a supported width.
func (w Width) Valid() bool {
	return w == Width256 || w == Width512
}

// Options carries evaluation parameters shared by all engines.
type Options struct {
	// Width is the fixed bit width all operations wrap at.
	Width Width
}

// ProgressUpdate is one progress report from a running engine.
type ProgressUpdate struct {
	// EngineIndex identifies the engine within the current run.
	EngineIndex int
	// Value is the completion fraction, 0.0 to 1.0.
	Value float64
}

// ProgressFunc receives completion fractions from an evaluation in flight.
type ProgressFunc func(float64)

// Engine evaluates expression trees over fixed-width unsigned integers.
// Implementations must apply identical wrap-around semantics so their
// results can be compared word for word.
type Engine interface {
	// Name returns the engine identifier used in CLI flags and reports.
	Name() string
	// Evaluate computes the value of the expression tree. The result is
	// returned as a non-negative big integer below 2^width for uniform
	// comparison and presentation across engines. The report callback
	// receives coarse progress; it must be non-nil.
	Evaluate(ctx context.Context, report ProgressFunc, node Node, opts Options) (*big.Int, error)
}

// EngineFactory provides named access to the registered engines.
type EngineFactory interface {
	// Get returns the engine registered under name.
	Get(name string) (Engine, error)
	// GetAll returns all registered engines, sorted by name.
	GetAll() []Engine
	// List returns the sorted engine names.
	List() []string
}

// defaultFactory is a map-backed EngineFactory.
type defaultFactory struct {
	engines map[string]Engine
}

// NewDefaultFactory returns a factory with the standard engine set: the
// uintx fixed-precision engine, the math/big reference, and the GMP oracle.
func NewDefaultFactory() EngineFactory {
	return &defaultFactory{
		engines: map[string]Engine{
			"uintx":  &UintxEngine{},
			"bigint": &BigIntEngine{},
			"gmp":    &GMPEngine{},
		},
	}
}

// Get returns the engine registered under name.
func (f *defaultFactory) Get(name string) (Engine, error) {
	engine, ok := f.engines[name]
	if !ok {
		return nil, apperrors.NewConfigError("unknown engine %q (available: %v)", name, f.List())
	}
	return engine, nil
}

// GetAll returns all registered engines, sorted by name.
func (f *defaultFactory) GetAll() []Engine {
	engines := make([]Engine, 0, len(f.engines))
	for _, name := range f.List() {
		engines = append(engines, f.engines[name])
	}
	return engines
}

// List returns the sorted engine names.
func (f *defaultFactory) List() []string {
	names := make([]string, 0, len(f.engines))
	for name := range f.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// checkContext returns the context error wrapped for the evaluation layer,
// or nil when the context is still live.
func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return apperrors.EvalError{Cause: err}
	}
	return nil
}
