// Package config defines the application configuration and its resolution
// chain: CLI flags take priority over environment variables, which take
// priority over defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/agbru/uintcalc/internal/calc"
	apperrors "github.com/agbru/uintcalc/internal/errors"
)

// EnvPrefix is the prefix of all environment variables read by the
// application (e.g. UINTCALC_WIDTH).
const EnvPrefix = "UINTCALC_"

// Default configuration values.
const (
	DefaultWidth   = 256
	DefaultEngine  = "uintx"
	DefaultTimeout = 5 * time.Minute
	DefaultJobs    = 0 // 0 = runtime.NumCPU at the point of use
)

// AppConfig holds the fully resolved application configuration.
type AppConfig struct {
	// Expression is the expression to evaluate (-e). Empty selects another
	// mode (REPL, batch, bench) or is a configuration error.
	Expression string
	// Width is the fixed evaluation width in bits: 256 or 512.
	Width int
	// Engine selects the evaluation engine by name, or "all" to run every
	// registered engine and compare results.
	Engine string
	// Timeout bounds a single evaluation or batch run.
	Timeout time.Duration
	// Verbose enables detailed output.
	Verbose bool
	// Quiet suppresses everything except the result value.
	Quiet bool
	// HexOutput renders results in hexadecimal.
	HexOutput bool
	// REPL starts the interactive session.
	REPL bool
	// BatchFile evaluates one expression per line from the given file.
	BatchFile string
	// Jobs bounds batch-mode parallelism; 0 means one per CPU.
	Jobs int
	// Bench runs the operation throughput benchmark.
	Bench bool
	// BenchDuration is the measurement window per benchmarked operation.
	BenchDuration time.Duration
	// TUI shows the live dashboard (benchmark mode).
	TUI bool
	// ServeAddr, when non-empty, exposes Prometheus metrics on this address.
	ServeAddr string
	// OutputFile, when non-empty, also writes the result there.
	OutputFile string
	// Completion selects shell completion generation (bash, zsh, fish).
	Completion string
	// NoColor disables all color output.
	NoColor bool
}

// ToOptions converts the configuration to engine evaluation options.
func (c AppConfig) ToOptions() calc.Options {
	return calc.Options{Width: calc.Width(c.Width)}
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment overrides for flags left unset, and validates the result.
// availableEngines is used for validation and error messages.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableEngines []string) (AppConfig, error) {
	cfg := AppConfig{
		Width:         DefaultWidth,
		Engine:        DefaultEngine,
		Timeout:       DefaultTimeout,
		Jobs:          DefaultJobs,
		BenchDuration: time.Second,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [options]\n\n", programName)
		fmt.Fprintf(errWriter, "Fixed-width unsigned integer calculator (256/512 bits).\n\n")
		fmt.Fprintf(errWriter, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(errWriter, "\nExamples:\n")
		fmt.Fprintf(errWriter, "  %s -e '(2 ** 255 - 19) %% 0xffff'\n", programName)
		fmt.Fprintf(errWriter, "  %s -e '1 << 500' --width 512 --engine all\n", programName)
		fmt.Fprintf(errWriter, "  %s --repl\n", programName)
		fmt.Fprintf(errWriter, "  %s --bench --tui\n", programName)
	}

	fs.StringVar(&cfg.Expression, "e", cfg.Expression, "Expression to evaluate")
	fs.StringVar(&cfg.Expression, "expression", cfg.Expression, "Expression to evaluate (long form)")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Evaluation width in bits (256 or 512)")
	fs.StringVar(&cfg.Engine, "engine", cfg.Engine, fmt.Sprintf("Engine to use (%v or 'all')", availableEngines))
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Maximum execution time")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose output (long form)")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "Quiet mode: print only the result")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "Quiet mode (long form)")
	fs.BoolVar(&cfg.HexOutput, "x", cfg.HexOutput, "Hexadecimal output")
	fs.BoolVar(&cfg.HexOutput, "hex", cfg.HexOutput, "Hexadecimal output (long form)")
	fs.BoolVar(&cfg.REPL, "repl", cfg.REPL, "Start the interactive session")
	fs.StringVar(&cfg.BatchFile, "batch", cfg.BatchFile, "Evaluate one expression per line from file")
	fs.IntVar(&cfg.Jobs, "jobs", cfg.Jobs, "Batch parallelism (0 = number of CPUs)")
	fs.BoolVar(&cfg.Bench, "bench", cfg.Bench, "Run the operation throughput benchmark")
	fs.DurationVar(&cfg.BenchDuration, "bench-duration", cfg.BenchDuration, "Measurement window per benchmarked operation")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "Show the live dashboard (with --bench)")
	fs.StringVar(&cfg.ServeAddr, "serve", cfg.ServeAddr, "Expose Prometheus metrics on this address (e.g. :9090)")
	fs.StringVar(&cfg.OutputFile, "o", cfg.OutputFile, "Also write the result to this file")
	fs.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "Output file (long form)")
	fs.StringVar(&cfg.Completion, "completion", cfg.Completion, "Generate shell completion (bash, zsh, fish)")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable color output")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %v (use -e to pass an expression)", fs.Args())
	}

	applyEnvOverrides(&cfg, fs)

	if err := validate(cfg, availableEngines); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// validate checks cross-field consistency after flags and environment have
// been applied.
func validate(cfg AppConfig, availableEngines []string) error {
	if cfg.Width != 256 && cfg.Width != 512 {
		return apperrors.NewConfigError("invalid width %d: must be 256 or 512", cfg.Width)
	}
	if cfg.Engine != "all" && !slices.Contains(availableEngines, cfg.Engine) {
		return apperrors.NewConfigError("unknown engine %q (available: %v or 'all')", cfg.Engine, availableEngines)
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.Jobs < 0 {
		return apperrors.NewConfigError("jobs must be non-negative, got %d", cfg.Jobs)
	}
	if cfg.Completion != "" {
		return nil // completion generation ignores the run modes
	}

	modes := 0
	for _, selected := range []bool{cfg.Expression != "", cfg.REPL, cfg.BatchFile != "", cfg.Bench} {
		if selected {
			modes++
		}
	}
	switch {
	case modes == 0:
		return apperrors.NewConfigError("nothing to do: pass -e EXPR, --repl, --batch FILE, or --bench")
	case modes > 1:
		return apperrors.NewConfigError("choose exactly one of -e, --repl, --batch, --bench")
	}
	if cfg.TUI && !cfg.Bench {
		return apperrors.NewConfigError("--tui requires --bench")
	}
	if cfg.Quiet && cfg.Verbose {
		return apperrors.NewConfigError("--quiet and --verbose are mutually exclusive")
	}
	return nil
}
