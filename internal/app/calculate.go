package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/agbru/uintcalc/internal/bench"
	"github.com/agbru/uintcalc/internal/calc"
	"github.com/agbru/uintcalc/internal/cli"
	apperrors "github.com/agbru/uintcalc/internal/errors"
	"github.com/agbru/uintcalc/internal/format"
	"github.com/agbru/uintcalc/internal/logging"
	"github.com/agbru/uintcalc/internal/orchestration"
	"github.com/agbru/uintcalc/internal/parallel"
	"github.com/agbru/uintcalc/internal/tui"
	"github.com/agbru/uintcalc/internal/ui"
)

// withLifecycle wraps ctx with the configured timeout and signal handling.
func (a *Application) withLifecycle(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	return ctx, func() {
		stopSignals()
		cancelTimeout()
	}
}

// runEvaluate orchestrates the single-expression CLI mode.
func (a *Application) runEvaluate(ctx context.Context, out io.Writer) int {
	ctx, cancel := a.withLifecycle(ctx)
	defer cancel()

	node, err := calc.Parse(a.Config.Expression)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return apperrors.ExitErrorConfig
	}

	enginesToRun := orchestration.GetEnginesToRun(a.Config.Engine, a.Factory)
	if len(enginesToRun) == 0 {
		fmt.Fprintf(a.ErrWriter, "no engine named %q\n", a.Config.Engine)
		return apperrors.ExitErrorConfig
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(enginesToRun, out)
	}

	// Choose progress reporter based on quiet mode
	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	results := orchestration.ExecuteEvaluations(ctx, enginesToRun, node, a.Config.ToOptions(), progressReporter, progressOut)
	for _, res := range results {
		a.Metrics.ObserveEvaluation(res.Name, res.Duration, res.Err)
	}

	presentOpts := orchestration.PresentationOptions{
		Expression: a.Config.Expression,
		Verbose:    a.Config.Verbose,
		HexOutput:  a.Config.HexOutput,
		Quiet:      a.Config.Quiet,
	}
	presenter := cli.CLIResultPresenter{}

	if len(results) == 1 {
		return a.presentSingleResult(results[0], presentOpts, presenter, out)
	}
	code := orchestration.AnalyzeComparisonResults(results, presentOpts, presenter, presenter, out)
	if code == apperrors.ExitSuccess {
		a.writeOutputFile(results[0], out)
	}
	return code
}

// presentSingleResult handles the one-engine output path.
func (a *Application) presentSingleResult(result orchestration.EvaluationResult, opts orchestration.PresentationOptions, presenter cli.CLIResultPresenter, out io.Writer) int {
	if result.Err != nil {
		return presenter.HandleError(result.Err, result.Duration, a.ErrWriter)
	}
	presenter.PresentResult(result, opts, out)
	a.writeOutputFile(result, out)
	return apperrors.ExitSuccess
}

// writeOutputFile persists the result when an output file is configured.
func (a *Application) writeOutputFile(result orchestration.EvaluationResult, out io.Writer) {
	if a.Config.OutputFile == "" || result.Err != nil {
		return
	}
	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		HexOutput:  a.Config.HexOutput,
	}
	if err := cli.WriteResultToFile(result.Result, a.Config.Expression, result.Duration, result.Name, outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Warning: %v\n", err)
		return
	}
	if !a.Config.Quiet {
		fmt.Fprintf(out, "Result written to %s\n", a.Config.OutputFile)
	}
}

// runBatch evaluates one expression per line from the configured file.
func (a *Application) runBatch(ctx context.Context, out io.Writer) int {
	ctx, cancel := a.withLifecycle(ctx)
	defer cancel()

	data, err := os.ReadFile(a.Config.BatchFile)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "cannot read batch file: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	var expressions []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		expressions = append(expressions, line)
	}
	if len(expressions) == 0 {
		fmt.Fprintf(a.ErrWriter, "batch file %s contains no expressions\n", a.Config.BatchFile)
		return apperrors.ExitErrorConfig
	}

	engine, err := a.Factory.Get(batchEngineName(a.Config.Engine))
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "%v\n", err)
		return apperrors.ExitErrorConfig
	}

	start := time.Now()
	items := parallel.EvaluateBatch(ctx, engine, expressions, a.Config.ToOptions(), a.Config.Jobs)

	failures := 0
	for _, item := range items {
		if item.Err != nil {
			failures++
			fmt.Fprintf(out, "%s%s: %v%s\n", ui.ColorRed(), item.Expression, item.Err, ui.ColorReset())
			continue
		}
		a.Metrics.ObserveEvaluation(engine.Name(), item.Duration, nil)
		if a.Config.Quiet {
			cli.DisplayQuietResult(out, item.Result, a.Config.HexOutput)
		} else {
			fmt.Fprintf(out, "%s = %s\n", item.Expression, cli.FormatTruncatedValue(item.Result, a.Config.HexOutput, a.Config.Verbose))
		}
	}

	if !a.Config.Quiet {
		fmt.Fprintf(out, "\n%d expressions in %s (%d failed)\n",
			len(items), format.FormatExecutionDuration(time.Since(start)), failures)
	}
	if failures > 0 {
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// batchEngineName resolves the engine for batch mode, where "all" has no
// comparison semantics and falls back to the default engine.
func batchEngineName(name string) string {
	if name == "all" {
		return "uintx"
	}
	return name
}

// runBench runs the throughput benchmark, either on the live dashboard or
// as plain text.
func (a *Application) runBench(ctx context.Context, out io.Writer) int {
	ctx, cancel := a.withLifecycle(ctx)
	defer cancel()

	if a.Config.TUI {
		return tui.Run(ctx, a.Config, Version)
	}

	if !a.Config.Quiet {
		fmt.Fprintf(out, "Benchmarking %d operations (%s each, GOMAXPROCS=%d)...\n",
			len(bench.Operations()), a.Config.BenchDuration, runtime.GOMAXPROCS(0))
	}

	results := bench.Run(ctx, bench.Operations(), a.Config.BenchDuration, func(r bench.Result) {
		a.Metrics.SetBenchThroughput(r.Name, r.OpsPerSecond)
		if !a.Config.Quiet {
			fmt.Fprintf(out, "  %-8s %s%s%s ops/s\n", r.Name,
				ui.ColorYellow(), format.FormatNumberString(fmt.Sprintf("%.0f", r.OpsPerSecond)), ui.ColorReset())
		}
	})
	if ctx.Err() != nil && len(results) < len(bench.Operations()) {
		fmt.Fprintf(a.ErrWriter, "benchmark interrupted\n")
		return apperrors.ExitErrorCanceled
	}

	if path := bench.DefaultProfilePath(); path != "" {
		profile := bench.Profile{
			Timestamp: time.Now().UTC(),
			GoOS:      runtime.GOOS,
			GoArch:    runtime.GOARCH,
			Results:   results,
		}
		if err := bench.SaveProfile(path, profile); err != nil {
			a.Logger.Warn("could not persist benchmark profile", logging.Err(err))
		} else if !a.Config.Quiet {
			fmt.Fprintf(out, "Profile saved to %s\n", path)
		}
	}
	return apperrors.ExitSuccess
}
