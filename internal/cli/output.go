// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on
// their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//   - Write* functions write data to files on the filesystem.

package cli

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/uintcalc/internal/calc"
	"github.com/agbru/uintcalc/internal/config"
	"github.com/agbru/uintcalc/internal/format"
	"github.com/agbru/uintcalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses everything but the value.
	Quiet bool
	// Verbose shows the full untruncated value.
	Verbose bool
	// HexOutput renders the value in hexadecimal.
	HexOutput bool
}

// FormatValue renders a result value in the configured base.
func FormatValue(v *big.Int, hexOutput bool) string {
	if hexOutput {
		return "0x" + v.Text(16)
	}
	return v.String()
}

// FormatTruncatedValue renders a value, eliding the middle of very long
// renderings unless verbose output is requested.
func FormatTruncatedValue(v *big.Int, hexOutput, verbose bool) string {
	s := FormatValue(v, hexOutput)
	if verbose || len(s) <= TruncationLimit {
		return s
	}
	return fmt.Sprintf("%s...%s (%d digits)", s[:DisplayEdges], s[len(s)-DisplayEdges:], len(s))
}

// DisplayQuietResult writes only the value, for script consumption.
func DisplayQuietResult(out io.Writer, v *big.Int, hexOutput bool) {
	fmt.Fprintln(out, FormatValue(v, hexOutput))
}

// DisplayResult writes the standard result block: expression, value, and
// timing.
func DisplayResult(out io.Writer, expr string, v *big.Int, duration time.Duration, outputCfg OutputConfig) {
	fmt.Fprintf(out, "%s%s%s = %s%s%s\n",
		ui.ColorCyan(), expr, ui.ColorReset(),
		ui.ColorGreen(), FormatTruncatedValue(v, outputCfg.HexOutput, outputCfg.Verbose), ui.ColorReset())
	fmt.Fprintf(out, "Evaluated in %s%s%s\n",
		ui.ColorYellow(), format.FormatExecutionDuration(duration), ui.ColorReset())
}

// PrintExecutionConfig writes the resolved run parameters ahead of an
// evaluation.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "%sWidth%s: %d bits | %sEngine%s: %s | %sTimeout%s: %s\n",
		ui.ColorBold(), ui.ColorReset(), cfg.Width,
		ui.ColorBold(), ui.ColorReset(), cfg.Engine,
		ui.ColorBold(), ui.ColorReset(), cfg.Timeout)
}

// PrintExecutionMode announces which engines are about to run.
func PrintExecutionMode(engines []calc.Engine, out io.Writer) {
	if len(engines) == 1 {
		fmt.Fprintf(out, "Evaluating with the %s%s%s engine...\n",
			ui.ColorBlue(), engines[0].Name(), ui.ColorReset())
		return
	}
	fmt.Fprintf(out, "Comparing %d engines:", len(engines))
	for _, e := range engines {
		fmt.Fprintf(out, " %s%s%s", ui.ColorBlue(), e.Name(), ui.ColorReset())
	}
	fmt.Fprintln(out)
}

// WriteResultToFile writes an evaluation result to a file.
func WriteResultToFile(v *big.Int, expr string, duration time.Duration, engine string, outputCfg OutputConfig) error {
	if outputCfg.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(outputCfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(outputCfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if _, err := fmt.Fprintf(file, "# %s\n# engine: %s, %s\n%s\n",
		expr, engine, format.FormatExecutionDuration(duration),
		FormatValue(v, outputCfg.HexOutput)); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
