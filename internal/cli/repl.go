package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/uintcalc/internal/calc"
	"github.com/agbru/uintcalc/internal/ui"
)

// REPLConfig holds configuration for the interactive session.
type REPLConfig struct {
	// DefaultEngine is the engine evaluating expressions until changed.
	DefaultEngine string
	// Width is the evaluation width in bits.
	Width int
	// Timeout is the maximum duration for each evaluation.
	Timeout time.Duration
	// HexOutput displays results in hexadecimal format.
	HexOutput bool
}

// REPL represents an interactive calculator session.
type REPL struct {
	config        REPLConfig
	factory       calc.EngineFactory
	currentEngine string
	width         int
	hexOutput     bool
	in            io.Reader
	out           io.Writer
}

// NewREPL creates a new REPL instance.
func NewREPL(factory calc.EngineFactory, cfg REPLConfig) *REPL {
	currentEngine := cfg.DefaultEngine
	if currentEngine == "" || currentEngine == "all" {
		names := factory.List()
		if len(names) > 0 {
			currentEngine = names[len(names)-1]
		}
	}
	width := cfg.Width
	if width == 0 {
		width = 256
	}

	return &REPL{
		config:        cfg,
		factory:       factory,
		currentEngine: currentEngine,
		width:         width,
		hexOutput:     cfg.HexOutput,
		in:            os.Stdin,
		out:           os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive session. It continuously reads user input
// and processes commands until the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprintf(r.out, "%su%d> %s", ui.ColorGreen(), r.width, ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processLine(input) {
			return // Exit command received
		}
	}
}

// processLine handles one line of input. Returns false when the session
// should end.
func (r *REPL) processLine(input string) bool {
	if strings.HasPrefix(input, ":") {
		return r.processCommand(input)
	}
	r.evaluate(input)
	return true
}

// processCommand handles a colon-prefixed session command.
func (r *REPL) processCommand(input string) bool {
	fields := strings.Fields(input)
	switch fields[0] {
	case ":quit", ":q", ":exit":
		fmt.Fprintln(r.out, "Goodbye!")
		return false

	case ":help", ":h":
		r.printHelp()

	case ":width", ":w":
		if len(fields) != 2 {
			fmt.Fprintf(r.out, "Current width: %d bits\n", r.width)
			break
		}
		w, err := strconv.Atoi(fields[1])
		if err != nil || (w != 256 && w != 512) {
			fmt.Fprintf(r.out, "%sWidth must be 256 or 512.%s\n", ui.ColorRed(), ui.ColorReset())
			break
		}
		r.width = w

	case ":engine":
		if len(fields) != 2 {
			fmt.Fprintf(r.out, "Current engine: %s (available: %s)\n",
				r.currentEngine, strings.Join(r.factory.List(), ", "))
			break
		}
		if _, err := r.factory.Get(fields[1]); err != nil {
			fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
			break
		}
		r.currentEngine = fields[1]

	case ":hex":
		if len(fields) == 2 {
			r.hexOutput = fields[1] == "on"
		} else {
			r.hexOutput = !r.hexOutput
		}
		fmt.Fprintf(r.out, "Hex output: %v\n", r.hexOutput)

	default:
		fmt.Fprintf(r.out, "%sUnknown command %q. Try :help.%s\n", ui.ColorRed(), fields[0], ui.ColorReset())
	}
	return true
}

// evaluate parses and evaluates one expression line.
func (r *REPL) evaluate(input string) {
	node, err := calc.Parse(input)
	if err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	engine, err := r.factory.Get(r.currentEngine)
	if err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	timeout := r.config.Timeout
	if timeout <= 0 {
		timeout = time.Minute
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	start := time.Now()
	result, err := engine.Evaluate(ctx, func(float64) {}, node, calc.Options{Width: calc.Width(r.width)})
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	DisplayResult(r.out, input, result, elapsed, OutputConfig{HexOutput: r.hexOutput})
}

// printBanner displays the welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%suintcalc — %d-bit unsigned integer calculator%s\n",
		ui.ColorBold(), r.width, ui.ColorReset())
}

// printHelp displays the command summary.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, `
Enter an expression to evaluate it, or a command:
  :width [256|512]   show or set the evaluation width
  :engine [NAME]     show or set the engine (%s)
  :hex [on|off]      toggle hexadecimal output
  :help              show this help
  :quit              leave the session
`, strings.Join(r.factory.List(), ", "))
}
