package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/uintcalc/internal/calc"
	"github.com/agbru/uintcalc/internal/cli"
	"github.com/agbru/uintcalc/internal/config"
	apperrors "github.com/agbru/uintcalc/internal/errors"
	"github.com/agbru/uintcalc/internal/logging"
	"github.com/agbru/uintcalc/internal/metrics"
	"github.com/agbru/uintcalc/internal/server"
	"github.com/agbru/uintcalc/internal/ui"
)

// Application represents the uintcalc application instance.
type Application struct {
	Config    config.AppConfig
	Factory   calc.EngineFactory
	Metrics   *metrics.Registry
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom EngineFactory for the application.
func WithFactory(f calc.EngineFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger sets a custom logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = calc.NewDefaultFactory()
	}
	if app.Logger == nil {
		app.Logger = logging.NewNopLogger()
	}
	app.Metrics = metrics.NewRegistry()

	availableEngines := app.Factory.List()

	programName := "uintcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, availableEngines)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	ui.InitTheme(a.Config.NoColor)

	if a.Config.ServeAddr != "" {
		srv := server.New(a.Config.ServeAddr, a.Metrics, a.Logger)
		srv.Start()
		defer func() {
			if err := srv.Shutdown(context.Background()); err != nil {
				a.Logger.Error("metrics server shutdown failed", err)
			}
		}()
	}

	switch {
	case a.Config.REPL:
		return a.runREPL()
	case a.Config.Bench:
		return a.runBench(ctx, out)
	case a.Config.BatchFile != "":
		return a.runBatch(ctx, out)
	default:
		return a.runEvaluate(ctx, out)
	}
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	availableEngines := a.Factory.List()
	if err := cli.GenerateCompletion(out, a.Config.Completion, availableEngines); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runREPL starts the interactive session.
func (a *Application) runREPL() int {
	repl := cli.NewREPL(a.Factory, cli.REPLConfig{
		DefaultEngine: a.Config.Engine,
		Width:         a.Config.Width,
		Timeout:       a.Config.Timeout,
		HexOutput:     a.Config.HexOutput,
	})
	repl.Start()
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
