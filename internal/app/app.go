package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/bigdemo/internal/bignum"
	"github.com/agbru/bigdemo/internal/config"
	"github.com/agbru/bigdemo/internal/logging"
	"github.com/agbru/bigdemo/internal/ui"
)

// Application represents the bigdemo application instance.
type Application struct {
	Config    config.AppConfig
	Factory   *bignum.Factory
	ErrWriter io.Writer
	Logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom backend factory for the application.
func WithFactory(f *bignum.Factory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger sets the logger used for diagnostics. By default a console
// logger on the error writer is created once the configuration is known.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = bignum.GlobalFactory()
	}

	programName := "bigdemo"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		level := zerolog.WarnLevel
		if cfg.Verbose {
			level = zerolog.DebugLevel
		}
		app.Logger = logging.NewConsoleLogger(errWriter, "bigdemo", level)
	}
	return app, nil
}

// Run executes the pipeline and writes the report to out. It returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)
	return a.runCompute(ctx, out)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
