// Package app wires configuration, logging, and the run modes together.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/agbru/mpcalc/internal/calibration"
	"github.com/agbru/mpcalc/internal/config"
	"github.com/agbru/mpcalc/internal/digits"
	"github.com/agbru/mpcalc/internal/logging"
	"github.com/agbru/mpcalc/internal/ui"
)

// Application represents the mpcalc application instance.
type Application struct {
	Config    config.AppConfig
	Log       logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom Logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Log = l }
}

// New creates a new Application instance by parsing command-line arguments.
// The threshold resolution chain runs here: an explicit flag or environment
// value wins, then a cached calibration profile, then the adaptive estimate.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "mpcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	if cfgWithProfile, loaded := calibration.LoadCachedCalibration(cfg, cfg.CalibrationProfile); loaded {
		cfg = cfgWithProfile
	} else {
		cfg = config.ApplyAdaptiveThresholds(cfg)
	}

	app.Config = cfg
	if app.Log == nil {
		app.Log = newLogger(cfg)
	}
	return app, nil
}

// newLogger builds the run logger from the output switches.
func newLogger(cfg config.AppConfig) logging.Logger {
	if cfg.JSONLog {
		return logging.NewLogger(os.Stderr, "mpcalc")
	}
	return logging.NewDefaultLogger()
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	a.Config = a.runAutoCalibrationIfEnabled(ctx, out)
	digits.ToomSqrThreshold = a.Config.ToomSqrThreshold

	if a.Config.Calibrate {
		return a.runCalibration(ctx, out)
	}
	if a.Config.SelfTest {
		return a.runSelfTest(ctx, out)
	}
	return a.runOperation(ctx, out)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
