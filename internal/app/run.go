// Mode runners: arithmetic operations, calibration, and the self-test.

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/mpcalc/internal/calibration"
	"github.com/agbru/mpcalc/internal/cli"
	"github.com/agbru/mpcalc/internal/config"
	"github.com/agbru/mpcalc/internal/digits"
	apperrors "github.com/agbru/mpcalc/internal/errors"
	"github.com/agbru/mpcalc/internal/logging"
	"github.com/agbru/mpcalc/internal/metrics"
	"github.com/agbru/mpcalc/internal/selftest"
	"github.com/agbru/mpcalc/internal/ui"
)

// runOperation executes the requested arithmetic operation and presents the
// result.
func (a *Application) runOperation(ctx context.Context, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if a.Config.Verbose {
		cli.PrintExecutionConfig(a.Config, out)
	}

	operands := make([]*digits.Int, len(a.Config.Operands))
	fields := []string{"a", "b"}
	if a.Config.Op == config.OpJacobi {
		fields = []string{"a", "n"}
	}
	for i, text := range a.Config.Operands {
		x, err := cli.ParseOperand(fields[i], text)
		if err != nil {
			return a.fail(err, out)
		}
		operands[i] = x
	}
	if err := ctx.Err(); err != nil {
		return a.fail(err, out)
	}

	before := metrics.TakeSnapshot()
	start := time.Now()

	var exitCode int
	switch a.Config.Op {
	case config.OpMul:
		exitCode = a.runMul(operands[0], operands[1], start, out)
	case config.OpSqr:
		exitCode = a.runSqr(operands[0], start, out)
	case config.OpJacobi:
		exitCode = a.runJacobi(operands[0], operands[1], start, out)
	default:
		// ParseConfig rejects unknown operations; this is unreachable.
		exitCode = a.fail(apperrors.NewConfigError("unknown operation %q", a.Config.Op), out)
	}

	if exitCode == apperrors.ExitSuccess && a.Config.Verbose {
		cli.DisplayMemoryStats(metrics.TakeSnapshot().Delta(before), out)
	}
	return exitCode
}

func (a *Application) runMul(x, y *digits.Int, start time.Time, out io.Writer) int {
	var z digits.Int
	if err := z.Mul(x, y); err != nil {
		return a.fail(err, out)
	}
	duration := time.Since(start)
	a.Log.Debug("multiplication complete",
		logging.Int("x_digits", x.Used()),
		logging.Int("y_digits", y.Used()),
		logging.Int("z_digits", z.Used()),
		logging.Dur("duration", duration))
	cli.DisplayResult("mul(a, b)", &z, duration, a.Config, out)
	return apperrors.ExitSuccess
}

func (a *Application) runSqr(x *digits.Int, start time.Time, out io.Writer) int {
	var z digits.Int
	if err := z.Sqr(x); err != nil {
		return a.fail(err, out)
	}
	duration := time.Since(start)
	a.Log.Debug("squaring complete",
		logging.Int("x_digits", x.Used()),
		logging.Int("z_digits", z.Used()),
		logging.Int("threshold", digits.ToomSqrThreshold),
		logging.Dur("duration", duration))
	cli.DisplayResult("sqr(a)", &z, duration, a.Config, out)
	return apperrors.ExitSuccess
}

func (a *Application) runJacobi(x, n *digits.Int, start time.Time, out io.Writer) int {
	v, err := digits.Jacobi(x, n)
	if err != nil {
		return a.fail(err, out)
	}
	cli.DisplaySymbolResult("jacobi(a, n)", v, time.Since(start), out)
	return apperrors.ExitSuccess
}

// runAutoCalibrationIfEnabled runs the quick calibration pass when requested,
// returning the configuration with the measured threshold applied. The full
// calibration mode supersedes it.
func (a *Application) runAutoCalibrationIfEnabled(ctx context.Context, out io.Writer) config.AppConfig {
	if a.Config.AutoCalibrate && !a.Config.Calibrate {
		if updated, ok := calibration.AutoCalibrate(ctx, a.Config, out); ok {
			return updated
		}
	}
	return a.Config
}

// runCalibration runs the full calibration mode.
func (a *Application) runCalibration(ctx context.Context, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	progress := cli.NewProgressDisplay(out)
	defer progress.Stop()
	code := calibration.RunCalibration(ctx, a.Config, out, func(current, total, threshold int) {
		progress.UpdateStep(current, total, threshold)
	})
	progress.Stop()
	return code
}

// runSelfTest cross-validates the engine against the reference and maps a
// divergence to the mismatch exit code.
func (a *Application) runSelfTest(ctx context.Context, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	progress := cli.NewProgressDisplay(out)
	report, err := selftest.Run(ctx, selftest.Options{Rounds: a.Config.SelfTestRounds}, a.Log, progress.Update)
	progress.Stop()

	if err != nil {
		var mismatch apperrors.MismatchError
		if errors.As(err, &mismatch) {
			fmt.Fprintf(out, "%sSelf-test FAILED%s: %v\n", ui.ColorRed(), ui.ColorReset(), err)
			return apperrors.ExitErrorMismatch
		}
		return a.fail(err, out)
	}

	fmt.Fprintf(out, "%sSelf-test passed%s: %d rounds in %s\n",
		ui.ColorGreen(), ui.ColorReset(), report.Rounds, report.Duration.Round(time.Millisecond))
	return apperrors.ExitSuccess
}

// fail reports an error and returns the matching exit code.
func (a *Application) fail(err error, out io.Writer) int {
	a.Log.Error("run failed", err)
	fmt.Fprintf(out, "%sError%s: %v\n", ui.ColorRed(), ui.ColorReset(), err)

	var cfgErr apperrors.ConfigError
	var valErr apperrors.ValidationError
	if errors.As(err, &cfgErr) || errors.As(err, &valErr) {
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitErrorGeneric
}
