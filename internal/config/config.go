// Package config defines the application configuration, command-line flag
// parsing, and environment variable overrides.
package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/agbru/mpcalc/internal/digits"
	apperrors "github.com/agbru/mpcalc/internal/errors"
)

// EnvPrefix is the prefix for all environment variable overrides.
const EnvPrefix = "MPCALC_"

// Operation names accepted as the first positional argument.
const (
	OpMul    = "mul"
	OpSqr    = "sqr"
	OpJacobi = "jacobi"
)

// AppConfig holds the complete runtime configuration of the application.
type AppConfig struct {
	// Op is the requested arithmetic operation: OpMul, OpSqr or OpJacobi.
	// Empty when a mode flag (Calibrate, SelfTest) selects the run mode.
	Op string
	// Operands are the operation's positional arguments, as written by the
	// user (decimal, or hexadecimal with a 0x prefix).
	Operands []string

	// ToomSqrThreshold is the Comba→Toom-Cook squaring crossover in digits.
	// Zero means "not set": resolved by the calibration profile, the
	// adaptive estimate, or the static default, in that order.
	ToomSqrThreshold int

	// Calibrate runs threshold calibration and stores the profile.
	Calibrate bool
	// AutoCalibrate runs a quick calibration pass before the operation and
	// caches the winner, so later runs start from a measured threshold.
	AutoCalibrate bool
	// SelfTest cross-validates the engine against the reference.
	SelfTest bool
	// SelfTestRounds is the number of randomized self-test rounds.
	SelfTestRounds int

	// Hex prints results in hexadecimal.
	Hex bool
	// Verbose enables debug logging and timing details.
	Verbose bool
	// JSONLog switches logging from console to JSON lines.
	JSONLog bool
	// NoColor disables ANSI colors in output.
	NoColor bool

	// CalibrationProfile overrides the calibration profile path.
	CalibrationProfile string
}

// operandCount maps each operation to its required operand count.
var operandCount = map[string]int{
	OpMul:    2,
	OpSqr:    1,
	OpJacobi: 2,
}

// ParseConfig parses command-line arguments into an AppConfig, applying
// environment variable overrides for flags not set explicitly.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments, without the program name.
//   - errWriter: Destination for usage and error output.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp when help was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	var cfg AppConfig
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.IntVar(&cfg.ToomSqrThreshold, "toom-threshold", 0,
		"Toom-Cook squaring threshold in digits (0 = auto)")
	fs.BoolVar(&cfg.Calibrate, "calibrate", false,
		"run threshold calibration and cache the result")
	fs.BoolVar(&cfg.AutoCalibrate, "auto-calibrate", false,
		"quick-calibrate the squaring threshold before running")
	fs.BoolVar(&cfg.SelfTest, "selftest", false,
		"cross-validate the engine against math/big")
	fs.IntVar(&cfg.SelfTestRounds, "selftest-rounds", 1000,
		"number of randomized self-test rounds")
	fs.BoolVar(&cfg.Hex, "hex", false, "print results in hexadecimal")
	fs.BoolVar(&cfg.Verbose, "v", false, "enable verbose logging")
	fs.BoolVar(&cfg.JSONLog, "json-log", false, "emit logs as JSON lines")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	fs.StringVar(&cfg.CalibrationProfile, "calibration-profile", "",
		"path of the calibration profile file")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags] <mul A B | sqr A | jacobi A N>\n\nFlags:\n", programName)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	applyEnvOverrides(&cfg, fs)

	rest := fs.Args()
	if cfg.Calibrate || cfg.SelfTest {
		if len(rest) != 0 {
			return cfg, apperrors.NewConfigError("mode flags take no positional arguments, got %q", rest)
		}
		return cfg, validate(cfg)
	}
	if len(rest) == 0 {
		fs.Usage()
		return cfg, apperrors.NewConfigError("no operation given")
	}

	cfg.Op = rest[0]
	cfg.Operands = rest[1:]
	want, ok := operandCount[cfg.Op]
	if !ok {
		return cfg, apperrors.NewConfigError("unknown operation %q (want mul, sqr or jacobi)", cfg.Op)
	}
	if len(cfg.Operands) != want {
		return cfg, apperrors.NewConfigError("%s takes %d operand(s), got %d", cfg.Op, want, len(cfg.Operands))
	}
	return cfg, validate(cfg)
}

// validate rejects configurations no mode can run with.
func validate(cfg AppConfig) error {
	if cfg.ToomSqrThreshold < 0 {
		return apperrors.NewConfigError("toom-threshold must be >= 0, got %d", cfg.ToomSqrThreshold)
	}
	if cfg.ToomSqrThreshold > 0 && cfg.ToomSqrThreshold < digits.MinToomSqrDigits {
		return apperrors.NewConfigError("toom-threshold must be at least %d digits, got %d",
			digits.MinToomSqrDigits, cfg.ToomSqrThreshold)
	}
	if cfg.SelfTestRounds <= 0 {
		return apperrors.NewConfigError("selftest-rounds must be positive, got %d", cfg.SelfTestRounds)
	}
	return nil
}
