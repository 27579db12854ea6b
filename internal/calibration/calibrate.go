// This file implements the calibration measurement loop.

package calibration

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"math/rand"
	"time"

	"github.com/agbru/mpcalc/internal/config"
	"github.com/agbru/mpcalc/internal/digits"
	apperrors "github.com/agbru/mpcalc/internal/errors"
)

// calibrationDigits is the operand size used for measurement. Large enough
// that every candidate threshold actually routes the operand through
// Toom-Cook, small enough to keep a full run under a few seconds.
const calibrationDigits = 4096

// calibrationReps is the number of squarings timed per candidate. The best
// of the repetitions is kept, which filters out scheduler noise.
const calibrationReps = 5

// calibrationResult records the measurement for one candidate threshold.
type calibrationResult struct {
	Threshold int
	Duration  time.Duration
	Err       error
}

// ProgressFunc reports calibration progress: candidate index (1-based),
// total candidate count, and the threshold being measured.
type ProgressFunc func(current, total, threshold int)

// randomOperand builds a deterministic pseudo-random operand of n digits.
// A fixed seed keeps measurements comparable across runs.
func randomOperand(n int) (*digits.Int, error) {
	buf := make([]byte, n*4)
	rnd := rand.New(rand.NewSource(0x6d7063616c63))
	rnd.Read(buf)
	// Force a nonzero top digit so the operand really spans n digits.
	buf[0] |= 0x80

	var b big.Int
	b.SetBytes(buf)
	var x digits.Int
	if err := x.SetBig(&b); err != nil {
		return nil, err
	}
	return &x, nil
}

// measureSqr times z = x² with the dispatcher forced to the given threshold.
// Returns the best duration over calibrationReps repetitions.
func measureSqr(ctx context.Context, x *digits.Int, threshold int) (time.Duration, error) {
	saved := digits.ToomSqrThreshold
	digits.ToomSqrThreshold = threshold
	defer func() { digits.ToomSqrThreshold = saved }()

	best := time.Duration(0)
	var z digits.Int
	for rep := 0; rep < calibrationReps; rep++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		start := time.Now()
		if err := z.Sqr(x); err != nil {
			return 0, err
		}
		elapsed := time.Since(start)
		if rep == 0 || elapsed < best {
			best = elapsed
		}
	}
	return best, nil
}

// runCandidates measures every candidate threshold against a fixed operand
// and returns the per-candidate results plus the fastest threshold.
func runCandidates(ctx context.Context, candidates []int, progress ProgressFunc) ([]calibrationResult, int, error) {
	operand, err := randomOperand(calibrationDigits)
	if err != nil {
		return nil, 0, err
	}

	results := make([]calibrationResult, 0, len(candidates))
	best := -1
	var bestDuration time.Duration
	for i, candidate := range candidates {
		threshold := clampCandidate(candidate)
		if progress != nil {
			progress(i+1, len(candidates), threshold)
		}

		duration, err := measureSqr(ctx, operand, threshold)
		results = append(results, calibrationResult{Threshold: threshold, Duration: duration, Err: err})
		if err != nil {
			if ctx.Err() != nil {
				return results, best, ctx.Err()
			}
			continue
		}
		if best == -1 || duration < bestDuration {
			best = threshold
			bestDuration = duration
		}
	}
	if best == -1 {
		return results, 0, fmt.Errorf("no candidate threshold measured successfully")
	}
	return results, best, nil
}

// RunCalibration runs the full calibration mode: measures every candidate
// threshold, prints the summary table, and caches the winner in the profile.
// Returns the process exit code.
func RunCalibration(ctx context.Context, cfg config.AppConfig, out io.Writer, progress ProgressFunc) int {
	fmt.Fprintf(out, "Calibrating Toom-Cook squaring threshold (%d-digit operand)...\n", calibrationDigits)

	start := time.Now()
	results, best, err := runCandidates(ctx, GenerateToomSqrThresholds(), progress)
	if err != nil {
		fmt.Fprintf(out, "Calibration failed: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	printCalibrationResults(out, results, best)

	profile := NewProfile()
	profile.OptimalToomSqrThreshold = best
	profile.CalibrationDigits = calibrationDigits
	profile.CalibrationTime = time.Since(start).Round(time.Millisecond).String()

	path := cfg.CalibrationProfile
	if path == "" {
		path = GetDefaultProfilePath()
	}
	if err := profile.SaveProfile(path); err != nil {
		fmt.Fprintf(out, "Warning: could not save calibration profile: %v\n", err)
	} else {
		fmt.Fprintf(out, "\nProfile saved to %s\n", path)
	}
	return apperrors.ExitSuccess
}

// AutoCalibrate runs a quick calibration pass over the reduced candidate set
// and applies the winner to the configuration. The profile cache is updated
// so later runs skip the measurement entirely.
//
// The second return value reports whether calibration succeeded.
func AutoCalibrate(ctx context.Context, cfg config.AppConfig, out io.Writer) (config.AppConfig, bool) {
	_, best, err := runCandidates(ctx, GenerateQuickToomSqrThresholds(), nil)
	if err != nil {
		return cfg, false
	}

	profile := NewProfile()
	profile.OptimalToomSqrThreshold = best
	profile.CalibrationDigits = calibrationDigits
	path := cfg.CalibrationProfile
	if path == "" {
		path = GetDefaultProfilePath()
	}
	// Cache failures are not fatal: the in-memory result still applies.
	_ = profile.SaveProfile(path)

	cfg.ToomSqrThreshold = best
	printCalibrationOutput(cfg, out)
	return cfg, true
}
