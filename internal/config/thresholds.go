package config

import (
	"runtime"

	"github.com/agbru/mpcalc/internal/digits"
)

// Threshold resolution chain (highest priority first):
//   1. CLI flag (--toom-threshold)
//   2. Environment variable (MPCALC_TOOM_THRESHOLD)
//   3. Cached calibration profile (~/.mpcalc_calibration.json)
//   4. Adaptive hardware estimation (this file)
//   5. Static default in digits/constants.go

// ApplyAdaptiveThresholds fills in the squaring threshold based on hardware
// characteristics when no explicit value was resolved by the earlier stages
// of the chain. User-specified values are preserved.
func ApplyAdaptiveThresholds(cfg AppConfig) AppConfig {
	if cfg.ToomSqrThreshold == 0 {
		cfg.ToomSqrThreshold = EstimateOptimalToomSqrThreshold()
	}
	return cfg
}

// EstimateOptimalToomSqrThreshold provides a heuristic estimate of the optimal
// Toom-Cook squaring threshold without running benchmarks.
// This can be used as a fallback or starting point.
//
// The Comba inner loop is cache-friendly and branch-free, so on machines with
// few cores (where memory bandwidth per core is high) Comba stays competitive
// longer and the crossover sits higher.
func EstimateOptimalToomSqrThreshold() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU <= 2:
		return digits.DefaultToomSqrThreshold + 40
	case numCPU <= 4:
		return digits.DefaultToomSqrThreshold
	default:
		return digits.DefaultToomSqrThreshold - 16
	}
}
