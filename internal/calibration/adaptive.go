// This file implements candidate threshold generation for calibration runs.

package calibration

import (
	"runtime"

	"github.com/agbru/mpcalc/internal/config"
	"github.com/agbru/mpcalc/internal/digits"
)

// ─────────────────────────────────────────────────────────────────────────────
// Candidate Threshold Generation
// ─────────────────────────────────────────────────────────────────────────────

// GenerateToomSqrThresholds generates the list of Toom-Cook squaring
// thresholds tested by a full calibration run.
//
// The ladder brackets the static default on both sides. Machines with many
// cores get the lower candidates too: more memory bandwidth contention per
// core shifts the crossover downward.
func GenerateToomSqrThresholds() []int {
	base := []int{48, 64, 80, 96, 128, 160, 224}

	if runtime.NumCPU() > 8 {
		base = append([]int{24, 32}, base...)
	}
	return base
}

// GenerateQuickToomSqrThresholds generates a smaller candidate set for quick
// auto-calibration at startup.
func GenerateQuickToomSqrThresholds() []int {
	return []int{48, 80, 128}
}

// ─────────────────────────────────────────────────────────────────────────────
// Threshold Estimation (without benchmarking)
// Delegates to config.EstimateOptimalToomSqrThreshold — the canonical
// implementation lives there.
// ─────────────────────────────────────────────────────────────────────────────

// EstimateOptimalToomSqrThreshold delegates to config.EstimateOptimalToomSqrThreshold.
func EstimateOptimalToomSqrThreshold() int { return config.EstimateOptimalToomSqrThreshold() }

// clampCandidate keeps a candidate usable by the dispatcher.
func clampCandidate(threshold int) int {
	if threshold < digits.MinToomSqrDigits {
		return digits.MinToomSqrDigits
	}
	return threshold
}
