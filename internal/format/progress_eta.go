// Package format provides display formatting helpers: durations, number
// grouping, and progress bars with ETA estimation.
package format

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// maxETA caps the reported ETA so a near-stalled rate never produces an
// absurd estimate.
const maxETA = 24 * time.Hour

// ProgressState tracks per-worker progress fractions and aggregates them.
type ProgressState struct {
	mu             sync.Mutex
	numCalculators int
	progresses     []float64
}

// NewProgressState creates a progress tracker for n workers.
func NewProgressState(n int) *ProgressState {
	return &ProgressState{
		numCalculators: n,
		progresses:     make([]float64, n),
	}
}

// Update records the progress fraction of worker i. Values are clamped to
// [0, 1]; out-of-range indices are ignored.
func (ps *ProgressState) Update(i int, progress float64) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if i < 0 || i >= len(ps.progresses) {
		return
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	ps.progresses[i] = progress
}

// CalculateAverage returns the mean progress across all workers.
func (ps *ProgressState) CalculateAverage() float64 {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.numCalculators == 0 {
		return 0
	}
	var sum float64
	for _, p := range ps.progresses {
		sum += p
	}
	return sum / float64(ps.numCalculators)
}

// ProgressWithETA extends ProgressState with a completion-time estimate
// derived from the observed progress rate.
type ProgressWithETA struct {
	*ProgressState
	progressRate float64 // progress fraction per second
	startTime    time.Time
}

// NewProgressWithETA creates an ETA-tracking progress state for n workers.
func NewProgressWithETA(n int) *ProgressWithETA {
	return &ProgressWithETA{
		ProgressState: NewProgressState(n),
		startTime:     time.Now(),
	}
}

// UpdateWithETA records the progress of worker i and returns the new average
// progress together with the current ETA.
func (p *ProgressWithETA) UpdateWithETA(i int, progress float64) (float64, time.Duration) {
	p.Update(i, progress)
	avg := p.CalculateAverage()

	elapsed := time.Since(p.startTime).Seconds()
	if elapsed > 0 && avg > 0 {
		p.progressRate = avg / elapsed
	}
	return avg, p.GetETA()
}

// GetETA returns the estimated time until completion, or 0 when there is not
// enough data yet. The estimate is capped at maxETA.
func (p *ProgressWithETA) GetETA() time.Duration {
	if p.progressRate <= 0 {
		return 0
	}
	remaining := 1 - p.CalculateAverage()
	if remaining <= 0 {
		return 0
	}
	eta := time.Duration(remaining / p.progressRate * float64(time.Second))
	if eta > maxETA {
		return maxETA
	}
	return eta
}

// FormatETA renders an ETA for display. Unknown or non-positive estimates
// render as "calculating...".
func FormatETA(eta time.Duration) string {
	if eta <= 0 {
		return "calculating..."
	}
	if eta < time.Second {
		return "< 1s"
	}

	eta = eta.Round(time.Second)
	hours := int(eta.Hours())
	minutes := int(eta.Minutes()) % 60
	seconds := int(eta.Seconds()) % 60

	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh%dm", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	case minutes > 0 && seconds > 0:
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// ProgressBar renders a fixed-width bar of filled and empty blocks.
// Progress is clamped to [0, 1].
func ProgressBar(progress float64, length int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatProgressBarWithETA renders a progress bar with percentage and ETA,
// e.g. "[█████░░░░░] 50.0% ETA: 30s".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %.1f%% ETA: %s",
		ProgressBar(progress, width), progress*100, FormatETA(eta))
}

// FormatNumberString inserts thousand separators into a decimal string.
// A leading sign is preserved.
func FormatNumberString(s string) string {
	if s == "" {
		return s
	}
	sign := ""
	if s[0] == '-' || s[0] == '+' {
		sign, s = s[:1], s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}
