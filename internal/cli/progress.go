// Spinner-backed progress display for the long-running modes.

package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/briandowns/spinner"

	"github.com/agbru/mpcalc/internal/format"
)

// ProgressDisplay drives a spinner with a progress bar and ETA suffix while
// a long-running mode (self-test, calibration) executes.
type ProgressDisplay struct {
	mu      sync.Mutex
	spin    Spinner
	eta     *format.ProgressWithETA
	started bool
}

// NewProgressDisplay creates a progress display writing to out.
func NewProgressDisplay(out io.Writer) *ProgressDisplay {
	return &ProgressDisplay{
		spin: newSpinner(spinner.WithWriter(out)),
		eta:  format.NewProgressWithETA(1),
	}
}

// Update advances the display to done of total steps. Safe for concurrent
// use; the first call starts the spinner.
func (p *ProgressDisplay) Update(done, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		p.spin.Start()
		p.started = true
	}
	if total <= 0 {
		return
	}
	progress, eta := p.eta.UpdateWithETA(0, float64(done)/float64(total))
	p.spin.UpdateSuffix(fmt.Sprintf(" %s (%d/%d)",
		format.FormatProgressBarWithETA(progress, eta, ProgressBarWidth), done, total))
}

// UpdateStep advances the display using a step label instead of an ETA bar,
// used by calibration where per-candidate timing dominates.
func (p *ProgressDisplay) UpdateStep(current, total, threshold int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		p.spin.Start()
		p.started = true
	}
	p.spin.UpdateSuffix(fmt.Sprintf(" measuring threshold %d (%d/%d)", threshold, current, total))
}

// Stop halts the spinner. Safe to call without a preceding Update.
func (p *ProgressDisplay) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		p.spin.Stop()
		p.started = false
	}
}
