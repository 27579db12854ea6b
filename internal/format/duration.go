package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration renders a duration at a precision matched to its
// magnitude: whole microseconds below 1ms, whole milliseconds below 1s, and
// the stdlib representation above that.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.String()
	}
}
