// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayMemoryStats].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatResultValue], [FormatTruncated].
//
//   - Parse* functions convert user input into engine values.
//     Examples: [ParseOperand].

package cli

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/agbru/mpcalc/internal/config"
	"github.com/agbru/mpcalc/internal/digits"
	"github.com/agbru/mpcalc/internal/format"
	"github.com/agbru/mpcalc/internal/metrics"
	"github.com/agbru/mpcalc/internal/sysmon"
	"github.com/agbru/mpcalc/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the user.
// It shows the requested operation, environment details, and the squaring
// threshold in effect.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Operation: %s%s%s on %s%d%s operand(s).\n",
		ui.ColorBlue(), cfg.Op, ui.ColorReset(), ui.ColorYellow(), len(cfg.Operands), ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Squaring threshold: Toom-Cook from %s%d%s digits.\n",
		ui.ColorCyan(), cfg.ToomSqrThreshold, ui.ColorReset())
}

// FormatTruncated shortens a long numeric string, keeping edges characters at
// each end. Strings at or below limit are returned unchanged.
func FormatTruncated(s string, limit, edges int) string {
	if len(s) <= limit {
		return s
	}
	return fmt.Sprintf("%s...%s (%d characters)", s[:edges], s[len(s)-edges:], len(s))
}

// FormatResultValue renders a result for display. Decimal output gets
// thousand separators; hexadecimal output gets a 0x prefix. Long values are
// truncated to keep the terminal readable.
func FormatResultValue(x *digits.Int, hex bool) string {
	v := x.Big()
	if hex {
		sign := ""
		if v.Sign() < 0 {
			sign = "-"
		}
		return FormatTruncated(sign+"0x"+v.Abs(v).Text(16), TruncationLimit, HexDisplayEdges)
	}
	s := v.String()
	if len(s) > TruncationLimit {
		return FormatTruncated(s, TruncationLimit, DisplayEdges)
	}
	return format.FormatNumberString(s)
}

// DisplayResult presents a computed value with its operation banner and
// timing. Verbose mode adds digit counts and resource usage.
//
// Parameters:
//   - label: The operation description, e.g. "mul(a, b)".
//   - result: The computed value.
//   - duration: The computation time.
//   - cfg: The application configuration (hex and verbose switches).
//   - out: The writer for standard output.
func DisplayResult(label string, result *digits.Int, duration time.Duration, cfg config.AppConfig, out io.Writer) {
	styles := ui.NewStyles()

	fmt.Fprintln(out, styles.Header.Render(label))
	fmt.Fprintf(out, "%s = %s\n",
		styles.Label.Render("result"),
		styles.Result.Render(FormatResultValue(result, cfg.Hex)))
	fmt.Fprintf(out, "%s = %s\n",
		styles.Label.Render("time"),
		format.FormatExecutionDuration(duration))

	if cfg.Verbose {
		fmt.Fprintf(out, "%s = %d digits (%d bits)\n",
			styles.Label.Render("width"), result.Used(), result.Big().BitLen())
		fmt.Fprintf(out, "%s = %s\n",
			styles.Label.Render("system"), sysmon.Sample())
	}
}

// DisplaySymbolResult presents a Kronecker or Jacobi symbol value.
func DisplaySymbolResult(label string, value int, duration time.Duration, out io.Writer) {
	styles := ui.NewStyles()
	fmt.Fprintln(out, styles.Header.Render(label))
	fmt.Fprintf(out, "%s = %s\n", styles.Label.Render("result"), styles.Result.Render(fmt.Sprintf("%d", value)))
	fmt.Fprintf(out, "%s = %s\n", styles.Label.Render("time"), format.FormatExecutionDuration(duration))
}

// DisplayMemoryStats shows memory statistics after a computation.
func DisplayMemoryStats(snap metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(snap.HeapAlloc))
	fmt.Fprintf(out, "  Heap from OS:    %s\n", format.FormatBytes(snap.HeapSys))
	fmt.Fprintf(out, "  GC cycles:       %d\n", snap.NumGC)
	if snap.PauseTotalNs > 0 {
		fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(snap.PauseTotalNs)/1e6)
	} else {
		fmt.Fprintf(out, "  GC pause total:  0ms\n")
	}
}
