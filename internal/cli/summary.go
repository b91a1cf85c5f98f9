package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/bigdemo/internal/format"
	"github.com/agbru/bigdemo/internal/metrics"
	"github.com/agbru/bigdemo/internal/orchestration"
	"github.com/agbru/bigdemo/internal/ui"
)

// FormatStageSummary renders a table of stage names, durations and status.
// Columns are padded on the cell width of the unstyled text, so alignment
// survives colouring and multi-byte units.
func FormatStageSummary(results []orchestration.StageResult, styles ui.Styles) string {
	nameWidth, durWidth := len("Stage"), len("Duration")
	var total time.Duration
	for _, res := range results {
		nameWidth = max(nameWidth, lipgloss.Width(res.Name))
		durWidth = max(durWidth, lipgloss.Width(format.FormatExecutionDuration(res.Duration)))
		total += res.Duration
	}

	var b strings.Builder
	b.WriteString("\n--- Stage Summary ---\n")
	fmt.Fprintf(&b, "%s%s   %s%s   %s\n",
		styles.Header.Render("Stage"), pad(nameWidth-len("Stage")),
		styles.Header.Render("Duration"), pad(durWidth-len("Duration")),
		styles.Header.Render("Status"))

	for _, res := range results {
		dur := format.FormatExecutionDuration(res.Duration)
		var status string
		if res.Err != nil {
			status = styles.Error.Render(fmt.Sprintf("❌ Failure (%v)", res.Err))
		} else {
			status = styles.Success.Render("✅ Success")
		}
		fmt.Fprintf(&b, "%s%s   %s%s   %s\n",
			styles.Label.Render(res.Name), pad(nameWidth-lipgloss.Width(res.Name)),
			styles.Value.Render(dur), pad(durWidth-lipgloss.Width(dur)),
			status)
	}
	fmt.Fprintf(&b, "%s %s\n", styles.Muted.Render("Total:"), styles.Value.Render(format.FormatExecutionDuration(total)))
	return b.String()
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// DisplayStageSummary writes the stage table to out using the current theme.
func DisplayStageSummary(out io.Writer, results []orchestration.StageResult) {
	fmt.Fprint(out, FormatStageSummary(results, ui.GetCurrentTheme().Styles()))
}

// DisplayResultDetails writes digit counts of the integer results.
func DisplayResultDetails(out io.Writer, res orchestration.Results) {
	styles := ui.GetCurrentTheme().Styles()
	fmt.Fprintf(out, "\n%s\n", styles.Header.Render("Result details"))
	fmt.Fprintf(out, "  %s %s\n", styles.Label.Render(fmt.Sprintf("Digits of %d!:", res.N)),
		styles.Value.Render(format.FormatCount(res.FactorialDigits)))
	fmt.Fprintf(out, "  %s %s\n", styles.Label.Render("Digits of dataset sum:"),
		styles.Value.Render(format.FormatCount(res.DatasetSumDigits)))
}

// DisplayMemoryStats shows memory statistics gathered around the run.
func DisplayMemoryStats(out io.Writer, s metrics.MemorySnapshot) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(s.HeapAlloc))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(s.TotalAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", s.NumGC)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(s.PauseTotalNs)/1e6)
}

// DisplayError writes err to out, prefixed and coloured as an error.
func DisplayError(out io.Writer, err error) {
	styles := ui.GetCurrentTheme().Styles()
	fmt.Fprintf(out, "%s %v\n", styles.Error.Render("Error:"), err)
}
