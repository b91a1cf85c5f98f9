package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/bigdemo/internal/orchestration"
)

// Report holds the four values printed by a run.
type Report struct {
	// N is the factorial argument; it appears in the first label.
	N               int64
	FactorialDigits int
	Reciprocal      string
	PiApprox        string
	DatasetSum      string
}

// NewReport builds a Report from the pipeline results.
func NewReport(res orchestration.Results) Report {
	return Report{
		N:               res.N,
		FactorialDigits: res.FactorialDigits,
		Reciprocal:      res.Reciprocal,
		PiApprox:        res.PiApprox,
		DatasetSum:      res.DatasetSum,
	}
}

// FormatReport returns the report lines, each terminated by a newline.
func FormatReport(r Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Digits in %d!: %d\n", r.N, r.FactorialDigits)
	fmt.Fprintf(&b, "1/7 with high precision: %s\n", r.Reciprocal)
	fmt.Fprintf(&b, "Approximation of pi: %s\n", r.PiApprox)
	fmt.Fprintf(&b, "Sum of dataset of huge numbers: %s\n", r.DatasetSum)
	return b.String()
}

// DisplayReport writes the report to out in a single write.
func DisplayReport(out io.Writer, r Report) error {
	if _, err := io.WriteString(out, FormatReport(r)); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
