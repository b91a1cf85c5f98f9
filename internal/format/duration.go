package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a stage or run duration: microseconds
// below a millisecond, milliseconds below a second, time.Duration's own
// format above. A zero duration (a stage too fast for the clock) renders
// as "< 1µs".
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return "< 1µs"
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}
