package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration renders d at a precision suited to its magnitude:
// whole microseconds below a millisecond, whole milliseconds below a second,
// and time.Duration's own formatting above that. Evaluation times for single
// expressions are usually sub-millisecond, so the coarse buckets keep the
// output scannable.
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
