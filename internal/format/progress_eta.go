package format

import (
	"fmt"
	"strings"
	"time"
)

const (
	// rateSmoothing is the exponential moving average weight applied to the
	// most recent progress rate sample.
	rateSmoothing = 0.3

	// maxETA caps the estimate so stalled runs do not report absurd values.
	maxETA = 24 * time.Hour
)

// ProgressState tracks the individual progress of several concurrent
// engines and derives the consolidated average.
type ProgressState struct {
	progresses []float64
	numEngines int
}

// NewProgressState creates a progress state tracking the given number of
// engines.
func NewProgressState(numEngines int) *ProgressState {
	return &ProgressState{
		progresses: make([]float64, numEngines),
		numEngines: numEngines,
	}
}

// Update records a new progress value for one engine. Out-of-range indices
// are ignored; values are clamped to [0, 1].
func (ps *ProgressState) Update(index int, value float64) {
	if index < 0 || index >= len(ps.progresses) {
		return
	}
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	ps.progresses[index] = value
}

// CalculateAverage computes the average progress across all engines.
func (ps *ProgressState) CalculateAverage() float64 {
	if ps.numEngines == 0 {
		return 0
	}
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	return total / float64(ps.numEngines)
}

// ProgressWithETA augments ProgressState with a smoothed completion-rate
// estimate so the UI can display a time-remaining figure.
type ProgressWithETA struct {
	*ProgressState
	numEngines   int
	progressRate float64 // average progress per second, smoothed
	startTime    time.Time
}

// NewProgressWithETA creates an ETA-capable progress tracker.
func NewProgressWithETA(numEngines int) *ProgressWithETA {
	return &ProgressWithETA{
		ProgressState: NewProgressState(numEngines),
		numEngines:    numEngines,
		startTime:     time.Now(),
	}
}

// UpdateWithETA records a progress value and returns the new consolidated
// average together with the current ETA estimate.
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (float64, time.Duration) {
	p.Update(index, value)
	avg := p.CalculateAverage()

	elapsed := time.Since(p.startTime).Seconds()
	if elapsed > 0 && avg > 0 {
		instantRate := avg / elapsed
		if p.progressRate == 0 {
			p.progressRate = instantRate
		} else {
			p.progressRate = rateSmoothing*instantRate + (1-rateSmoothing)*p.progressRate
		}
	}

	return avg, p.GetETA()
}

// GetETA returns the estimated time remaining, or 0 when no rate estimate
// is available yet.
func (p *ProgressWithETA) GetETA() time.Duration {
	if p.progressRate <= 0 {
		return 0
	}
	remaining := 1.0 - p.CalculateAverage()
	if remaining <= 0 {
		return 0
	}
	eta := time.Duration(remaining / p.progressRate * float64(time.Second))
	if eta > maxETA {
		eta = maxETA
	}
	return eta
}

// FormatETA renders an ETA for display: "calculating..." before an estimate
// exists, then a compact h/m/s figure.
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

// ProgressBar renders a textual progress bar of the given length using
// block characters. Progress is clamped to [0, 1].
func ProgressBar(progress float64, length int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress*float64(length) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatProgressBarWithETA renders a progress bar with percentage and ETA:
// "[█████░░░░░] 50.0% | ETA: 30s".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %.1f%% | ETA: %s", ProgressBar(progress, width), progress*100, FormatETA(eta))
}

// FormatNumberString inserts thousand separators into a decimal number
// string, preserving a leading sign.
func FormatNumberString(s string) string {
	if s == "" {
		return ""
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
