package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/uintcalc/internal/ui"
)

// Style variables for the benchmark dashboard. Initialized from the ui
// theme system via initTUIStyles().
var (
	panelStyle       lipgloss.Style
	headerStyle      lipgloss.Style
	titleStyle       lipgloss.Style
	opNameStyle      lipgloss.Style
	opValueStyle     lipgloss.Style
	runningStyle     lipgloss.Style
	doneStyle        lipgloss.Style
	dimStyle         lipgloss.Style
	cpuSparkStyle    lipgloss.Style
	memSparkStyle    lipgloss.Style
	footerKeyStyle   lipgloss.Style
	footerDescStyle  lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been
// invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	opNameStyle = lipgloss.NewStyle().
		Foreground(t.Info)

	opValueStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	runningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	doneStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	dimStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	cpuSparkStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	memSparkStyle = lipgloss.NewStyle().
		Foreground(t.Info)

	footerKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)
}
