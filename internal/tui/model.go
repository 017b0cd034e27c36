// Package tui renders the live benchmark dashboard: per-operation
// throughput as it is measured, plus system CPU and memory sparklines.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/uintcalc/internal/bench"
	"github.com/agbru/uintcalc/internal/config"
	apperrors "github.com/agbru/uintcalc/internal/errors"
	"github.com/agbru/uintcalc/internal/format"
	"github.com/agbru/uintcalc/internal/sysmon"
)

// sysmonInterval is the sampling cadence of the CPU/memory sparklines.
const sysmonInterval = 500 * time.Millisecond

// sparklineCapacity bounds the system sample history.
const sparklineCapacity = 60

// keyMap defines the dashboard key bindings.
type keyMap struct {
	Quit key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}

// benchResultMsg carries one finished benchmark measurement.
type benchResultMsg bench.Result

// benchDoneMsg signals the end of the benchmark run.
type benchDoneMsg struct{}

// sysTickMsg triggers a system usage sample.
type sysTickMsg time.Time

// Model is the root bubbletea model for the benchmark dashboard.
type Model struct {
	version string
	cfg     config.AppConfig

	ctx     context.Context
	cancel  context.CancelFunc
	results chan tea.Msg

	finished  []bench.Result
	totalOps  int
	startTime time.Time
	done      bool
	exitCode  int

	cpuHistory *RingBuffer
	memHistory *RingBuffer

	width  int
	height int
}

// NewModel builds the dashboard model. The benchmark runs in a background
// goroutine feeding results through a channel so the UI stays responsive.
func NewModel(ctx context.Context, cfg config.AppConfig, version string) *Model {
	ctx, cancel := context.WithCancel(ctx)
	return &Model{
		version:    version,
		cfg:        cfg,
		ctx:        ctx,
		cancel:     cancel,
		results:    make(chan tea.Msg, len(bench.Operations())+1),
		totalOps:   len(bench.Operations()),
		startTime:  time.Now(),
		cpuHistory: NewRingBuffer(sparklineCapacity),
		memHistory: NewRingBuffer(sparklineCapacity),
	}
}

// Init starts the benchmark goroutine and the ticker streams.
func (m *Model) Init() tea.Cmd {
	go func() {
		bench.Run(m.ctx, bench.Operations(), m.cfg.BenchDuration, func(r bench.Result) {
			m.results <- benchResultMsg(r)
		})
		m.results <- benchDoneMsg{}
	}()

	return tea.Batch(m.waitForResult(), m.tickSysmon())
}

// waitForResult relays the next message from the benchmark goroutine.
func (m *Model) waitForResult() tea.Cmd {
	return func() tea.Msg {
		return <-m.results
	}
}

// tickSysmon schedules the next system usage sample.
func (m *Model) tickSysmon() tea.Cmd {
	return tea.Tick(sysmonInterval, func(t time.Time) tea.Msg {
		return sysTickMsg(t)
	})
}

// Update handles incoming messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			m.cancel()
			if !m.done {
				m.exitCode = apperrors.ExitErrorCanceled
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case benchResultMsg:
		m.finished = append(m.finished, bench.Result(msg))
		return m, m.waitForResult()

	case benchDoneMsg:
		m.done = true
		return m, nil

	case sysTickMsg:
		s := sysmon.Sample()
		m.cpuHistory.Push(s.CPUPercent)
		m.memHistory.Push(s.MemPercent)
		return m, m.tickSysmon()
	}
	return m, nil
}

// View renders the dashboard.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderResults())
	b.WriteString("\n")
	b.WriteString(m.renderSystem())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader shows the title, version, and run state.
func (m *Model) renderHeader() string {
	state := runningStyle.Render(fmt.Sprintf("running %d/%d", len(m.finished), m.totalOps))
	if m.done {
		state = doneStyle.Render("complete")
	}
	title := headerStyle.Render(fmt.Sprintf("uintcalc bench %s", m.version))
	elapsed := dimStyle.Render(format.FormatExecutionDuration(time.Since(m.startTime).Round(time.Millisecond)))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", state, "  ", elapsed)
}

// renderResults shows the per-operation throughput table.
func (m *Model) renderResults() string {
	var rows []string
	rows = append(rows, titleStyle.Render("Operation throughput"))
	for _, res := range m.finished {
		rows = append(rows, fmt.Sprintf("%s %s ops/s",
			opNameStyle.Render(fmt.Sprintf("%-8s", res.Name)),
			opValueStyle.Render(format.FormatNumberString(fmt.Sprintf("%.0f", res.OpsPerSecond)))))
	}
	for i := len(m.finished); i < m.totalOps; i++ {
		rows = append(rows, dimStyle.Render(fmt.Sprintf("%-8s pending", bench.Operations()[i].Name)))
	}
	return panelStyle.Render(strings.Join(rows, "\n"))
}

// renderSystem shows the CPU and memory sparklines.
func (m *Model) renderSystem() string {
	cpu := fmt.Sprintf("%s %s %5.1f%%",
		opNameStyle.Render("cpu"),
		cpuSparkStyle.Render(RenderSparkline(m.cpuHistory.Slice())),
		m.cpuHistory.Last())
	mem := fmt.Sprintf("%s %s %5.1f%%",
		opNameStyle.Render("mem"),
		memSparkStyle.Render(RenderSparkline(m.memHistory.Slice())),
		m.memHistory.Last())
	return panelStyle.Render(cpu + "\n" + mem)
}

// renderFooter shows the key help.
func (m *Model) renderFooter() string {
	return footerKeyStyle.Render("q") + footerDescStyle.Render(" quit")
}

// Run starts the dashboard and blocks until it exits, returning the
// process exit code.
func Run(ctx context.Context, cfg config.AppConfig, version string) int {
	initTUIStyles() // the theme may have changed since package init

	model := NewModel(ctx, cfg, version)
	program := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := program.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(*Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}
