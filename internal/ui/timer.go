package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/punchtui/punch/internal/timeclock"
)

const headerLines = 2 // status bar + command bar

// initLogViewport creates the today-log viewport once the terminal size is
// known.
func (m *Model) initLogViewport() {
	m.logViewport = viewport.New(m.width, m.logViewportHeight())
}

// resizeLogViewport keeps the viewport in step with the terminal.
func (m *Model) resizeLogViewport() {
	m.logViewport.Width = m.width
	m.logViewport.Height = m.logViewportHeight()
}

// logViewportHeight leaves room for the header bars and the clock panel.
func (m Model) logViewportHeight() int {
	h := m.height - headerLines - clockPanelHeight
	if h < 3 {
		h = 3
	}
	return h
}

// clockPanelHeight is the fixed height of the timer panel above the log list.
const clockPanelHeight = 8

// renderTimer renders the main timer view: the live clocks plus today's
// entries.
func (m Model) renderTimer() string {
	var b strings.Builder
	b.WriteString(m.renderClockPanel())
	b.WriteString("\n")
	b.WriteString(m.logViewport.View())
	return b.String()
}

// renderClockPanel renders the task and day clocks with the break state. The
// panel background shifts while on break so the state is visible at a glance.
func (m Model) renderClockPanel() string {
	styles := m.theme.Styles()
	st := m.session.State()

	var stateLine string
	switch {
	case st.OnBreak:
		stateLine = styles.WarningText.Bold(true).Render("◌ on break, clocks frozen")
	case st.Ticking:
		stateLine = styles.SuccessText.Render("● working")
	default:
		stateLine = styles.MutedText.Render("○ idle")
	}

	taskName := m.taskTitle(st.ActiveTaskID)
	if taskName == "" {
		if selected := m.session.SelectedTask(); selected != "" {
			taskName = m.taskTitle(selected)
		} else {
			taskName = "no task selected (press t)"
		}
	}

	label := styles.MutedText.Width(8)
	rows := []string{
		stateLine,
		"",
		label.Render("task") + styles.Text.Bold(true).Render(formatClock(st.TaskSeconds)) +
			"  " + styles.FaintText.Render(truncate(taskName, m.width-24)),
		label.Render("today") + styles.Text.Render(formatClock(st.DailySeconds)),
		"",
		styles.FaintText.Render("updated " + m.staleness(time.Now())),
	}

	fill := m.breakFill()
	panel := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(1, 2).
		Width(m.width)

	return panel.Render(fill.Render(strings.Join(rows, "\n")))
}

// updateLogViewport rebuilds the today-entry list from the latest snapshot.
func (m *Model) updateLogViewport() {
	if !m.ready {
		return
	}
	styles := m.theme.Styles()

	if len(m.snapshot.Logs) == 0 {
		m.logViewport.SetContent(styles.FaintText.Render("  no entries yet today"))
		return
	}

	var b strings.Builder
	b.WriteString(styles.MutedText.Render("  today's entries"))
	b.WriteString("\n")
	for _, entry := range m.snapshot.Logs {
		b.WriteString(m.renderLogEntry(entry))
		b.WriteString("\n")
	}
	m.logViewport.SetContent(b.String())
}

// renderLogEntry formats one time-log row: interval, kind, duration, task.
func (m Model) renderLogEntry(entry timeclock.Entry) string {
	styles := m.theme.Styles()

	start := entry.ParsedStart()
	span := "--:--"
	if !start.IsZero() {
		span = start.Local().Format("15:04")
	}
	if end := entry.ParsedEnd(); !end.IsZero() {
		span += "–" + end.Local().Format("15:04")
	} else if entry.IsRunning {
		span += "–now"
	}

	kindStyle := styles.InfoText
	kind := string(entry.LogType)
	if !entry.IsWork() {
		kindStyle = styles.WarningText
	}
	if entry.IsRunning {
		kindStyle = kindStyle.Bold(true)
	}

	duration := formatClock(entry.DurationSeconds)
	if entry.IsRunning && entry.IsWork() {
		duration = formatClock(liveSeconds(entry, time.Now()))
	}

	task := m.taskTitle(entry.TaskID)

	return fmt.Sprintf("  %s  %s  %s  %s",
		styles.Text.Render(padRight(span, 12)),
		kindStyle.Render(padRight(kind, 6)),
		styles.Text.Render(duration),
		styles.FaintText.Render(truncate(task, m.width-36)))
}

// handleTimerKey scrolls the today-entry list.
func (m Model) handleTimerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.logViewport.ScrollDown(1)
	case "k", "up":
		m.logViewport.ScrollUp(1)
	case "g", "home":
		m.logViewport.GotoTop()
	case "G", "end":
		m.logViewport.GotoBottom()
	case "ctrl+d":
		m.logViewport.HalfPageDown()
	case "ctrl+u":
		m.logViewport.HalfPageUp()
	}
	return m, nil
}
