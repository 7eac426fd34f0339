package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status bar across the top of the screen.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if !m.snapshot.HasLogs {
		return m.renderConnectingHeader(styles, bg)
	}

	sep := bg.Spaces(2)
	st := m.session.State()

	var parts []string

	parts = append(parts, bg.Render("punch", styles.Logo))

	switch {
	case m.snapshot.IsOffline():
		parts = append(parts, bg.Render("● OFFLINE", styles.DangerText))
	case st.OnBreak:
		parts = append(parts, bg.Render("◌ BREAK", styles.WarningText.Bold(true)))
	case st.Ticking:
		parts = append(parts, bg.Render("● ON THE CLOCK", styles.SuccessText))
	default:
		parts = append(parts, bg.Render("○ IDLE", styles.MutedText))
	}

	// Today's total is always visible, whatever view is active
	parts = append(parts,
		bg.Render("today", styles.MutedText)+bg.Space()+
			bg.Render(formatClock(st.DailySeconds), styles.Text))

	if title := m.taskTitle(st.ActiveTaskID); title != "" {
		parts = append(parts,
			bg.Render("task", styles.MutedText)+bg.Space()+
				bg.Render(truncate(title, 32), styles.AccentText))
	}

	if !m.snapshot.LastUpdated.IsZero() {
		parts = append(parts, bg.Render(m.snapshot.LastUpdated.Format("15:04:05"), styles.FaintText))
	}

	if m.notice != "" {
		noticeStyle := styles.InfoText
		if m.noticeIsErr {
			noticeStyle = styles.DangerText
		}
		parts = append(parts, bg.Render(truncate(m.notice, 48), noticeStyle))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

// renderConnectingHeader shows the connecting/error state before the first
// successful snapshot.
func (m Model) renderConnectingHeader(styles Styles, bg BgStyle) string {
	sep := bg.Spaces(2)

	if m.snapshot.LastError != nil {
		last := "soon"
		if !m.snapshot.LastUpdated.IsZero() {
			last = m.snapshot.LastUpdated.Format("15:04:05")
		}
		parts := []string{
			bg.Render("punch", styles.Logo),
			bg.Render("BACKEND UNREACHABLE", styles.DangerText.Bold(true)),
			bg.Render("Retrying...", styles.WarningText.Bold(true)),
			bg.Render(last, styles.MutedText),
		}
		if m.snapshot.ConsecutiveFailures > 1 {
			parts = append(parts,
				bg.Render(fmt.Sprintf("%d failures", m.snapshot.ConsecutiveFailures), styles.FaintText))
		}
		return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
	}

	return styles.Header.Width(m.width).Render(
		bg.Render("punch", styles.Logo) + sep +
			bg.Render("Connecting to timeclock...", styles.WarningText.Bold(true)),
	)
}

// renderCommandBar renders the key hint line under the header.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	hint := func(key, label string) string {
		return bg.Render(key, styles.AccentText) + bg.Space() + bg.Render(label, styles.MutedText)
	}

	var parts []string
	switch m.currentView {
	case ViewTasks:
		parts = []string{
			hint("j/k", "move"),
			hint("enter", "select"),
			hint("/", "filter"),
			hint("esc", "back"),
		}
	default:
		parts = []string{
			hint("s", "start"),
			hint("b", "break"),
			hint("x", "stop"),
			hint("t", "tasks"),
			hint("m", "mirror"),
		}
	}
	parts = append(parts, hint("h", "help"), hint("e", "quit"))

	return styles.Footer.Width(m.width).Render(bg.Join(parts, sep))
}

// staleness reports how long ago the snapshot was refreshed, for display.
func (m Model) staleness(now time.Time) string {
	if m.snapshot.LastUpdated.IsZero() {
		return "never"
	}
	age := now.Sub(m.snapshot.LastUpdated).Round(time.Second)
	if age < time.Second {
		return "now"
	}
	return age.String() + " ago"
}

// breakFill returns the pane background style for the current break state.
func (m Model) breakFill() lipgloss.Style {
	if m.session.State().OnBreak {
		return lipgloss.NewStyle().Background(lipgloss.Color(m.theme.BreakBg))
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(m.theme.Background))
}
