package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderConfirmStop renders the stop-confirmation modal. The running timer
// keeps ticking underneath; nothing is sent until the user answers.
func (m Model) renderConfirmStop() string {
	styles := m.theme.Styles()
	st := m.session.State()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Stop the running timer?"))
	b.WriteString("\n\n")

	if title := m.taskTitle(st.ActiveTaskID); title != "" {
		b.WriteString(styles.MutedText.Render("task   "))
		b.WriteString(styles.AccentText.Render(truncate(title, 30)))
		b.WriteString("\n")
	}
	b.WriteString(styles.MutedText.Render("logged "))
	b.WriteString(styles.Text.Render(formatClock(st.TaskSeconds)))
	b.WriteString("\n\n")

	b.WriteString(styles.SuccessText.Render("y"))
	b.WriteString(styles.MutedText.Render(" stop   "))
	b.WriteString(styles.DangerText.Render("n"))
	b.WriteString(styles.MutedText.Render(" keep working"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Danger)).
		Padding(1, 2).
		Width(40)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
