package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/punchtui/punch/internal/timeclock"
)

// filteredTasks returns the assigned tasks matching the filter input, in
// snapshot order. An empty filter matches everything.
func (m Model) filteredTasks() []timeclock.Task {
	query := strings.ToLower(strings.TrimSpace(m.taskInput.Value()))
	if query == "" {
		return m.snapshot.Tasks
	}
	var out []timeclock.Task
	for _, task := range m.snapshot.Tasks {
		haystack := strings.ToLower(task.Title + " " + task.Project + " " + task.ID)
		if strings.Contains(haystack, query) {
			out = append(out, task)
		}
	}
	return out
}

// clampTaskCursor keeps the cursor inside the filtered list after the task
// set or the filter changes.
func (m *Model) clampTaskCursor() {
	count := len(m.filteredTasks())
	if count == 0 {
		m.taskCursor = 0
		return
	}
	if m.taskCursor >= count {
		m.taskCursor = count - 1
	}
	if m.taskCursor < 0 {
		m.taskCursor = 0
	}
}

// renderTasks renders the task picker view.
func (m Model) renderTasks() string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString("  ")
	b.WriteString(styles.MutedText.Render("assigned tasks"))
	b.WriteString("   ")
	if m.inputActive {
		b.WriteString(m.taskInput.View())
	} else if m.taskInput.Value() != "" {
		b.WriteString(styles.FaintText.Render("filter: " + m.taskInput.Value()))
	} else {
		b.WriteString(styles.FaintText.Render("press / to filter"))
	}
	b.WriteString("\n\n")

	tasks := m.filteredTasks()
	if len(tasks) == 0 {
		if len(m.snapshot.Tasks) == 0 {
			b.WriteString(styles.FaintText.Render("  no tasks assigned"))
		} else {
			b.WriteString(styles.FaintText.Render("  no tasks match the filter"))
		}
		return b.String()
	}

	selected := m.session.SelectedTask()
	maxRows := m.height - headerLines - 4
	if maxRows < 3 {
		maxRows = 3
	}

	for i, task := range tasks {
		if i >= maxRows {
			b.WriteString(styles.FaintText.Render("  …"))
			b.WriteString("\n")
			break
		}
		line := "  " + padRight(truncate(task.Title, 40), 42) +
			padRight(truncate(task.Project, 20), 22) + task.ID
		switch {
		case i == m.taskCursor:
			b.WriteString(styles.Selected.Render(padRight(line, m.width)))
		case task.ID == selected:
			b.WriteString(styles.AccentText.Render(line))
		default:
			b.WriteString(styles.Text.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// handleTasksKey processes keyboard input for the task picker.
func (m Model) handleTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.filteredTasks()

	switch msg.String() {
	case "/":
		m.inputActive = true
		m.taskInput.Focus()
		return m, nil

	case "j", "down":
		if m.taskCursor < len(tasks)-1 {
			m.taskCursor++
		}
	case "k", "up":
		if m.taskCursor > 0 {
			m.taskCursor--
		}
	case "g", "home":
		m.taskCursor = 0
	case "G", "end":
		if len(tasks) > 0 {
			m.taskCursor = len(tasks) - 1
		}

	case "enter":
		return m.selectTask(tasks)
	}

	return m, nil
}

// handleTaskInputKey routes keys into the filter input while it is focused.
func (m Model) handleTaskInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.inputActive = false
		m.taskInput.Blur()
		return m, nil
	case "enter":
		m.inputActive = false
		m.taskInput.Blur()
		m.clampTaskCursor()
		return m, nil
	case "ctrl+c":
		return m.quit()
	}

	var cmd tea.Cmd
	m.taskInput, cmd = m.taskInput.Update(msg)
	m.clampTaskCursor()
	return m, cmd
}

// selectTask records the highlighted task as the user's choice and returns to
// the timer view. The banked total for the task shows immediately; nothing is
// sent to the backend until the timer is started.
func (m Model) selectTask(tasks []timeclock.Task) (tea.Model, tea.Cmd) {
	if m.taskCursor < 0 || m.taskCursor >= len(tasks) {
		return m, nil
	}
	task := tasks[m.taskCursor]
	m.session.SelectTask(task.ID, time.Now())
	m.savePrefs()
	m.currentView = ViewTimer
	m.setNotice("selected "+truncate(task.Title, 32), false)
	m.pushMirror()
	return m, nil
}
