// Package ui provides the Bubble Tea TUI for punch.
package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/punchtui/punch/internal/config"
	"github.com/punchtui/punch/internal/control"
	"github.com/punchtui/punch/internal/mirror"
	"github.com/punchtui/punch/internal/prefs"
	"github.com/punchtui/punch/internal/session"
	"github.com/punchtui/punch/internal/state"
	"github.com/punchtui/punch/internal/timeclock"
)

// View represents the current active view.
type View int

const (
	ViewTimer View = iota
	ViewTasks
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    timeclock.API
	Store     *state.Store
	Session   *session.Session
	Mirror    *mirror.Mirror
	Config    *config.Config
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    timeclock.API
	store     *state.Store
	session   *session.Session
	mirror    *mirror.Mirror
	config    *config.Config
	prefsPath string
	pollTick  time.Duration

	// Timer actions
	facade      *control.Facade
	stopAllowed *bool

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool

	// Data state
	snapshot    state.Snapshot
	lastApplied time.Time
	actionBusy  bool
	notice      string
	noticeIsErr bool
	noticeUntil time.Time

	// Timer view state
	logViewport viewport.Model

	// Task picker state
	taskInput   textinput.Model
	taskCursor  int
	inputActive bool

	// Confirm-stop modal
	showConfirmStop bool

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = 15 * time.Second
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	sess := opts.Session
	if sess == nil {
		sess = session.New()
	}

	// The stop confirmation is answered by the modal: the flag flips to true
	// only for the duration of a confirmed stop command.
	stopAllowed := new(bool)
	facade := control.New(opts.Client, func(string) bool { return *stopAllowed })

	input := textinput.New()
	input.Placeholder = "filter tasks"
	input.CharLimit = 64

	return Model{
		ctx:         ctx,
		client:      opts.Client,
		store:       opts.Store,
		session:     sess,
		mirror:      opts.Mirror,
		config:      opts.Config,
		prefsPath:   prefsPath,
		pollTick:    pollTick,
		facade:      facade,
		stopAllowed: stopAllowed,
		theme:       GetTheme(themeName),
		currentView: ViewTimer,
		taskInput:   input,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(),
	}
	// Fetch snapshot immediately on start
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initLogViewport()
		}
		m.ready = true
		m.resizeLogViewport()
		m.updateLogViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case actionDoneMsg:
		return m.handleActionDone(msg)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.showConfirmStop {
		return m.renderConfirmStop()
	}

	return m.renderMain()
}

// applySnapshot stores the latest snapshot and, when it carries fresh backend
// data, re-reconciles the session from it. Reconciliation discards whatever
// the per-second ticks accumulated; the snapshot is authoritative.
func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	if snap.HasLogs && !snap.LastUpdated.Equal(m.lastApplied) && snap.LastError == nil {
		m.session.ApplySnapshot(snap.Logs, time.Now())
		m.lastApplied = snap.LastUpdated
	}
	m.pushMirror()
	m.clampTaskCursor()
	m.updateLogViewport()
}

// handleTick advances the live clocks by one second and re-arms the ticker.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.session.AdvanceSecond()
	m.pushMirror()

	if !m.noticeUntil.IsZero() && time.Now().After(m.noticeUntil) {
		m.notice = ""
		m.noticeUntil = time.Time{}
	}

	cmds := []tea.Cmd{tickCmd()}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return m, tea.Batch(cmds...)
}

// pushMirror forwards the current clocks to the secondary surface, if one is
// attached. Unchanged values write nothing.
func (m *Model) pushMirror() {
	if m.mirror == nil {
		return
	}
	st := m.session.State()
	m.mirror.Update(st.TaskSeconds, st.DailySeconds, st.OnBreak, m.taskTitle(st.ActiveTaskID))
}

// taskTitle resolves a task id to its display title, falling back to the id.
func (m Model) taskTitle(taskID string) string {
	if taskID == "" {
		return ""
	}
	for _, task := range m.snapshot.Tasks {
		if task.ID == taskID {
			return task.Title
		}
	}
	return taskID
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.showConfirmStop {
		return m.handleConfirmStopKey(msg)
	}

	// The task filter input swallows printable keys while focused
	if m.currentView == ViewTasks && m.inputActive {
		return m.handleTaskInputKey(msg)
	}

	// Global keys
	switch msg.String() {
	case "ctrl+c", "e":
		return m.quit()

	case "h", "?":
		m.showHelp = true
		return m, nil

	case "T":
		// Cycle theme
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case "t":
		m.currentView = ViewTasks
		m.taskCursor = 0
		return m, nil

	case "esc":
		m.currentView = ViewTimer
		return m, nil

	case "s":
		return m.startTimer()

	case "b":
		return m.toggleBreak()

	case "x":
		return m.requestStop()

	case "m":
		m.toggleMirror()
		return m, nil
	}

	// View-specific keys
	switch m.currentView {
	case ViewTimer:
		return m.handleTimerKey(msg)
	case ViewTasks:
		return m.handleTasksKey(msg)
	}

	return m, nil
}

// quit tears the session down so no further tick can mutate the clocks, then
// exits the program. The mirror is closed by the caller's defer.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.session.Teardown()
	if m.mirror != nil {
		m.mirror.Close()
	}
	return m, tea.Quit
}

// startTimer kicks off a work entry for the selected task.
func (m Model) startTimer() (tea.Model, tea.Cmd) {
	if m.actionBusy {
		return m, nil
	}
	taskID := m.session.SelectedTask()
	if strings.TrimSpace(taskID) == "" {
		m.setNotice("pick a task first (t)", true)
		return m, nil
	}
	m.actionBusy = true
	return m, startTimerCmd(m.ctx, m.facade, taskID)
}

// toggleBreak flips the running entry between work and break.
func (m Model) toggleBreak() (tea.Model, tea.Cmd) {
	if m.actionBusy {
		return m, nil
	}
	m.actionBusy = true
	return m, togglePauseCmd(m.ctx, m.facade)
}

// requestStop opens the confirmation modal; nothing is sent yet.
func (m Model) requestStop() (tea.Model, tea.Cmd) {
	if m.actionBusy {
		return m, nil
	}
	m.showConfirmStop = true
	return m, nil
}

// handleConfirmStopKey resolves the stop confirmation modal.
func (m Model) handleConfirmStopKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.showConfirmStop = false
		m.actionBusy = true
		return m, stopTimerCmd(m.ctx, m.facade, m.stopAllowed)
	case "n", "esc", "q":
		m.showConfirmStop = false
		return m, nil
	}
	return m, nil
}

// toggleMirror opens or closes the secondary surface on demand.
func (m *Model) toggleMirror() {
	if m.mirror == nil {
		return
	}
	if m.mirror.IsOpen() {
		m.mirror.Close()
		m.setNotice("mirror closed", false)
		return
	}
	if err := m.mirror.Open(); err != nil {
		if errors.Is(err, mirror.ErrUnsupported) {
			m.setNotice("mirror unavailable on this host", true)
		} else {
			m.setNotice("mirror: "+err.Error(), true)
		}
		return
	}
	m.pushMirror()
	m.setNotice("mirror opened", false)
}

// handleActionDone reports the outcome of a timer action and refetches the
// authoritative snapshot on success.
func (m Model) handleActionDone(msg actionDoneMsg) (tea.Model, tea.Cmd) {
	m.actionBusy = false

	if msg.err != nil {
		switch {
		case errors.Is(msg.err, control.ErrStopDeclined):
			// Declined in the modal; nothing was sent.
		case errors.Is(msg.err, timeclock.ErrTaskRequired):
			m.setNotice("pick a task first (t)", true)
		default:
			m.setNotice(msg.err.Error(), true)
		}
		return m, nil
	}

	var cmds []tea.Cmd
	switch msg.action {
	case actionStart:
		m.setNotice("timer started", false)
		m.savePrefs()
		if m.mirror != nil && !m.mirror.IsOpen() {
			if err := m.mirror.Open(); err != nil && !errors.Is(err, mirror.ErrUnsupported) {
				m.setNotice("mirror: "+err.Error(), true)
			}
		}
	case actionPause:
		m.setNotice("break toggled", false)
	case actionStop:
		m.setNotice("timer stopped", false)
		m.session.SelectTask("", time.Now())
		if m.mirror != nil {
			m.mirror.Close()
		}
	}

	// The backend has changed; refetch rather than guess.
	cmds = append(cmds, refreshCmd(m.ctx, m.store, m.client))
	return m, tea.Batch(cmds...)
}

// setNotice shows a transient status message.
func (m *Model) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeIsErr = isErr
	m.noticeUntil = time.Now().Add(5 * time.Second)
}

// savePrefs persists the theme and last-selected task. Best effort.
func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:    m.theme.Name,
		LastTask: m.session.SelectedTask(),
	})
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	switch m.currentView {
	case ViewTasks:
		b.WriteString(m.renderTasks())
	default:
		b.WriteString(m.renderTimer())
	}

	return b.String()
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type actionDoneMsg struct {
	action string
	err    error
}

const (
	actionStart = "start"
	actionPause = "pause"
	actionStop  = "stop"
)

// Commands

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func startTimerCmd(ctx context.Context, facade *control.Facade, taskID string) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{action: actionStart, err: facade.Start(ctx, taskID)}
	}
}

func togglePauseCmd(ctx context.Context, facade *control.Facade) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{action: actionPause, err: facade.TogglePause(ctx)}
	}
}

// stopTimerCmd answers the facade's confirmation with the modal's verdict.
func stopTimerCmd(ctx context.Context, facade *control.Facade, allowed *bool) tea.Cmd {
	return func() tea.Msg {
		*allowed = true
		err := facade.Stop(ctx)
		*allowed = false
		return actionDoneMsg{action: actionStop, err: err}
	}
}

// refreshCmd refetches backend data into the store and emits the resulting
// snapshot, so action outcomes show up without waiting for the poller.
func refreshCmd(ctx context.Context, store *state.Store, client timeclock.API) tea.Cmd {
	return func() tea.Msg {
		if store == nil || client == nil {
			return nil
		}
		today, err := client.FetchToday(ctx)
		if err != nil {
			store.Update(nil, nil, err)
			return snapshotMsg(store.Snapshot())
		}
		tasks, err := client.FetchTasks(ctx)
		if err != nil {
			store.Update(nil, nil, err)
			return snapshotMsg(store.Snapshot())
		}
		store.Update(today, tasks, nil)
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
