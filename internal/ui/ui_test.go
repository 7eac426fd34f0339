package ui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/punchtui/punch/internal/session"
	"github.com/punchtui/punch/internal/state"
	"github.com/punchtui/punch/internal/timeclock"
)

type stubAPI struct {
	startCalls []string
	pauseCalls int
	stopCalls  int
	today      *timeclock.TodayResponse
	tasks      []timeclock.Task
	err        error
}

func (s *stubAPI) FetchToday(context.Context) (*timeclock.TodayResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.today != nil {
		return s.today, nil
	}
	return &timeclock.TodayResponse{}, nil
}

func (s *stubAPI) FetchTasks(context.Context) ([]timeclock.Task, error) {
	return s.tasks, s.err
}

func (s *stubAPI) StartTimer(_ context.Context, taskID string) error {
	s.startCalls = append(s.startCalls, taskID)
	return s.err
}

func (s *stubAPI) TogglePause(context.Context) error {
	s.pauseCalls++
	return s.err
}

func (s *stubAPI) StopTimer(context.Context) error {
	s.stopCalls++
	return s.err
}

func newTestModel(t *testing.T, api *stubAPI) Model {
	t.Helper()
	m := New(Options{
		Context:   context.Background(),
		Client:    api,
		Store:     &state.Store{},
		Session:   session.New(),
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	m.ready = true
	m.width = 80
	m.height = 24
	m.initLogViewport()
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func runningWorkEntries(start time.Time) []timeclock.Entry {
	return []timeclock.Entry{
		{
			ID:        "log-1",
			TaskID:    "task-1",
			LogType:   timeclock.LogWork,
			StartTime: start.Format(time.RFC3339),
			IsRunning: true,
		},
	}
}

func TestTickAdvancesRunningClock(t *testing.T) {
	m := newTestModel(t, &stubAPI{})
	m.session.ApplySnapshot(runningWorkEntries(time.Now().Add(-10*time.Second)), time.Now())

	before := m.session.State()
	updated, _ := m.Update(tickMsg(time.Now()))
	m = updated.(Model)

	after := m.session.State()
	if after.TaskSeconds != before.TaskSeconds+1 {
		t.Fatalf("TaskSeconds = %d after tick, want %d", after.TaskSeconds, before.TaskSeconds+1)
	}
	if after.DailySeconds != before.DailySeconds+1 {
		t.Fatalf("DailySeconds = %d after tick, want %d", after.DailySeconds, before.DailySeconds+1)
	}
}

func TestSnapshotAppliedOncePerRefresh(t *testing.T) {
	m := newTestModel(t, &stubAPI{})

	updatedAt := time.Now()
	snap := state.Snapshot{
		Logs:        runningWorkEntries(time.Now().Add(-60 * time.Second)),
		HasLogs:     true,
		LastUpdated: updatedAt,
	}

	updated, _ := m.Update(snapshotMsg(snap))
	m = updated.(Model)
	baseline := m.session.State().TaskSeconds

	// Ticks accumulate on top of the reconciled value.
	for i := 0; i < 3; i++ {
		updated, _ = m.Update(tickMsg(time.Now()))
		m = updated.(Model)
	}
	ticked := m.session.State().TaskSeconds
	if ticked != baseline+3 {
		t.Fatalf("TaskSeconds = %d after 3 ticks, want %d", ticked, baseline+3)
	}

	// The same snapshot again is not reapplied; the ticked value survives.
	updated, _ = m.Update(snapshotMsg(snap))
	m = updated.(Model)
	if got := m.session.State().TaskSeconds; got != ticked {
		t.Fatalf("TaskSeconds = %d after duplicate snapshot, want %d", got, ticked)
	}

	// A fresher snapshot wins over whatever the ticks accumulated.
	fresher := snap
	fresher.LastUpdated = updatedAt.Add(5 * time.Second)
	updated, _ = m.Update(snapshotMsg(fresher))
	m = updated.(Model)
	reconciled := m.session.State().TaskSeconds
	if reconciled == ticked+1 {
		t.Fatalf("TaskSeconds = %d, want a reconciled value, not a tick continuation", reconciled)
	}
}

func TestStartWithoutTaskMakesNoRequest(t *testing.T) {
	api := &stubAPI{}
	m := newTestModel(t, api)

	updated, cmd := m.Update(keyRune('s'))
	m = updated.(Model)

	if cmd != nil {
		t.Fatalf("start without a task returned a command, want none")
	}
	if len(api.startCalls) != 0 {
		t.Fatalf("StartTimer called %d times, want 0", len(api.startCalls))
	}
	if m.notice == "" {
		t.Fatalf("expected a notice prompting for a task")
	}
}

func TestStartWithSelectedTask(t *testing.T) {
	api := &stubAPI{}
	m := newTestModel(t, api)
	m.session.SelectTask("task-7", time.Now())

	updated, cmd := m.Update(keyRune('s'))
	m = updated.(Model)

	if cmd == nil {
		t.Fatalf("start returned no command")
	}
	msg := cmd()
	done, ok := msg.(actionDoneMsg)
	if !ok {
		t.Fatalf("command returned %T, want actionDoneMsg", msg)
	}
	if done.err != nil {
		t.Fatalf("start returned error: %v", done.err)
	}
	if len(api.startCalls) != 1 || api.startCalls[0] != "task-7" {
		t.Fatalf("StartTimer calls = %v, want [task-7]", api.startCalls)
	}
}

func TestStopDeclinedMakesNoRequest(t *testing.T) {
	api := &stubAPI{}
	m := newTestModel(t, api)

	updated, _ := m.Update(keyRune('x'))
	m = updated.(Model)
	if !m.showConfirmStop {
		t.Fatalf("x did not open the confirmation modal")
	}

	updated, cmd := m.Update(keyRune('n'))
	m = updated.(Model)
	if m.showConfirmStop {
		t.Fatalf("modal still open after declining")
	}
	if cmd != nil {
		t.Fatalf("declining returned a command, want none")
	}
	if api.stopCalls != 0 {
		t.Fatalf("StopTimer called %d times, want 0", api.stopCalls)
	}
}

func TestStopConfirmedStopsTimer(t *testing.T) {
	api := &stubAPI{}
	m := newTestModel(t, api)

	updated, _ := m.Update(keyRune('x'))
	m = updated.(Model)
	updated, cmd := m.Update(keyRune('y'))
	m = updated.(Model)

	if m.showConfirmStop {
		t.Fatalf("modal still open after confirming")
	}
	if cmd == nil {
		t.Fatalf("confirming returned no command")
	}
	msg := cmd()
	done, ok := msg.(actionDoneMsg)
	if !ok {
		t.Fatalf("command returned %T, want actionDoneMsg", msg)
	}
	if done.err != nil {
		t.Fatalf("stop returned error: %v", done.err)
	}
	if api.stopCalls != 1 {
		t.Fatalf("StopTimer called %d times, want 1", api.stopCalls)
	}
	if *m.stopAllowed {
		t.Fatalf("confirmation flag still set after the stop completed")
	}
}

func TestTaskSelection(t *testing.T) {
	api := &stubAPI{}
	m := newTestModel(t, api)
	m.snapshot = state.Snapshot{
		Tasks: []timeclock.Task{
			{ID: "task-1", Title: "Write report", Project: "Ops"},
			{ID: "task-2", Title: "Fix billing", Project: "Finance"},
		},
	}

	updated, _ := m.Update(keyRune('t'))
	m = updated.(Model)
	if m.currentView != ViewTasks {
		t.Fatalf("currentView = %v, want ViewTasks", m.currentView)
	}

	updated, _ = m.Update(keyRune('j'))
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if got := m.session.SelectedTask(); got != "task-2" {
		t.Fatalf("SelectedTask = %q, want task-2", got)
	}
	if m.currentView != ViewTimer {
		t.Fatalf("currentView = %v after selection, want ViewTimer", m.currentView)
	}
}

func TestTaskFilter(t *testing.T) {
	m := newTestModel(t, &stubAPI{})
	m.snapshot = state.Snapshot{
		Tasks: []timeclock.Task{
			{ID: "task-1", Title: "Write report", Project: "Ops"},
			{ID: "task-2", Title: "Fix billing", Project: "Finance"},
		},
	}

	m.taskInput.SetValue("billing")
	tasks := m.filteredTasks()
	if len(tasks) != 1 || tasks[0].ID != "task-2" {
		t.Fatalf("filteredTasks = %v, want only task-2", tasks)
	}

	m.taskInput.SetValue("")
	if got := len(m.filteredTasks()); got != 2 {
		t.Fatalf("unfiltered task count = %d, want 2", got)
	}
}

func TestQuitTearsDownSession(t *testing.T) {
	m := newTestModel(t, &stubAPI{})
	m.session.ApplySnapshot(runningWorkEntries(time.Now().Add(-10*time.Second)), time.Now())

	updated, cmd := m.Update(keyRune('e'))
	m = updated.(Model)
	if cmd == nil {
		t.Fatalf("quit returned no command")
	}

	before := m.session.State().TaskSeconds
	m.session.AdvanceSecond()
	if got := m.session.State().TaskSeconds; got != before {
		t.Fatalf("TaskSeconds advanced after teardown: %d -> %d", before, got)
	}
}
