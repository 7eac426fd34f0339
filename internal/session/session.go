package session

import (
	"sync"
	"time"

	"github.com/punchtui/punch/internal/timeclock"
)

// Mode identifies the live-ticker state.
type Mode string

const (
	ModeIdle    Mode = "idle"
	ModeTicking Mode = "ticking"
)

// Session holds the reconciled timer state between snapshots. Snapshots are
// authoritative: applying one discards whatever the per-second ticks have
// accumulated and recomputes from scratch. Between snapshots the only
// permitted mutation is AdvanceSecond.
type Session struct {
	mu       sync.Mutex
	entries  []timeclock.Entry
	selected string
	state    State
	down     bool
}

// New returns an empty session. The zero state is Idle with no active task.
func New() *Session {
	return &Session{}
}

// ApplySnapshot replaces the retained entry snapshot and reconciles from
// scratch. No-op after Teardown.
func (s *Session) ApplySnapshot(entries []timeclock.Entry, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.down {
		return
	}
	s.entries = append([]timeclock.Entry(nil), entries...)
	s.state = Reconcile(s.entries, s.selected, now)
}

// SelectTask records the user's task choice and re-reconciles against the
// retained snapshot, so a picked-but-not-started task shows its banked total.
func (s *Session) SelectTask(taskID string, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.down {
		return
	}
	s.selected = taskID
	s.state = Reconcile(s.entries, s.selected, now)
}

// SelectedTask returns the user's current task choice.
func (s *Session) SelectedTask() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// AdvanceSecond moves the displayed clocks forward by one second. It only
// applies while a work entry is running; break and idle states are frozen.
func (s *Session) AdvanceSecond() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.down || !s.state.Ticking {
		return
	}
	s.state.TaskSeconds++
	s.state.DailySeconds++
}

// Teardown permanently freezes the session. Every later AdvanceSecond,
// ApplySnapshot, and SelectTask is a no-op.
func (s *Session) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.down = true
	s.state.Ticking = false
}

// State returns a copy of the current reconciled state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Mode reports whether the session is currently ticking.
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Ticking && !s.down {
		return ModeTicking
	}
	return ModeIdle
}
