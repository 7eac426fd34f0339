package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/punchtui/punch/internal/timeclock"
)

// Snapshot represents the latest backend data available to the UI.
type Snapshot struct {
	Logs                []timeclock.Entry
	OnBreak             bool
	HasLogs             bool
	Tasks               []timeclock.Task
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline returns true when the API has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot between the poller
// and the UI.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot. When err is non-nil the previous data
// is kept but the error is recorded for visibility.
func (s *Store) Update(today *timeclock.TodayResponse, tasks []timeclock.Task, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Tasks = cloneTasks(tasks)
	if today != nil {
		s.snapshot.Logs = cloneLogs(today.Logs)
		s.snapshot.OnBreak = today.OnBreak
		s.snapshot.HasLogs = true
	} else {
		s.snapshot.Logs = nil
		s.snapshot.OnBreak = false
		s.snapshot.HasLogs = false
	}
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Logs = cloneLogs(s.snapshot.Logs)
	snap.Tasks = cloneTasks(s.snapshot.Tasks)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneLogs(entries []timeclock.Entry) []timeclock.Entry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]timeclock.Entry, len(entries))
	copy(dup, entries)
	return dup
}

func cloneTasks(tasks []timeclock.Task) []timeclock.Task {
	if len(tasks) == 0 {
		return nil
	}
	dup := make([]timeclock.Task, len(tasks))
	copy(dup, tasks)
	return dup
}
