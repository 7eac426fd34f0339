package session

import (
	"time"

	"github.com/punchtui/punch/internal/timeclock"
)

const dayLayout = "2006-01-02"

// State is the elapsed-time state derived from an authoritative time-log
// snapshot plus the instant it was taken. It lives only in memory and is
// rebuilt from scratch on every snapshot.
type State struct {
	// ActiveTaskID is the task tied to the running entry, or the task the
	// user has picked when nothing is running.
	ActiveTaskID string

	// OnBreak is true while the running entry is a break.
	OnBreak bool

	// TaskSeconds is today's cumulative work seconds for the active task,
	// including the live delta of a running work entry.
	TaskSeconds int

	// DailySeconds is today's cumulative work seconds across all tasks.
	DailySeconds int

	// Ticking is true while a work entry is running; it is the condition
	// under which the display clock advances.
	Ticking bool

	// AnchoredAt is the wall clock the snapshot was reconciled against.
	AnchoredAt time.Time
}

// Reconcile derives State from a snapshot of today's log entries. It is pure:
// the same entries, selection, and instant always produce the same State.
//
// Day bucketing uses now's location so "today" means the viewer's local
// calendar date, not UTC. Banked durations come from closed work entries; the
// live delta of a running work entry is computed once from now minus its start
// time, never accumulated tick by tick.
func Reconcile(entries []timeclock.Entry, selectedTaskID string, now time.Time) State {
	loc := now.Location()
	today := dayOf(now, loc)

	// At most one entry should be running; take the first defensively.
	var running *timeclock.Entry
	for i := range entries {
		if entries[i].IsRunning {
			running = &entries[i]
			break
		}
	}

	activeTask := selectedTaskID
	onBreak := false
	if running != nil {
		if running.TaskID != "" {
			activeTask = running.TaskID
		}
		onBreak = running.LogType == timeclock.LogBreak
	}

	var taskSeconds, dailySeconds int
	for _, entry := range entries {
		if entry.IsRunning || !entry.IsWork() {
			continue
		}
		start := entry.ParsedStart()
		if start.IsZero() || dayOf(start, loc) != today {
			continue
		}
		dailySeconds += entry.DurationSeconds
		if activeTask != "" && entry.TaskID == activeTask {
			taskSeconds += entry.DurationSeconds
		}
	}

	ticking := running != nil && running.IsWork()
	if ticking {
		if start := running.ParsedStart(); !start.IsZero() {
			delta := int(now.Sub(start) / time.Second)
			if delta < 0 {
				delta = 0
			}
			taskSeconds += delta
			dailySeconds += delta
		}
	}

	return State{
		ActiveTaskID: activeTask,
		OnBreak:      onBreak,
		TaskSeconds:  taskSeconds,
		DailySeconds: dailySeconds,
		Ticking:      ticking,
		AnchoredAt:   now,
	}
}

func dayOf(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dayLayout)
}
