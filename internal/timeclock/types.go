package timeclock

import (
	"time"
)

const legacyTimestampLayout = "2006-01-02 15:04:05"

// LogType distinguishes work intervals from break intervals.
type LogType string

const (
	LogWork  LogType = "work"
	LogBreak LogType = "break"
)

// Entry mirrors a single time-log record from /api/timelogs/today.
// The backend owns these; the client only ever reads them.
type Entry struct {
	ID              string  `json:"id"`
	TaskID          string  `json:"taskId"`
	LogType         LogType `json:"logType"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime,omitempty"`
	DurationSeconds int     `json:"durationSeconds"`
	IsRunning       bool    `json:"isRunning"`
}

// IsWork reports whether the entry counts toward elapsed work time.
func (e Entry) IsWork() bool {
	return e.LogType == LogWork
}

// ParsedStart returns the start timestamp as time.Time when possible.
func (e Entry) ParsedStart() time.Time {
	return parseTime(e.StartTime)
}

// ParsedEnd returns the end timestamp, or the zero time while the entry is ongoing.
func (e Entry) ParsedEnd() time.Time {
	return parseTime(e.EndTime)
}

// TodayResponse mirrors the payload returned by /api/timelogs/today.
type TodayResponse struct {
	Logs    []Entry `json:"logs"`
	OnBreak bool    `json:"isCurrentlyOnBreak"`
}

// Task describes an assignable task in transport-friendly form.
type Task struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Project string `json:"project"`
}

// TaskListResponse mirrors /api/tasks/assigned.
type TaskListResponse struct {
	Items []Task `json:"items"`
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	if t, err := time.ParseInLocation(legacyTimestampLayout, value, time.Local); err == nil {
		return t
	}
	return time.Time{}
}
