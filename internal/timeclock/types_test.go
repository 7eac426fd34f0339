package timeclock

import (
	"testing"
	"time"
)

func TestParseTimeLayouts(t *testing.T) {
	rfc := "2025-12-13T10:11:12Z"
	if parseTime(rfc).IsZero() {
		t.Fatalf("parseTime should parse RFC3339")
	}
	nano := "2025-12-13T10:11:12.345678Z"
	if parseTime(nano).IsZero() {
		t.Fatalf("parseTime should parse RFC3339Nano")
	}
	legacy := "2025-12-13 10:11:12"
	got := parseTime(legacy)
	if got.IsZero() {
		t.Fatalf("parseTime should parse the legacy layout")
	}
	if got.Year() != 2025 || got.Month() != time.December || got.Day() != 13 {
		t.Fatalf("parseTime = %v, want 2025-12-13", got)
	}
	if !parseTime("").IsZero() {
		t.Fatalf("parseTime(\"\") should be zero")
	}
	if !parseTime("yesterday-ish").IsZero() {
		t.Fatalf("parseTime should be zero for garbage input")
	}
}

func TestEntryHelpers(t *testing.T) {
	entry := Entry{
		LogType:   LogWork,
		StartTime: "2025-12-13T09:00:00Z",
		EndTime:   "2025-12-13T09:30:00Z",
	}
	if !entry.IsWork() {
		t.Fatalf("IsWork = false for work entry")
	}
	if entry.ParsedStart().IsZero() || entry.ParsedEnd().IsZero() {
		t.Fatalf("entry timestamps should parse: %#v", entry)
	}
	if !entry.ParsedEnd().After(entry.ParsedStart()) {
		t.Fatalf("end %v not after start %v", entry.ParsedEnd(), entry.ParsedStart())
	}

	running := Entry{LogType: LogBreak, StartTime: "2025-12-13T09:00:00Z", IsRunning: true}
	if running.IsWork() {
		t.Fatalf("IsWork = true for break entry")
	}
	if !running.ParsedEnd().IsZero() {
		t.Fatalf("ParsedEnd should be zero while the entry is ongoing")
	}
}
