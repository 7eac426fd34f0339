package ui

import (
	"testing"
	"time"

	"github.com/punchtui/punch/internal/timeclock"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    string
	}{
		{"zero", 0, "00:00:00"},
		{"seconds only", 59, "00:00:59"},
		{"minute rollover", 60, "00:01:00"},
		{"mixed", 1925, "00:32:05"},
		{"hours", 7322, "02:02:02"},
		{"negative clamps", -5, "00:00:00"},
		{"over a day keeps counting", 90000, "25:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatClock(tt.seconds); got != tt.want {
				t.Errorf("formatClock(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestLiveSeconds(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		entry timeclock.Entry
		want  int
	}{
		{
			"elapsed since start",
			timeclock.Entry{StartTime: "2026-03-10T11:30:00Z", IsRunning: true},
			1800,
		},
		{
			"future start shows zero",
			timeclock.Entry{StartTime: "2026-03-10T12:05:00Z", IsRunning: true},
			0,
		},
		{
			"missing start shows zero",
			timeclock.Entry{IsRunning: true},
			0,
		},
		{
			"fractional seconds floor",
			timeclock.Entry{StartTime: "2026-03-10T11:59:59.400Z", IsRunning: true},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := liveSeconds(tt.entry, now); got != tt.want {
				t.Errorf("liveSeconds = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		limit int
		want  string
	}{
		{"short passes through", "abc", 10, "abc"},
		{"exact passes through", "abcde", 5, "abcde"},
		{"long gets ellipsis", "abcdefghij", 7, "abcd..."},
		{"tiny limit hard cuts", "abcdef", 2, "ab"},
		{"zero limit passes through", "abc", 0, "abc"},
		{"trims whitespace", "  abc  ", 10, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.value, tt.limit); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.value, tt.limit, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Fatalf("padRight = %q, want %q", got, "ab   ")
	}
	if got := padRight("abcdef", 3); got != "abcdef" {
		t.Fatalf("padRight = %q, want unmodified %q", got, "abcdef")
	}
	if got := padRight("ab", 0); got != "ab" {
		t.Fatalf("padRight = %q, want unmodified %q", got, "ab")
	}
}
