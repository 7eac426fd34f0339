package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/punchtui/punch/internal/timeclock"
)

// formatClock renders a second count as HH:MM:SS. Negative counts clamp to
// zero rather than showing a nonsense clock.
func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

// liveSeconds returns the displayed duration for a running entry: the whole
// seconds elapsed since its start. A missing or future start shows zero.
func liveSeconds(entry timeclock.Entry, now time.Time) int {
	start := entry.ParsedStart()
	if start.IsZero() {
		return 0
	}
	delta := int(now.Sub(start) / time.Second)
	if delta < 0 {
		return 0
	}
	return delta
}

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// padRight pads a string with spaces to the given width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(r))
}
