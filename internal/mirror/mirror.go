package mirror

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ErrUnsupported indicates the host environment cannot provide a secondary
// surface. It is non-fatal: the primary display keeps working without one.
var ErrUnsupported = errors.New("secondary surface unsupported")

// Surface is an independently rendered display target. Only the Mirror
// writes to it.
type Surface interface {
	io.Writer
	Close() error
}

// OpenFunc creates the surface on demand. Implementations perform the
// capability check and return ErrUnsupported (possibly wrapped) when the host
// cannot provide one.
type OpenFunc func() (Surface, error)

// frame is the full set of values the surface displays. Updates carrying an
// identical frame write nothing.
type frame struct {
	taskSeconds  int
	dailySeconds int
	onBreak      bool
	label        string
}

// Mirror keeps a detached surface in lockstep with the primary display. The
// static layout is drawn once per open (and once per theme flip); updates
// rewrite only the value cells at fixed positions, so repeated calls neither
// rebuild the layout nor flicker.
type Mirror struct {
	mu       sync.Mutex
	openFn   OpenFunc
	surface  Surface
	open     bool
	drawn    bool
	last     frame
	haveLast bool
}

// New builds a Mirror around the given open function.
func New(openFn OpenFunc) *Mirror {
	return &Mirror{openFn: openFn}
}

// Open creates the secondary surface. Opening an already-open mirror is a
// no-op. Capability failures surface as ErrUnsupported for the caller to
// report; the mirror stays closed and later updates are no-ops.
func (m *Mirror) Open() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.open {
		return nil
	}
	if m.openFn == nil {
		return ErrUnsupported
	}
	surface, err := m.openFn()
	if err != nil {
		return err
	}
	m.surface = surface
	m.open = true
	m.drawn = false
	m.haveLast = false
	return nil
}

// IsOpen reports whether the surface is currently attached.
func (m *Mirror) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

// Update pushes the current timer values onto the surface. It is idempotent:
// an unchanged frame writes zero bytes, a value change rewrites only the
// affected cells, and only a break toggle redraws the themed layout. A failed
// write means the surface went away underneath us (the user closed it); the
// mirror marks itself closed and stays silent from then on.
func (m *Mirror) Update(taskSeconds, dailySeconds int, onBreak bool, label string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.open {
		return
	}

	next := frame{
		taskSeconds:  taskSeconds,
		dailySeconds: dailySeconds,
		onBreak:      onBreak,
		label:        label,
	}
	if m.haveLast && next == m.last {
		return
	}

	var b strings.Builder
	if !m.drawn || !m.haveLast || next.onBreak != m.last.onBreak {
		writeLayout(&b, next)
		m.drawn = true
	} else {
		writeValues(&b, next, m.last)
	}

	if _, err := io.WriteString(m.surface, b.String()); err != nil {
		m.closeLocked()
		return
	}
	m.last = next
	m.haveLast = true
}

// Close tears the surface down. Safe to call when never opened.
func (m *Mirror) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.open {
		return
	}
	_, _ = io.WriteString(m.surface, sgrReset+clearScreen+cursorHome+showCursor)
	m.closeLocked()
}

func (m *Mirror) closeLocked() {
	if m.surface != nil {
		_ = m.surface.Close()
	}
	m.surface = nil
	m.open = false
	m.drawn = false
	m.haveLast = false
}

// ANSI control sequences for the surface.
const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	sgrReset    = "\x1b[0m"

	// Background themes: a glance tells working from paused.
	workBG  = "\x1b[48;5;236m"
	breakBG = "\x1b[48;5;94m"

	boldOn  = "\x1b[1m"
	boldOff = "\x1b[22m"
)

// Fixed cell positions (1-based row;column). Stable across updates so values
// can be overwritten in place.
const (
	taskRow  = 3
	dailyRow = 4
	stateRow = 6
	valueCol = 10
	labelCol = 3
)

func moveTo(b *strings.Builder, row, col int) {
	fmt.Fprintf(b, "\x1b[%d;%dH", row, col)
}

// writeLayout draws the themed static layout plus every value cell.
func writeLayout(b *strings.Builder, f frame) {
	b.WriteString(themeBG(f.onBreak))
	b.WriteString(hideCursor)
	b.WriteString(clearScreen)
	b.WriteString(cursorHome)

	moveTo(b, 1, labelCol)
	b.WriteString(boldOn + "punch" + boldOff)

	moveTo(b, taskRow, labelCol)
	b.WriteString("task")
	moveTo(b, dailyRow, labelCol)
	b.WriteString("today")

	writeValues(b, f, frame{taskSeconds: -1, dailySeconds: -1, label: "\x00"})
}

// writeValues rewrites only the cells whose value changed since prev.
func writeValues(b *strings.Builder, f, prev frame) {
	if f.taskSeconds != prev.taskSeconds {
		moveTo(b, taskRow, valueCol)
		b.WriteString(boldOn + formatClock(f.taskSeconds) + boldOff)
	}
	if f.dailySeconds != prev.dailySeconds {
		moveTo(b, dailyRow, valueCol)
		b.WriteString(formatClock(f.dailySeconds))
	}
	if f.label != prev.label || f.onBreak != prev.onBreak {
		moveTo(b, stateRow, labelCol)
		b.WriteString("\x1b[2K") // the label has no fixed width
		b.WriteString(stateLine(f))
	}
}

func themeBG(onBreak bool) string {
	if onBreak {
		return breakBG
	}
	return workBG
}

func stateLine(f frame) string {
	if f.onBreak {
		return "◌ on break"
	}
	if f.label != "" {
		return "● " + f.label
	}
	return "● working"
}

func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}
