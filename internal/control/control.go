package control

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/punchtui/punch/internal/timeclock"
)

// ErrStopDeclined indicates the user did not confirm stopping the timer.
// No request is made when it is returned.
var ErrStopDeclined = errors.New("stop declined")

// ConfirmFunc answers a blocking confirmation request for a destructive
// action. The UI supplies the implementation; tests supply stubs.
type ConfirmFunc func(message string) bool

// Facade exposes the user-facing timer actions. Every operation is
// fire-and-forget: it calls the backend and reports success or failure, but
// never mutates reconciled state itself; the next snapshot is authoritative.
type Facade struct {
	api     timeclock.API
	confirm ConfirmFunc
}

// New builds a Facade. A nil confirm refuses destructive actions outright.
func New(api timeclock.API, confirm ConfirmFunc) *Facade {
	if confirm == nil {
		confirm = func(string) bool { return false }
	}
	return &Facade{api: api, confirm: confirm}
}

// Start opens a work entry for taskID. An empty task id fails with
// timeclock.ErrTaskRequired before any request is made.
func (f *Facade) Start(ctx context.Context, taskID string) error {
	if strings.TrimSpace(taskID) == "" {
		return timeclock.ErrTaskRequired
	}
	if err := f.api.StartTimer(ctx, taskID); err != nil {
		return fmt.Errorf("start timer: %w", err)
	}
	return nil
}

// TogglePause switches the running entry between work and break.
func (f *Facade) TogglePause(ctx context.Context) error {
	if err := f.api.TogglePause(ctx); err != nil {
		return fmt.Errorf("toggle break: %w", err)
	}
	return nil
}

// Stop closes the running entry after an explicit confirmation. A declined
// confirmation returns ErrStopDeclined and makes no request.
func (f *Facade) Stop(ctx context.Context) error {
	if !f.confirm("Stop the running timer?") {
		return ErrStopDeclined
	}
	if err := f.api.StopTimer(ctx); err != nil {
		return fmt.Errorf("stop timer: %w", err)
	}
	return nil
}
