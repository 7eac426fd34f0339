package app

import (
	"context"
	"log"
	"time"

	"github.com/punchtui/punch/internal/state"
	"github.com/punchtui/punch/internal/timeclock"
)

const (
	defaultPollInterval = 15 * time.Second
	maxBackoff          = 30 * time.Second
)

// StartPoller launches a background goroutine that refreshes the store at a
// fixed cadence. Consecutive failures stretch the cadence exponentially up to
// maxBackoff so an unreachable backend is not hammered. It returns
// immediately.
func StartPoller(ctx context.Context, store *state.Store, client timeclock.API, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		failures := 0
		for {
			if err := refresh(ctx, store, client); err != nil {
				failures++
			} else {
				failures = 0
			}

			wait := interval
			if failures > 0 {
				wait = calculateBackoff(failures, interval)
			}

			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

// refresh fetches the day's time logs and the assigned task list, then hands
// both to the store. A failure on either call records the error and keeps the
// previous data.
func refresh(ctx context.Context, store *state.Store, client timeclock.API) error {
	today, err := client.FetchToday(ctx)
	if err != nil {
		store.Update(nil, nil, err)
		log.Printf("timelog poll failed: %v", err)
		return err
	}
	tasks, err := client.FetchTasks(ctx)
	if err != nil {
		store.Update(nil, nil, err)
		log.Printf("task poll failed: %v", err)
		return err
	}
	store.Update(today, tasks, nil)
	return nil
}

// calculateBackoff doubles the base interval per consecutive failure, capped
// at maxBackoff. Zero or negative failure counts return the base interval.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures < 1 {
		return base
	}
	backoff := base
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
