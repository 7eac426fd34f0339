// Package session reconciles elapsed work time from backend time-log
// snapshots and keeps a live clock between them.
//
// # Overview
//
// The backend owns the time-log list; this package owns the derivation. Given
// a snapshot of today's entries plus the current instant, Reconcile produces
// the two display counters (active-task seconds and daily seconds), the active
// task, and the break flag. Session retains the last snapshot and advances the
// counters by one second per tick while a work entry is running.
//
// # Reconciliation Rules
//
//   - "Today" is the viewer's local calendar date: entries are bucketed by
//     converting their start time into now's location. An entry at 23:59 local
//     and one at 00:01 local the next day land in different buckets even when
//     their UTC dates coincide.
//   - Banked seconds come from closed work entries only; a running entry's
//     DurationSeconds reflects time already banked before the last pause and
//     is ignored.
//   - The live delta is max(0, floor(now - runningEntry.start)) and is added
//     exactly once. Reconciling twice with the same inputs yields the same
//     counters; there is no accumulation path through Reconcile.
//   - A running break freezes both counters at their banked values.
//   - At most one entry should be running; if the backend ever violates that,
//     the first match wins and reconciliation carries on.
//
// # Ticker State Machine
//
// Session is the Idle/Ticking state machine behind the visible clock:
//
//	Idle    -> Ticking  when a snapshot reconciles to a running work entry
//	Ticking -> Idle     when the entry stops, pauses, or the session tears down
//
// AdvanceSecond is the only mutation between snapshots and is a no-op in
// Idle. ApplySnapshot always wins over accumulated ticks: it rebuilds state
// from the new snapshot rather than merging, so drift cannot compound across
// long sessions. Teardown is permanent; a torn-down session ignores ticks and
// snapshots alike, which is what makes "no increment after unmount" testable.
//
// # Concurrency
//
// Session is mutex-guarded in the manner of a cooperative single-writer
// resource: the UI tick loop and the snapshot path both funnel through the
// same lock. Reconcile itself is a pure function and safe from any goroutine.
package session
