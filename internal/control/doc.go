// Package control is the facade for user-facing timer actions.
//
// # Overview
//
// The facade sits between the UI and the timeclock client. It owns the
// pre-network checks: validation (no start without a task) and confirmation
// (no stop without an explicit yes). Confirmation is an injected function so
// the UI can back it with a modal and tests can back it with a stub.
//
// # State Policy
//
// Operations never touch reconciled state, optimistically or otherwise. On
// success the caller triggers a snapshot refetch and reconciliation re-derives
// everything; on failure the displayed numbers keep reflecting the last
// successful reconciliation. Errors are returned to the caller for a
// user-visible notice and are never propagated into the ticking logic.
package control
