// Package timeclock provides an HTTP client for the workforce backend's
// timeclock API.
//
// # Overview
//
// This package defines the wire types and the client punch uses to read
// time-log snapshots and drive timer mutations. The backend is authoritative
// for all time-log state; punch never persists derived values and treats every
// fetched snapshot as the source of truth.
//
// # API Endpoints
//
//   - GET  /api/timelogs/today: today's log entries plus the on-break flag
//   - GET  /api/tasks/assigned: tasks the employee may start a timer against
//   - POST /api/timelogs/start: open a work entry for a task ({taskId} body)
//   - POST /api/timelogs/pause: toggle the running entry between work and break
//   - POST /api/timelogs/stop:  close the running entry
//
// # Request Handling
//
// All requests use context for cancellation, carry Accept/User-Agent headers,
// a per-request X-Request-ID (UUID) for server-side correlation, and a bearer
// token when one is configured. Requests time out after 5 seconds.
//
// # Error Handling
//
// Errors are wrapped with short context ("execute request", "decode response").
// Starting a timer without a task id fails locally with ErrTaskRequired before
// any request is made. HTTP statuses >= 400 become errors naming the endpoint.
//
// # Timestamps
//
// All payload timestamps are ISO 8601 strings. Entry.ParsedStart tolerates
// RFC3339Nano, RFC3339, and the backend's legacy "2006-01-02 15:04:05" local
// layout; unparseable values yield the zero time and are handled defensively
// downstream. The client performs no day bucketing; that is reconciliation's
// job, in the viewer's local calendar.
//
// # Design Rationale
//
// The client is intentionally minimal: no caching (the poller owns refresh
// cadence), no retries (the app layer decides retry policy), no optimistic
// state (the next snapshot is authoritative after every mutation).
package timeclock
