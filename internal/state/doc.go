// Package state provides the thread-safe snapshot store shared by the
// background poller and the UI.
//
// # Overview
//
// The poller writes, the UI reads. Update replaces the whole snapshot
// atomically; Snapshot returns defensive copies so neither side can mutate
// the other's view. On a poll failure the previous data is kept and the error
// recorded, so the UI always has the last successful snapshot to display plus
// enough signal to show an offline banner (two consecutive failures).
//
// # Concurrency Model
//
//   - Update acquires the write lock (single writer: the poller, plus the
//     UI's post-mutation refresh).
//   - Snapshot acquires the read lock; the UI reads once per second.
//
// Locks are held only for the copy, never across network calls or rendering.
// Incremental updates, versioning, and pub/sub were all rejected on purpose:
// full-snapshot replacement is easy to reason about at this scale, and the
// reconciliation layer rebuilds derived state from scratch per snapshot
// anyway.
package state
