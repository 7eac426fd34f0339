// Package ui renders punch's interactive terminal interface with Bubble Tea.
//
// The model owns two views: the timer view with the live task and day clocks
// plus today's entries, and a task picker with incremental filtering. A
// one-second tick drives the clocks between snapshots; every snapshot from
// the store re-reconciles the session and overwrites whatever the ticks
// accumulated.
//
// Timer actions go through the control facade. Stopping asks first: the
// confirmation modal's answer is what the facade's ConfirmFunc reports, so a
// declined modal never reaches the backend.
package ui
