// Package app wires punch together: it loads configuration and preferences,
// builds the timeclock client, starts the background snapshot poller, and
// hands a populated store, session, and mirror to the UI.
//
// The poller is the only writer to the state store. It refetches the day's
// time logs and the assigned task list on a fixed cadence, backing off
// exponentially (capped at 30s) while the backend is unreachable.
package app
