// Package mirror keeps a detached secondary surface in lockstep with the
// primary timer display.
//
// # Overview
//
// The secondary surface is a strictly additive, glanceable copy of the two
// timer clocks: a separate terminal device showing the task clock, the daily
// clock, and a working/on-break state with a distinct background per state.
// It exists so the timer stays visible while the primary terminal is buried.
//
// # Contract
//
//   - Open performs the capability check through its OpenFunc; hosts without
//     a usable surface report ErrUnsupported, which callers surface as a
//     notice and otherwise ignore. The primary display never depends on the
//     mirror.
//   - Update is idempotent. The layout (title, field labels, themed
//     background) is drawn once per open; every later update addresses fixed
//     cells and overwrites just the values that changed. An update carrying
//     the same frame as the last one writes nothing at all. Only flipping the
//     break state redraws the layout, because the background theme is a pure
//     function of it.
//   - Close releases the surface and resets it. If a write ever fails the
//     surface is treated as closed by the user: the open flag clears and
//     later updates are silent no-ops.
//
// # Single Writer
//
// The surface is shared between two rendering contexts only in the sense
// that it exists next to the primary UI; all writes funnel through
// Mirror.Update under one mutex, and only the primary UI calls Open/Close.
package mirror
