// Package ui contains the Bubble Tea program that renders the tree as an
// editable outline inside a tmux popup.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - While a prompt is open (rename, delete confirmation, filter) key presses
//     go to that prompt. Every other message, and key presses in outline mode,
//     is routed through a typed handler registry.
//   - Edits are turned into dispatcher intents and run through the
//     internal/ui/command bus. The bus answers with a command.ResultMsg and
//     the model re-derives its rows from the store.
//
// State ownership:
//   - The forest lives in a state.TreeStore; the model only keeps the last
//     snapshot it rendered. Rows, cursor, filter, and viewport live in
//     internal/ui/state.Outline.
//   - Init subscribes to the store. A first expand finishes after the loader
//     returns, on another goroutine; the subscription delivers that snapshot
//     as a snapshotMsg so the view catches up without polling.
//
// Harness drives the model without a terminal. It does not call Init, so
// tests push snapshots with Harness.Sync after waiting on the engine.
package ui
