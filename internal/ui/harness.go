package ui

import tea "github.com/charmbracelet/bubbletea"

// loadWaiter is satisfied by *engine.Engine.
type loadWaiter interface {
	Wait()
}

// Harness drives a Model without a terminal. Commands returned by Update
// run inline, so every intent has reached the engine by the time Send
// returns. First expands still finish on the engine's goroutines; Settle
// waits for them and feeds the result back as the subscription would.
type Harness struct {
	model *Model
	loads loadWaiter
}

// NewHarness wraps model. loads may be nil when the test never expands an
// unloaded node.
func NewHarness(model *Model, loads loadWaiter) *Harness {
	return &Harness{model: model, loads: loads}
}

// Send delivers each message in turn.
func (h *Harness) Send(msgs ...tea.Msg) {
	for _, msg := range msgs {
		h.run(msg)
	}
}

// Type sends text one rune per key press, the way a user types it.
func (h *Harness) Type(text string) {
	for _, r := range text {
		h.run(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Settle blocks until pending loads are applied to the store and then
// re-derives the outline from the latest snapshot.
func (h *Harness) Settle() {
	if h.loads != nil {
		h.loads.Wait()
	}
	h.Sync()
}

// Sync hands the model the store's current snapshot.
func (h *Harness) Sync() {
	if h.model.store == nil {
		return
	}
	h.run(snapshotMsg{forest: h.model.store.Snapshot()})
}

// Labels lists the visible row labels top to bottom.
func (h *Harness) Labels() []string {
	labels := make([]string, len(h.model.outline.Rows))
	for i, row := range h.model.outline.Rows {
		labels[i] = row.Label
	}
	return labels
}

func (h *Harness) View() string {
	return h.model.View()
}

func (h *Harness) Model() *Model {
	return h.model
}

// run feeds msg to the model and follows the command chain until it ends.
// The subscription wait is never returned here because Init is not called.
func (h *Harness) run(msg tea.Msg) {
	for msg != nil {
		_, cmd := h.model.Update(msg)
		if cmd == nil {
			return
		}
		msg = cmd()
	}
}
