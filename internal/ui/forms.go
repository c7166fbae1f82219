package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/tmux-popup-tree/internal/data/dispatcher"
	"github.com/atomicstack/tmux-popup-tree/internal/logging/events"
	"github.com/atomicstack/tmux-popup-tree/internal/tree"
	uistate "github.com/atomicstack/tmux-popup-tree/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type renameForm struct {
	id       string
	original string
	input    textinput.Model
}

func newRenameForm(row uistate.Row) *renameForm {
	ti := textinput.New()
	ti.Placeholder = tree.DefaultLabel
	ti.CharLimit = 128
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.SetValue(row.Label)
	ti.CursorEnd()
	ti.Focus()
	return &renameForm{id: row.ID, original: row.Label, input: ti}
}

func (f *renameForm) Title() string     { return fmt.Sprintf("Rename %s", f.original) }
func (f *renameForm) Help() string      { return "Press Enter to rename. Esc to cancel." }
func (f *renameForm) Value() string     { return f.input.Value() }
func (f *renameForm) InputView() string { return f.input.View() }

// Update returns the input's command and whether the form was submitted or
// cancelled. Whitespace-only and unchanged labels cancel; anything else is
// submitted exactly as typed.
func (f *renameForm) Update(msg tea.KeyMsg) (tea.Cmd, bool, bool) {
	if msg.String() == "ctrl+u" {
		if f.input.Value() != "" {
			f.input.SetValue("")
			f.input.CursorStart()
		}
		return nil, false, false
	}
	switch msg.Type {
	case tea.KeyEsc:
		events.UI.CancelRename(f.id, events.ReasonEscape)
		return nil, false, true
	case tea.KeyEnter:
		value := f.Value()
		if strings.TrimSpace(value) == "" {
			events.UI.CancelRename(f.id, events.ReasonEmpty)
			return nil, false, true
		}
		if value == f.original {
			events.UI.CancelRename(f.id, events.ReasonUnchanged)
			return nil, false, true
		}
		return nil, true, false
	}
	updated, cmd := f.input.Update(msg)
	f.input = updated
	return cmd, false, false
}

func (m *Model) startRename() {
	row, ok := m.currentRow()
	if !ok || row.IsLoading {
		return
	}
	m.renameForm = newRenameForm(row)
	m.mode = ModeRename
	m.errMsg = ""
	events.UI.RenamePrompt(row.ID)
}

func (m *Model) handleRenameForm(msg tea.KeyMsg) (bool, tea.Cmd) {
	if m.renameForm == nil {
		m.mode = ModeOutline
		return false, nil
	}
	if msg.String() == "ctrl+c" {
		return true, m.quit()
	}
	cmd, done, cancel := m.renameForm.Update(msg)
	if cancel {
		m.renameForm = nil
		m.mode = ModeOutline
		return true, cmd
	}
	if done {
		id, label := m.renameForm.id, m.renameForm.Value()
		m.renameForm = nil
		m.mode = ModeOutline
		return true, m.execute(dispatcher.Intent{Kind: dispatcher.IntentRename, ID: id, Label: label})
	}
	return true, cmd
}

func (m *Model) startDelete() {
	row, ok := m.currentRow()
	if !ok {
		return
	}
	m.deleteTarget = &row
	m.mode = ModeConfirmDelete
	m.errMsg = ""
	events.UI.DeletePrompt(row.ID)
}

func (m *Model) handleDeleteConfirm(msg tea.KeyMsg) (bool, tea.Cmd) {
	target := m.deleteTarget
	if target == nil {
		m.mode = ModeOutline
		return false, nil
	}
	switch msg.String() {
	case "ctrl+c":
		return true, m.quit()
	case "y", "Y", "enter":
		m.deleteTarget = nil
		m.mode = ModeOutline
		return true, m.execute(dispatcher.Intent{Kind: dispatcher.IntentRemove, ID: target.ID})
	case "n", "N", "esc":
		events.UI.CancelDelete(target.ID, events.ReasonDeclined)
		m.deleteTarget = nil
		m.mode = ModeOutline
	}
	return true, nil
}

func (m *Model) viewFormWithHeader(title, input, help, header string) string {
	lines := []string{
		title,
		"",
		input,
		"",
		help,
	}
	if header != "" {
		lines = append([]string{header}, lines...)
	}
	return strings.Join(lines, "\n")
}
