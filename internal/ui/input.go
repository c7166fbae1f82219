package ui

import (
	"github.com/atomicstack/tmux-popup-tree/internal/logging/events"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func newFilterInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "» "
	ti.Placeholder = "(type to search)"
	if styles.FilterPrompt != nil {
		ti.PromptStyle = *styles.FilterPrompt
	}
	if styles.Filter != nil {
		ti.TextStyle = *styles.Filter
	}
	if styles.FilterPlaceholder != nil {
		ti.PlaceholderStyle = *styles.FilterPlaceholder
	}
	if styles.Cursor != nil {
		ti.Cursor.Style = *styles.Cursor
	}
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

func (m *Model) startFilter() tea.Cmd {
	m.mode = ModeFilter
	m.errMsg = ""
	m.filterInput.SetValue("")
	return m.filterInput.Focus()
}

func (m *Model) endFilter() {
	m.mode = ModeOutline
	m.filterInput.Blur()
	m.filterInput.SetValue("")
}

// handleFilterInput edits the query. Enter keeps the cursor on the chosen
// node once all rows are back; Esc restores the cursor from before the
// search.
func (m *Model) handleFilterInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return true, m.quit()
	case "esc":
		m.endFilter()
		m.outline.SetFilter("")
		m.syncViewport()
		events.Filter.Cleared()
		return true, nil
	case "enter":
		id := ""
		if row, ok := m.currentRow(); ok {
			id = row.ID
			events.Filter.Accept(id)
		}
		m.endFilter()
		m.outline.ClearFilter(id)
		m.syncViewport()
		return true, nil
	case "up":
		m.moveCursor(m.outline.MoveCursorUp)
		return true, nil
	case "down":
		m.moveCursor(m.outline.MoveCursorDown)
		return true, nil
	}
	before := m.filterInput.Value()
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	if value := m.filterInput.Value(); value != before {
		m.outline.SetFilter(value)
		m.syncViewport()
		events.Filter.Update(value, len(m.outline.Rows))
	}
	return true, cmd
}
