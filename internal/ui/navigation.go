package ui

import (
	"github.com/atomicstack/tmux-popup-tree/internal/data/dispatcher"
	"github.com/atomicstack/tmux-popup-tree/internal/logging/events"
	uistate "github.com/atomicstack/tmux-popup-tree/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.mode != ModeOutline {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m.quit()
	case "esc":
		if m.grabbed != nil {
			events.UI.Release(m.grabbed.ID, events.ReasonEscape)
			m.grabbed = nil
			return nil
		}
		return m.quit()
	case "enter", " ", "space":
		if m.grabbed != nil {
			return m.drop()
		}
		return m.toggleCurrent()
	case "right":
		return m.openCurrent()
	case "left":
		return m.closeCurrent()
	case "a":
		return m.addChild()
	case "r":
		m.startRename()
	case "d":
		m.startDelete()
	case "m":
		m.grab()
	case "/":
		return m.startFilter()
	case "up":
		m.moveCursor(m.outline.MoveCursorUp)
	case "down":
		m.moveCursor(m.outline.MoveCursorDown)
	case "pgup":
		m.moveCursor(func() bool { return m.outline.MoveCursorPageUp(m.maxVisibleItems()) })
	case "pgdown":
		m.moveCursor(func() bool { return m.outline.MoveCursorPageDown(m.maxVisibleItems()) })
	case "home":
		m.moveCursor(m.outline.MoveCursorHome)
	case "end":
		m.moveCursor(m.outline.MoveCursorEnd)
	}
	return nil
}

func (m *Model) moveCursor(move func() bool) {
	if move() {
		if row, ok := m.outline.Current(); ok {
			events.UI.Cursor(row.ID, m.outline.Cursor)
		}
	}
	m.syncViewport()
}

func (m *Model) syncViewport() {
	m.outline.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) currentRow() (uistate.Row, bool) {
	return m.outline.Current()
}

func (m *Model) toggleCurrent() tea.Cmd {
	row, ok := m.currentRow()
	if !ok {
		return nil
	}
	return m.execute(dispatcher.Intent{Kind: dispatcher.IntentToggle, ID: row.ID})
}

func (m *Model) openCurrent() tea.Cmd {
	row, ok := m.currentRow()
	if !ok || row.IsOpen || row.IsLoading {
		return nil
	}
	return m.execute(dispatcher.Intent{Kind: dispatcher.IntentToggle, ID: row.ID})
}

// closeCurrent collapses an open node, or jumps to the parent of a closed
// one.
func (m *Model) closeCurrent() tea.Cmd {
	row, ok := m.currentRow()
	if !ok {
		return nil
	}
	if row.IsOpen {
		return m.execute(dispatcher.Intent{Kind: dispatcher.IntentToggle, ID: row.ID})
	}
	if row.ParentID != "" {
		m.moveCursor(func() bool { return m.outline.Focus(row.ParentID) })
	}
	return nil
}

func (m *Model) addChild() tea.Cmd {
	row, ok := m.currentRow()
	if !ok {
		return nil
	}
	return m.execute(dispatcher.Intent{Kind: dispatcher.IntentAddChild, ID: row.ID})
}

func (m *Model) grab() {
	row, ok := m.currentRow()
	if !ok {
		return
	}
	m.grabbed = &row
	m.errMsg = ""
	events.UI.Grab(row.ID)
}

// drop moves the grabbed node in front of the node under the cursor.
func (m *Model) drop() tea.Cmd {
	active := m.grabbed
	m.grabbed = nil
	over, ok := m.currentRow()
	if active == nil || !ok {
		return nil
	}
	events.UI.Drop(active.ID, over.ID)
	return m.execute(dispatcher.Drop(active.ID, over.ID))
}
