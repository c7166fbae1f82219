package ui

import (
	"fmt"

	"github.com/atomicstack/tmux-popup-tree/internal/data/dispatcher"
	"github.com/atomicstack/tmux-popup-tree/internal/logging/events"
	"github.com/atomicstack/tmux-popup-tree/internal/state"
	"github.com/atomicstack/tmux-popup-tree/internal/tree"
	"github.com/atomicstack/tmux-popup-tree/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// snapshotMsg signals that the store published a new forest.
type snapshotMsg struct {
	forest tree.Forest
}

func waitForSnapshot(sub *state.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		f, ok := <-sub.C()
		if !ok {
			return nil
		}
		return snapshotMsg{forest: f}
	}
}

func (m *Model) handleSnapshotMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(snapshotMsg)
	if !ok {
		return nil
	}
	// the store may have moved on since this value was queued
	if m.store != nil {
		m.refresh()
	} else {
		m.applyForest(update.forest)
	}
	return waitForSnapshot(m.sub)
}

func (m *Model) execute(in dispatcher.Intent) tea.Cmd {
	m.errMsg = ""
	return m.bus.Execute(in)
}

func (m *Model) handleResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(command.ResultMsg)
	if !ok {
		return nil
	}
	before := m.forest
	if m.store != nil {
		m.refresh()
	} else {
		m.applyForest(res.Result.Snapshot)
	}

	in := res.Intent
	switch in.Kind {
	case dispatcher.IntentAddChild:
		if res.Result.NewID != "" && m.outline.Focus(res.Result.NewID) {
			m.syncViewport()
		}
	case dispatcher.IntentMove:
		if res.Result.Err != nil {
			m.errMsg = fmt.Sprintf("cannot move %s before %s", labelOf(before, in.ID), labelOf(before, in.OverID))
			events.Action.Error(fmt.Errorf("%s: %w", m.errMsg, res.Result.Err))
			return nil
		}
		if m.outline.Focus(in.ID) {
			m.syncViewport()
		}
	}

	info := describeResult(before, res)
	if info == "" {
		m.forceClearInfo()
		return nil
	}
	events.Action.Success(info)
	if m.verbose {
		m.setInfo(info)
	}
	return nil
}

func describeResult(before tree.Forest, res command.ResultMsg) string {
	if !res.Result.Changed {
		return ""
	}
	in := res.Intent
	switch in.Kind {
	case dispatcher.IntentToggle:
		n, ok := tree.Find(res.Result.Snapshot, in.ID)
		switch {
		case !ok:
			return ""
		case n.IsLoading:
			return fmt.Sprintf("Loading %s…", n.Label)
		case n.IsOpen:
			return fmt.Sprintf("Expanded %s", n.Label)
		default:
			return fmt.Sprintf("Collapsed %s", n.Label)
		}
	case dispatcher.IntentRename:
		return fmt.Sprintf("Renamed %s to %s", labelOf(before, in.ID), in.Label)
	case dispatcher.IntentAddChild:
		return fmt.Sprintf("Added %s under %s", tree.DefaultLabel, labelOf(before, in.ID))
	case dispatcher.IntentRemove:
		return fmt.Sprintf("Deleted %s", labelOf(before, in.ID))
	case dispatcher.IntentMove:
		return fmt.Sprintf("Moved %s before %s", labelOf(before, in.ID), labelOf(before, in.OverID))
	}
	return ""
}

func labelOf(f tree.Forest, id string) string {
	if n, ok := tree.Find(f, id); ok && n.Label != "" {
		return n.Label
	}
	return id
}
