package command

import (
	"github.com/atomicstack/tmux-popup-tree/internal/data/dispatcher"
	"github.com/atomicstack/tmux-popup-tree/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// ResultMsg reports the outcome of an executed intent back to the model.
type ResultMsg struct {
	Intent dispatcher.Intent
	Result dispatcher.Result
}

// Bus coordinates the execution of tree intents.
type Bus struct {
	dispatcher *dispatcher.Dispatcher
}

// New initialises a command bus instance.
func New(d *dispatcher.Dispatcher) *Bus {
	return &Bus{dispatcher: d}
}

// Execute wraps an intent into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(in dispatcher.Intent) tea.Cmd {
	events.Command.Queue(in.Kind.String(), in.ID)
	return func() tea.Msg {
		if b == nil || b.dispatcher == nil {
			return nil
		}
		res := b.dispatcher.Handle(in)
		events.Command.Result(in.Kind.String(), in.ID, res.Changed)
		return ResultMsg{Intent: in, Result: res}
	}
}
