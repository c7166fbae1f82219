package dispatcher

import (
	"github.com/atomicstack/tmux-popup-tree/internal/engine"
	"github.com/atomicstack/tmux-popup-tree/internal/tree"
)

// IntentKind names an operation requested by the presentation layer.
type IntentKind int

const (
	IntentToggle IntentKind = iota
	IntentRename
	IntentAddChild
	IntentRemove
	IntentMove
)

func (k IntentKind) String() string {
	switch k {
	case IntentToggle:
		return "toggle"
	case IntentRename:
		return "rename"
	case IntentAddChild:
		return "add"
	case IntentRemove:
		return "remove"
	case IntentMove:
		return "move"
	default:
		return "unknown"
	}
}

// Intent is one user action. ID is the target node (the dragged node for a
// move); Label is only read by rename and OverID only by move.
type Intent struct {
	Kind   IntentKind
	ID     string
	Label  string
	OverID string
}

// Drop builds the move intent for a completed drag of activeID onto overID.
func Drop(activeID, overID string) Intent {
	return Intent{Kind: IntentMove, ID: activeID, OverID: overID}
}

// Result reports what the engine did with an intent. Changed is decided by
// the engine against the snapshot it actually edited, so a load settling
// concurrently never makes a no-op look like a change.
type Result struct {
	Snapshot tree.Forest
	Changed  bool
	// NewID is the id of the node created by IntentAddChild.
	NewID string
	// Err is why a move was refused; nil for every other intent.
	Err error
	// Pending is closed once a toggle has settled; nil for other intents.
	Pending <-chan struct{}
}

type Dispatcher struct {
	engine *engine.Engine
}

func New(e *engine.Engine) *Dispatcher {
	return &Dispatcher{engine: e}
}

// Handle forwards the intent to the engine.
func (d *Dispatcher) Handle(in Intent) Result {
	var res Result
	switch in.Kind {
	case IntentToggle:
		var transition tree.Transition
		res.Snapshot, transition, res.Pending = d.engine.Toggle(in.ID)
		res.Changed = transition != tree.TransitionNone
	case IntentRename:
		res.Snapshot, res.Changed = d.engine.Rename(in.ID, in.Label)
	case IntentAddChild:
		res.Snapshot, res.NewID = d.engine.AddChild(in.ID)
		res.Changed = res.NewID != ""
	case IntentRemove:
		res.Snapshot, res.Changed = d.engine.Remove(in.ID)
	case IntentMove:
		res.Snapshot, res.Err = d.engine.Move(in.ID, in.OverID)
		res.Changed = res.Err == nil
	default:
		res.Snapshot = d.engine.Snapshot()
	}
	return res
}

// Snapshot exposes the engine's current forest.
func (d *Dispatcher) Snapshot() tree.Forest {
	return d.engine.Snapshot()
}
