package events

import "github.com/atomicstack/tmux-popup-tree/internal/logging"

type TreeTracer struct{}

var Tree = TreeTracer{}

func (TreeTracer) Toggle(id, transition string) {
	logging.Trace("tree.toggle", map[string]interface{}{"id": id, "transition": transition})
}

func (TreeTracer) LoadStart(id string) {
	logging.Trace("tree.load.start", map[string]interface{}{"id": id})
}

// LoadDone records a finished load. present is false when the node was
// removed while the load was pending.
func (TreeTracer) LoadDone(id string, present bool) {
	logging.Trace("tree.load.done", map[string]interface{}{"id": id, "present": present})
}

func (TreeTracer) LoadFailed(id string, err error) {
	logging.Trace("tree.load.failed", map[string]interface{}{"id": id, "error": err.Error()})
}

func (TreeTracer) Rename(id, label string, changed bool) {
	logging.Trace("tree.rename", map[string]interface{}{"id": id, "label": label, "changed": changed})
}

func (TreeTracer) Add(parentID, childID string) {
	logging.Trace("tree.add", map[string]interface{}{"parent": parentID, "child": childID})
}

func (TreeTracer) Remove(id string, changed bool) {
	logging.Trace("tree.remove", map[string]interface{}{"id": id, "changed": changed})
}

func (TreeTracer) Move(activeID, overID string) {
	logging.Trace("tree.move", map[string]interface{}{"active": activeID, "over": overID})
}

func (TreeTracer) MoveRejected(activeID, overID string, reason error) {
	logging.Trace("tree.move.rejected", map[string]interface{}{
		"active": activeID,
		"over":   overID,
		"reason": reason.Error(),
	})
}
