package events

import "github.com/atomicstack/tmux-popup-tree/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

type uiReason string

const (
	ReasonEscape    uiReason = "escape"
	ReasonEmpty     uiReason = "empty"
	ReasonUnchanged uiReason = "unchanged"
	ReasonDeclined  uiReason = "declined"
	ReasonGone      uiReason = "gone"
)

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) Cursor(id string, cursor int) {
	logging.Trace("outline.cursor", map[string]interface{}{"id": id, "cursor": cursor})
}

func (UITracer) RenamePrompt(id string) {
	logging.Trace("outline.rename.prompt", map[string]interface{}{"id": id})
}

func (UITracer) CancelRename(id string, reason uiReason) {
	logging.Trace("outline.rename.cancel", map[string]interface{}{"id": id, "reason": string(reason)})
}

func (UITracer) DeletePrompt(id string) {
	logging.Trace("outline.delete.prompt", map[string]interface{}{"id": id})
}

func (UITracer) CancelDelete(id string, reason uiReason) {
	logging.Trace("outline.delete.cancel", map[string]interface{}{"id": id, "reason": string(reason)})
}

func (UITracer) Grab(id string) {
	logging.Trace("outline.grab", map[string]interface{}{"id": id})
}

func (UITracer) Release(id string, reason uiReason) {
	logging.Trace("outline.release", map[string]interface{}{"id": id, "reason": string(reason)})
}

func (UITracer) Drop(activeID, overID string) {
	logging.Trace("outline.drop", map[string]interface{}{"active": activeID, "over": overID})
}

func (UITracer) Snapshot(rows int) {
	logging.Trace("outline.snapshot", map[string]interface{}{"rows": rows})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) Update(query string, matches int) {
	logging.Trace("filter.update", map[string]interface{}{"filter": query, "matches": matches})
}

func (FilterTracer) Accept(id string) {
	logging.Trace("filter.accept", map[string]interface{}{"id": id})
}

func (CommandTracer) Queue(kind, id string) {
	logging.Trace("command.queue", map[string]interface{}{"kind": kind, "id": id})
}

func (CommandTracer) Result(kind, id string, changed bool) {
	logging.Trace("command.result", map[string]interface{}{"kind": kind, "id": id, "changed": changed})
}
