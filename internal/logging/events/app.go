package events

import "github.com/atomicstack/tmux-popup-tree/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Seed(source string, nodes int) {
	logging.Trace("app.seed", map[string]interface{}{"source": source, "nodes": nodes})
}

// Stop records shutdown; pending is the number of loads still in flight.
func (AppTracer) Stop(pending int) {
	logging.Trace("app.stop", map[string]interface{}{"pending": pending})
}
