// Package engine binds the pure tree operations to a TreeStore and runs the
// deferred half of a first expand.
//
// Every operation reads the store's current snapshot at call time and
// publishes its result through the store. Only Toggle can leave work
// behind: a first expand waits on the Loader in its own goroutine and then
// applies tree.CompleteLoad to whatever snapshot is current at that moment,
// so a node removed in the meantime stays removed. Pending loads cannot be
// cancelled; Wait blocks until all of them have settled.
package engine

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/atomicstack/tmux-popup-tree/internal/backend"
	"github.com/atomicstack/tmux-popup-tree/internal/logging"
	"github.com/atomicstack/tmux-popup-tree/internal/logging/events"
	"github.com/atomicstack/tmux-popup-tree/internal/state"
	"github.com/atomicstack/tmux-popup-tree/internal/tree"
)

// Engine is the caller-facing set of tree operations.
type Engine struct {
	store  state.TreeStore
	loader backend.Loader
	ids    tree.IDGenerator

	wg      sync.WaitGroup
	pending atomic.Int64
}

// New wires an engine to its store. A nil loader opens nodes without delay;
// a nil generator falls back to random UUIDs.
func New(store state.TreeStore, loader backend.Loader, ids tree.IDGenerator) *Engine {
	if loader == nil {
		loader = backend.NewSimulated(0)
	}
	if ids == nil {
		ids = tree.UUIDGenerator{}
	}
	return &Engine{store: store, loader: loader, ids: ids}
}

// Snapshot returns the store's current forest.
func (e *Engine) Snapshot() tree.Forest {
	return e.store.Snapshot()
}

// Toggle expands or collapses a node. The returned forest is the snapshot
// right after the synchronous step, and the transition says which step was
// taken against it (TransitionNone when the id did not resolve). The
// channel is closed once the toggle has fully settled: immediately for
// close, cached open and unknown ids, or after the loader returned for a
// first expand.
func (e *Engine) Toggle(id string) (tree.Forest, tree.Transition, <-chan struct{}) {
	var transition tree.Transition
	next := e.store.Apply(func(f tree.Forest) tree.Forest {
		out, tr := tree.BeginToggle(f, id)
		transition = tr
		return out
	})
	events.Tree.Toggle(id, transition.String())

	done := make(chan struct{})
	if transition != tree.TransitionLoad {
		close(done)
		return next, transition, done
	}
	e.wg.Add(1)
	e.pending.Add(1)
	events.Tree.LoadStart(id)
	go e.finishLoad(id, done)
	return next, transition, done
}

func (e *Engine) finishLoad(id string, done chan struct{}) {
	defer close(done)
	defer e.wg.Done()
	defer e.pending.Add(-1)

	if err := e.loader.Load(context.Background(), id); err != nil {
		logging.Error(fmt.Errorf("load %s: %w", id, err))
		events.Tree.LoadFailed(id, err)
		e.store.Apply(func(f tree.Forest) tree.Forest {
			return tree.FailLoad(f, id)
		})
		return
	}
	present := false
	e.store.Apply(func(f tree.Forest) tree.Forest {
		_, present = tree.Find(f, id)
		return tree.CompleteLoad(f, id)
	})
	events.Tree.LoadDone(id, present)
}

// Rename changes a node's label; blank or unchanged labels are ignored and
// reported as unchanged.
func (e *Engine) Rename(id, label string) (tree.Forest, bool) {
	changed := false
	next := e.store.Apply(func(f tree.Forest) tree.Forest {
		out := tree.Rename(f, id, label)
		changed = !tree.Same(f, out)
		return out
	})
	events.Tree.Rename(id, label, changed)
	return next, changed
}

// AddChild appends a new node under parentID and returns its id, or "" when
// the parent does not exist.
func (e *Engine) AddChild(parentID string) (tree.Forest, string) {
	var id string
	next := e.store.Apply(func(f tree.Forest) tree.Forest {
		out, childID := tree.AddChild(f, parentID, e.ids)
		id = childID
		return out
	})
	events.Tree.Add(parentID, id)
	return next, id
}

// Remove deletes a node and its subtree. It reports false for unknown ids.
func (e *Engine) Remove(id string) (tree.Forest, bool) {
	changed := false
	next := e.store.Apply(func(f tree.Forest) tree.Forest {
		out := tree.Remove(f, id)
		changed = !tree.Same(f, out)
		return out
	})
	events.Tree.Remove(id, changed)
	return next, changed
}

// Move places activeID's subtree immediately before overID. A rejected move
// leaves the store untouched and returns the tree.MoveCheck reason. A legal
// move that keeps the order it found is not an error.
func (e *Engine) Move(activeID, overID string) (tree.Forest, error) {
	var reason error
	next := e.store.Apply(func(f tree.Forest) tree.Forest {
		if reason = tree.MoveCheck(f, activeID, overID); reason != nil {
			return f
		}
		return tree.Move(f, activeID, overID)
	})
	if reason != nil {
		events.Tree.MoveRejected(activeID, overID, reason)
	} else {
		events.Tree.Move(activeID, overID)
	}
	return next, reason
}

// Pending reports how many first-expand loads are still waiting.
func (e *Engine) Pending() int {
	return int(e.pending.Load())
}

// Wait blocks until every pending load has been applied.
func (e *Engine) Wait() {
	e.wg.Wait()
}
