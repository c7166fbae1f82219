package tree

// Transition names the step BeginToggle took for a node.
type Transition int

const (
	// TransitionNone means the id did not resolve; nothing changed.
	TransitionNone Transition = iota
	// TransitionClose collapses an open node. IsLoaded is kept.
	TransitionClose
	// TransitionOpen expands a node whose children were already loaded.
	TransitionOpen
	// TransitionLoad marks a never-loaded node as loading. The caller owns
	// the wait and must finish with CompleteLoad or FailLoad.
	TransitionLoad
)

func (t Transition) String() string {
	switch t {
	case TransitionClose:
		return "close"
	case TransitionOpen:
		return "open"
	case TransitionLoad:
		return "load"
	default:
		return "none"
	}
}

// BeginToggle applies the synchronous half of an expand/collapse.
//
//	open              -> closed          (TransitionClose)
//	closed, loaded    -> open            (TransitionOpen)
//	closed, unloaded  -> closed+loading  (TransitionLoad)
//
// A node that is already loading is treated as closed and unloaded, so a
// second toggle starts a second wait; overlapping toggles are not merged.
func BeginToggle(f Forest, id string) (Forest, Transition) {
	n, ok := Find(f, id)
	if !ok {
		return f, TransitionNone
	}
	switch {
	case n.IsOpen:
		return Update(f, id, Patch{IsOpen: Bool(false)}), TransitionClose
	case n.IsLoaded:
		return Update(f, id, Patch{IsOpen: Bool(true), IsLoading: Bool(false)}), TransitionOpen
	default:
		return Update(f, id, Patch{IsLoading: Bool(true)}), TransitionLoad
	}
}

// CompleteLoad finishes a TransitionLoad. It must be applied to the current
// snapshot, not the one BeginToggle returned: if the node has been removed
// in the meantime the forest comes back unchanged.
func CompleteLoad(f Forest, id string) Forest {
	return Update(f, id, Patch{
		IsLoading: Bool(false),
		IsLoaded:  Bool(true),
		IsOpen:    Bool(true),
	})
}

// FailLoad abandons a TransitionLoad, leaving the node closed and unloaded
// so the next toggle retries.
func FailLoad(f Forest, id string) Forest {
	return Update(f, id, Patch{IsLoading: Bool(false)})
}
