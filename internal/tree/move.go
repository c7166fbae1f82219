package tree

// Move relocates the subtree rooted at activeID so it sits immediately
// before overID, in whichever list currently holds overID. The input forest
// is returned unchanged when the move cannot be made; MoveCheck reports why.
func Move(f Forest, activeID, overID string) Forest {
	if MoveCheck(f, activeID, overID) != nil {
		return f
	}
	rest, moved, ok := detach(f, activeID)
	if !ok {
		return f
	}
	out, ok := insertBefore(rest, overID, moved)
	if !ok {
		return f
	}
	return out
}

// MoveCheck reports whether Move(f, activeID, overID) would change the
// forest, returning ErrSameNode, ErrNotFound or ErrCycle when it would not.
func MoveCheck(f Forest, activeID, overID string) error {
	if activeID == overID {
		return ErrSameNode
	}
	active, ok := Find(f, activeID)
	if !ok {
		return ErrNotFound
	}
	if _, ok := Find(f, overID); !ok {
		return ErrNotFound
	}
	if Contains(active, overID) {
		return ErrCycle
	}
	return nil
}

// insertBefore searches the root list first, then each subtree in order,
// for the list holding overID and splices n in front of it.
func insertBefore(nodes []*Node, overID string, n *Node) ([]*Node, bool) {
	for i, candidate := range nodes {
		if candidate.ID == overID {
			out := make([]*Node, 0, len(nodes)+1)
			out = append(out, nodes[:i]...)
			out = append(out, n)
			out = append(out, nodes[i:]...)
			return out, true
		}
	}
	for i, candidate := range nodes {
		if len(candidate.Children) == 0 {
			continue
		}
		if children, ok := insertBefore(candidate.Children, overID, n); ok {
			dup := candidate.clone()
			dup.Children = children
			out := make([]*Node, len(nodes))
			copy(out, nodes)
			out[i] = dup
			return out, true
		}
	}
	return nodes, false
}
