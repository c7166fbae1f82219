package tree

import "strings"

// maxIDAttempts bounds how often AddChild redraws an id that already exists.
const maxIDAttempts = 8

// Update applies patch to the node with the given id. A missing id is not an
// error: the forest comes back unchanged, which lets a deferred write land
// harmlessly after the node was deleted.
func Update(f Forest, id string, patch Patch) Forest {
	out, ok := replaceNode(f, id, patch.apply)
	if !ok {
		return f
	}
	return out
}

// replaceNode copies the path to id and swaps the node for fn(node).
func replaceNode(nodes []*Node, id string, fn func(*Node) *Node) ([]*Node, bool) {
	for i, n := range nodes {
		if n.ID == id {
			out := make([]*Node, len(nodes))
			copy(out, nodes)
			out[i] = fn(n)
			return out, true
		}
		if len(n.Children) == 0 {
			continue
		}
		if children, ok := replaceNode(n.Children, id, fn); ok {
			dup := n.clone()
			dup.Children = children
			out := make([]*Node, len(nodes))
			copy(out, nodes)
			out[i] = dup
			return out, true
		}
	}
	return nodes, false
}

// Rename sets a new label. Blank labels and labels equal to the current one
// are ignored.
func Rename(f Forest, id, label string) Forest {
	if strings.TrimSpace(label) == "" {
		return f
	}
	n, ok := Find(f, id)
	if !ok || n.Label == label {
		return f
	}
	return Update(f, id, Patch{Label: String(label)})
}

// AddChild appends a fresh closed node to parentID's children and opens the
// parent so the child is visible. A parent still loading stops showing as
// loading; its pending load then only marks it loaded. It returns the new
// forest and the child's id, or the input forest and "" when the parent does
// not exist.
func AddChild(f Forest, parentID string, gen IDGenerator) (Forest, string) {
	if _, ok := Find(f, parentID); !ok {
		return f, ""
	}
	id := freshID(f, gen)
	if id == "" {
		return f, ""
	}
	child := &Node{ID: id, Label: DefaultLabel}
	out, _ := replaceNode(f, parentID, func(n *Node) *Node {
		dup := n.clone()
		children := make([]*Node, len(n.Children), len(n.Children)+1)
		copy(children, n.Children)
		dup.Children = append(children, child)
		dup.IsOpen = true
		dup.IsLoading = false
		return dup
	})
	return out, id
}

func freshID(f Forest, gen IDGenerator) string {
	if gen == nil {
		return ""
	}
	for i := 0; i < maxIDAttempts; i++ {
		id := gen.NewID()
		if id == "" {
			continue
		}
		if _, taken := Find(f, id); !taken {
			return id
		}
	}
	return ""
}

// Remove deletes the node with the given id together with its subtree.
func Remove(f Forest, id string) Forest {
	out, _, ok := detach(f, id)
	if !ok {
		return f
	}
	return out
}

// detach removes the node with the given id from wherever it sits and
// returns the remaining forest along with the removed subtree.
func detach(nodes []*Node, id string) ([]*Node, *Node, bool) {
	for i, n := range nodes {
		if n.ID == id {
			out := make([]*Node, 0, len(nodes)-1)
			out = append(out, nodes[:i]...)
			out = append(out, nodes[i+1:]...)
			return out, n, true
		}
		if len(n.Children) == 0 {
			continue
		}
		if children, removed, ok := detach(n.Children, id); ok {
			dup := n.clone()
			dup.Children = children
			out := make([]*Node, len(nodes))
			copy(out, nodes)
			out[i] = dup
			return out, removed, true
		}
	}
	return nodes, nil, false
}
