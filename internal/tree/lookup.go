package tree

import "fmt"

// Find returns the first node with the given id in depth-first pre-order.
func Find(f Forest, id string) (*Node, bool) {
	for _, n := range f {
		if n.ID == id {
			return n, true
		}
		if found, ok := Find(n.Children, id); ok {
			return found, true
		}
	}
	return nil, false
}

// Contains reports whether id is root itself or anywhere below it.
func Contains(root *Node, id string) bool {
	if root == nil {
		return false
	}
	if root.ID == id {
		return true
	}
	_, ok := Find(root.Children, id)
	return ok
}

// Walk visits every node in depth-first pre-order. parentID is empty for
// root-level nodes. Returning false from fn skips the node's children.
func Walk(f Forest, fn func(n *Node, depth int, parentID string) bool) {
	walk(f, 0, "", fn)
}

func walk(nodes []*Node, depth int, parentID string, fn func(*Node, int, string) bool) {
	for _, n := range nodes {
		if !fn(n, depth, parentID) {
			continue
		}
		walk(n.Children, depth+1, n.ID, fn)
	}
}

// IDs lists every id in depth-first pre-order.
func IDs(f Forest) []string {
	var ids []string
	Walk(f, func(n *Node, _ int, _ string) bool {
		ids = append(ids, n.ID)
		return true
	})
	return ids
}

// Len counts the nodes in the forest.
func Len(f Forest) int {
	count := 0
	Walk(f, func(*Node, int, string) bool {
		count++
		return true
	})
	return count
}

// Validate checks the structural invariants of a forest: no entry is nil,
// every node has a non-empty id, ids are unique, and no node is loading
// while open.
// Cycles cannot be expressed by an owned-children forest built from values,
// but a forest assembled by hand could reuse a node pointer; the duplicate
// check catches that as well.
func Validate(f Forest) error {
	seen := make(map[string]struct{})
	var err error
	Walk(f, func(n *Node, _ int, parentID string) bool {
		if err != nil {
			return false
		}
		if n == nil {
			err = parentErr(parentID, ErrNilNode)
			return false
		}
		if n.ID == "" {
			err = fmt.Errorf("label %q: %w", n.Label, ErrEmptyID)
			return false
		}
		if _, dup := seen[n.ID]; dup {
			err = fmt.Errorf("%s: %w", n.ID, ErrDuplicateID)
			return false
		}
		seen[n.ID] = struct{}{}
		if n.IsLoading && n.IsOpen {
			err = fmt.Errorf("%s: %w", n.ID, ErrInvalidState)
			return false
		}
		return true
	})
	return err
}

func parentErr(parentID string, err error) error {
	if parentID == "" {
		return fmt.Errorf("root list: %w", err)
	}
	return fmt.Errorf("children of %s: %w", parentID, err)
}
