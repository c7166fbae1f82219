// Package tree holds the forest data model and the pure operations that turn
// one forest snapshot into the next.
//
// Snapshots are persistent values. No function in this package mutates a
// node reachable from its input; every change copies the path from the root
// list down to the touched node and shares every other subtree by pointer.
// Operations that change nothing hand back the input forest itself, so
// callers can detect a no-op with Same.
package tree

// DefaultLabel is assigned to nodes created by AddChild.
const DefaultLabel = "New Item"

// Node is a single labeled entry in the forest.
type Node struct {
	ID        string  `yaml:"id" json:"id"`
	Label     string  `yaml:"label" json:"label"`
	Children  []*Node `yaml:"children,omitempty" json:"children,omitempty"`
	IsOpen    bool    `yaml:"open,omitempty" json:"open,omitempty"`
	IsLoading bool    `yaml:"-" json:"loading,omitempty"`
	IsLoaded  bool    `yaml:"loaded,omitempty" json:"loaded,omitempty"`
}

// Forest is the ordered list of root-level nodes.
type Forest []*Node

// HasChildren reports whether the node has at least one child.
func (n *Node) HasChildren() bool {
	return n != nil && len(n.Children) > 0
}

// clone returns a shallow copy. The children slice is shared until the
// caller replaces it.
func (n *Node) clone() *Node {
	dup := *n
	return &dup
}

// Patch is a partial set of field changes applied by Update. Nil fields are
// left untouched.
type Patch struct {
	Label     *string
	IsOpen    *bool
	IsLoading *bool
	IsLoaded  *bool
}

func (p Patch) apply(n *Node) *Node {
	dup := n.clone()
	if p.Label != nil {
		dup.Label = *p.Label
	}
	if p.IsOpen != nil {
		dup.IsOpen = *p.IsOpen
	}
	if p.IsLoading != nil {
		dup.IsLoading = *p.IsLoading
	}
	if p.IsLoaded != nil {
		dup.IsLoaded = *p.IsLoaded
	}
	return dup
}

// String returns a pointer to s for use in a Patch.
func String(s string) *string { return &s }

// Bool returns a pointer to b for use in a Patch.
func Bool(b bool) *bool { return &b }

// Same reports whether two forests are the same snapshot: equal length and
// identical root pointers. It is the cheap test for "did the operation do
// anything"; deep equality is not considered.
func Same(a, b Forest) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
