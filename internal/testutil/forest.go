// Package testutil provides forest fixtures and invariant checks shared by
// package tests.
package testutil

import (
	"strings"
	"testing"

	"github.com/atomicstack/tmux-popup-tree/internal/tree"
)

// N builds a closed node.
func N(id, label string, children ...*tree.Node) *tree.Node {
	return &tree.Node{ID: id, Label: label, Children: children}
}

// Open builds an open, loaded node.
func Open(id, label string, children ...*tree.Node) *tree.Node {
	return &tree.Node{ID: id, Label: label, Children: children, IsOpen: true, IsLoaded: true}
}

// Forest wraps nodes into a forest.
func Forest(nodes ...*tree.Node) tree.Forest {
	return tree.Forest(nodes)
}

// ABCD returns the forest [A[B, C], D] used by the move scenarios.
func ABCD() tree.Forest {
	return Forest(
		Open("A", "A", N("B", "B"), N("C", "C")),
		N("D", "D"),
	)
}

// Shape renders the forest as ids with bracketed children, e.g.
// "A[C] B D". It makes structural assertions readable in failures.
func Shape(f tree.Forest) string {
	parts := make([]string, 0, len(f))
	for _, n := range f {
		s := n.ID
		if len(n.Children) > 0 {
			s += "[" + Shape(n.Children) + "]"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

// AssertValid fails the test when the forest breaks an invariant.
func AssertValid(t *testing.T, f tree.Forest) {
	t.Helper()
	if err := tree.Validate(f); err != nil {
		t.Fatalf("invalid forest %s: %v", Shape(f), err)
	}
}
