package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/tmux-popup-tree/internal/testutil"
	"github.com/atomicstack/tmux-popup-tree/internal/tree"
	tea "github.com/charmbracelet/bubbletea"
)

func labelledForest() tree.Forest {
	return testutil.Forest(
		testutil.Open("A", "Alpha", testutil.N("B", "Beta"), testutil.N("C", "Gamma")),
		testutil.N("D", "Delta"),
	)
}

func TestFilterEnterKeepsChosenNode(t *testing.T) {
	h, _, _ := newTestHarness(t, labelledForest(), nil)
	h.Send(runes("/"))
	if h.Model().mode != ModeFilter {
		t.Fatalf("expected filter mode")
	}
	h.Type("gam")
	if got := len(h.Model().outline.Rows); got != 1 {
		t.Fatalf("expected one match, got %d", got)
	}
	if view := h.View(); !strings.Contains(view, "» gam") {
		t.Fatalf("expected filter prompt in view, got:\n%s", view)
	}

	h.Send(keyEnter)
	m := h.Model()
	if m.mode != ModeOutline {
		t.Fatalf("expected outline mode after accept")
	}
	if got := len(m.outline.Rows); got != 4 {
		t.Fatalf("expected all rows back, got %d", got)
	}
	if id := cursorID(t, h); id != "C" {
		t.Fatalf("expected cursor on C, got %s", id)
	}
}

func TestFilterEscapeRestoresCursor(t *testing.T) {
	h, _, _ := newTestHarness(t, labelledForest(), nil)
	h.Send(keyDown)
	h.Send(runes("/"))
	h.Send(runes("del"))
	if id := cursorID(t, h); id != "D" {
		t.Fatalf("expected best match D, got %s", id)
	}
	h.Send(keyEsc)
	if id := cursorID(t, h); id != "B" {
		t.Fatalf("expected cursor restored to B, got %s", id)
	}
	if h.Model().outline.Filter != "" {
		t.Fatalf("expected filter cleared")
	}
}

func TestFilterBackspaceWidensMatches(t *testing.T) {
	h, _, _ := newTestHarness(t, labelledForest(), nil)
	h.Send(runes("/"))
	h.Send(runes("xq"))
	if view := h.View(); !strings.Contains(view, `No matches for "xq"`) {
		t.Fatalf("expected no-match message, got:\n%s", view)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyBackspace})
	h.Send(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := len(h.Model().outline.Rows); got != 4 {
		t.Fatalf("expected all rows after clearing query, got %d", got)
	}
	// letters are query text in filter mode, not commands
	h.Send(runes("q"))
	if h.Model().mode != ModeFilter {
		t.Fatalf("expected to stay in filter mode")
	}
}
