package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/tmux-popup-tree/internal/seed"
	uistate "github.com/atomicstack/tmux-popup-tree/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
)

func TestViewRendersOutline(t *testing.T) {
	h, _, _ := newTestHarness(t, seed.Default(), nil)
	view := h.View()
	if !strings.Contains(view, "tree · 5 nodes") {
		t.Fatalf("expected header, got:\n%s", view)
	}
	if !strings.Contains(view, "▾ L Level A") {
		t.Fatalf("expected open root row, got:\n%s", view)
	}
	if got := strings.Count(view, "Level C"); got != 2 {
		t.Fatalf("expected two grandchildren, got %d in:\n%s", got, view)
	}
	if !strings.Contains(view, "    ▸ L Level C") {
		t.Fatalf("expected grandchildren indented two levels, got:\n%s", view)
	}
}

func TestViewLinesFitWidth(t *testing.T) {
	h, _, _ := newTestHarness(t, seed.Default(), nil)
	for _, line := range strings.Split(h.View(), "\n") {
		if w := lipgloss.Width(line); w > 60 {
			t.Fatalf("line wider than 60 cells (%d): %q", w, line)
		}
	}
}

func TestViewShowsFooterWhenEnabled(t *testing.T) {
	m := NewModel(Options{ShowFooter: true})
	if view := m.View(); !strings.Contains(view, "a add") {
		t.Fatalf("expected footer hint, got:\n%s", view)
	}
}

func TestRowMarkerAndAvatar(t *testing.T) {
	cases := []struct {
		row    uistate.Row
		marker string
		avatar string
	}{
		{uistate.Row{Label: "alpha", IsOpen: true, HasChildren: true}, "▾", "A"},
		{uistate.Row{Label: "beta", HasChildren: true}, "▸", "B"},
		{uistate.Row{Label: "gamma", IsLoading: true}, "◌", "…"},
		{uistate.Row{Label: "ärger", IsLoaded: true}, "·", "Ä"},
		{uistate.Row{Label: ""}, "▸", "?"},
	}
	for _, tc := range cases {
		if got := rowMarker(tc.row); got != tc.marker {
			t.Fatalf("marker for %#v: expected %q, got %q", tc.row, tc.marker, got)
		}
		if got := rowAvatar(tc.row); got != tc.avatar {
			t.Fatalf("avatar for %#v: expected %q, got %q", tc.row, tc.avatar, got)
		}
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("abcdef", 4); got != "abc…" {
		t.Fatalf("expected abc…, got %q", got)
	}
	if got := truncateText("abc", 0); got != "abc" {
		t.Fatalf("expected untouched text, got %q", got)
	}
}
