package state

import (
	"testing"

	"github.com/atomicstack/tmux-popup-tree/internal/testutil"
	"github.com/atomicstack/tmux-popup-tree/internal/tree"
)

func sampleForest() tree.Forest {
	return testutil.Forest(
		testutil.Open("A", "Alpha",
			testutil.N("B", "Beta"),
			testutil.Open("C", "Gamma", testutil.N("E", "Epsilon")),
		),
		testutil.N("D", "Delta", testutil.N("F", "Phi")),
	)
}

func rowIDs(rows []Row) []string {
	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	return ids
}

func equalIDs(got []string, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestBuildRowsSkipsClosedChildren(t *testing.T) {
	rows := BuildRows(sampleForest())
	if ids := rowIDs(rows); !equalIDs(ids, "A", "B", "C", "E", "D") {
		t.Fatalf("unexpected rows %v", ids)
	}
	if rows[3].Depth != 2 || rows[3].ParentID != "C" {
		t.Fatalf("expected E at depth 2 under C, got %#v", rows[3])
	}
	if !rows[4].HasChildren || rows[4].IsOpen {
		t.Fatalf("expected D closed with children, got %#v", rows[4])
	}
	if rows[0].ParentID != "" {
		t.Fatalf("expected root row without parent, got %q", rows[0].ParentID)
	}
}

func TestSyncKeepsCursorOnSameNode(t *testing.T) {
	f := sampleForest()
	o := NewOutline(f)
	if !o.Focus("E") {
		t.Fatalf("expected E to be focusable")
	}

	f = tree.Remove(f, "B")
	o.Sync(f)
	if row, _ := o.Current(); row.ID != "E" {
		t.Fatalf("expected cursor to follow E, got %q", row.ID)
	}

	f = tree.Remove(f, "E")
	o.Sync(f)
	if row, _ := o.Current(); row.ID != "D" {
		t.Fatalf("expected cursor to stay at index and land on D, got %q", row.ID)
	}
}

func TestSyncEmptyForest(t *testing.T) {
	o := NewOutline(nil)
	if _, ok := o.Current(); ok {
		t.Fatalf("expected no current row")
	}
	if o.MoveCursorDown() {
		t.Fatalf("expected no movement in an empty outline")
	}
}

func TestCursorWrapsAndPages(t *testing.T) {
	o := NewOutline(sampleForest())
	if !o.MoveCursorUp() || o.Cursor != 4 {
		t.Fatalf("expected wrap to last row, got %d", o.Cursor)
	}
	if !o.MoveCursorDown() || o.Cursor != 0 {
		t.Fatalf("expected wrap to first row, got %d", o.Cursor)
	}
	if !o.MoveCursorPageDown(2) || o.Cursor != 2 {
		t.Fatalf("expected page down to 2, got %d", o.Cursor)
	}
	if !o.MoveCursorPageDown(10) || o.Cursor != 4 {
		t.Fatalf("expected page down to clamp at 4, got %d", o.Cursor)
	}
	if o.MoveCursorEnd() {
		t.Fatalf("expected no movement when already at end")
	}
	if !o.MoveCursorPageUp(3) || o.Cursor != 1 {
		t.Fatalf("expected page up to 1, got %d", o.Cursor)
	}
	if !o.MoveCursorHome() || o.Cursor != 0 {
		t.Fatalf("expected home, got %d", o.Cursor)
	}
}

func TestVisibleFollowsCursor(t *testing.T) {
	o := NewOutline(sampleForest())
	o.Cursor = 3
	rows, start := o.Visible(2)
	if start != 2 || !equalIDs(rowIDs(rows), "C", "E") {
		t.Fatalf("unexpected viewport start=%d rows=%v", start, rowIDs(rows))
	}
	o.Cursor = 0
	rows, start = o.Visible(2)
	if start != 0 || !equalIDs(rowIDs(rows), "A", "B") {
		t.Fatalf("unexpected viewport start=%d rows=%v", start, rowIDs(rows))
	}
	rows, _ = o.Visible(0)
	if len(rows) != 5 {
		t.Fatalf("expected all rows without a height limit, got %d", len(rows))
	}
}

func TestSetFilterRestoresCursor(t *testing.T) {
	o := NewOutline(sampleForest())
	o.Cursor = 2
	o.SetFilter("ta")
	if ids := rowIDs(o.Rows); !equalIDs(ids, "B", "D") {
		t.Fatalf("expected fuzzy matches B and D, got %v", ids)
	}
	if row, _ := o.Current(); row.ID != "B" {
		t.Fatalf("expected best match B, got %q", row.ID)
	}

	o.SetFilter("")
	if o.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", o.Cursor)
	}
	if o.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", o.LastCursor)
	}
}

func TestClearFilterFocusesChosenNode(t *testing.T) {
	o := NewOutline(sampleForest())
	o.SetFilter("delta")
	row, ok := o.Current()
	if !ok || row.ID != "D" {
		t.Fatalf("expected exact match D, got %#v", row)
	}
	o.ClearFilter(row.ID)
	if len(o.Rows) != 5 {
		t.Fatalf("expected all rows back, got %d", len(o.Rows))
	}
	if current, _ := o.Current(); current.ID != "D" {
		t.Fatalf("expected cursor on D, got %q", current.ID)
	}
}

func TestFilterWithoutMatches(t *testing.T) {
	o := NewOutline(sampleForest())
	o.SetFilter("zzz")
	if len(o.Rows) != 0 {
		t.Fatalf("expected no rows, got %v", rowIDs(o.Rows))
	}
	if _, ok := o.Current(); ok {
		t.Fatalf("expected no current row")
	}
}

func TestBestMatchIndexPrefersPrefix(t *testing.T) {
	rows := BuildRows(sampleForest())
	if idx := BestMatchIndex(rows, "gam"); idx != 2 {
		t.Fatalf("expected prefix match on Gamma, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "x"); idx != -1 {
		t.Fatalf("expected -1 for no rows, got %d", idx)
	}
}
