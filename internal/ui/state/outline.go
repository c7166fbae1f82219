package state

import "github.com/atomicstack/tmux-popup-tree/internal/tree"

// Row is one visible line of the outline.
type Row struct {
	ID          string
	Label       string
	ParentID    string
	Depth       int
	HasChildren bool
	IsOpen      bool
	IsLoading   bool
	IsLoaded    bool
}

// Outline tracks the rows derived from a forest snapshot together with the
// cursor, filter, and viewport.
type Outline struct {
	Rows           []Row
	Full           []Row
	Filter         string
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// BuildRows flattens the forest depth first. Children are listed only below
// open nodes.
func BuildRows(f tree.Forest) []Row {
	rows := make([]Row, 0, len(f))
	tree.Walk(f, func(n *tree.Node, depth int, parentID string) bool {
		rows = append(rows, Row{
			ID:          n.ID,
			Label:       n.Label,
			ParentID:    parentID,
			Depth:       depth,
			HasChildren: n.HasChildren(),
			IsOpen:      n.IsOpen,
			IsLoading:   n.IsLoading,
			IsLoaded:    n.IsLoaded,
		})
		return n.IsOpen
	})
	return rows
}

// NewOutline builds an outline with the cursor on the first row.
func NewOutline(f tree.Forest) *Outline {
	o := &Outline{LastCursor: -1}
	o.Sync(f)
	return o
}

// Sync replaces the rows with those of a newer snapshot. The cursor stays on
// the same node when it is still visible; otherwise it keeps its index,
// clamped to the new row count.
func (o *Outline) Sync(f tree.Forest) {
	currentID := ""
	if row, ok := o.Current(); ok {
		currentID = row.ID
	}
	prevCursor := o.Cursor
	o.Full = BuildRows(f)
	o.applyFilter()
	if idx := o.IndexOf(currentID); idx >= 0 {
		o.Cursor = idx
	} else {
		o.Cursor = prevCursor
	}
	o.clampCursor()
}

// Current returns the row under the cursor.
func (o *Outline) Current() (Row, bool) {
	if o.Cursor < 0 || o.Cursor >= len(o.Rows) {
		return Row{}, false
	}
	return o.Rows[o.Cursor], true
}

// IndexOf returns the visible index of a node id, or -1.
func (o *Outline) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, row := range o.Rows {
		if row.ID == id {
			return i
		}
	}
	return -1
}

// Focus moves the cursor onto the given node if it is visible.
func (o *Outline) Focus(id string) bool {
	idx := o.IndexOf(id)
	if idx < 0 {
		return false
	}
	o.Cursor = idx
	return true
}

func (o *Outline) clampCursor() {
	if len(o.Rows) == 0 {
		o.Cursor = 0
		o.ViewportOffset = 0
		return
	}
	if o.Cursor < 0 {
		o.Cursor = 0
	}
	if o.Cursor >= len(o.Rows) {
		o.Cursor = len(o.Rows) - 1
	}
}
