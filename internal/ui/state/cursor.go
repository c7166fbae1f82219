package state

// MoveCursorUp moves the cursor one row up, wrapping to the last row.
func (o *Outline) MoveCursorUp() bool {
	n := len(o.Rows)
	if n == 0 {
		return false
	}
	if o.Cursor > 0 {
		o.Cursor--
	} else {
		o.Cursor = n - 1
	}
	return n > 1
}

// MoveCursorDown moves the cursor one row down, wrapping to the first row.
func (o *Outline) MoveCursorDown() bool {
	n := len(o.Rows)
	if n == 0 {
		return false
	}
	if o.Cursor < n-1 {
		o.Cursor++
	} else {
		o.Cursor = 0
	}
	return n > 1
}

// MoveCursorHome moves the cursor to the first row.
func (o *Outline) MoveCursorHome() bool {
	if len(o.Rows) == 0 {
		o.Cursor = 0
		return false
	}
	old := o.Cursor
	o.Cursor = 0
	return old != o.Cursor
}

// MoveCursorEnd moves the cursor to the last row.
func (o *Outline) MoveCursorEnd() bool {
	n := len(o.Rows)
	if n == 0 {
		o.Cursor = 0
		return false
	}
	old := o.Cursor
	o.Cursor = n - 1
	return old != o.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (o *Outline) MoveCursorPageUp(maxVisible int) bool {
	return o.moveCursorBy(-o.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (o *Outline) MoveCursorPageDown(maxVisible int) bool {
	return o.moveCursorBy(o.pageSize(maxVisible))
}

func (o *Outline) moveCursorBy(delta int) bool {
	if len(o.Rows) == 0 {
		o.Cursor = 0
		return false
	}
	old := o.Cursor
	if o.Cursor < 0 {
		o.Cursor = 0
	}
	o.Cursor += delta
	o.clampCursor()
	return o.Cursor != old
}

func (o *Outline) pageSize(maxVisible int) int {
	total := len(o.Rows)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	return size
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (o *Outline) EnsureCursorVisible(maxVisible int) {
	o.clampCursor()
	if len(o.Rows) == 0 || maxVisible <= 0 {
		o.ViewportOffset = 0
		return
	}
	maxOffset := len(o.Rows) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if o.ViewportOffset > maxOffset {
		o.ViewportOffset = maxOffset
	}
	if o.ViewportOffset < 0 {
		o.ViewportOffset = 0
	}
	if o.Cursor < o.ViewportOffset {
		o.ViewportOffset = o.Cursor
	}
	if upper := o.ViewportOffset + maxVisible - 1; o.Cursor > upper {
		o.ViewportOffset = o.Cursor - maxVisible + 1
	}
}

// Visible returns the rows inside the viewport and the index of the first.
func (o *Outline) Visible(maxVisible int) ([]Row, int) {
	if maxVisible <= 0 || len(o.Rows) <= maxVisible {
		return o.Rows, 0
	}
	o.EnsureCursorVisible(maxVisible)
	start := o.ViewportOffset
	return o.Rows[start : start+maxVisible], start
}
