package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter narrows the rows to those matching query. The cursor position
// from before the first non-empty query is restored once the query is
// cleared again.
func (o *Outline) SetFilter(query string) {
	trimmed := strings.TrimSpace(query)
	prevTrimmed := strings.TrimSpace(o.Filter)
	restore := -1
	o.Filter = query
	if trimmed != "" {
		if prevTrimmed == "" {
			o.LastCursor = o.Cursor
		}
		o.Cursor = 0
	} else if prevTrimmed != "" {
		restore = o.LastCursor
	}
	o.applyFilter()
	if trimmed != "" && len(o.Rows) > 0 {
		if idx := BestMatchIndex(o.Rows, trimmed); idx >= 0 {
			o.Cursor = idx
		}
	}
	if trimmed == "" && prevTrimmed != "" {
		if restore >= 0 && restore < len(o.Rows) {
			o.Cursor = restore
		}
		o.LastCursor = -1
		o.clampCursor()
	}
}

// ClearFilter drops the query and puts the cursor on id when it is visible.
func (o *Outline) ClearFilter(id string) {
	o.SetFilter("")
	o.Focus(id)
}

func (o *Outline) applyFilter() {
	o.Rows = FilterRows(o.Full, o.Filter)
	if len(o.Rows) == 0 {
		o.Cursor = 0
		o.ViewportOffset = 0
		return
	}
	if o.ViewportOffset > len(o.Rows)-1 {
		o.ViewportOffset = 0
	}
	o.clampCursor()
}

// FilterRows returns the rows whose label fuzzy-matches query, falling back
// to a substring match on label or id.
func FilterRows(rows []Row, query string) []Row {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return append([]Row(nil), rows...)
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels(rows))
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]Row, 0, len(matches))
		for idx, row := range rows {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, row)
			}
		}
		return filtered
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]Row, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Label), lower) || strings.Contains(strings.ToLower(row.ID), lower) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// BestMatchIndex picks the row the cursor should land on for query: an exact
// label, then a label prefix, then the closest fuzzy match.
func BestMatchIndex(rows []Row, query string) int {
	if len(rows) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, row := range rows {
		if strings.EqualFold(row.Label, trimmed) || strings.EqualFold(row.ID, trimmed) {
			return i
		}
	}
	for i, row := range rows {
		if strings.HasPrefix(strings.ToLower(row.Label), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels(rows))
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}

func labels(rows []Row) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = row.Label
	}
	return out
}
