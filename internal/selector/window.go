package selector

// window is the visible slice of the logical option list
type window struct {
	offset int // logical index of the first visible option
	length int // fixed number of visible rows
	total  int // options matching the filter, as last reported by the source
	cursor int // logical index of the highlighted option
}

// offsetFor returns the offset that keeps logical index i roughly centred
// without scrolling past either end of the list or past the cursor.
func (w window) offsetFor(i int) int {
	return min(w.cursor, max(0, w.total-w.length), max(0, i-w.length/2))
}

// clampCursor pulls the cursor into the current window and the valid index range
func (w window) clampCursor() int {
	if w.total == 0 {
		return 0
	}
	c := max(w.cursor, w.offset)
	c = min(c, w.offset+w.length-1)
	c = min(c, w.total-1)
	return max(c, 0)
}
