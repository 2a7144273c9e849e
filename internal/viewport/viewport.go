package viewport

// View tracks a selection cursor and the first visible row over a backing
// sequence whose length is only known to the caller. It never holds the
// sequence itself; every operation takes the current length so the same
// state machine serves both the directory listing and the file viewer.
type View struct {
	Selected     int
	ScrollOffset int
	Capacity     int

	dirty bool
}

// New returns a view over an empty window with the given row capacity.
func New(capacity int) *View {
	if capacity < 0 {
		capacity = 0
	}
	return &View{Capacity: capacity, dirty: true}
}

// MoveSelection shifts the selection by delta (±1) within a sequence of
// length n. It reports false at a boundary, leaving the state untouched;
// callers surface that as an audible alert. On success the scroll offset
// follows by at most one row, so the window never jumps.
func (v *View) MoveSelection(delta, n int) bool {
	if n <= 0 {
		return false
	}
	next := v.Selected + delta
	if next < 0 || next >= n {
		return false
	}
	v.Selected = next
	if v.Selected < v.ScrollOffset {
		v.ScrollOffset--
	} else if v.Capacity > 0 && v.Selected >= v.ScrollOffset+v.Capacity {
		v.ScrollOffset++
	}
	v.dirty = true
	return true
}

// Reset returns selection and scroll to the top. Called whenever the
// backing sequence is replaced.
func (v *View) Reset() {
	v.Selected = 0
	v.ScrollOffset = 0
	v.dirty = true
}

// Resize updates the row capacity. The selection stays put; the scroll
// offset advances only by the minimum needed to keep the selection inside
// the visible window.
func (v *View) Resize(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	v.Capacity = capacity
	if capacity > 0 && v.Selected >= v.ScrollOffset+capacity {
		v.ScrollOffset = v.Selected - capacity + 1
	}
	v.dirty = true
}

// VisibleRange returns the half-open index range [start, end) the caller
// should render this frame, clamped to a sequence of length n.
func (v *View) VisibleRange(n int) (start, end int) {
	start = v.ScrollOffset
	if start > n {
		start = n
	}
	end = v.ScrollOffset + v.Capacity
	if end > n {
		end = n
	}
	if end < start {
		end = start
	}
	return start, end
}

// Dirty reports whether visible state changed since the last render.
func (v *View) Dirty() bool {
	return v.dirty
}

// MarkDirty forces a redraw on the next frame.
func (v *View) MarkDirty() {
	v.dirty = true
}

// ClearDirty is called by the renderer after a successful draw.
func (v *View) ClearDirty() {
	v.dirty = false
}
