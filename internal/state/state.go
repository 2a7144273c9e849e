package state

import (
	fsutil "github.com/kk-code-lab/duopane/internal/fs"
	"github.com/kk-code-lab/duopane/internal/textview"
	"github.com/kk-code-lab/duopane/internal/viewport"
)

// Item mirrors fs.Item so UI/state code can rely on a stable type.
type Item = fsutil.Item

// ViewerState is the modal file viewer: it exclusively owns the line
// source (and through it the open file handle) for as long as the modal
// is up. The directory pane receives no input while Viewer is non-nil.
type ViewerState struct {
	Path   string
	Source *textview.LineSource
}

// AppState is the single source of truth
type AppState struct {
	// Navigation & filesystem
	CurrentPath string
	Items       []Item // Listing rows, parent link first (always sorted)
	ListErr     error  // Typed read failure rendered as an inline line

	// Selection & viewport
	Dir *viewport.View

	// Modal viewer (nil while browsing)
	Viewer *ViewerState

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	// Event trace shown in the left pane
	Trace *TraceRing

	// Error state
	LastError error

	// Render gating
	dirty       bool
	PendingBeep bool
}

// NewAppState builds the initial state rooted at dir.
func NewAppState(dir string, width, height int) *AppState {
	s := &AppState{
		CurrentPath:  dir,
		Dir:          viewport.New(1),
		ScreenWidth:  width,
		ScreenHeight: height,
		Trace:        NewTraceRing(defaultTraceCapacity),
		dirty:        true,
	}
	s.Dir.Resize(s.ListCapacity())
	return s
}

// ItemCount is the length of the backing sequence the directory viewport
// scrolls over; a failed listing counts as empty.
func (s *AppState) ItemCount() int {
	if s.ListErr != nil {
		return 0
	}
	return len(s.Items)
}

// CurrentItem returns the selected listing row, if any.
func (s *AppState) CurrentItem() (Item, bool) {
	if s.ListErr != nil || s.Dir.Selected < 0 || s.Dir.Selected >= len(s.Items) {
		return nil, false
	}
	return s.Items[s.Dir.Selected], true
}

// ViewerActive reports whether the modal viewer owns input.
func (s *AppState) ViewerActive() bool {
	return s.Viewer != nil
}

// ListCapacity is the number of listing rows that fit inside the panel
// border at the current screen size.
func (s *AppState) ListCapacity() int {
	rows := s.ScreenHeight - 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

// ViewerRows is the number of text rows inside the viewer frame.
func (s *AppState) ViewerRows() int {
	rows := s.ScreenHeight - 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Dirty reports whether anything visible changed since the last draw.
func (s *AppState) Dirty() bool {
	return s.dirty || s.Dir.Dirty()
}

// MarkDirty requests a redraw on the next frame.
func (s *AppState) MarkDirty() {
	s.dirty = true
}

// ClearDirty is called after a completed render.
func (s *AppState) ClearDirty() {
	s.dirty = false
	s.Dir.ClearDirty()
}
