package state

import (
	fsutil "github.com/kk-code-lab/duopane/internal/fs"
	"github.com/kk-code-lab/duopane/internal/textview"
)

// StateReducer applies Actions to AppState. Recoverable conditions
// (boundary scrolls, unreadable directories, unopenable files) never come
// back as errors; they set the pending beep or a typed state field.
type StateReducer struct{}

// NewStateReducer creates a reducer.
func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// Reduce mutates state according to action. The returned error is
// reserved for programmer mistakes; user-visible failures stay in state.
func (r *StateReducer) Reduce(s *AppState, action Action) error {
	switch a := action.(type) {
	case NavigateUpAction:
		if s.ViewerActive() {
			r.scrollViewer(s, -1)
		} else {
			r.moveSelection(s, -1)
		}

	case NavigateDownAction:
		if s.ViewerActive() {
			r.scrollViewer(s, 1)
		} else {
			r.moveSelection(s, 1)
		}

	case EnterAction:
		if s.ViewerActive() {
			return nil
		}
		r.handleEnter(s)

	case CloseViewerAction:
		r.closeViewer(s)

	case ResizeAction:
		r.handleResize(s, a)
	}

	return nil
}

func (r *StateReducer) moveSelection(s *AppState, delta int) {
	if !s.Dir.MoveSelection(delta, s.ItemCount()) {
		s.PendingBeep = true
		return
	}
	s.Trace.Addf("move sel=%d scroll=%d", s.Dir.Selected, s.Dir.ScrollOffset)
}

func (r *StateReducer) scrollViewer(s *AppState, delta int) {
	var moved bool
	var err error
	if delta > 0 {
		moved, err = s.Viewer.Source.ScrollForward()
	} else {
		moved, err = s.Viewer.Source.ScrollBackward()
	}
	if err != nil {
		s.LastError = err
		s.Trace.Addf("viewer scroll failed: %v", err)
		s.PendingBeep = true
		s.MarkDirty()
		return
	}
	if !moved {
		s.PendingBeep = true
		return
	}
	offsets := s.Viewer.Source.Offsets()
	s.Trace.Addf("viewer top:%d bot:%d n:%d", offsets[0], offsets[len(offsets)-1], len(offsets))
	s.MarkDirty()
}

// handleEnter descends into the selected directory, opens the viewer on a
// file, or retries the load after a read error.
func (r *StateReducer) handleEnter(s *AppState) {
	if s.ListErr != nil {
		s.Trace.Addf("retry load %s", s.CurrentPath)
		LoadDirectory(s, s.CurrentPath)
		return
	}

	item, ok := s.CurrentItem()
	if !ok {
		s.PendingBeep = true
		return
	}

	switch it := item.(type) {
	case fsutil.ParentLink:
		LoadDirectory(s, it.Path)
	case fsutil.NamedEntry:
		if it.Entry.IsDir {
			LoadDirectory(s, it.Entry.FullPath)
		} else {
			r.openViewer(s, it.Entry.FullPath)
		}
	}
}

func (r *StateReducer) openViewer(s *AppState, path string) {
	source, err := textview.Open(path)
	if err != nil {
		s.LastError = err
		s.Trace.Addf("open %s failed: %v", path, err)
		s.PendingBeep = true
		s.MarkDirty()
		return
	}
	if err := source.Fill(s.ViewerRows()); err != nil {
		source.Close()
		s.LastError = err
		s.Trace.Addf("read %s failed: %v", path, err)
		s.PendingBeep = true
		s.MarkDirty()
		return
	}

	s.Viewer = &ViewerState{Path: path, Source: source}
	s.LastError = nil
	s.Trace.Addf("view %s n:%d", path, len(source.Offsets()))
	s.MarkDirty()
}

func (r *StateReducer) closeViewer(s *AppState) {
	if s.Viewer == nil {
		return
	}
	s.Viewer.Source.Close()
	s.Trace.Addf("close viewer %s", s.Viewer.Path)
	s.Viewer = nil
	s.MarkDirty()
}

func (r *StateReducer) handleResize(s *AppState, a ResizeAction) {
	s.ScreenWidth = a.Width
	s.ScreenHeight = a.Height

	s.Dir.Resize(s.ListCapacity())

	if s.ViewerActive() {
		if err := s.Viewer.Source.Resize(s.ViewerRows()); err != nil {
			s.LastError = err
			s.Trace.Addf("viewer resize failed: %v", err)
		}
	}

	s.Trace.Addf("resize %dx%d", a.Width, a.Height)
	s.MarkDirty()
}
