package state

import (
	fsutil "github.com/kk-code-lab/duopane/internal/fs"
)

// LoadDirectory replaces the listing with the contents of dir and resets
// the directory viewport. A read failure is never fatal: it lands in
// ListErr, the viewport reports length zero, and the panel renders the
// error inline until Enter retries the load.
func LoadDirectory(s *AppState, dir string) {
	s.CurrentPath = dir

	items, err := fsutil.ReadListing(dir)
	if err != nil {
		s.Items = nil
		s.ListErr = err
		s.Trace.Addf("load %s failed: %v", dir, err)
	} else {
		s.Items = items
		s.ListErr = nil
		s.LastError = nil
		s.Trace.Addf("load %s (%d entries)", dir, len(items))
	}

	s.Dir.Reset()
	// Land the cursor on the first real entry, not the parent link.
	if len(s.Items) > 1 {
		if _, ok := s.Items[0].(fsutil.ParentLink); ok {
			s.Dir.MoveSelection(1, len(s.Items))
		}
	}
	s.MarkDirty()
}
