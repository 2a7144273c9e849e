package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/unicode/norm"
)

// Item is a row in a directory listing: either the synthetic parent link
// shown as ".." or a real filesystem entry. It is a closed sum; consumers
// switch exhaustively on the two cases.
type Item interface {
	isItem()
}

// ParentLink is the first row of any listing below the filesystem root.
type ParentLink struct {
	Path string
}

// NamedEntry wraps a real filesystem entry.
type NamedEntry struct {
	Entry Entry
}

func (ParentLink) isItem() {}
func (NamedEntry) isItem() {}

// ReadListing reads the entries of dir, sorted byte-wise by raw name, with
// a ParentLink prepended unless dir is the filesystem root. The returned
// error is the typed read failure the panel renders inline; callers keep
// the previous state otherwise.
func ReadListing(dir string) ([]Item, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", dir, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	items := make([]Item, 0, len(entries)+1)
	if parent := filepath.Dir(dir); parent != dir {
		items = append(items, ParentLink{Path: parent})
	}

	for _, e := range entries {
		rawName := e.Name()
		fullPath := filepath.Join(dir, rawName)

		isDir := e.IsDir()
		isSymlink := e.Type()&os.ModeSymlink != 0
		if isSymlink {
			// For symlinks, check if target is a directory
			if targetInfo, err := os.Stat(fullPath); err == nil {
				isDir = targetInfo.IsDir()
			}
		}

		items = append(items, NamedEntry{Entry: Entry{
			Name:      norm.NFC.String(rawName),
			RawName:   rawName,
			FullPath:  fullPath,
			IsDir:     isDir,
			IsSymlink: isSymlink,
		}})
	}

	return items, nil
}

// IsNavigable reports whether path resolves (following symlinks) to a
// directory that can actually be opened. A directory can be listed by its
// parent yet refuse opening for permission reasons; this distinguishes
// "visually a directory" from "enterable". Used only for display styling —
// entering an unopenable directory is still allowed and surfaces its own
// read error.
func IsNavigable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

// DisplayName returns the text a listing row renders: ".." for the parent
// link and the entry name, bracketed when it is an enterable directory.
func DisplayName(item Item) string {
	switch it := item.(type) {
	case ParentLink:
		return ".."
	case NamedEntry:
		if it.Entry.IsDir && IsNavigable(it.Entry.FullPath) {
			return "[" + it.Entry.Name + "]"
		}
		return it.Entry.Name
	default:
		return ""
	}
}
