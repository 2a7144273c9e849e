package fs

// Entry represents a single file or directory on disk. RawName is the name
// exactly as the filesystem reported it (used for sorting and path joins);
// Name is the NFC-normalized form used for display.
type Entry struct {
	Name      string
	RawName   string
	FullPath  string
	IsDir     bool
	IsSymlink bool
}
