// Package textview maintains a sliding window of line-start byte offsets
// over a file opened for random access. Only the offsets persist between
// draws; line text is re-read from disk on demand, so memory use stays
// bounded regardless of file size.
package textview

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

const (
	// backScanChunk bounds the single backward read used to locate the
	// previous line boundary.
	backScanChunk = 4096

	// maxLineRead caps how many bytes of one line are fetched for display.
	// Offsets stay exact; only the rendered text is cut, and the renderer
	// truncates to screen width anyway.
	maxLineRead = 4096
)

// LineSource tracks the byte offsets of the currently visible lines of a
// file. offsets[i] is where visible line i starts; the final element is
// where the next line would begin. The slice is strictly increasing and
// holds rows+1 entries except near end-of-file, where it may be shorter.
type LineSource struct {
	path    string
	file    *os.File
	offsets []int64
}

// Open prepares a source positioned at the top of the file. The caller
// owns the source and must Close it on every exit path.
func Open(path string) (*LineSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open file %s: %w", path, err)
	}
	return &LineSource{path: path, file: f, offsets: []int64{0}}, nil
}

// Close releases the file handle.
func (s *LineSource) Close() {
	if s == nil || s.file == nil {
		return
	}
	_ = s.file.Close()
	s.file = nil
}

// Path returns the file path backing the source.
func (s *LineSource) Path() string {
	return s.path
}

// Rows reports how many full lines the window currently tracks.
func (s *LineSource) Rows() int {
	if len(s.offsets) == 0 {
		return 0
	}
	return len(s.offsets) - 1
}

// Offsets returns a copy of the current window for inspection.
func (s *LineSource) Offsets() []int64 {
	return append([]int64(nil), s.offsets...)
}

// Fill extends the window forward, one line at a time from the trailing
// offset, until rows lines are tracked or end-of-file. A window shorter
// than requested means the file ran out; no further forward scrolling is
// possible then.
func (s *LineSource) Fill(rows int) error {
	for len(s.offsets) < rows+1 {
		end := s.offsets[len(s.offsets)-1]
		n, err := s.lineLen(end)
		if err != nil {
			return err
		}
		if n == 0 {
			break
		}
		s.offsets = append(s.offsets, end+int64(n))
	}
	return nil
}

// Resize adjusts the window to the new row capacity: grows by reading
// further lines, shrinks by dropping trailing offsets. Dropped lines are
// only untracked, not lost; a later grow re-reads them from disk.
func (s *LineSource) Resize(rows int) error {
	if rows < 0 {
		rows = 0
	}
	if err := s.Fill(rows); err != nil {
		return err
	}
	if len(s.offsets) > rows+1 {
		s.offsets = s.offsets[:rows+1]
	}
	return nil
}

// ScrollForward advances the window by one line. It reports false at
// end-of-file with the window unchanged; callers beep rather than error.
func (s *LineSource) ScrollForward() (bool, error) {
	end := s.offsets[len(s.offsets)-1]
	n, err := s.lineLen(end)
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	s.offsets = append(s.offsets[1:], end+int64(n))
	return true, nil
}

// ScrollBackward moves the window up by one line, locating the start of
// the line preceding the current top via a chunked backward scan. It
// reports false at the start of the file with the window unchanged.
func (s *LineSource) ScrollBackward() (bool, error) {
	top := s.offsets[0]
	if top == 0 {
		return false, nil
	}
	start, err := s.prevLineStart(top)
	if err != nil {
		return false, err
	}
	window := make([]int64, 0, len(s.offsets))
	window = append(window, start)
	window = append(window, s.offsets[:len(s.offsets)-1]...)
	s.offsets = window
	return true, nil
}

// prevLineStart finds where the line before file position pos begins.
// It reads up to backScanChunk bytes ending at pos-1 (skipping the newline
// that terminates the preceding line) and searches the chunk from its end
// for '\n'. When the chunk holds no newline the scan falls back to offset
// 0: a single fixed-size scan, never widened, so a first line longer than
// the chunk is treated as starting at the chunk boundary's file start.
func (s *LineSource) prevLineStart(pos int64) (int64, error) {
	backstep := int64(backScanChunk)
	if pos-1 < backstep {
		backstep = pos - 1
	}
	seekPos := pos - backstep - 1

	buf := make([]byte, backstep)
	n, err := s.file.ReadAt(buf, seekPos)
	if err != nil && err != io.EOF {
		return 0, err
	}
	if idx := bytes.LastIndexByte(buf[:n], '\n'); idx >= 0 {
		return seekPos + int64(idx) + 1, nil
	}
	return 0, nil
}

// Line returns the display text of visible line i: the bytes between its
// recorded offsets, with the trailing newline (and a CR before it)
// stripped. Offsets are never adjusted for the stripped bytes, so seeking
// stays exact.
func (s *LineSource) Line(i int) (string, error) {
	if i < 0 || i+1 >= len(s.offsets) {
		return "", nil
	}
	start, end := s.offsets[i], s.offsets[i+1]
	length := end - start
	truncated := false
	if length > maxLineRead {
		length = maxLineRead
		truncated = true
	}
	if length <= 0 {
		return "", nil
	}

	buf := make([]byte, length)
	n, err := s.file.ReadAt(buf, start)
	if err != nil && err != io.EOF {
		return "", err
	}
	line := buf[:n]
	if !truncated {
		if len(line) > 0 && line[len(line)-1] == '\n' {
			line = line[:len(line)-1]
			if len(line) > 0 && line[len(line)-1] == '\r' {
				line = line[:len(line)-1]
			}
		}
	}
	return string(line), nil
}

// VisibleLines materializes every tracked line for a full redraw.
func (s *LineSource) VisibleLines() ([]string, error) {
	lines := make([]string, 0, s.Rows())
	for i := 0; i < s.Rows(); i++ {
		text, err := s.Line(i)
		if err != nil {
			return nil, err
		}
		lines = append(lines, text)
	}
	return lines, nil
}

// lineLen returns how many bytes the line starting at off occupies,
// including its newline. Zero means end-of-file.
func (s *LineSource) lineLen(off int64) (int, error) {
	buf := make([]byte, 4096)
	total := 0
	for {
		n, err := s.file.ReadAt(buf, off+int64(total))
		if n > 0 {
			if idx := bytes.IndexByte(buf[:n], '\n'); idx >= 0 {
				return total + idx + 1, nil
			}
			total += n
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return 0, err
		}
	}
}
