package medium

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// FileGrid maps the grid onto a regular file so two processes on one machine
// can share a medium: cell (x, y) lives at byte offset (y*width + x) * 3.
// Rows the file does not cover yet read as zero channels; writes extend the
// file as needed.
type FileGrid struct {
	f     *os.File
	width int
}

// OpenFileGrid acquires a file-backed grid with the given column count. Both
// peers must open the file with the same width or their coordinates will not
// line up.
func OpenFileGrid(path string, width int) (*FileGrid, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: invalid file grid width %d", ErrUnavailable, width)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &FileGrid{f: f, width: width}, nil
}

func (g *FileGrid) offset(x, y int) int64 {
	return int64(y*g.width+x) * 3
}

// ReadCell returns the channels at (x, y); cells past the end of the file or
// outside the column range read as zero.
func (g *FileGrid) ReadCell(x, y int) (r, gg, b byte) {
	if x < 0 || y < 0 || x >= g.width {
		return 0, 0, 0
	}
	var buf [3]byte
	if _, err := g.f.ReadAt(buf[:], g.offset(x, y)); err != nil && !errors.Is(err, io.EOF) {
		return 0, 0, 0
	}
	return buf[0], buf[1], buf[2]
}

// WriteCell sets the channels at (x, y), growing the file if needed.
func (g *FileGrid) WriteCell(x, y int, r, gg, b byte) {
	if x < 0 || y < 0 || x >= g.width {
		return
	}
	buf := [3]byte{r, gg, b}
	_, _ = g.f.WriteAt(buf[:], g.offset(x, y))
}

// Close releases the file handle; the grid contents stay on disk.
func (g *FileGrid) Close() error {
	return g.f.Close()
}
