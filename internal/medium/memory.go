package medium

import (
	"fmt"
	"sync"
)

// MemoryGrid is an in-process grid. Unwritten cells read as zero channels,
// which is exactly the "stale garbage" a receiver must reject by magic check.
type MemoryGrid struct {
	mu     sync.Mutex
	width  int
	height int
	cells  [][3]byte
}

// NewMemoryGrid acquires a width×height in-process grid.
func NewMemoryGrid(width, height int) (*MemoryGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid memory grid size %dx%d", ErrUnavailable, width, height)
	}
	return &MemoryGrid{
		width:  width,
		height: height,
		cells:  make([][3]byte, width*height),
	}, nil
}

// ReadCell returns the channels at (x, y); out-of-range reads are zero.
func (g *MemoryGrid) ReadCell(x, y int) (r, gg, b byte) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return 0, 0, 0
	}
	c := g.cells[y*g.width+x]
	return c[0], c[1], c[2]
}

// WriteCell sets the channels at (x, y); out-of-range writes are absorbed.
func (g *MemoryGrid) WriteCell(x, y int, r, gg, b byte) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	g.cells[y*g.width+x] = [3]byte{r, gg, b}
}

// Close is a no-op for the in-process grid.
func (g *MemoryGrid) Close() error { return nil }

// Width returns the grid's column count.
func (g *MemoryGrid) Width() int { return g.width }

// Height returns the grid's row count.
func (g *MemoryGrid) Height() int { return g.height }
