// Package region maps logical cell indices onto rectangular areas of the grid.
//
// Encode and decode share no coordinate metadata on the wire — position alone
// carries meaning — so both sides must walk cells in the identical order. All
// of that order lives here.
package region

import "fmt"

// Cursor is a grid coordinate.
type Cursor struct {
	X, Y int
}

// Region is a row-wrapping rectangular band of the grid dedicated to one
// communication direction. Rows wrap at the region's own Width: the column
// returns to OriginX and the row advances. There is no row bound here; the
// grid's own height is an external constraint.
type Region struct {
	OriginX int `toml:"origin_x"`
	OriginY int `toml:"origin_y"`
	Width   int `toml:"width"` // columns available before wrapping
}

// Start returns the cursor at the region's origin.
func (r Region) Start() Cursor {
	return Cursor{X: r.OriginX, Y: r.OriginY}
}

// Advance moves the cursor one cell forward in row-major order, wrapping the
// column back to the region's origin column at Width.
func (r Region) Advance(c Cursor) Cursor {
	c.X++
	if c.X >= r.OriginX+r.Width {
		c.X = r.OriginX
		c.Y++
	}
	return c
}

// CellAt returns the coordinate of the i-th cell of the region. It agrees
// with repeated Advance calls from Start for every i >= 0.
func (r Region) CellAt(i int) Cursor {
	return Cursor{
		X: r.OriginX + i%r.Width,
		Y: r.OriginY + i/r.Width,
	}
}

// Validate rejects geometry the walker cannot handle.
func (r Region) Validate() error {
	if r.Width <= 0 {
		return fmt.Errorf("region width must be positive, got %d", r.Width)
	}
	if r.OriginX < 0 || r.OriginY < 0 {
		return fmt.Errorf("region origin (%d,%d) must be non-negative", r.OriginX, r.OriginY)
	}
	return nil
}

// Overlaps reports whether the first maxCells cells of r collide with the
// first maxCells cells of other. Both directions of one conversation must
// never overlap for any offset either side will write, so startup validation
// checks this up to the largest frame either side may send.
func (r Region) Overlaps(other Region, maxCells int) bool {
	seen := make(map[Cursor]struct{}, maxCells)
	for i := 0; i < maxCells; i++ {
		seen[r.CellAt(i)] = struct{}{}
	}
	for i := 0; i < maxCells; i++ {
		if _, ok := seen[other.CellAt(i)]; ok {
			return true
		}
	}
	return false
}
