// Package medium provides the shared color-cell grid the protocol writes to
// and reads from. The grid is a passive, addressable, persistent array of
// three-channel cells; the protocol core only ever borrows a handle.
//
// Three backends exist: an in-process memory grid (tests and single-process
// demos), a file-backed grid (two processes on one machine), and a websocket
// grid served by pixgridd (two machines).
package medium

import "errors"

// ErrUnavailable is returned when a grid handle cannot be acquired. It is
// fatal at startup; there is no retry.
var ErrUnavailable = errors.New("medium unavailable")

// Grid is a handle to the shared cell grid. Reads and writes are raw cell
// operations with no framing semantics; coordinates outside the grid read as
// zero channels and absorb writes, mirroring how a real drawing surface
// behaves at its edges.
//
// Grid implementations are safe for single-caller use; callers that share a
// grid across goroutines serialize whole protocol operations through a guard
// of their own (see the port package).
type Grid interface {
	// ReadCell returns the three channel values at (x, y).
	ReadCell(x, y int) (r, g, b byte)
	// WriteCell sets the three channel values at (x, y).
	WriteCell(x, y int, r, g, b byte)
	// Close releases the handle. The grid contents outlive the handle.
	Close() error
}
