// Package port implements the channel endpoint: one direction of the
// conversation, bound to a fixed grid region and a process-wide exclusion
// guard over the medium.
package port

import (
	"sync"

	"github.com/ghostpx/pixwire/internal/medium"
	"github.com/ghostpx/pixwire/internal/protocol"
	"github.com/ghostpx/pixwire/internal/region"
	"github.com/ghostpx/pixwire/internal/util"
)

// headerCells is how many cells carry the serialized frame header.
var headerCells = protocol.CellCount(protocol.HeaderSize)

// Port is a directional endpoint. The two ports of one process share the
// same guard so a send and a receive attempt never interleave cell by cell
// and expose a half-written frame; they use disjoint regions so neither side
// misreads its own transmission as the peer's.
type Port struct {
	grid   medium.Grid
	region region.Region
	guard  *sync.Mutex
}

// New binds a port to a grid, a region and the shared medium guard.
func New(grid medium.Grid, reg region.Region, guard *sync.Mutex) *Port {
	return &Port{grid: grid, region: reg, guard: guard}
}

// Region returns the region this port walks.
func (p *Port) Region() region.Region {
	return p.region
}

// Send frames payload and writes it cell by cell from the region's origin in
// row-major order. The whole write happens under the guard, so a reader on
// the same grid never observes a partial frame boundary.
func (p *Port) Send(payload []byte) {
	p.guard.Lock()
	defer p.guard.Unlock()

	cells := protocol.CellsFromBytes(protocol.Serialize(payload))
	cur := p.region.Start()
	for _, c := range cells {
		p.grid.WriteCell(cur.X, cur.Y, c.R, c.G, c.B)
		cur = p.region.Advance(cur)
	}

	util.Stats.AddFrameSent(len(cells))
	util.LogDebug("sent frame: %d payload byte(s) in %d cell(s) from (%d,%d)",
		len(payload), len(cells), p.region.OriginX, p.region.OriginY)
}

// TryReceive reads the header cells at the region's origin and decodes them.
// A magic mismatch means "no message yet": it returns (nil, false) without
// touching any payload cell, so a miss costs a bounded, constant number of
// reads. On a valid magic it keeps walking, decodes exactly the declared
// number of payload bytes and returns the completed frame.
//
// A successfully decoded frame is consumed: the header cells are zeroed
// before the guard is released, so the next poll sees "no message yet"
// instead of returning the same frame again. Invalid frames are never
// consumed, not even partially.
//
// Every call performs real reads from the grid; nothing is cached between
// polls.
func (p *Port) TryReceive() (*protocol.Frame, bool) {
	p.guard.Lock()
	defer p.guard.Unlock()

	util.Stats.AddPoll()

	cur := p.region.Start()
	head := make([]protocol.Cell, 0, headerCells)
	for i := 0; i < headerCells; i++ {
		r, g, b := p.grid.ReadCell(cur.X, cur.Y)
		head = append(head, protocol.Cell{R: r, G: g, B: b})
		cur = p.region.Advance(cur)
	}

	magic, length, err := protocol.DecodeHeader(protocol.BytesFromCells(head, protocol.HeaderSize))
	if err != nil || !protocol.ValidMagic(magic) {
		return nil, false
	}

	body := make([]protocol.Cell, 0, protocol.CellCount(int(length)))
	for i := 0; i < protocol.CellCount(int(length)); i++ {
		r, g, b := p.grid.ReadCell(cur.X, cur.Y)
		body = append(body, protocol.Cell{R: r, G: g, B: b})
		cur = p.region.Advance(cur)
	}

	// Consume the frame: break the magic so the next poll misses.
	cur = p.region.Start()
	for i := 0; i < headerCells; i++ {
		p.grid.WriteCell(cur.X, cur.Y, 0, 0, 0)
		cur = p.region.Advance(cur)
	}

	util.Stats.AddFrameRecv()
	return &protocol.Frame{
		Magic:   magic,
		Length:  length,
		Payload: protocol.BytesFromCells(body, int(length)),
	}, true
}
