// Package protocol defines the wire format for frames carried over the grid.
package protocol

// Magic marks the first four bytes of every valid frame. Cells that have never
// been written (or hold a stale partial write) fail this check, which is how a
// receiver tells "message ready" from "nothing yet".
const Magic uint32 = 0xCAFEBABE

// HeaderSize is the fixed header size: Magic(4) + Length(4).
const HeaderSize = 8

// Frame is the unit of transmission: a magic-prefixed, length-delimited
// payload. A zero-value Frame is the receiver's "nothing decoded yet" state
// and reports Valid() == false.
type Frame struct {
	Magic   uint32
	Length  uint32 // declared payload byte count
	Payload []byte // exactly Length bytes once decoded
}

// NewFrame builds a frame around payload, ready to serialize.
func NewFrame(payload []byte) *Frame {
	return &Frame{
		Magic:   Magic,
		Length:  uint32(len(payload)),
		Payload: payload,
	}
}

// Valid reports whether the frame carries the agreed magic constant.
func (f *Frame) Valid() bool {
	return f.Magic == Magic
}
