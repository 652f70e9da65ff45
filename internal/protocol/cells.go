package protocol

// Cell is one grid cell's worth of data: three independent byte channels.
type Cell struct {
	R, G, B byte
}

// CellCount returns how many cells it takes to carry n bytes.
func CellCount(n int) int {
	return (n + 2) / 3
}

// CellsFromBytes packs data into consecutive three-channel cells. A trailing
// group shorter than three bytes is right-padded with zeros, so the result
// always holds CellCount(len(data)) cells. Total: never fails, never mutates
// data.
func CellsFromBytes(data []byte) []Cell {
	cells := make([]Cell, 0, CellCount(len(data)))
	for i := 0; i < len(data); i += 3 {
		var c Cell
		c.R = data[i]
		if i+1 < len(data) {
			c.G = data[i+1]
		}
		if i+2 < len(data) {
			c.B = data[i+2]
		}
		cells = append(cells, c)
	}
	return cells
}

// BytesFromCells flattens cells back into a byte slice truncated to exactly n
// bytes, dropping the padding introduced by CellsFromBytes. Callers always
// know n up front — it is either HeaderSize or a previously decoded length.
func BytesFromCells(cells []Cell, n int) []byte {
	buf := make([]byte, 0, len(cells)*3)
	for _, c := range cells {
		buf = append(buf, c.R, c.G, c.B)
	}
	if n > len(buf) {
		n = len(buf)
	}
	return buf[:n]
}
