package medium

// Op identifies a grid operation on the websocket backend.
type Op string

const (
	OpGet Op = "get" // read one cell
	OpSet Op = "set" // write one cell
)

// Request is the JSON structure a client sends to pixgridd. R/G/B are only
// meaningful for OpSet.
type Request struct {
	Op Op   `json:"op"`
	X  int  `json:"x"`
	Y  int  `json:"y"`
	R  byte `json:"r,omitempty"`
	G  byte `json:"g,omitempty"`
	B  byte `json:"b,omitempty"`
}

// Response answers every Request in order. OpSet answers carry the written
// values back; clients use the response only as an ordering ack.
type Response struct {
	R byte `json:"r"`
	G byte `json:"g"`
	B byte `json:"b"`
}
