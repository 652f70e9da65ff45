package medium

import (
	"fmt"
	"net"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/ghostpx/pixwire/internal/util"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server hosts a memory grid over websocket so peers on different machines
// can share one medium. Each client connection gets its own handler
// goroutine; the grid itself serializes cell access.
type Server struct {
	grid     *MemoryGrid
	listener net.Listener
}

// NewServer creates a grid server around a width×height memory grid.
func NewServer(width, height int) (*Server, error) {
	grid, err := NewMemoryGrid(width, height)
	if err != nil {
		return nil, err
	}
	return &Server{grid: grid}, nil
}

// Start begins listening on addr (e.g. ":7542" or ":0" for a random port) and
// returns the assigned port number.
func (s *Server) Start(addr string) (int, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return 0, fmt.Errorf("failed to start grid server: %w", err)
	}
	s.listener = listener
	port := listener.Addr().(*net.TCPAddr).Port

	mux := http.NewServeMux()
	mux.HandleFunc("/grid", s.handleGrid)

	go func() {
		_ = http.Serve(listener, mux)
	}()

	return port, nil
}

func (s *Server) handleGrid(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	util.LogInfo("grid client connected: %s", conn.RemoteAddr())
	go s.serveConn(conn)
}

// serveConn answers requests in order until the client disconnects.
func (s *Server) serveConn(conn *websocket.Conn) {
	defer conn.Close()
	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			util.LogDebug("grid client %s gone: %v", conn.RemoteAddr(), err)
			return
		}

		var resp Response
		switch req.Op {
		case OpGet:
			resp.R, resp.G, resp.B = s.grid.ReadCell(req.X, req.Y)
		case OpSet:
			s.grid.WriteCell(req.X, req.Y, req.R, req.G, req.B)
			resp.R, resp.G, resp.B = req.R, req.G, req.B
		default:
			util.LogWarning("grid client %s sent unknown op %q", conn.RemoteAddr(), req.Op)
		}

		if err := conn.WriteJSON(resp); err != nil {
			util.LogDebug("grid client %s write failed: %v", conn.RemoteAddr(), err)
			return
		}
	}
}

// Close shuts down the listener; in-flight connections finish on their own.
func (s *Server) Close() {
	if s.listener != nil {
		s.listener.Close()
	}
}
