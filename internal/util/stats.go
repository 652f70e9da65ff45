package util

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// ──────────────────────────────────────────────────────────────────────────────
// Global stats singleton
// ──────────────────────────────────────────────────────────────────────────────

// Stats is the process-wide traffic counter for the grid channel.
var Stats = &stats{}

type stats struct {
	FramesSent atomic.Int64 // frames written to the grid since process start
	FramesRecv atomic.Int64 // valid frames decoded from the grid
	CellsSent  atomic.Int64 // cells written (header + payload + padding)
	Polls      atomic.Int64 // receive attempts, including misses
}

func (s *stats) AddFrameSent(cells int) {
	s.FramesSent.Add(1)
	s.CellsSent.Add(int64(cells))
}
func (s *stats) AddFrameRecv() { s.FramesRecv.Add(1) }
func (s *stats) AddPoll()      { s.Polls.Add(1) }

// ──────────────────────────────────────────────────────────────────────────────
// Periodic reporter
// ──────────────────────────────────────────────────────────────────────────────

// StartStatsReporter launches a goroutine that logs channel statistics every
// 10 seconds while there is activity. It stops when ctx is cancelled.
func StartStatsReporter(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()

		var prevSent, prevRecv, prevCells int64
		for {
			select {
			case <-ticker.C:
				sent := Stats.FramesSent.Load()
				recv := Stats.FramesRecv.Load()
				cells := Stats.CellsSent.Load()

				if sent != prevSent || recv != prevRecv {
					LogInfo("%s", formatStats(sent-prevSent, recv-prevRecv, cells-prevCells))
				}

				prevSent = sent
				prevRecv = recv
				prevCells = cells
			case <-ctx.Done():
				return
			}
		}
	}()
}

func formatStats(sent, recv, cells int64) string {
	return fmt.Sprintf("grid traffic: %d frame(s) out (%d cells), %d frame(s) in", sent, cells, recv)
}
