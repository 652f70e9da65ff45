// Package chat drives the turn-taking conversation between two grid peers.
//
// The protocol has no acknowledgments, sequence numbers or retransmission:
// reliability comes entirely from discipline. Each role strictly alternates
// send and receive, the two directions use disjoint regions, and "no message
// yet" is detected by the frame magic failing to validate. A peer that sends
// out of turn desynchronizes the conversation; the loop cannot recover from
// that, but it does surface it (see the idle-poll diagnostic in awaitFrame).
package chat

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/ghostpx/pixwire/internal/port"
	"github.com/ghostpx/pixwire/internal/protocol"
	"github.com/ghostpx/pixwire/internal/util"
)

// Defaults for the polling policy. The interval matches the reference
// cadence; the idle-poll threshold only controls how often the
// desynchronization diagnostic is logged, never when the loop gives up.
const (
	DefaultPollInterval = 100 * time.Millisecond
	DefaultMaxIdlePolls = 300
)

// Conversation holds one side's two ports and its polling policy.
type Conversation struct {
	Out     *port.Port // this side's transmit region
	In      *port.Port // the peer's transmit region
	Console Console

	PollInterval time.Duration // sleep between receive attempts
	MaxIdlePolls int           // consecutive misses before a diagnostic is logged
}

// RunInitiator runs the first-speaker loop: read a line, send it, poll for
// the reply, show it, repeat. It returns nil when the console reaches EOF
// and ctx.Err() when cancelled mid-poll.
func (c *Conversation) RunInitiator(ctx context.Context) error {
	for {
		line, err := c.Console.ReadLine("You: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		c.Out.Send([]byte(line))

		reply, err := c.awaitFrame(ctx)
		if err != nil {
			return err
		}
		c.Console.WriteLine("Them: " + string(reply.Payload))
	}
}

// RunResponder runs the second-speaker loop: poll for a message, show it,
// read a reply, send it, repeat.
func (c *Conversation) RunResponder(ctx context.Context) error {
	for {
		msg, err := c.awaitFrame(ctx)
		if err != nil {
			return err
		}
		c.Console.WriteLine("Them: " + string(msg.Payload))

		line, err := c.Console.ReadLine("You: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		c.Out.Send([]byte(line))
	}
}

// awaitFrame polls the inbound port until a valid frame shows up or ctx is
// cancelled. Magic mismatches are the normal "not yet" case and are never
// surfaced; a long run of them usually means the peers' regions are
// misaligned or a turn was dropped, so every MaxIdlePolls misses a warning
// is logged to make that state observable.
func (c *Conversation) awaitFrame(ctx context.Context) (*protocol.Frame, error) {
	interval := c.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	threshold := c.MaxIdlePolls
	if threshold <= 0 {
		threshold = DefaultMaxIdlePolls
	}

	misses := 0
	for {
		if frame, ok := c.In.TryReceive(); ok {
			return frame, nil
		}

		misses++
		if misses%threshold == 0 {
			util.LogWarning("no valid frame after %d polls — peer may be gone or regions desynchronized", misses)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
	}
}
