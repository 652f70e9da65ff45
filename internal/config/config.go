// Package config holds the channel configuration: role, region layout,
// medium backend and polling policy. Region and role assignment is agreed
// out-of-band between the two processes; both sides must load the same
// layout or their frame boundaries will not line up.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/ghostpx/pixwire/internal/protocol"
	"github.com/ghostpx/pixwire/internal/region"
)

// Role selects which side of the conversation this process plays.
type Role string

const (
	// RoleInitiator speaks first: send, then poll for the reply.
	RoleInitiator Role = "initiator"
	// RoleResponder polls for a message, then replies.
	RoleResponder Role = "responder"
)

// MediumKind selects the grid backend.
type MediumKind string

const (
	MediumMemory MediumKind = "memory" // in-process, demo/testing only
	MediumFile   MediumKind = "file"   // shared file, two processes on one machine
	MediumWS     MediumKind = "ws"     // pixgridd server, two machines
)

// MediumConfig describes how to acquire the grid handle.
type MediumConfig struct {
	Kind   MediumKind `toml:"kind"`
	Path   string     `toml:"path"`   // file backend: grid file path
	URL    string     `toml:"url"`    // ws backend: e.g. ws://host:7542/grid
	Width  int        `toml:"width"`  // grid column count
	Height int        `toml:"height"` // memory backend only
}

// Config is everything a peer needs to join a conversation.
type Config struct {
	Role           Role          `toml:"role"`
	PollIntervalMS int           `toml:"poll_interval_ms"`
	MaxIdlePolls   int           `toml:"max_idle_polls"`
	MaxPayload     int           `toml:"max_payload"` // largest payload either side may send
	Medium         MediumConfig  `toml:"medium"`
	Initiator      region.Region `toml:"initiator_region"` // initiator's transmit region
	Responder      region.Region `toml:"responder_region"` // responder's transmit region
}

// Default returns the reference layout: both regions start at column 0, ten
// rows apart, spanning the full grid width.
func Default() Config {
	const width = 256
	return Config{
		PollIntervalMS: 100,
		MaxIdlePolls:   300,
		MaxPayload:     4096,
		Medium: MediumConfig{
			Kind:   MediumFile,
			Path:   "pixwire.grid",
			Width:  width,
			Height: 64,
		},
		Initiator: region.Region{OriginX: 0, OriginY: 0, Width: width},
		Responder: region.Region{OriginX: 0, OriginY: 10, Width: width},
	}
}

// Load reads a TOML config file over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// PollInterval returns the polling sleep as a duration.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// Regions returns this role's transmit and receive regions.
func (c Config) Regions() (out, in region.Region) {
	if c.Role == RoleResponder {
		return c.Responder, c.Initiator
	}
	return c.Initiator, c.Responder
}

// MaxFrameCells is the largest cell count one frame may occupy under
// MaxPayload, the bound up to which region non-overlap is validated.
func (c Config) MaxFrameCells() int {
	return protocol.CellCount(protocol.HeaderSize + c.MaxPayload)
}

// Validate rejects configurations the protocol cannot run on. All failures
// here are fatal at startup; none are retryable.
func (c Config) Validate() error {
	switch c.Role {
	case RoleInitiator, RoleResponder:
	default:
		return fmt.Errorf("invalid role %q: must be %q or %q", c.Role, RoleInitiator, RoleResponder)
	}

	switch c.Medium.Kind {
	case MediumMemory, MediumFile, MediumWS:
	default:
		return fmt.Errorf("invalid medium kind %q", c.Medium.Kind)
	}
	if c.Medium.Kind == MediumFile && c.Medium.Path == "" {
		return fmt.Errorf("file medium requires a path")
	}
	if c.Medium.Kind == MediumWS && c.Medium.URL == "" {
		return fmt.Errorf("ws medium requires a url")
	}
	if c.Medium.Width <= 0 {
		return fmt.Errorf("medium width must be positive, got %d", c.Medium.Width)
	}

	if c.PollIntervalMS <= 0 {
		return fmt.Errorf("poll_interval_ms must be positive, got %d", c.PollIntervalMS)
	}
	if c.MaxPayload <= 0 {
		return fmt.Errorf("max_payload must be positive, got %d", c.MaxPayload)
	}

	if err := c.Initiator.Validate(); err != nil {
		return fmt.Errorf("initiator region: %w", err)
	}
	if err := c.Responder.Validate(); err != nil {
		return fmt.Errorf("responder region: %w", err)
	}
	if c.Initiator.Overlaps(c.Responder, c.MaxFrameCells()) {
		return fmt.Errorf("initiator and responder regions overlap within %d cells", c.MaxFrameCells())
	}
	return nil
}
