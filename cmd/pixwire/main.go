// Pixwire — CLI entry point.
//
// This tool chats between two processes through a shared grid of color cells
// instead of a socket: each side frames its message and paints it into its
// own region of the grid, then polls the peer's region until a valid frame
// appears. The grid can live in a shared file (same machine) or behind a
// pixgridd server (anywhere).
//
// It can be launched interactively (no flags) or non-interactively via CLI
// flags (-role, -config, -medium, -path, -url).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/pterm/pterm"

	"github.com/ghostpx/pixwire/internal/chat"
	"github.com/ghostpx/pixwire/internal/config"
	"github.com/ghostpx/pixwire/internal/medium"
	"github.com/ghostpx/pixwire/internal/port"
	"github.com/ghostpx/pixwire/internal/util"
)

var version = "dev"

func main() {
	// Root context — cancelled on Ctrl+C.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// CLI flags.
	roleFlag := flag.String("role", "", "Role: initiator or responder")
	configFlag := flag.String("config", "", "Path to a TOML config file")
	mediumFlag := flag.String("medium", "", "Grid backend: memory, file or ws")
	pathFlag := flag.String("path", "", "Grid file path (file medium)")
	urlFlag := flag.String("url", "", "Grid server URL (ws medium), e.g. ws://host:7542/grid")
	debugMode := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *debugMode {
		util.EnableDebug()
	}

	pterm.Info.Println(fmt.Sprintf("Pixwire — v%s", version))
	pterm.Println()

	// Config file first, then flag overrides.
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			util.LogError("%v", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *mediumFlag != "" {
		cfg.Medium.Kind = config.MediumKind(*mediumFlag)
	}
	if *pathFlag != "" {
		cfg.Medium.Path = *pathFlag
	}
	if *urlFlag != "" {
		cfg.Medium.URL = *urlFlag
	}
	if *roleFlag != "" {
		cfg.Role = config.Role(*roleFlag)
	}

	// No role from flags or file → interactive mode.
	if cfg.Role == "" {
		cfg.Role = askRole()
	}

	if err := cfg.Validate(); err != nil {
		util.LogError("%v", err)
		os.Exit(1)
	}

	run(ctx, cfg)
}

// run acquires the grid, binds the two ports and drives the chosen role
// until the console closes or the context is cancelled.
func run(ctx context.Context, cfg config.Config) {
	grid, err := openGrid(ctx, cfg)
	if err != nil {
		util.LogError("failed to acquire medium: %v", err)
		os.Exit(1)
	}
	defer grid.Close()

	// One guard per process covers every whole send or receive attempt, so a
	// partial frame is never observed mid-write.
	var guard sync.Mutex
	outRegion, inRegion := cfg.Regions()
	conv := &chat.Conversation{
		Out:          port.New(grid, outRegion, &guard),
		In:           port.New(grid, inRegion, &guard),
		Console:      chat.NewTerminal(),
		PollInterval: cfg.PollInterval(),
		MaxIdlePolls: cfg.MaxIdlePolls,
	}

	util.StartStatsReporter(ctx)
	util.LogSuccess("channel ready — role=%s, tx region (%d,%d)/w%d, rx region (%d,%d)/w%d",
		cfg.Role, outRegion.OriginX, outRegion.OriginY, outRegion.Width,
		inRegion.OriginX, inRegion.OriginY, inRegion.Width)

	// A memory grid is invisible to other processes, so it only makes sense
	// with a built-in peer: run an echo responder on the opposite ports.
	if cfg.Medium.Kind == config.MediumMemory {
		util.LogInfo("memory medium: starting in-process echo peer")
		startEchoPeer(ctx, grid, cfg, &guard)
	}

	switch cfg.Role {
	case config.RoleInitiator:
		err = conv.RunInitiator(ctx)
	case config.RoleResponder:
		err = conv.RunResponder(ctx)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		util.LogError("conversation ended: %v", err)
		os.Exit(1)
	}

	util.LogInfo("conversation closed")
}

// openGrid acquires the configured grid backend.
func openGrid(ctx context.Context, cfg config.Config) (medium.Grid, error) {
	switch cfg.Medium.Kind {
	case config.MediumMemory:
		height := cfg.Medium.Height
		if height <= 0 {
			height = 64
		}
		return medium.NewMemoryGrid(cfg.Medium.Width, height)
	case config.MediumFile:
		return medium.OpenFileGrid(cfg.Medium.Path, cfg.Medium.Width)
	case config.MediumWS:
		return medium.DialGrid(ctx, cfg.Medium.URL)
	}
	return nil, fmt.Errorf("%w: unknown medium kind %q", medium.ErrUnavailable, cfg.Medium.Kind)
}

// startEchoPeer runs the opposite role in-process, answering every message
// with an echo. Demo/smoke-test helper for the memory medium.
func startEchoPeer(ctx context.Context, grid medium.Grid, cfg config.Config, guard *sync.Mutex) {
	peerCfg := cfg
	if cfg.Role == config.RoleInitiator {
		peerCfg.Role = config.RoleResponder
	} else {
		peerCfg.Role = config.RoleInitiator
	}
	outRegion, inRegion := peerCfg.Regions()

	peer := &chat.Conversation{
		Out:          port.New(grid, outRegion, guard),
		In:           port.New(grid, inRegion, guard),
		Console:      &echoConsole{},
		PollInterval: cfg.PollInterval(),
		MaxIdlePolls: cfg.MaxIdlePolls,
	}

	go func() {
		var err error
		if peerCfg.Role == config.RoleInitiator {
			err = peer.RunInitiator(ctx)
		} else {
			err = peer.RunResponder(ctx)
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			util.LogWarning("echo peer stopped: %v", err)
		}
	}()
}

// echoConsole replies to the last shown line instead of reading stdin.
type echoConsole struct {
	mu   sync.Mutex
	last string
}

func (e *echoConsole) ReadLine(string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return "echo: " + e.last, nil
}

func (e *echoConsole) WriteLine(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.last = strings.TrimPrefix(text, "Them: ")
}

// askRole prompts for the role when none was given.
func askRole() config.Role {
	choice, _ := pterm.DefaultInteractiveSelect.
		WithOptions([]string{"Initiator — Speak first, then wait for replies", "Responder — Wait for a message, then reply"}).
		WithDefaultText("Select your role").
		Show()

	pterm.Println()

	if strings.HasPrefix(choice, "Responder") {
		return config.RoleResponder
	}
	return config.RoleInitiator
}
