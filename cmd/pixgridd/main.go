// Pixgridd — standalone grid server.
//
// Hosts the shared color-cell grid over websocket so two pixwire peers on
// different machines can use one medium. The server holds no protocol state;
// it only answers cell reads and writes.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/pterm/pterm"

	"github.com/ghostpx/pixwire/internal/medium"
	"github.com/ghostpx/pixwire/internal/util"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	listenFlag := flag.String("listen", ":7542", "Address to listen on")
	widthFlag := flag.Int("width", 256, "Grid column count")
	heightFlag := flag.Int("height", 64, "Grid row count")
	debugMode := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *debugMode {
		util.EnableDebug()
	}

	pterm.Info.Println(fmt.Sprintf("Pixgridd — v%s", version))
	pterm.Println()

	server, err := medium.NewServer(*widthFlag, *heightFlag)
	if err != nil {
		util.LogError("failed to create grid: %v", err)
		os.Exit(1)
	}

	port, err := server.Start(*listenFlag)
	if err != nil {
		util.LogError("%v", err)
		os.Exit(1)
	}
	defer server.Close()

	util.LogSuccess("grid server listening on port %d (%dx%d cells) — clients connect to ws://<host>:%d/grid",
		port, *widthFlag, *heightFlag, port)

	<-ctx.Done()
	util.LogInfo("grid server shutting down")
}
