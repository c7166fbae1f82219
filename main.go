package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/atomicstack/tmux-popup-tree/internal/app"
	"github.com/atomicstack/tmux-popup-tree/internal/config"
	"github.com/atomicstack/tmux-popup-tree/internal/logging"
	"github.com/atomicstack/tmux-popup-tree/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	if logging.TraceEnabled() {
		events.App.Start(startupTracePayload(cfg, probeTerminal()))
	}

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// terminal is what the popup will be drawn into. Width and height are zero
// when no descriptor is a tty, which is the case under -dump in a pipe.
type terminal struct {
	Source string `json:"source,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// probeTerminal reports the first of stdout and stdin that is a terminal.
// stdout comes first since that is where the outline is rendered.
func probeTerminal() terminal {
	for _, fd := range []struct {
		name string
		f    *os.File
	}{{"stdout", os.Stdout}, {"stdin", os.Stdin}} {
		n := int(fd.f.Fd())
		if !term.IsTerminal(n) {
			continue
		}
		w, h, err := term.GetSize(n)
		if err != nil {
			continue
		}
		return terminal{Source: fd.name, Width: w, Height: h}
	}
	return terminal{}
}

func startupTracePayload(cfg config.Config, tty terminal) map[string]interface{} {
	seedSource := "default"
	if path := strings.TrimSpace(cfg.App.SeedPath); path != "" {
		seedSource = path
	}
	size := map[string]interface{}{"terminal": tty}
	if cfg.App.Width > 0 {
		size["width"] = cfg.App.Width
	}
	if cfg.App.Height > 0 {
		size["height"] = cfg.App.Height
	}
	return map[string]interface{}{
		"argv":      cfg.Args,
		"flags":     cfg.Flags,
		"seed":      seedSource,
		"loadDelay": cfg.App.LoadDelay.String(),
		"dump":      cfg.App.Dump,
		"size":      size,
		"logFile":   logging.Path(),
	}
}
