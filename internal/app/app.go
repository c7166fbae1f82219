package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/atomicstack/tmux-popup-tree/internal/backend"
	"github.com/atomicstack/tmux-popup-tree/internal/data/dispatcher"
	"github.com/atomicstack/tmux-popup-tree/internal/engine"
	"github.com/atomicstack/tmux-popup-tree/internal/format/table"
	"github.com/atomicstack/tmux-popup-tree/internal/logging/events"
	"github.com/atomicstack/tmux-popup-tree/internal/seed"
	"github.com/atomicstack/tmux-popup-tree/internal/state"
	"github.com/atomicstack/tmux-popup-tree/internal/tree"
	"github.com/atomicstack/tmux-popup-tree/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	SeedPath   string
	LoadDelay  time.Duration
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Dump       bool
}

// LoadForest returns the configured seed, falling back to the demo tree.
func LoadForest(cfg Config) (tree.Forest, error) {
	if strings.TrimSpace(cfg.SeedPath) == "" {
		f := seed.Default()
		events.App.Seed("default", tree.Len(f))
		return f, nil
	}
	f, err := seed.Load(cfg.SeedPath)
	if err != nil {
		return nil, err
	}
	events.App.Seed(cfg.SeedPath, tree.Len(f))
	return f, nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	forest, err := LoadForest(cfg)
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}
	if cfg.Dump {
		return Dump(os.Stdout, forest)
	}

	store := state.NewTreeStore(forest)
	eng := engine.New(store, backend.NewSimulated(cfg.LoadDelay), tree.UUIDGenerator{})
	model := ui.NewModel(ui.Options{
		Store:      store,
		Dispatcher: dispatcher.New(eng),
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()

	events.App.Stop(eng.Pending())
	eng.Wait()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// Dump writes every node of the forest, open or not, as an aligned table.
func Dump(w io.Writer, f tree.Forest) error {
	rows := [][]string{{"LABEL", "ID", "STATE"}}
	tree.Walk(f, func(n *tree.Node, depth int, _ string) bool {
		rows = append(rows, []string{
			strings.Repeat("  ", depth) + n.Label,
			n.ID,
			nodeState(n),
		})
		return true
	})
	lines := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignLeft})
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func nodeState(n *tree.Node) string {
	switch {
	case n.IsLoading:
		return "loading"
	case n.IsOpen:
		return "open"
	case n.IsLoaded:
		return "loaded"
	default:
		return "closed"
	}
}
