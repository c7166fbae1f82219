package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/tmux-popup-tree/internal/backend"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.LoadDelay != backend.DefaultLoadDelay {
		t.Fatalf("expected default load delay, got %s", cfg.App.LoadDelay)
	}
	if cfg.App.SeedPath != "" || cfg.App.Dump {
		t.Fatalf("unexpected app config %#v", cfg.App)
	}
	if cfg.Flags["loadDelay"] != "800ms" {
		t.Fatalf("expected loadDelay flag 800ms, got %q", cfg.Flags["loadDelay"])
	}
}

func TestLoadArgsEnvironmentFallbacks(t *testing.T) {
	env := []string{
		envSeed + "=/tmp/seed.yaml",
		envLoadDelay + "=50ms",
		envWidth + "=80",
		envTrace + "=true",
		envLogFile + "=/tmp/tree.log",
		"MALFORMED",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.SeedPath != "/tmp/seed.yaml" {
		t.Fatalf("expected seed from env, got %q", cfg.App.SeedPath)
	}
	if cfg.App.LoadDelay != 50*time.Millisecond {
		t.Fatalf("expected 50ms, got %s", cfg.App.LoadDelay)
	}
	if cfg.App.Width != 80 {
		t.Fatalf("expected width 80, got %d", cfg.App.Width)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/tree.log" {
		t.Fatalf("unexpected logging config %#v", cfg.Logging)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := LoadArgs([]string{"-load-delay", "0s", "-dump", "-footer"}, []string{envLoadDelay + "=2s"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.LoadDelay != 0 {
		t.Fatalf("expected flag to win, got %s", cfg.App.LoadDelay)
	}
	if !cfg.App.Dump || !cfg.App.ShowFooter {
		t.Fatalf("expected dump and footer enabled, got %#v", cfg.App)
	}
	if len(cfg.Args) != 4 {
		t.Fatalf("expected args to be kept, got %v", cfg.Args)
	}
}

func TestLoadArgsRejectsNegativeSize(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-bogus"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestValidate(t *testing.T) {
	cfg, _ := LoadArgs(nil, nil)
	if err := Validate(cfg); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	cfg.App.LoadDelay = -time.Second
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected negative delay to fail")
	}

	cfg.App.LoadDelay = 0
	cfg.App.SeedPath = filepath.Join(t.TempDir(), "missing.yaml")
	if err := Validate(cfg); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}

	cfg.App.SeedPath = t.TempDir()
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected directory seed to fail")
	}
}
