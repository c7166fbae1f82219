package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/tmux-popup-tree/internal/seed"
)

func TestDumpListsEveryNode(t *testing.T) {
	var buf bytes.Buffer
	if err := Dump(&buf, seed.Default()); err != nil {
		t.Fatalf("dump failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected header plus 5 rows, got %d: %q", len(lines), lines)
	}
	if got := strings.Fields(lines[0]); strings.Join(got, " ") != "LABEL ID STATE" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if got := strings.Join(strings.Fields(lines[1]), " "); got != "Level A root-1 open" {
		t.Fatalf("unexpected first row %q", lines[1])
	}
	if !strings.HasPrefix(lines[3], "    Level C") {
		t.Fatalf("expected grandchild to be indented, got %q", lines[3])
	}
	if got := strings.Join(strings.Fields(lines[5]), " "); got != "Level B child-2 closed" {
		t.Fatalf("unexpected last row %q", lines[5])
	}
	idCol := strings.Index(lines[1], "root-1")
	if strings.Index(lines[5], "child-2") != idCol {
		t.Fatalf("expected id column to be aligned:\n%s", buf.String())
	}
}

func TestLoadForestDefaultsToDemoTree(t *testing.T) {
	f, err := LoadForest(Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f) != 1 || f[0].ID != "root-1" {
		t.Fatalf("expected demo forest, got %#v", f)
	}
}

func TestLoadForestReadsSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	data := "- id: a\n  label: Alpha\n  children:\n    - id: b\n      label: Beta\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	f, err := LoadForest(Config{SeedPath: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f) != 1 || f[0].Label != "Alpha" || len(f[0].Children) != 1 {
		t.Fatalf("unexpected forest %#v", f)
	}
}

func TestRunReportsBadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte("- id: a\n- id: a\n"), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	if err := Run(Config{SeedPath: path, Dump: true}); err == nil {
		t.Fatalf("expected duplicate ids to be rejected")
	}
}
