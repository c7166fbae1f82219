package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atomicstack/tmux-popup-tree/internal/testutil"
	"github.com/atomicstack/tmux-popup-tree/internal/tree"
)

func TestDefaultIsValid(t *testing.T) {
	f := Default()
	require.NoError(t, tree.Validate(f))
	require.Equal(t, "root-1[child-1[child-1-1 child-1-2] child-2]", testutil.Shape(f))
}

func TestParseYAMLList(t *testing.T) {
	f, err := Parse([]byte(`
- id: docs
  label: Docs
  open: true
  loaded: true
  children:
    - id: guide
      label: Guide
- id: src
  label: Source
`))
	require.NoError(t, err)
	require.Equal(t, "docs[guide] src", testutil.Shape(f))
	require.True(t, f[0].IsOpen)
	require.True(t, f[0].IsLoaded)
	require.False(t, f[1].IsOpen)
}

func TestParseJSONMapping(t *testing.T) {
	f, err := Parse([]byte(`{"nodes": [{"id": "a", "label": "A", "children": [{"id": "b", "label": "B"}]}]}`))
	require.NoError(t, err)
	require.Equal(t, "a[b]", testutil.Shape(f))
}

func TestParseIgnoresLoadingFlag(t *testing.T) {
	f, err := Parse([]byte("- {id: a, label: A, open: true, loading: true}\n"))
	require.NoError(t, err)
	require.False(t, f[0].IsLoading)
}

func TestParseRejectsDuplicates(t *testing.T) {
	_, err := Parse([]byte("- {id: a, label: A}\n- {id: a, label: again}\n"))
	require.ErrorIs(t, err, tree.ErrDuplicateID)
}

func TestParseRejectsNullEntries(t *testing.T) {
	_, err := Parse([]byte("- id: a\n  label: A\n- ~\n"))
	require.ErrorIs(t, err, tree.ErrNilNode)

	_, err = Parse([]byte("- id: a\n  label: A\n  children: [~]\n"))
	require.ErrorIs(t, err, tree.ErrNilNode)
}

func TestParseRejectsScalar(t *testing.T) {
	_, err := Parse([]byte("just text"))
	require.Error(t, err)
}

func TestParseEmpty(t *testing.T) {
	f, err := Parse([]byte("  \n"))
	require.NoError(t, err)
	require.Empty(t, f)
}

func TestLoadWrapsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- {id: '', label: nameless}\n"), 0o644))
	_, err := Load(path)
	require.ErrorIs(t, err, tree.ErrEmptyID)
	require.Contains(t, err.Error(), path)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
