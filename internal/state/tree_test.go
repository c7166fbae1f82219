package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atomicstack/tmux-popup-tree/internal/testutil"
	"github.com/atomicstack/tmux-popup-tree/internal/tree"
)

func TestApplyPublishesNewSnapshot(t *testing.T) {
	store := NewTreeStore(testutil.ABCD())
	sub := store.Subscribe()
	defer sub.Close()

	next := store.Apply(func(f tree.Forest) tree.Forest {
		return tree.Rename(f, "B", "Bee")
	})

	published := <-sub.C()
	require.True(t, tree.Same(next, published))
	require.True(t, tree.Same(next, store.Snapshot()))
	n, _ := tree.Find(published, "B")
	require.Equal(t, "Bee", n.Label)
}

func TestApplyNoOpPublishesNothing(t *testing.T) {
	before := testutil.ABCD()
	store := NewTreeStore(before)
	sub := store.Subscribe()
	defer sub.Close()

	out := store.Apply(func(f tree.Forest) tree.Forest {
		return tree.Remove(f, "missing")
	})
	require.True(t, tree.Same(before, out))

	select {
	case f := <-sub.C():
		t.Fatalf("unexpected publish %s", testutil.Shape(f))
	default:
	}
}

func TestSubscriptionKeepsLatest(t *testing.T) {
	store := NewTreeStore(testutil.ABCD())
	sub := store.Subscribe()
	defer sub.Close()

	store.Apply(func(f tree.Forest) tree.Forest { return tree.Remove(f, "D") })
	store.Apply(func(f tree.Forest) tree.Forest { return tree.Remove(f, "C") })

	latest := <-sub.C()
	require.Equal(t, "A[B]", testutil.Shape(latest))
	select {
	case f := <-sub.C():
		t.Fatalf("expected a single pending snapshot, got %s", testutil.Shape(f))
	default:
	}
}

func TestPreviousSnapshotUnchanged(t *testing.T) {
	store := NewTreeStore(testutil.ABCD())
	before := store.Snapshot()
	store.Apply(func(f tree.Forest) tree.Forest { return tree.Move(f, "B", "D") })
	require.Equal(t, "A[B C] D", testutil.Shape(before))
	require.Equal(t, "A[C] B D", testutil.Shape(store.Snapshot()))
}

func TestCloseClosesChannel(t *testing.T) {
	store := NewTreeStore(nil)
	sub := store.Subscribe()
	sub.Close()
	_, ok := <-sub.C()
	require.False(t, ok)
	sub.Close()

	store.Replace(testutil.ABCD())
	require.Equal(t, "A[B C] D", testutil.Shape(store.Snapshot()))
}
