package state

import (
	"sync"

	"github.com/atomicstack/tmux-popup-tree/internal/tree"
)

// TreeStore owns the current forest snapshot and publishes every new one to
// its subscribers.
type TreeStore interface {
	Snapshot() tree.Forest
	// Apply computes the next snapshot from the current one. fn runs with
	// the store locked, so it must not call back into the store. A result
	// that is Same as the input is not published.
	Apply(fn func(tree.Forest) tree.Forest) tree.Forest
	Replace(tree.Forest)
	Subscribe() *Subscription
}

type treeStore struct {
	mu      sync.Mutex
	current tree.Forest
	subs    map[*Subscription]struct{}
}

// NewTreeStore seeds a store with the initial forest.
func NewTreeStore(initial tree.Forest) TreeStore {
	return &treeStore{current: initial, subs: make(map[*Subscription]struct{})}
}

func (s *treeStore) Snapshot() tree.Forest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *treeStore) Apply(fn func(tree.Forest) tree.Forest) tree.Forest {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := fn(s.current)
	if tree.Same(next, s.current) {
		return s.current
	}
	s.current = next
	s.publishLocked()
	return next
}

func (s *treeStore) Replace(f tree.Forest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = f
	s.publishLocked()
}

func (s *treeStore) Subscribe() *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub := &Subscription{ch: make(chan tree.Forest, 1), store: s}
	s.subs[sub] = struct{}{}
	return sub
}

func (s *treeStore) publishLocked() {
	for sub := range s.subs {
		sub.offer(s.current)
	}
}

func (s *treeStore) unsubscribe(sub *Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subs[sub]; !ok {
		return
	}
	delete(s.subs, sub)
	close(sub.ch)
}

// Subscription delivers published snapshots. Only the latest unread
// snapshot is kept: a slow reader skips intermediate ones but never sees a
// stale value after a newer one was published.
type Subscription struct {
	ch    chan tree.Forest
	store *treeStore
}

// C returns the delivery channel. It is closed by Close.
func (s *Subscription) C() <-chan tree.Forest {
	return s.ch
}

// Close stops delivery and closes the channel.
func (s *Subscription) Close() {
	s.store.unsubscribe(s)
}

// offer runs with the store locked, so it is the only writer.
func (s *Subscription) offer(f tree.Forest) {
	select {
	case <-s.ch:
	default:
	}
	s.ch <- f
}
