package backend

import (
	"context"
	"time"
)

// DefaultLoadDelay is the simulated latency of a first expand.
const DefaultLoadDelay = 800 * time.Millisecond

// Loader fetches the children of a node before it is shown for the first
// time.
type Loader interface {
	Load(ctx context.Context, id string) error
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, id string) error

func (f LoaderFunc) Load(ctx context.Context, id string) error {
	return f(ctx, id)
}

// Simulated stands in for a real fetch: it waits for Delay and succeeds.
type Simulated struct {
	Delay time.Duration
}

// NewSimulated returns a loader with the given delay. Negative delays are
// treated as zero.
func NewSimulated(delay time.Duration) *Simulated {
	if delay < 0 {
		delay = 0
	}
	return &Simulated{Delay: delay}
}

func (s *Simulated) Load(ctx context.Context, id string) error {
	if s == nil || s.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
