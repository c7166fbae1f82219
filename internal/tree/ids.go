package tree

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator produces identifiers for new nodes. Implementations must not
// repeat themselves; AddChild additionally skips ids already in the forest.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator draws random version 4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator yields prefix-1, prefix-2, ... and is safe for
// concurrent use. Tests use it to assert exact ids.
type SequenceGenerator struct {
	Prefix string
	next   atomic.Uint64
}

// NewSequenceGenerator returns a generator whose first id is prefix-1.
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{Prefix: prefix}
}

func (g *SequenceGenerator) NewID() string {
	n := g.next.Add(1)
	return fmt.Sprintf("%s-%d", g.Prefix, n)
}
