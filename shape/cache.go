package shape

import (
	"sync/atomic"
	"weak"

	"github.com/df-mc/dragonfly/server/block/cube"
)

// unionSlots is the amount of pairwise unions remembered per shape.
const unionSlots = 4

const (
	flagUnknown uint32 = iota
	flagFalse
	flagTrue
)

// cache holds the lazily computed values of a shape. Each value is built completely before it is
// published, so concurrent readers either see nothing and compute it themselves, or see a finished
// value. Racing writers store identical values, and the last write wins.
type cache struct {
	bounds    atomic.Pointer[cube.BBox]
	boxes     atomic.Pointer[[]cube.BBox]
	fullBlock atomic.Uint32
	occludes  atomic.Uint32
	faces     [6]atomic.Pointer[Shape]
	unions    [unionSlots]atomic.Pointer[unionEntry]
}

// unionEntry remembers the union of a shape with other. other is held weakly so that entries never
// keep the shapes they are keyed by alive.
type unionEntry struct {
	other  weak.Pointer[Shape]
	result *Shape
}

func loadFlag(f *atomic.Uint32, compute func() bool) bool {
	switch f.Load() {
	case flagTrue:
		return true
	case flagFalse:
		return false
	}
	v := compute()
	if v {
		f.Store(flagTrue)
	} else {
		f.Store(flagFalse)
	}
	return v
}

func (s *Shape) cachedUnion(other *Shape) (*Shape, bool) {
	e := s.cache.unions[other.id%unionSlots].Load()
	if e == nil || e.other.Value() != other {
		return nil, false
	}
	return e.result, true
}

func (s *Shape) storeUnion(other, result *Shape) {
	s.cache.unions[other.id%unionSlots].Store(&unionEntry{other: weak.Make(other), result: result})
}

// OrUnoptimized returns the union of the shape and other without optimising the result. Results are
// remembered for the pair regardless of operand order, in a small table that evicts on collision.
func (s *Shape) OrUnoptimized(other *Shape) *Shape {
	if r, ok := s.cachedUnion(other); ok {
		return r
	}
	if r, ok := other.cachedUnion(s); ok {
		return r
	}
	r := JoinUnoptimized(s, other, OpOr)
	s.storeUnion(other, r)
	return r
}
