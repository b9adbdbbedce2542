package shape

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/oshape/omath"
)

// IsFullBlock reports whether the shape covers exactly the unit cube.
func (s *Shape) IsFullBlock() bool {
	if s == blockShape {
		return true
	}
	return loadFlag(&s.cache.fullBlock, func() bool {
		return !JoinIsNotEmpty(blockShape, s, OpXor)
	})
}

// OccludesFullBlock reports whether the shape covers at least the whole unit cube.
func (s *Shape) OccludesFullBlock() bool {
	if s == blockShape {
		return true
	}
	if s.IsEmpty() {
		return false
	}
	return loadFlag(&s.cache.occludes, func() bool {
		if s.cache.fullBlock.Load() == flagTrue {
			return true
		}
		if boxes := s.ToAABBs(); len(boxes) == 1 {
			return coversUnitCube(boxes[0])
		}
		return !JoinIsNotEmpty(blockShape, s, OpDifference)
	})
}

func coversUnitCube(bb cube.BBox) bool {
	lo, hi := bb.Min(), bb.Max()
	for i := range 3 {
		if lo[i] > omath.Epsilon || hi[i] < 1-omath.Epsilon {
			return false
		}
	}
	return true
}

// FaceOccludedBy reports whether the face f of a is hidden by the opposite face of b, a block placed
// next to it in the direction of f.
func FaceOccludedBy(a, b *Shape, f cube.Face) bool {
	if a == blockShape && b == blockShape {
		return true
	}
	if b.IsEmpty() {
		return false
	}
	fa := a.FaceShape(f)
	if fa.IsEmpty() {
		return false
	}
	return FaceShapeOccludes(fa, b.FaceShape(f.Opposite()))
}

// BlockOccludes reports whether the faces a and b share when b is placed next to a in the direction of
// f hide each other. The result is the same when a and b swap places and f is reversed.
func BlockOccludes(a, b *Shape, f cube.Face) bool {
	return FaceOccludedBy(a, b, f) && FaceOccludedBy(b, a, f.Opposite())
}

// MergedFaceOccludes reports whether the face f of a together with the opposite face of b, a block
// placed next to it in the direction of f, cover the whole face of the unit cube.
func MergedFaceOccludes(a, b *Shape, f cube.Face) bool {
	if a == blockShape || b == blockShape {
		return true
	}
	fa, fb := a.FaceShape(f), b.FaceShape(f.Opposite())
	switch {
	case fa.IsEmpty() && fb.IsEmpty():
		return false
	case fa.IsEmpty():
		return fb.OccludesFullBlock()
	case fb.IsEmpty():
		return fa.OccludesFullBlock()
	case fa.cache.occludes.Load() == flagTrue || fb.cache.occludes.Load() == flagTrue:
		return true
	}
	return fa.OrUnoptimized(fb).OccludesFullBlock()
}

// FaceShapeOccludes reports whether face shape b covers all of face shape a.
func FaceShapeOccludes(a, b *Shape) bool {
	if b == blockShape || a.IsEmpty() {
		return true
	}
	if b.IsEmpty() {
		return false
	}
	return !JoinIsNotEmpty(a, b, OpDifference)
}
