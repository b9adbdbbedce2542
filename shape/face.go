package shape

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/oshape/omath"
)

// FaceShape returns the one cell thick layer of the shape lying against the face of the unit cube. The
// result spans [0, 1] along the axis of the face, and is empty if the shape does not reach the face.
func (s *Shape) FaceShape(f cube.Face) *Shape {
	if s.IsEmpty() || s == blockShape {
		return s
	}
	if c := s.cache.faces[f].Load(); c != nil {
		return c
	}
	face := s.calculateFace(f)
	s.cache.faces[f].Store(face)
	return face
}

func (s *Shape) calculateFace(f cube.Face) *Shape {
	a := f.Axis()
	list := s.Coords(a)
	if list.Len() == 2 && omath.FuzzyEquals(list.At(0), 0, omath.Epsilon) && omath.FuzzyEquals(list.At(1), 1, omath.Epsilon) {
		return s
	}
	positive := omath.FacePositive(f)
	if positive && s.Max(a) < 1-omath.Epsilon || !positive && s.Min(a) > omath.Epsilon {
		return Empty()
	}
	at := omath.Epsilon
	if positive {
		at = 1 - omath.Epsilon
	}
	i := omath.ClampInt(s.findIndex(a, at), 0, s.grid.Size(a)-1)
	if slice := newSliceShape(s, a, i); !slice.IsEmpty() {
		return slice
	}
	return Empty()
}
