package shape

import (
	"iter"
	"math"
	"slices"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/oshape/grid"
	"github.com/oomph-ac/oshape/omath"
)

// Collide returns how far box may move along the axis, at most maxDist, before it touches the shape.
// The result has the same sign as maxDist and never exceeds it in magnitude. Cells the box already
// overlaps by less than 1e-7 are treated as touching rather than overlapping.
func (s *Shape) Collide(a cube.Axis, box cube.BBox, maxDist float64) float64 {
	if s.IsEmpty() {
		return maxDist
	}
	if math.Abs(maxDist) < omath.Epsilon {
		return 0
	}
	b, c := omath.OtherAxes(a)
	lo, hi := omath.Component(box.Min(), a), omath.Component(box.Max(), a)

	b0 := max(s.grid.FirstFull(b), s.findIndex(b, omath.Component(box.Min(), b)+omath.Epsilon))
	b1 := min(s.grid.LastFull(b), s.findIndex(b, omath.Component(box.Max(), b)-omath.Epsilon)+1)
	c0 := max(s.grid.FirstFull(c), s.findIndex(c, omath.Component(box.Min(), c)+omath.Epsilon))
	c1 := min(s.grid.LastFull(c), s.findIndex(c, omath.Component(box.Max(), c)-omath.Epsilon)+1)
	if b0 >= b1 || c0 >= c1 {
		return maxDist
	}
	list := s.Coords(a)

	if maxDist > 0 {
		start := max(s.grid.FirstFull(a), s.findIndex(a, hi-omath.Epsilon)+1)
		for i := start; i < s.grid.LastFull(a); i++ {
			if !s.planeFull(a, i, b0, b1, c0, c1) {
				continue
			}
			if d := list.At(i) - hi; d >= -omath.Epsilon {
				maxDist = math.Min(maxDist, d)
			}
			return maxDist
		}
		return maxDist
	}
	end := min(s.grid.LastFull(a), s.findIndex(a, lo+omath.Epsilon)) - 1
	for i := end; i >= s.grid.FirstFull(a); i-- {
		if !s.planeFull(a, i, b0, b1, c0, c1) {
			continue
		}
		if d := list.At(i+1) - lo; d <= omath.Epsilon {
			maxDist = math.Max(maxDist, d)
		}
		return maxDist
	}
	return maxDist
}

// planeFull reports whether any cell in layer i along the axis is full within the ranges passed on
// the two other axes.
func (s *Shape) planeFull(a cube.Axis, i, b0, b1, c0, c1 int) bool {
	for j := b0; j < b1; j++ {
		for k := c0; k < c1; k++ {
			if grid.FullAlong(s.grid, a, i, j, k) {
				return true
			}
		}
	}
	return false
}

// CollideAll folds Collide over all shapes, returning how far box may move along the axis before
// touching any of them.
func CollideAll(a cube.Axis, box cube.BBox, shapes iter.Seq[*Shape], maxDist float64) float64 {
	for s := range shapes {
		if math.Abs(maxDist) < omath.Epsilon {
			return 0
		}
		maxDist = s.Collide(a, box, maxDist)
	}
	return maxDist
}

// CollideMotion resolves the motion of box against the shapes passed, which must already be in the
// same space as box. The Y axis is resolved first, followed by the horizontal axis with the larger
// motion.
func CollideMotion(box cube.BBox, motion mgl64.Vec3, shapes []*Shape) mgl64.Vec3 {
	if len(shapes) == 0 {
		return motion
	}
	order := [3]cube.Axis{cube.Y, cube.X, cube.Z}
	if math.Abs(motion.X()) < math.Abs(motion.Z()) {
		order[1], order[2] = cube.Z, cube.X
	}
	var result mgl64.Vec3
	for _, a := range order {
		i := omath.AxisIndex(a)
		if motion[i] == 0 {
			continue
		}
		d := CollideAll(a, box, slices.Values(shapes), motion[i])
		if d != 0 {
			var delta mgl64.Vec3
			delta[i] = d
			box = box.Translate(delta)
		}
		result[i] = d
	}
	return result
}
