package grid

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/oshape/omath"
)

// Sub is a view of a box shaped region of another grid. Its bounds are exact: they are computed from
// the cells of the region when the view is created.
type Sub struct {
	parent      Grid
	start, size [3]int
	min, max    [3]int
}

// NewSub returns a view of the cells of parent in [x0, x1) x [y0, y1) x [z0, z1).
func NewSub(parent Grid, x0, y0, z0, x1, y1, z1 int) *Sub {
	s := &Sub{
		parent: parent,
		start:  [3]int{x0, y0, z0},
		size:   [3]int{x1 - x0, y1 - y0, z1 - z0},
	}
	s.min = s.size

	lo, hi := [3]int{}, [3]int{}
	for i, a := range omath.Axes {
		lo[i] = max(s.start[i], parent.FirstFull(a))
		hi[i] = min(s.start[i]+s.size[i], parent.LastFull(a))
	}
	for x := lo[0]; x < hi[0]; x++ {
		for y := lo[1]; y < hi[1]; y++ {
			for z := lo[2]; z < hi[2]; z++ {
				if parent.Full(x, y, z) {
					lx, ly, lz := x-x0, y-y0, z-z0
					s.min = [3]int{min(s.min[0], lx), min(s.min[1], ly), min(s.min[2], lz)}
					s.max = [3]int{max(s.max[0], lx+1), max(s.max[1], ly+1), max(s.max[2], lz+1)}
				}
			}
		}
	}
	return s
}

// Slice returns the one cell thick view of parent at index along the axis passed.
func Slice(parent Grid, a cube.Axis, index int) *Sub {
	var lo, hi [3]int
	for i, ax := range omath.Axes {
		hi[i] = parent.Size(ax)
	}
	i := omath.AxisIndex(a)
	lo[i], hi[i] = index, index+1
	return NewSub(parent, lo[0], lo[1], lo[2], hi[0], hi[1], hi[2])
}

func (s *Sub) Size(a cube.Axis) int {
	return s.size[omath.AxisIndex(a)]
}

func (s *Sub) Full(x, y, z int) bool {
	if x < 0 || y < 0 || z < 0 || x >= s.size[0] || y >= s.size[1] || z >= s.size[2] {
		return false
	}
	return s.parent.Full(x+s.start[0], y+s.start[1], z+s.start[2])
}

func (s *Sub) FirstFull(a cube.Axis) int {
	return s.min[omath.AxisIndex(a)]
}

func (s *Sub) LastFull(a cube.Axis) int {
	return s.max[omath.AxisIndex(a)]
}

func (s *Sub) Empty() bool {
	return boundsEmpty(s.min, s.max)
}
