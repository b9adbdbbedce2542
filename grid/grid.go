// Package grid implements the discrete occupancy grids underlying shapes: three dimensional lattices
// of cells that are either full or empty.
package grid

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/oshape/omath"
)

// Grid is an immutable lattice of full and empty cells.
type Grid interface {
	// Size returns the amount of cells along the axis.
	Size(a cube.Axis) int
	// Full reports whether the cell at x, y, z is full. Cells outside the grid are never full.
	Full(x, y, z int) bool
	// FirstFull returns the lowest index along the axis holding a full cell, or Size(a) if there is none.
	FirstFull(a cube.Axis) int
	// LastFull returns one past the highest index along the axis holding a full cell, or 0 if there is
	// none.
	LastFull(a cube.Axis) int
	// Empty reports whether the grid has no full cells.
	Empty() bool
}

// FullCell is a grid of exactly one cell, which is full.
type FullCell struct{}

func (FullCell) Size(cube.Axis) int      { return 1 }
func (FullCell) Full(x, y, z int) bool   { return x == 0 && y == 0 && z == 0 }
func (FullCell) FirstFull(cube.Axis) int { return 0 }
func (FullCell) LastFull(cube.Axis) int  { return 1 }
func (FullCell) Empty() bool             { return false }

// FullAlong reports whether the cell is full, with the index along the axis a passed as i and the
// indices along the two other axes, in cyclic order after a, passed as j and k.
func FullAlong(g Grid, a cube.Axis, i, j, k int) bool {
	var idx [3]int
	b, c := omath.OtherAxes(a)
	idx[omath.AxisIndex(a)], idx[omath.AxisIndex(b)], idx[omath.AxisIndex(c)] = i, j, k
	return g.Full(idx[0], idx[1], idx[2])
}

func sizes(g Grid) (int, int, int) {
	return g.Size(cube.X), g.Size(cube.Y), g.Size(cube.Z)
}

func boundsEmpty(min, max [3]int) bool {
	for i := range 3 {
		if min[i] >= max[i] {
			return true
		}
	}
	return false
}
