package grid

import "github.com/oomph-ac/oshape/coords"

// Join builds the grid over the merged lattice of mx, my and mz in which a cell is full if op holds
// for the fullness of the cells of a and b it maps back onto.
func Join(a, b Grid, mx, my, mz coords.Merger, op func(a, b bool) bool) *BitSet {
	g := newBitSet(mx.Size()-1, my.Size()-1, mz.Size()-1)
	mx.ForMergedIndexes(func(ax, bx, x int) bool {
		my.ForMergedIndexes(func(ay, by, y int) bool {
			mz.ForMergedIndexes(func(az, bz, z int) bool {
				if op(a.Full(ax, ay, az), b.Full(bx, by, bz)) {
					g.fill(x, y, z)
				}
				return true
			})
			return true
		})
		return true
	})
	return g
}

// JoinIsNotEmpty reports whether Join with the same arguments would produce a grid with at least one
// full cell. It stops at the first such cell and never builds the grid.
func JoinIsNotEmpty(a, b Grid, mx, my, mz coords.Merger, op func(a, b bool) bool) bool {
	return !mx.ForMergedIndexes(func(ax, bx, _ int) bool {
		return my.ForMergedIndexes(func(ay, by, _ int) bool {
			return mz.ForMergedIndexes(func(az, bz, _ int) bool {
				return !op(a.Full(ax, ay, az), b.Full(bx, by, bz))
			})
		})
	})
}
