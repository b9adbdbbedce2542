package grid

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/oshape/internal"
)

// BoxFunc receives a box of cells [x0, x1) x [y0, y1) x [z0, z1).
type BoxFunc func(x0, y0, z0, x1, y1, z1 int)

// ForAllBoxes partitions the full cells of g into non-overlapping boxes and calls fn once for each.
// Without combine, every run of full cells along z in every (x, y) column is its own box. With combine,
// each run is first extended along x over neighbouring columns holding the same run, then along y
// over neighbouring planes holding the same rectangle. Runs are found in (y, x, z) order and claim
// the largest box they can before the next run is considered.
func ForAllBoxes(g Grid, combine bool, fn BoxFunc) {
	if g.Empty() {
		return
	}
	if !combine {
		forAllRuns(g, fn)
		return
	}

	w := newScratch(g)
	defer internal.PutBitSet(w.bits)

	for y := g.FirstFull(cube.Y); y < g.LastFull(cube.Y); y++ {
		for x := g.FirstFull(cube.X); x < g.LastFull(cube.X); x++ {
			start := -1
			for z := g.FirstFull(cube.Z); z <= g.LastFull(cube.Z); z++ {
				if w.full(x, y, z) {
					if start == -1 {
						start = z
					}
					continue
				}
				if start == -1 {
					continue
				}
				x1, y1 := x, y
				w.clearZStrip(start, z, x, y)
				for w.zStripFull(start, z, x1+1, y) {
					w.clearZStrip(start, z, x1+1, y)
					x1++
				}
				for w.xzRectangleFull(x, x1+1, start, z, y1+1) {
					for cx := x; cx <= x1; cx++ {
						w.clearZStrip(start, z, cx, y1+1)
					}
					y1++
				}
				fn(x, y, start, x1+1, y1+1, z)
				start = -1
			}
		}
	}
}

func forAllRuns(g Grid, fn BoxFunc) {
	for y := g.FirstFull(cube.Y); y < g.LastFull(cube.Y); y++ {
		for x := g.FirstFull(cube.X); x < g.LastFull(cube.X); x++ {
			start := -1
			for z := g.FirstFull(cube.Z); z <= g.LastFull(cube.Z); z++ {
				if g.Full(x, y, z) {
					if start == -1 {
						start = z
					}
				} else if start != -1 {
					fn(x, y, start, x+1, y+1, z)
					start = -1
				}
			}
		}
	}
}

// scratch is a mutable copy of a grid that cells are cleared from as they are claimed by boxes.
type scratch struct {
	bits       *bitset.BitSet
	sx, sy, sz int
}

func newScratch(g Grid) scratch {
	sx, sy, sz := sizes(g)
	w := scratch{bits: internal.GetBitSet(), sx: sx, sy: sy, sz: sz}
	if bs, ok := g.(*BitSet); ok {
		for i, ok := bs.bits.NextSet(0); ok; i, ok = bs.bits.NextSet(i + 1) {
			w.bits.Set(i)
		}
		return w
	}
	forFullCells(g, func(x, y, z int) {
		w.bits.Set(w.index(x, y, z))
	})
	return w
}

func (w scratch) index(x, y, z int) uint {
	return uint((x*w.sy+y)*w.sz + z)
}

func (w scratch) full(x, y, z int) bool {
	if x < 0 || y < 0 || z < 0 || x >= w.sx || y >= w.sy || z >= w.sz {
		return false
	}
	return w.bits.Test(w.index(x, y, z))
}

func (w scratch) zStripFull(z0, z1, x, y int) bool {
	if x >= w.sx || y >= w.sy {
		return false
	}
	start, end := w.index(x, y, z0), w.index(x, y, z1)
	if i, ok := w.bits.NextClear(start); ok {
		return i >= end
	}
	// Every bit from start up to the length of the set is full.
	return end <= w.bits.Len()
}

func (w scratch) xzRectangleFull(x0, x1, z0, z1, y int) bool {
	for x := x0; x < x1; x++ {
		if !w.zStripFull(z0, z1, x, y) {
			return false
		}
	}
	return true
}

func (w scratch) clearZStrip(z0, z1, x, y int) {
	for i, end := w.index(x, y, z0), w.index(x, y, z1); i < end; i++ {
		w.bits.Clear(i)
	}
}
