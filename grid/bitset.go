package grid

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/oshape/assert"
	"github.com/oomph-ac/oshape/omath"
)

// BitSet is a grid storing every cell as one bit, at index z + y*sizeZ + x*sizeZ*sizeY.
type BitSet struct {
	size     [3]int
	min, max [3]int
	bits     *bitset.BitSet
}

func newBitSet(x, y, z int) *BitSet {
	return &BitSet{
		size: [3]int{x, y, z},
		min:  [3]int{x, y, z},
		bits: bitset.New(uint(x * y * z)),
	}
}

func (g *BitSet) index(x, y, z int) uint {
	return uint((x*g.size[1]+y)*g.size[2] + z)
}

func (g *BitSet) inRange(x, y, z int) bool {
	return x >= 0 && y >= 0 && z >= 0 && x < g.size[0] && y < g.size[1] && z < g.size[2]
}

func (g *BitSet) Size(a cube.Axis) int {
	return g.size[omath.AxisIndex(a)]
}

func (g *BitSet) Full(x, y, z int) bool {
	return g.inRange(x, y, z) && g.bits.Test(g.index(x, y, z))
}

func (g *BitSet) FirstFull(a cube.Axis) int {
	return g.min[omath.AxisIndex(a)]
}

func (g *BitSet) LastFull(a cube.Axis) int {
	return g.max[omath.AxisIndex(a)]
}

func (g *BitSet) Empty() bool {
	return boundsEmpty(g.min, g.max)
}

// Count returns the amount of full cells in the grid.
func (g *BitSet) Count() int {
	return int(g.bits.Count())
}

// fill marks a cell as full and widens the bounds to include it.
func (g *BitSet) fill(x, y, z int) {
	g.bits.Set(g.index(x, y, z))
	g.widen(x, y, z, x+1, y+1, z+1)
}

func (g *BitSet) widen(x0, y0, z0, x1, y1, z1 int) {
	g.min = [3]int{min(g.min[0], x0), min(g.min[1], y0), min(g.min[2], z0)}
	g.max = [3]int{max(g.max[0], x1), max(g.max[1], y1), max(g.max[2], z1)}
}

// Builder assembles a BitSet grid. A builder is single use: once Build is called the grid it produced
// is immutable and the builder may no longer be filled.
type Builder struct {
	g *BitSet
}

// NewBuilder returns a builder for an empty grid of the size passed.
func NewBuilder(x, y, z int) *Builder {
	assert.IsTrue(x >= 0 && y >= 0 && z >= 0, "grid size must not be negative: %dx%dx%d", x, y, z)
	return &Builder{g: newBitSet(x, y, z)}
}

// Fill marks the cell at x, y, z as full.
func (b *Builder) Fill(x, y, z int) *Builder {
	assert.IsTrue(b.g != nil, "grid builder used after Build")
	assert.IsTrue(b.g.inRange(x, y, z), "cell %d %d %d out of range", x, y, z)
	b.g.fill(x, y, z)
	return b
}

// FillBox marks every cell in [x0, x1) x [y0, y1) x [z0, z1) as full.
func (b *Builder) FillBox(x0, y0, z0, x1, y1, z1 int) *Builder {
	assert.IsTrue(b.g != nil, "grid builder used after Build")
	assert.IsTrue(x0 >= 0 && y0 >= 0 && z0 >= 0 && x1 <= b.g.size[0] && y1 <= b.g.size[1] && z1 <= b.g.size[2],
		"box %d %d %d -> %d %d %d out of range", x0, y0, z0, x1, y1, z1)
	if x0 >= x1 || y0 >= y1 || z0 >= z1 {
		return b
	}
	for x := x0; x < x1; x++ {
		for y := y0; y < y1; y++ {
			for z := z0; z < z1; z++ {
				b.g.bits.Set(b.g.index(x, y, z))
			}
		}
	}
	b.g.widen(x0, y0, z0, x1, y1, z1)
	return b
}

// Build returns the finished grid.
func (b *Builder) Build() *BitSet {
	assert.IsTrue(b.g != nil, "grid builder used after Build")
	g := b.g
	b.g = nil
	return g
}

// FilledBox returns a grid of the size passed with the cells in [x0, x1) x [y0, y1) x [z0, z1) full.
func FilledBox(sx, sy, sz, x0, y0, z0, x1, y1, z1 int) *BitSet {
	return NewBuilder(sx, sy, sz).FillBox(x0, y0, z0, x1, y1, z1).Build()
}

// Copy returns a BitSet holding the same cells as g.
func Copy(g Grid) *BitSet {
	if bs, ok := g.(*BitSet); ok {
		c := *bs
		c.bits = bs.bits.Clone()
		return &c
	}
	sx, sy, sz := sizes(g)
	b := NewBuilder(sx, sy, sz)
	forFullCells(g, b.g.fill)
	return b.Build()
}

// forFullCells calls fn for every full cell of g, skipping the region outside its bounds.
func forFullCells(g Grid, fn func(x, y, z int)) {
	for x := g.FirstFull(cube.X); x < g.LastFull(cube.X); x++ {
		for y := g.FirstFull(cube.Y); y < g.LastFull(cube.Y); y++ {
			for z := g.FirstFull(cube.Z); z < g.LastFull(cube.Z); z++ {
				if g.Full(x, y, z) {
					fn(x, y, z)
				}
			}
		}
	}
}
