package shape

import (
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/oshape/assert"
	"github.com/oomph-ac/oshape/coords"
	"github.com/oomph-ac/oshape/grid"
	"github.com/oomph-ac/oshape/omath"
)

// maxBits is the finest power of two subdivision a box is snapped to.
const maxBits = 3

var (
	emptyShape    = newArrayShape(grid.NewBuilder(0, 0, 0).Build(), coords.Array{0}, coords.Array{0}, coords.Array{0})
	blockShape    = newCubeShape(grid.FullCell{})
	infinityShape = newArrayShape(grid.FullCell{}, coords.Unbounded, coords.Unbounded, coords.Unbounded)
)

// Empty returns the shape without any volume.
func Empty() *Shape {
	return emptyShape
}

// Block returns the unit cube spanning [0, 1] on every axis.
func Block() *Shape {
	return blockShape
}

// Infinity returns the shape covering all of space.
func Infinity() *Shape {
	return infinityShape
}

// Box returns a shape holding the box passed. Boxes aligned to a power of two subdivision of the unit
// cube are stored as a cube grid, others as a single cell with explicit boundaries. Box panics if a
// minimum exceeds its maximum.
func Box(minX, minY, minZ, maxX, maxY, maxZ float64) *Shape {
	assert.IsTrue(!(minX > maxX) && !(minY > maxY) && !(minZ > maxZ),
		"box minimum (%v, %v, %v) exceeds maximum (%v, %v, %v)", minX, minY, minZ, maxX, maxY, maxZ)

	if maxX-minX < omath.Epsilon || maxY-minY < omath.Epsilon || maxZ-minZ < omath.Epsilon {
		return Empty()
	}
	bx, by, bz := findBits(minX, maxX), findBits(minY, maxY), findBits(minZ, maxZ)
	if bx < 0 || by < 0 || bz < 0 {
		return newArrayShape(grid.FullCell{}, boundary(minX, maxX), boundary(minY, maxY), boundary(minZ, maxZ))
	}
	if bx == 0 && by == 0 && bz == 0 {
		return Block()
	}
	px, py, pz := 1<<bx, 1<<by, 1<<bz
	return newCubeShape(grid.FilledBox(px, py, pz,
		snap(minX, px), snap(minY, py), snap(minZ, pz),
		snap(maxX, px), snap(maxY, py), snap(maxZ, pz),
	))
}

// BoxFromBBox returns a shape holding the box passed.
func BoxFromBBox(bb cube.BBox) *Shape {
	lo, hi := bb.Min(), bb.Max()
	return Box(lo[0], lo[1], lo[2], hi[0], hi[1], hi[2])
}

func boundary(lo, hi float64) coords.List {
	if math.IsInf(lo, -1) && math.IsInf(hi, 1) {
		return coords.Unbounded
	}
	return coords.Array{lo, hi}
}

func snap(v float64, parts int) int {
	return int(math.Round(v * float64(parts)))
}

// findBits returns the smallest amount of bits b such that lo and hi both lie on a multiple of 1/2^b
// inside [0, 1], or -1 if there is none.
func findBits(lo, hi float64) int {
	if lo < -omath.Epsilon || hi > 1+omath.Epsilon {
		return -1
	}
	for bits := 0; bits <= maxBits; bits++ {
		parts := float64(int(1) << bits)
		a, b := lo*parts, hi*parts
		aligned := math.Abs(a-math.Round(a)) < omath.Epsilon*parts
		bAligned := math.Abs(b-math.Round(b)) < omath.Epsilon*parts
		if aligned && bAligned {
			return bits
		}
	}
	return -1
}

// Join combines a and b cell by cell with op and optimises the result.
func Join(a, b *Shape, op Op) *Shape {
	return JoinUnoptimized(a, b, op).Optimize()
}

// JoinUnoptimized combines a and b cell by cell with op on the union of both their boundaries. It
// panics if op fills cells that neither shape fills.
func JoinUnoptimized(a, b *Shape, op Op) *Shape {
	assert.IsTrue(!op(false, false), "operation must not fill cells outside of both shapes")
	if a == b {
		if op(true, true) {
			return a
		}
		return Empty()
	}
	onlyA, onlyB := op(true, false), op(false, true)
	if a.IsEmpty() {
		if onlyB {
			return b
		}
		return Empty()
	}
	if b.IsEmpty() {
		if onlyA {
			return a
		}
		return Empty()
	}

	mx, my, mz := mergers(a, b, onlyA, onlyB)
	g := grid.Join(a.grid, b.grid, mx, my, mz, op)
	if isCube(mx) && isCube(my) && isCube(mz) {
		return newCubeShape(g)
	}
	return newArrayShape(g, mx.List(), my.List(), mz.List())
}

// JoinIsNotEmpty reports whether joining a and b with op would produce any volume, without building
// the result.
func JoinIsNotEmpty(a, b *Shape, op Op) bool {
	assert.IsTrue(!op(false, false), "operation must not fill cells outside of both shapes")
	emptyA, emptyB := a.IsEmpty(), b.IsEmpty()
	if emptyA || emptyB {
		return op(!emptyA, !emptyB)
	}
	if a == b {
		return op(true, true)
	}
	onlyA, onlyB := op(true, false), op(false, true)
	for _, ax := range omath.Axes {
		if a.Max(ax) < b.Min(ax)-omath.Epsilon || b.Max(ax) < a.Min(ax)-omath.Epsilon {
			// Disjoint along this axis, so no cell is full in both.
			return onlyA || onlyB
		}
	}
	mx, my, mz := mergers(a, b, onlyA, onlyB)
	return grid.JoinIsNotEmpty(a.grid, b.grid, mx, my, mz, op)
}

func mergers(a, b *Shape, onlyA, onlyB bool) (x, y, z coords.Merger) {
	x = coords.NewMerger(1, a.Coords(cube.X), b.Coords(cube.X), onlyA, onlyB)
	y = coords.NewMerger(x.Size()-1, a.Coords(cube.Y), b.Coords(cube.Y), onlyA, onlyB)
	z = coords.NewMerger((x.Size()-1)*(y.Size()-1), a.Coords(cube.Z), b.Coords(cube.Z), onlyA, onlyB)
	return x, y, z
}

func isCube(m coords.Merger) bool {
	_, ok := m.List().(coords.Cube)
	return ok
}

// Or returns the optimised union of a and b.
func Or(a, b *Shape) *Shape {
	return Join(a, b, OpOr)
}

// OrAll returns the optimised union of all shapes passed. Shapes are combined pairwise in a balanced
// tree so that intermediate shapes stay small.
func OrAll(first *Shape, rest ...*Shape) *Shape {
	return unionBalanced(append([]*Shape{first}, rest...)).Optimize()
}

func unionBalanced(shapes []*Shape) *Shape {
	if len(shapes) == 0 {
		return Empty()
	}
	for len(shapes) > 1 {
		next := make([]*Shape, 0, (len(shapes)+1)/2)
		for i := 0; i+1 < len(shapes); i += 2 {
			next = append(next, JoinUnoptimized(shapes[i], shapes[i+1], OpOr))
		}
		if len(shapes)%2 == 1 {
			next = append(next, shapes[len(shapes)-1])
		}
		shapes = next
	}
	return shapes[0]
}

// Equal reports whether a and b cover exactly the same volume.
func Equal(a, b *Shape) bool {
	return !JoinIsNotEmpty(a, b, OpXor)
}
