// Package shape implements the immutable voxel shapes blocks and entities collide with: an occupancy
// grid paired with one list of cell boundaries per axis. It answers swept collision, ray clipping and
// face occlusion queries, and combines shapes of different resolution with boolean operations.
//
// Shapes are safe for concurrent use. Every derived value (bounds, box decomposition, face slices,
// full block flags and pairwise unions) is computed lazily and published atomically.
package shape

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/oshape/assert"
	"github.com/oomph-ac/oshape/coords"
	"github.com/oomph-ac/oshape/grid"
	"github.com/oomph-ac/oshape/omath"
)

// Shape is an immutable volume made up of the full cells of a grid, positioned in the world by one
// list of boundaries per axis.
type Shape struct {
	grid  grid.Grid
	axes  axisSource
	id    uint64
	cache cache
}

// axisSource supplies the boundary list of a shape along each axis. Shapes only differ in how they
// store these lists.
type axisSource interface {
	coords(a cube.Axis) coords.List
}

// arrayAxes holds an explicit list per axis.
type arrayAxes [3]coords.List

func (a arrayAxes) coords(ax cube.Axis) coords.List {
	return a[omath.AxisIndex(ax)]
}

// cubeAxes subdivides [0, 1] uniformly into as many cells as the grid has along each axis.
type cubeAxes struct {
	g grid.Grid
}

func (c cubeAxes) coords(a cube.Axis) coords.List {
	return coords.Cube{Parts: c.g.Size(a)}
}

// sliceAxes spans [0, 1] along the sliced axis and delegates the two others to the sliced shape.
type sliceAxes struct {
	src  axisSource
	axis cube.Axis
}

var sliceCoords = coords.Cube{Parts: 1}

func (s sliceAxes) coords(a cube.Axis) coords.List {
	if a == s.axis {
		return sliceCoords
	}
	return s.src.coords(a)
}

var shapeID atomic.Uint64

func newShape(g grid.Grid, axes axisSource) *Shape {
	return &Shape{grid: g, axes: axes, id: shapeID.Add(1)}
}

func newArrayShape(g grid.Grid, x, y, z coords.List) *Shape {
	axes := arrayAxes{x, y, z}
	for i, a := range omath.Axes {
		assert.IsTrue(axes[i].Len() == g.Size(a)+1, "%v axis has %d boundaries for %d cells", a, axes[i].Len(), g.Size(a))
	}
	return newShape(g, axes)
}

func newCubeShape(g grid.Grid) *Shape {
	return newShape(g, cubeAxes{g: g})
}

func newSliceShape(src *Shape, a cube.Axis, index int) *Shape {
	return newShape(grid.Slice(src.grid, a, index), sliceAxes{src: src.axes, axis: a})
}

// Grid returns the occupancy grid of the shape.
func (s *Shape) Grid() grid.Grid {
	return s.grid
}

// Coords returns the cell boundaries of the shape along the axis passed.
func (s *Shape) Coords(a cube.Axis) coords.List {
	return s.axes.coords(a)
}

// IsEmpty reports whether the shape has no full cells.
func (s *Shape) IsEmpty() bool {
	return s.grid.Empty()
}

// Min returns the lowest coordinate of the shape along the axis, or +Inf if the shape is empty.
func (s *Shape) Min(a cube.Axis) float64 {
	i := s.grid.FirstFull(a)
	if i >= s.grid.Size(a) {
		return math.Inf(1)
	}
	return s.Coords(a).At(i)
}

// Max returns the highest coordinate of the shape along the axis, or -Inf if the shape is empty.
func (s *Shape) Max(a cube.Axis) float64 {
	i := s.grid.LastFull(a)
	if i <= 0 {
		return math.Inf(-1)
	}
	return s.Coords(a).At(i)
}

// Bounds returns the smallest box enclosing the shape. It panics if the shape is empty: callers must
// check IsEmpty first.
func (s *Shape) Bounds() cube.BBox {
	assert.IsTrue(!s.IsEmpty(), "no bounds for empty shape")
	if b := s.cache.bounds.Load(); b != nil {
		return *b
	}
	b := cube.Box(s.Min(cube.X), s.Min(cube.Y), s.Min(cube.Z), s.Max(cube.X), s.Max(cube.Y), s.Max(cube.Z))
	s.cache.bounds.Store(&b)
	return b
}

// findIndex returns the index of the cell holding coord along the axis: -1 below the first boundary
// and Size(a) at or above the last one.
func (s *Shape) findIndex(a cube.Axis, coord float64) int {
	n := s.grid.Size(a)
	list := s.Coords(a)
	if c, ok := list.(coords.Cube); ok {
		return int(math.Floor(omath.ClampFloat(coord*float64(c.Parts), -1, float64(n))))
	}
	return omath.FirstTrue(0, n+1, func(i int) bool {
		return coord < list.At(i)
	}) - 1
}

// Move returns the shape translated by dx, dy and dz.
func (s *Shape) Move(dx, dy, dz float64) *Shape {
	if s.IsEmpty() {
		return Empty()
	}
	return newArrayShape(s.grid,
		coords.Move(s.Coords(cube.X), dx),
		coords.Move(s.Coords(cube.Y), dy),
		coords.Move(s.Coords(cube.Z), dz),
	)
}

// ForAllBoxes calls fn with the bounds of every box of the decomposition of the shape.
func (s *Shape) ForAllBoxes(fn func(minX, minY, minZ, maxX, maxY, maxZ float64)) {
	x, y, z := s.Coords(cube.X), s.Coords(cube.Y), s.Coords(cube.Z)
	grid.ForAllBoxes(s.grid, true, func(x0, y0, z0, x1, y1, z1 int) {
		fn(x.At(x0), y.At(y0), z.At(z0), x.At(x1), y.At(y1), z.At(z1))
	})
}

// ToAABBs returns the shape decomposed into non-overlapping boxes. The slice is shared between
// callers and must not be modified.
func (s *Shape) ToAABBs() []cube.BBox {
	if b := s.cache.boxes.Load(); b != nil {
		return *b
	}
	boxes := make([]cube.BBox, 0, 1)
	s.ForAllBoxes(func(minX, minY, minZ, maxX, maxY, maxZ float64) {
		boxes = append(boxes, cube.Box(minX, minY, minZ, maxX, maxY, maxZ))
	})
	s.cache.boxes.Store(&boxes)
	return boxes
}

// Optimize returns an equivalent shape rebuilt from its box decomposition, which usually has fewer and
// coarser cells.
func (s *Shape) Optimize() *Shape {
	boxes := s.ToAABBs()
	switch len(boxes) {
	case 0:
		return Empty()
	case 1:
		return BoxFromBBox(boxes[0])
	}
	parts := make([]*Shape, len(boxes))
	for i, b := range boxes {
		parts[i] = BoxFromBBox(b)
	}
	return unionBalanced(parts)
}

// SingleEncompassing returns the box shape spanning the bounds of the shape.
func (s *Shape) SingleEncompassing() *Shape {
	if s.IsEmpty() {
		return Empty()
	}
	return BoxFromBBox(s.Bounds())
}

// ClosestPointTo returns the point of the shape closest to point. It returns false if the shape is
// empty.
func (s *Shape) ClosestPointTo(point mgl64.Vec3) (mgl64.Vec3, bool) {
	var (
		closest mgl64.Vec3
		best    = math.Inf(1)
	)
	for _, b := range s.ToAABBs() {
		p := mgl64.Vec3{
			omath.ClampFloat(point.X(), b.Min().X(), b.Max().X()),
			omath.ClampFloat(point.Y(), b.Min().Y(), b.Max().Y()),
			omath.ClampFloat(point.Z(), b.Min().Z(), b.Max().Z()),
		}
		if d := p.Sub(point).LenSqr(); d < best {
			closest, best = p, d
		}
	}
	return closest, !math.IsInf(best, 1)
}

func (s *Shape) String() string {
	if s.IsEmpty() {
		return "Shape[EMPTY]"
	}
	b := s.Bounds()
	return fmt.Sprintf("Shape[%v -> %v]", b.Min(), b.Max())
}
