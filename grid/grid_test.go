package grid

import (
	"math/rand"
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/oshape/coords"
	"github.com/oomph-ac/oshape/oerror"
	"github.com/stretchr/testify/require"
)

type box struct{ x0, y0, z0, x1, y1, z1 int }

func boxes(g Grid, combine bool) []box {
	var out []box
	ForAllBoxes(g, combine, func(x0, y0, z0, x1, y1, z1 int) {
		out = append(out, box{x0, y0, z0, x1, y1, z1})
	})
	return out
}

func TestBuilderBounds(t *testing.T) {
	g := NewBuilder(4, 4, 4).Fill(1, 2, 3).Fill(2, 0, 1).Build()
	require.False(t, g.Empty())
	require.Equal(t, 1, g.FirstFull(cube.X))
	require.Equal(t, 3, g.LastFull(cube.X))
	require.Equal(t, 0, g.FirstFull(cube.Y))
	require.Equal(t, 3, g.LastFull(cube.Y))
	require.Equal(t, 1, g.FirstFull(cube.Z))
	require.Equal(t, 4, g.LastFull(cube.Z))
	require.True(t, g.Full(1, 2, 3))
	require.False(t, g.Full(1, 2, 2))
	require.False(t, g.Full(-1, 0, 0))
	require.False(t, g.Full(4, 0, 0))
	require.Equal(t, 2, g.Count())
}

func TestEmptyGrid(t *testing.T) {
	g := NewBuilder(2, 2, 2).Build()
	require.True(t, g.Empty())
	require.Equal(t, 2, g.FirstFull(cube.Y))
	require.Equal(t, 0, g.LastFull(cube.Y))
	require.Empty(t, boxes(g, true))

	require.True(t, NewBuilder(0, 0, 0).Build().Empty())
}

func TestBuilderRejectsUseAfterBuild(t *testing.T) {
	b := NewBuilder(1, 1, 1)
	b.Build()
	require.PanicsWithError(t, "grid builder used after Build", func() {
		b.Fill(0, 0, 0)
	})

	defer func() {
		_, ok := recover().(*oerror.OomphError)
		require.True(t, ok)
	}()
	NewBuilder(1, 1, 1).Fill(1, 0, 0)
}

func TestFullCell(t *testing.T) {
	var g Grid = FullCell{}
	require.True(t, g.Full(0, 0, 0))
	require.False(t, g.Full(0, 1, 0))
	require.Equal(t, []box{{0, 0, 0, 1, 1, 1}}, boxes(g, true))
}

func TestForAllBoxesRuns(t *testing.T) {
	// Two full columns along z with a hole in the middle of the first one.
	g := NewBuilder(2, 1, 3).Fill(0, 0, 0).Fill(0, 0, 2).FillBox(1, 0, 0, 2, 1, 3).Build()
	require.Equal(t, []box{
		{0, 0, 0, 1, 1, 1},
		{0, 0, 2, 1, 1, 3},
		{1, 0, 0, 2, 1, 3},
	}, boxes(g, false))
}

func TestForAllBoxesCoalesces(t *testing.T) {
	g := FilledBox(4, 4, 4, 0, 0, 0, 4, 4, 4)
	require.Equal(t, []box{{0, 0, 0, 4, 4, 4}}, boxes(g, true))

	// A slab on the bottom plus one column standing on it.
	g = NewBuilder(2, 2, 2).FillBox(0, 0, 0, 2, 1, 2).FillBox(0, 1, 0, 1, 2, 1).Build()
	require.Equal(t, []box{
		{0, 0, 0, 2, 1, 2},
		{0, 1, 0, 1, 2, 1},
	}, boxes(g, true))

	// Coalescing does not touch the source grid.
	require.Equal(t, 5, g.Count())
}

func TestForAllBoxesCoversEveryCellOnce(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for range 50 {
		sx, sy, sz := 1+r.Intn(5), 1+r.Intn(5), 1+r.Intn(5)
		b := NewBuilder(sx, sy, sz)
		for x := 0; x < sx; x++ {
			for y := 0; y < sy; y++ {
				for z := 0; z < sz; z++ {
					if r.Intn(3) > 0 {
						b.Fill(x, y, z)
					}
				}
			}
		}
		g := b.Build()

		for _, combine := range []bool{false, true} {
			covered := make(map[[3]int]int)
			for _, bx := range boxes(g, combine) {
				for x := bx.x0; x < bx.x1; x++ {
					for y := bx.y0; y < bx.y1; y++ {
						for z := bx.z0; z < bx.z1; z++ {
							require.True(t, g.Full(x, y, z))
							covered[[3]int{x, y, z}]++
						}
					}
				}
			}
			require.Len(t, covered, g.Count())
			for _, n := range covered {
				require.Equal(t, 1, n)
			}
		}
	}
}

func TestSliceHasExactBounds(t *testing.T) {
	// Full cells at x=0 and x=2 only: the parent's x bounds span the middle slice although it is empty.
	parent := NewBuilder(3, 1, 1).Fill(0, 0, 0).Fill(2, 0, 0).Build()

	s := Slice(parent, cube.X, 1)
	require.Equal(t, 1, s.Size(cube.X))
	require.True(t, s.Empty())

	s = Slice(parent, cube.X, 2)
	require.False(t, s.Empty())
	require.True(t, s.Full(0, 0, 0))
	require.False(t, s.Full(1, 0, 0))
	require.Equal(t, 0, s.FirstFull(cube.X))
	require.Equal(t, 1, s.LastFull(cube.X))
}

func TestCopy(t *testing.T) {
	src := NewBuilder(2, 2, 2).Fill(1, 1, 1).Build()
	c := Copy(src)
	require.True(t, c.Full(1, 1, 1))
	require.Equal(t, src.min, c.min)
	require.NotSame(t, src.bits, c.bits)

	sub := Copy(Slice(src, cube.Y, 1))
	require.Equal(t, 2, sub.Size(cube.X))
	require.Equal(t, 1, sub.Size(cube.Y))
	require.True(t, sub.Full(1, 0, 1))
	require.Equal(t, 1, sub.Count())
}

func TestJoin(t *testing.T) {
	// Lower x half at resolution 2 against the lower y half at resolution 4.
	a := FilledBox(2, 1, 1, 0, 0, 0, 1, 1, 1)
	b := FilledBox(1, 4, 1, 0, 0, 0, 1, 2, 1)
	mx := coords.NewMerger(1, coords.Cube{Parts: 2}, coords.Cube{Parts: 1}, true, true)
	my := coords.NewMerger(mx.Size()-1, coords.Cube{Parts: 1}, coords.Cube{Parts: 4}, true, true)
	mz := coords.NewMerger((mx.Size()-1)*(my.Size()-1), coords.Cube{Parts: 1}, coords.Cube{Parts: 1}, true, true)

	and := Join(a, b, mx, my, mz, func(a, b bool) bool { return a && b })
	require.Equal(t, 2, and.Size(cube.X))
	require.Equal(t, 4, and.Size(cube.Y))
	require.Equal(t, 2, and.Count())
	require.True(t, and.Full(0, 0, 0))
	require.True(t, and.Full(0, 1, 0))
	require.Equal(t, 2, and.LastFull(cube.Y))
	require.Equal(t, 1, and.LastFull(cube.X))

	or := Join(a, b, mx, my, mz, func(a, b bool) bool { return a || b })
	require.Equal(t, 4+2, or.Count())

	require.True(t, JoinIsNotEmpty(a, b, mx, my, mz, func(a, b bool) bool { return a && !b }))

	same := func(l coords.List) coords.Merger { return coords.NewMerger(1, l, l, true, true) }
	xor := func(a, b bool) bool { return a != b }
	require.False(t, JoinIsNotEmpty(a, a, same(coords.Cube{Parts: 2}), same(coords.Cube{Parts: 1}), same(coords.Cube{Parts: 1}), xor))
}
