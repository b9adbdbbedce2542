package coords

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type triple struct{ a, b, m int }

func collect(m Merger) []triple {
	var out []triple
	m.ForMergedIndexes(func(a, b, i int) bool {
		out = append(out, triple{a, b, i})
		return true
	})
	return out
}

func TestNewMergerCube(t *testing.T) {
	m := NewMerger(1, Cube{Parts: 2}, Cube{Parts: 4}, true, true)
	require.IsType(t, cubeMerger{}, m)
	require.Equal(t, Cube{Parts: 4}, m.List())
	require.Equal(t, 5, m.Size())
	require.Equal(t, []triple{{0, 0, 0}, {0, 1, 1}, {1, 2, 2}, {1, 3, 3}}, collect(m))

	m = NewMerger(1, Cube{Parts: 2}, Cube{Parts: 3}, true, true)
	require.Equal(t, Cube{Parts: 6}, m.List())
	require.Equal(t, []triple{{0, 0, 0}, {0, 0, 1}, {0, 1, 2}, {1, 1, 3}, {1, 2, 4}, {1, 2, 5}}, collect(m))
}

func TestNewMergerCubeTooExpensive(t *testing.T) {
	m := NewMerger(20, Cube{Parts: 8}, Cube{Parts: 6}, true, true)
	require.IsType(t, &indirectMerger{}, m)

	l := m.List()
	// 0, 1/8, 1/6, 2/8, 2/6, 3/8, 4/8, ... merged without duplicates: 8 + 6 - gcd(8, 6) + 1 points.
	require.Equal(t, 8+6-2+1, l.Len())
	for i := 1; i < l.Len(); i++ {
		require.Less(t, l.At(i-1), l.At(i))
	}
}

func TestNewMergerNonOverlapping(t *testing.T) {
	m := NewMerger(1, Array{0, 1}, Array{2, 3}, true, true)
	require.IsType(t, nonOverlappingMerger{}, m)
	require.Equal(t, []float64{0, 1, 2, 3}, Values(m.List()))
	require.Equal(t, []triple{{0, -1, 0}, {1, 0, 2}}, collect(m))

	m = NewMerger(1, Array{2, 3}, Array{0, 1}, true, true)
	require.Equal(t, []float64{0, 1, 2, 3}, Values(m.List()))
	require.Equal(t, []triple{{-1, 0, 0}, {0, 1, 2}}, collect(m))
}

func TestNewMergerIdentical(t *testing.T) {
	m := NewMerger(1, Array{0, 0.25, 1}, Array{0, 0.25, 1}, false, false)
	require.IsType(t, identicalMerger{}, m)
	require.Equal(t, []triple{{0, 0, 0}, {1, 1, 1}}, collect(m))
}

func TestIndirectCoalescesCloseBoundaries(t *testing.T) {
	m := NewMerger(1, Array{0, 0.5, 1}, Array{0, 0.50000005, 1}, true, true)
	require.IsType(t, &indirectMerger{}, m)
	require.Equal(t, 3, m.Size())
	require.Equal(t, []triple{{0, 0, 0}, {1, 1, 1}}, collect(m))
}

func TestIndirectSkipsOneSidedBoundaries(t *testing.T) {
	a, b := Array{0, 0.25, 0.75, 1}, Array{0.5, 1}

	m := NewMerger(1, a, b, false, true)
	require.Equal(t, []float64{0.5, 0.75, 1}, Values(m.List()))
	require.Equal(t, []triple{{1, 0, 0}, {2, 0, 1}}, collect(m))

	m = NewMerger(1, a, b, true, true)
	require.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, Values(m.List()))
	require.Equal(t, []triple{{0, -1, 0}, {1, -1, 1}, {1, 0, 2}, {2, 0, 3}}, collect(m))
}

func TestIndirectStopsEarly(t *testing.T) {
	m := NewMerger(1, Array{0, 0.3, 0.6, 1}, Array{0, 0.5, 1}, true, true)
	visited := 0
	ok := m.ForMergedIndexes(func(a, b, i int) bool {
		visited++
		return i < 1
	})
	require.False(t, ok)
	require.Equal(t, 2, visited)
}

func TestUnboundedFastPathMatchesGeneralMerge(t *testing.T) {
	list := Array{0, 0.25, 0.5, 1}

	fast := newIndirectMerger(Unbounded, list, true, true)
	general := mergeSorted(Unbounded, list, true, true)
	require.Equal(t, Values(general.List()), Values(fast.List()))
	require.Equal(t, collect(general), collect(fast))

	fast = newIndirectMerger(list, Unbounded, true, true)
	general = mergeSorted(list, Unbounded, true, true)
	require.Equal(t, Values(general.List()), Values(fast.List()))
	require.Equal(t, collect(general), collect(fast))

	require.True(t, math.IsInf(First(fast.List()), -1))
	require.True(t, math.IsInf(Last(fast.List()), 1))
}

func TestMoveAndEqual(t *testing.T) {
	l := Move(Move(Cube{Parts: 2}, 1), 0.5)
	require.Equal(t, Offset{List: Cube{Parts: 2}, Delta: 1.5}, l)
	require.Equal(t, []float64{1.5, 2, 2.5}, Values(l))
	require.Equal(t, Unbounded, Move(Unbounded, 3))

	require.True(t, Equal(Cube{Parts: 2}, Array{0, 0.5, 1}))
	require.False(t, Equal(Cube{Parts: 2}, Cube{Parts: 4}))
	require.False(t, Equal(Array{0, 1}, Array{0, 0.5, 1}))
}
