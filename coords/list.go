// Package coords holds the lists of cell boundaries shapes use along each axis, and the mergers that
// bring two such lists onto a common refinement so that shapes of different resolution can be
// compared cell by cell.
package coords

import "math"

// List is an ordered, non-decreasing list of cell boundaries along one axis. A list of n+1
// boundaries describes n cells. Lists are immutable.
type List interface {
	// Len returns the amount of boundaries in the list.
	Len() int
	// At returns the boundary at index i.
	At(i int) float64
}

// Array is a List backed by an explicit slice of boundaries.
type Array []float64

func (a Array) Len() int         { return len(a) }
func (a Array) At(i int) float64 { return a[i] }

// Cube is the uniform subdivision of [0, 1] into Parts cells. It never allocates.
type Cube struct {
	Parts int
}

func (c Cube) Len() int         { return c.Parts + 1 }
func (c Cube) At(i int) float64 { return float64(i) / float64(c.Parts) }

// Offset is a List translated by Delta.
type Offset struct {
	List  List
	Delta float64
}

func (o Offset) Len() int         { return o.List.Len() }
func (o Offset) At(i int) float64 { return o.List.At(i) + o.Delta }

type unbounded struct{}

func (unbounded) Len() int { return 2 }
func (unbounded) At(i int) float64 {
	if i == 0 {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

// Unbounded is the single cell spanning the whole axis. Mergers recognise this exact value and skip
// the general merge when it is combined with another list.
var Unbounded List = unbounded{}

// Move returns the list translated by delta.
func Move(l List, delta float64) List {
	switch l := l.(type) {
	case unbounded:
		return l
	case Offset:
		return Offset{List: l.List, Delta: l.Delta + delta}
	}
	return Offset{List: l, Delta: delta}
}

// First returns the lowest boundary of the list.
func First(l List) float64 {
	return l.At(0)
}

// Last returns the highest boundary of the list.
func Last(l List) float64 {
	return l.At(l.Len() - 1)
}

// Equal reports whether two lists hold exactly the same boundaries.
func Equal(a, b List) bool {
	if ca, ok := a.(Cube); ok {
		if cb, ok := b.(Cube); ok {
			return ca.Parts == cb.Parts
		}
	}
	n := a.Len()
	if n != b.Len() {
		return false
	}
	for i := 0; i < n; i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}

// Values copies the boundaries of the list into a new slice.
func Values(l List) []float64 {
	v := make([]float64, l.Len())
	for i := range v {
		v[i] = l.At(i)
	}
	return v
}
