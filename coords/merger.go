package coords

import "github.com/oomph-ac/oshape/omath"

// maxCubeMergeCost bounds the amount of merged cells, multiplied by the cost of visiting each of
// them, for which two uniform lists are merged by index arithmetic.
const maxCubeMergeCost = 256

// Merger is the result of merging two lists A and B. It holds the merged list and maps every merged
// cell back onto the cell of A and of B that covers it. A cell index of -1, or an index past the
// last cell of a list, means that list does not cover the merged cell.
type Merger interface {
	// List returns the merged list of boundaries.
	List() List
	// Size returns the amount of boundaries in the merged list.
	Size() int
	// ForMergedIndexes calls fn for every merged cell in increasing coordinate order with the index of
	// the cell in A, in B and in the merged list. Iteration stops as soon as fn returns false, in
	// which case ForMergedIndexes returns false too.
	ForMergedIndexes(fn func(a, b, m int) bool) bool
}

// NewMerger picks the cheapest merger able to merge a and b. cost is the amount of times every merged
// cell will be visited. onlyA and onlyB specify whether cells covered only by a or only by b matter to
// the caller: boundaries that can only produce such cells are dropped when they do not.
func NewMerger(cost int, a, b List, onlyA, onlyB bool) Merger {
	na, nb := a.Len()-1, b.Len()-1
	if ca, ok := a.(Cube); ok {
		if cb, ok := b.(Cube); ok && int64(cost)*omath.LCM(ca.Parts, cb.Parts) <= maxCubeMergeCost {
			return newCubeMerger(ca.Parts, cb.Parts)
		}
	}
	if a.At(na) < b.At(0)-omath.Epsilon {
		return nonOverlappingMerger{lower: a, upper: b}
	} else if b.At(nb) < a.At(0)-omath.Epsilon {
		return nonOverlappingMerger{lower: b, upper: a, swap: true}
	}
	if na == nb && Equal(a, b) {
		return identicalMerger{list: a}
	}
	return newIndirectMerger(a, b, onlyA, onlyB)
}

// identicalMerger merges a list with itself.
type identicalMerger struct {
	list List
}

func (m identicalMerger) List() List { return m.list }
func (m identicalMerger) Size() int  { return m.list.Len() }

func (m identicalMerger) ForMergedIndexes(fn func(a, b, m int) bool) bool {
	n := m.list.Len() - 1
	for i := 0; i < n; i++ {
		if !fn(i, i, i) {
			return false
		}
	}
	return true
}

// cubeMerger merges two uniform lists onto the uniform list of their least common multiple. A cell
// of a list spans stride merged cells.
type cubeMerger struct {
	result           Cube
	aStride, bStride int
}

func newCubeMerger(a, b int) cubeMerger {
	g := omath.GCD(a, b)
	return cubeMerger{result: Cube{Parts: int(omath.LCM(a, b))}, aStride: b / g, bStride: a / g}
}

func (m cubeMerger) List() List { return m.result }
func (m cubeMerger) Size() int  { return m.result.Len() }

func (m cubeMerger) ForMergedIndexes(fn func(a, b, m int) bool) bool {
	for i := 0; i < m.result.Parts; i++ {
		if !fn(i/m.aStride, i/m.bStride, i) {
			return false
		}
	}
	return true
}

// nonOverlappingMerger concatenates two lists of which one lies entirely below the other. The cell
// between the two lists is covered by neither and is never visited.
type nonOverlappingMerger struct {
	lower, upper List
	swap         bool
}

func (m nonOverlappingMerger) List() List { return concat{lower: m.lower, upper: m.upper} }
func (m nonOverlappingMerger) Size() int  { return m.lower.Len() + m.upper.Len() }

func (m nonOverlappingMerger) ForMergedIndexes(fn func(a, b, m int) bool) bool {
	if m.swap {
		return m.forNonSwapped(func(a, b, i int) bool {
			return fn(b, a, i)
		})
	}
	return m.forNonSwapped(fn)
}

func (m nonOverlappingMerger) forNonSwapped(fn func(a, b, m int) bool) bool {
	nl := m.lower.Len()
	for i := 0; i < nl-1; i++ {
		if !fn(i, -1, i) {
			return false
		}
	}
	nu := m.upper.Len() - 1
	for i := 0; i < nu; i++ {
		if !fn(nl-1, i, nl+i) {
			return false
		}
	}
	return true
}

type concat struct {
	lower, upper List
}

func (c concat) Len() int { return c.lower.Len() + c.upper.Len() }

func (c concat) At(i int) float64 {
	if n := c.lower.Len(); i >= n {
		return c.upper.At(i - n)
	}
	return c.lower.At(i)
}
