package coords

import (
	"math"

	"github.com/oomph-ac/oshape/omath"
)

var emptyList = Array{0}

// indirectMerger is the general two-pointer merge of two sorted lists. Boundaries closer than
// omath.Epsilon collapse into one merged boundary.
type indirectMerger struct {
	result        []float64
	first, second []int
	length        int
}

func newIndirectMerger(a, b List, onlyA, onlyB bool) *indirectMerger {
	if onlyA && onlyB {
		if a == Unbounded {
			return bracketed(b, false)
		} else if b == Unbounded {
			return bracketed(a, true)
		}
	}
	return mergeSorted(a, b, onlyA, onlyB)
}

func mergeSorted(a, b List, onlyA, onlyB bool) *indirectMerger {
	na, nb := a.Len(), b.Len()
	m := &indirectMerger{
		result: make([]float64, na+nb),
		first:  make([]int, na+nb),
		second: make([]int, na+nb),
	}
	var (
		skipA, skipB = !onlyA, !onlyB
		last         = math.NaN()
		i, j, n      int
	)
	for {
		doneA, doneB := i >= na, j >= nb
		if doneA && doneB {
			break
		}
		takeA := !doneA && (doneB || a.At(i) < b.At(j)+omath.Epsilon)
		if takeA {
			i++
			if skipA && (j == 0 || doneB) {
				continue
			}
		} else {
			j++
			if skipB && (i == 0 || doneA) {
				continue
			}
		}
		ia, ib := i-1, j-1
		var v float64
		if takeA {
			v = a.At(ia)
		} else {
			v = b.At(ib)
		}
		// NaN on the first boundary always appends.
		if !(last >= v-omath.Epsilon) {
			m.result[n], m.first[n], m.second[n] = v, ia, ib
			n++
			last = v
		} else {
			m.first[n-1], m.second[n-1] = ia, ib
		}
	}
	m.length = max(1, n)
	return m
}

// bracketed merges list with Unbounded: the result is list with -inf and +inf added on either end.
// listIsA specifies whether list was the first operand of the merge.
func bracketed(list List, listIsA bool) *indirectMerger {
	n := list.Len()
	m := &indirectMerger{
		result: make([]float64, n+2),
		first:  make([]int, n+2),
		second: make([]int, n+2),
		length: n + 2,
	}
	inner, outer := m.second, m.first
	if listIsA {
		inner, outer = m.first, m.second
	}
	m.result[0], inner[0] = math.Inf(-1), -1
	for i := 0; i < n; i++ {
		m.result[i+1], inner[i+1] = list.At(i), i
	}
	m.result[n+1], inner[n+1], outer[n+1] = math.Inf(1), n-1, 1
	return m
}

func (m *indirectMerger) List() List {
	if m.length <= 1 {
		return emptyList
	}
	return Array(m.result[:m.length])
}

func (m *indirectMerger) Size() int { return m.length }

func (m *indirectMerger) ForMergedIndexes(fn func(a, b, m int) bool) bool {
	for i := 0; i < m.length-1; i++ {
		if !fn(m.first[i], m.second[i], i) {
			return false
		}
	}
	return true
}
