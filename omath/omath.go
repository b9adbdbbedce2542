package omath

import (
	"math"
	"sort"
)

// Epsilon is the tolerance under which two coordinates are treated as the same boundary. It is used
// both for boundary merging and for full-block containment checks.
const Epsilon = 1.0e-7

// FuzzyEquals reports whether a and b differ by at most tolerance. Equal infinities are equal.
func FuzzyEquals(a, b, tolerance float64) bool {
	return a == b || math.Abs(a-b) <= tolerance
}

// GCD returns the greatest common divisor of two non-negative integers.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of two positive integers.
func LCM(a, b int) int64 {
	return int64(a) / int64(GCD(a, b)) * int64(b)
}

// ClampInt clamps num between min and max.
func ClampInt(num, min, max int) int {
	if num < min {
		return min
	}
	if num > max {
		return max
	}
	return num
}

// FirstTrue returns the first index in [lo, hi) for which pred holds, or hi if there is none. pred
// must be monotonic over the range.
func FirstTrue(lo, hi int, pred func(int) bool) int {
	return lo + sort.Search(hi-lo, func(i int) bool {
		return pred(lo + i)
	})
}
