package omath

import (
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

// Axes holds the three axes in X, Y, Z order, the order every [3] array in this module is indexed by.
var Axes = [3]cube.Axis{cube.X, cube.Y, cube.Z}

// AxisIndex returns the index of the axis in X, Y, Z order.
func AxisIndex(a cube.Axis) int {
	switch a {
	case cube.X:
		return 0
	case cube.Y:
		return 1
	default:
		return 2
	}
}

// OtherAxes returns the two axes perpendicular to a, in cyclic order after a.
func OtherAxes(a cube.Axis) (cube.Axis, cube.Axis) {
	switch a {
	case cube.X:
		return cube.Y, cube.Z
	case cube.Y:
		return cube.Z, cube.X
	default:
		return cube.X, cube.Y
	}
}

// Component returns the component of vec along the axis passed.
func Component(vec mgl64.Vec3, a cube.Axis) float64 {
	return vec[AxisIndex(a)]
}

// FacePositive reports whether the face points towards the positive end of its axis.
func FacePositive(f cube.Face) bool {
	switch f {
	case cube.FaceUp, cube.FaceSouth, cube.FaceEast:
		return true
	}
	return false
}

// FaceNormal returns the unit vector pointing out of the face passed.
func FaceNormal(f cube.Face) mgl64.Vec3 {
	var n mgl64.Vec3
	if FacePositive(f) {
		n[AxisIndex(f.Axis())] = 1
	} else {
		n[AxisIndex(f.Axis())] = -1
	}
	return n
}

// NearestFace returns the face whose normal is closest to the direction of vec.
func NearestFace(vec mgl64.Vec3) cube.Face {
	best, bestDot := cube.FaceNorth, math.Inf(-1)
	for _, f := range cube.Faces() {
		if dot := FaceNormal(f).Dot(vec); dot > bestDot {
			best, bestDot = f, dot
		}
	}
	return best
}

func ClampFloat(num, min, max float64) float64 {
	if num < min {
		return min
	}
	return math.Min(num, max)
}
