package omath

import (
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func TestIntegerMath(t *testing.T) {
	require.Equal(t, 4, GCD(8, 12))
	require.Equal(t, int64(24), LCM(8, 6))
	require.Equal(t, int64(8), LCM(8, 1))
	require.Equal(t, 3, ClampInt(7, 0, 3))
	require.Equal(t, 0, ClampInt(-1, 0, 3))
}

func TestFirstTrue(t *testing.T) {
	values := []float64{0, 0.25, 0.5, 1}
	find := func(v float64) int {
		return FirstTrue(0, len(values), func(i int) bool { return v < values[i] })
	}
	require.Equal(t, 0, find(-1))
	require.Equal(t, 2, find(0.25))
	require.Equal(t, 4, find(1))
}

func TestAxes(t *testing.T) {
	for _, a := range Axes {
		b, c := OtherAxes(a)
		require.NotEqual(t, a, b)
		require.NotEqual(t, a, c)
		require.NotEqual(t, b, c)
	}
	require.Equal(t, 2.0, Component(mgl64.Vec3{1, 2, 3}, cube.Y))
}

func TestFaces(t *testing.T) {
	for _, f := range cube.Faces() {
		require.Equal(t, f, NearestFace(FaceNormal(f).Mul(3)))
		require.NotEqual(t, FacePositive(f), FacePositive(f.Opposite()))
	}
	require.Equal(t, cube.FaceDown, NearestFace(mgl64.Vec3{0.1, -2, 0.3}))
	require.True(t, FuzzyEquals(1, 1+Epsilon/2, Epsilon))
	require.Equal(t, 1.0, ClampFloat(3, 0, 1))
}
