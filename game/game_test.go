package game

import (
	"testing"

	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/oshape/shape"
	"github.com/stretchr/testify/require"
)

func TestBoxConversion(t *testing.T) {
	bb := df_cube.Box(0.25, 0, -1, 0.75, 1.5, 2)
	require.Equal(t, bb, CubeBoxToDFBox(DFBoxToCubeBox(bb)))
	require.Equal(t, cube.Box(-0.3, 0, -0.3, 0.3, 1.8, 0.3), AABBFromDimensions(0.6, 1.8))
}

func TestBoxes32(t *testing.T) {
	slab := shape.Box(0, 0, 0, 1, 0.5, 1)
	boxes := Boxes32(slab, df_cube.Pos{1, 2, 3})
	require.Equal(t, []cube.BBox{cube.Box(1, 2, 3, 2, 2.5, 4)}, boxes)
	require.Empty(t, Boxes32(shape.Empty(), df_cube.Pos{}))

	require.Equal(t, float32(0), Distance32(slab, df_cube.Pos{}, mgl32.Vec3{0.5, 0.25, 0.5}))
	require.InDelta(t, 1.5, Distance32(slab, df_cube.Pos{}, mgl32.Vec3{0.5, 2, 0.5}), 1e-6)
}

func TestCollide32(t *testing.T) {
	entity := AABBFromDimensions(0.6, 1.8).Translate(mgl32.Vec3{0.5, 1, 0.5})
	require.Equal(t, float32(-0.5), Collide32(shape.Box(0, 0, 0, 1, 0.5, 1), df_cube.Y, entity, -2))
	require.Equal(t, float32(-2), Collide32(shape.Empty(), df_cube.Y, entity, -2))
}

func TestMath(t *testing.T) {
	require.Equal(t, 1.235, Round64(1.23456, 3))
	require.Equal(t, mgl64.Vec3{1, 2, 3}, Vec32To64(Vec64To32(mgl64.Vec3{1, 2, 3})))
	require.Equal(t, mgl64.Vec3{0.12, 1, -3.46}, RoundVec64(mgl64.Vec3{0.1234, 0.9999, -3.456}, 2))

	dir := DirectionVector(0, 90)
	require.InDelta(t, -1, dir.Y(), 1e-6)
}
