package game

import (
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/oshape/shape"
)

// Boxes32 returns the box decomposition of s placed at pos as float32 boxes.
func Boxes32(s *shape.Shape, pos df_cube.Pos) []cube.BBox {
	boxes := s.ToAABBs()
	out := make([]cube.BBox, len(boxes))
	offset := mgl32.Vec3{float32(pos.X()), float32(pos.Y()), float32(pos.Z())}
	for i, bb := range boxes {
		out[i] = DFBoxToCubeBox(bb).Translate(offset)
	}
	return out
}

// Collide32 is Shape.Collide for float32 boxes. The box must be in the local space of the shape.
func Collide32(s *shape.Shape, a df_cube.Axis, box cube.BBox, maxDist float32) float32 {
	return float32(s.Collide(a, CubeBoxToDFBox(box), float64(maxDist)))
}

// Distance32 returns the distance from point to the closest box of s placed at pos, or +Inf if s is
// empty.
func Distance32(s *shape.Shape, pos df_cube.Pos, point mgl32.Vec3) float32 {
	dist := float32(mgl32.InfPos)
	for _, bb := range Boxes32(s, pos) {
		dist = min(dist, AABBVectorDistance(bb, point))
	}
	return dist
}
