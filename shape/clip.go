package shape

import (
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/block/cube/trace"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/oshape/omath"
)

// insideProbe is the fraction of the segment stepped along before checking whether it starts inside
// the shape.
const insideProbe = 0.001

// ClipResult is the point at which a segment enters a shape placed at a block position.
type ClipResult struct {
	// Position is the world position of the hit.
	Position mgl64.Vec3
	// Face is the face of the shape that was hit.
	Face cube.Face
	// Pos is the block position the shape was placed at.
	Pos cube.Pos
	// Inside is true if the segment started inside the shape.
	Inside bool
}

// Clip intersects the segment from -> to, in world space, with the shape placed at pos. It returns
// false if the segment never enters the shape.
func (s *Shape) Clip(from, to mgl64.Vec3, pos cube.Pos) (ClipResult, bool) {
	if s.IsEmpty() {
		return ClipResult{}, false
	}
	d := to.Sub(from)
	if d.LenSqr() < omath.Epsilon {
		return ClipResult{}, false
	}
	origin := pos.Vec3()

	probe := from.Add(d.Mul(insideProbe))
	local := probe.Sub(origin)
	if s.grid.Full(s.findIndex(cube.X, local.X()), s.findIndex(cube.Y, local.Y()), s.findIndex(cube.Z, local.Z())) {
		return ClipResult{Position: probe, Face: omath.NearestFace(d).Opposite(), Pos: pos, Inside: true}, true
	}

	boxes := s.ToAABBs()
	if len(boxes) == 1 {
		res, _, ok := clipBox(boxes[0].Translate(origin), from, to, d)
		res.Pos = pos
		return res, ok
	}
	var (
		best  ClipResult
		found bool
		dist  = math.Inf(1)
	)
	for _, bb := range boxes {
		res, d2, ok := clipBox(bb.Translate(origin), from, to, d)
		if ok && d2 < dist {
			best, dist, found = res, d2, true
		}
	}
	best.Pos = pos
	return best, found
}

// clipBox intersects the segment with a single box, only accepting faces the segment enters through.
// It also returns the squared distance from the start of the segment to the hit.
func clipBox(bb cube.BBox, from, to, d mgl64.Vec3) (ClipResult, float64, bool) {
	res, ok := trace.BBoxIntercept(bb, from, to)
	if !ok || omath.FaceNormal(res.Face()).Dot(d) >= 0 {
		return ClipResult{}, 0, false
	}
	return ClipResult{Position: res.Position(), Face: res.Face()}, res.Position().Sub(from).LenSqr(), true
}
