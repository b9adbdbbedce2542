// Package model builds the collision shapes of blocks whose shape depends on how they connect to their
// neighbours or on other block state. Which neighbours a block connects to is decided by the caller.
package model

import (
	"sync"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/oshape/assert"
	"github.com/oomph-ac/oshape/shape"
)

// Sides holds whether a block connects to each of its horizontal neighbours.
type Sides struct {
	North, East, South, West bool
}

func (s Sides) index() int {
	i := 0
	for bit, ok := range [...]bool{s.North, s.East, s.South, s.West} {
		if ok {
			i |= 1 << bit
		}
	}
	return i
}

func sidesFromIndex(i int) Sides {
	return Sides{North: i&1 != 0, East: i&2 != 0, South: i&4 != 0, West: i&8 != 0}
}

var full = cube.Box(0, 0, 0, 1, 1, 1)

// NoCollision returns the shape of blocks without collision, such as pressure plates.
func NoCollision() *shape.Shape {
	return shape.Empty()
}

var candles = sync.OnceValue(func() [4]*shape.Shape {
	const (
		inset1       = 7.0 / 16.0
		inset2       = 6.0 / 16.0
		inset3       = 5.0 / 16.0
		downardInset = 10.0 / 16.0
	)
	boxes := [4]cube.BBox{
		full.Stretch(cube.X, -inset1).Stretch(cube.Z, -inset1),
		full.Stretch(cube.X, -inset3).
			ExtendTowards(cube.FaceUp, -inset1).
			ExtendTowards(cube.FaceDown, -inset2),
		full.ExtendTowards(cube.FaceWest, -inset3).
			ExtendTowards(cube.FaceEast, -inset2).
			ExtendTowards(cube.FaceNorth, -inset2).
			ExtendTowards(cube.FaceSouth, -inset3),
		full.Stretch(cube.X, -inset3).
			ExtendTowards(cube.FaceNorth, -inset3).
			ExtendTowards(cube.FaceSouth, -inset2),
	}
	var shapes [4]*shape.Shape
	for i, bb := range boxes {
		shapes[i] = shape.BoxFromBBox(bb.ExtendTowards(cube.FaceUp, -downardInset))
	}
	return shapes
})

// Candle returns the shape of count candles placed in the same block. It panics if count is not
// between 1 and 4.
func Candle(count int) *shape.Shape {
	assert.IsTrue(count >= 1 && count <= 4, "invalid count for candles (%d)", count)
	return candles()[count-1]
}

var bars = sync.OnceValue(func() [16]*shape.Shape {
	var shapes [16]*shape.Shape
	for i := range shapes {
		shapes[i] = barsShape(sidesFromIndex(i))
	}
	return shapes
})

// Bars returns the shape of iron bars and glass panes connecting to the sides passed.
func Bars(s Sides) *shape.Shape {
	return bars()[s.index()]
}

func barsShape(s Sides) *shape.Shape {
	const (
		insetDefault    = 7.0 / 16.0
		insetConnecting = 8.0 / 16.0
	)
	var parts []*shape.Shape
	if s.West || s.East {
		bb := full.Stretch(cube.Z, -insetDefault)
		if !s.West {
			bb = bb.ExtendTowards(cube.FaceWest, -insetConnecting)
		} else if !s.East {
			bb = bb.ExtendTowards(cube.FaceEast, -insetConnecting)
		}
		parts = append(parts, shape.BoxFromBBox(bb))
	}
	if s.North || s.South {
		bb := full.Stretch(cube.X, -insetDefault)
		if !s.North {
			bb = bb.ExtendTowards(cube.FaceNorth, -insetConnecting)
		} else if !s.South {
			bb = bb.ExtendTowards(cube.FaceSouth, -insetConnecting)
		}
		parts = append(parts, shape.BoxFromBBox(bb))
	}
	if len(parts) == 0 {
		return shape.BoxFromBBox(full.Stretch(cube.X, -insetDefault).Stretch(cube.Z, -insetDefault))
	}
	return shape.OrAll(parts[0], parts[1:]...)
}

var walls = sync.OnceValue(func() [32]*shape.Shape {
	var shapes [32]*shape.Shape
	for i := range shapes {
		shapes[i] = wallShape(sidesFromIndex(i&15), i&16 != 0)
	}
	return shapes
})

// Wall returns the shape of a wall connecting to the sides passed. post is true if the wall has a
// full height post in its centre.
func Wall(s Sides, post bool) *shape.Shape {
	i := s.index()
	if post {
		i |= 16
	}
	return walls()[i]
}

func wallShape(s Sides, post bool) *shape.Shape {
	inset := 0.25
	if !post && ((s.North && s.South && !s.West && !s.East) || (!s.North && !s.South && s.West && s.East)) {
		inset = 0.3125
	}

	box := cube.Box(0, 0, 0, 1, 1.5, 1)
	if !s.North {
		box = box.ExtendTowards(cube.FaceNorth, -inset)
	}
	if !s.South {
		box = box.ExtendTowards(cube.FaceSouth, -inset)
	}
	if !s.West {
		box = box.ExtendTowards(cube.FaceWest, -inset)
	}
	if !s.East {
		box = box.ExtendTowards(cube.FaceEast, -inset)
	}
	return shape.BoxFromBBox(box)
}
