// Package registry loads per block state collision shapes from collision data and keeps them for
// lookup by block name. Identical shapes are shared between all block states that use them.
package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/oshape/shape"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
	"github.com/zeebo/xxh3"
	"golang.org/x/sync/errgroup"
)

// Options control how collision data is loaded.
type Options struct {
	// Workers is the maximum amount of shapes built at once. Zero or less means no limit.
	Workers int
	// Strict makes Load fail on block states referring to shapes that are not defined, instead of
	// falling back to a full block.
	Strict bool
}

// Stats describes the contents of a Registry.
type Stats struct {
	// Blocks is the amount of block names registered.
	Blocks int
	// States is the amount of block states registered over all blocks.
	States int
	// Definitions is the amount of shapes defined by the collision data.
	Definitions int
	// Unique is the amount of distinct shapes left after interning.
	Unique int
}

// Registry holds the collision shape of every registered block state.
type Registry struct {
	deadlock.RWMutex

	log    *logrus.Logger
	blocks *orderedmap.OrderedMap[string, []*shape.Shape]
	// interned maps the hash of a shape to all distinct shapes with that hash.
	interned map[uint64][]*shape.Shape
	stats    Stats
}

// encodedBox is a box encoded as [originX, originY, originZ, sizeX, sizeY, sizeZ], where the origin is
// the centre of the box.
type encodedBox [6]float64

type collisionData struct {
	Blocks json.RawMessage      `json:"blocks"`
	Shapes map[int][]encodedBox `json:"shapes"`
}

// Load reads collision data from r and builds the shape of every block state it describes.
func Load(r io.Reader, log *logrus.Logger, opts Options) (*Registry, error) {
	var data collisionData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode collision data: %w", err)
	}
	blocks, err := decodeBlocks(data.Blocks)
	if err != nil {
		return nil, fmt.Errorf("decode blocks: %w", err)
	}

	reg := &Registry{
		log:      log,
		blocks:   orderedmap.NewOrderedMap[string, []*shape.Shape](),
		interned: make(map[uint64][]*shape.Shape),
	}
	shapes, err := reg.bake(data.Shapes, opts.Workers)
	if err != nil {
		return nil, err
	}

	for el := blocks.Front(); el != nil; el = el.Next() {
		name := el.Key
		if !strings.Contains(name, ":") {
			name = "minecraft:" + name
		}
		states := make([]*shape.Shape, len(el.Value))
		for i, id := range el.Value {
			s, ok := shapes[id]
			if !ok {
				if opts.Strict {
					return nil, fmt.Errorf("block %s state %d: unknown shape %d", name, i, id)
				}
				log.Warnf("block %s state %d refers to unknown shape %d, using a full block", name, i, id)
				s = shape.Block()
			}
			states[i] = s
		}
		reg.blocks.Set(name, states)
		reg.stats.States += len(states)
	}
	reg.stats.Blocks = reg.blocks.Len()
	reg.stats.Definitions = len(data.Shapes)

	log.Infof("loaded collision shapes for %d blocks (%d states, %d/%d unique shapes)",
		reg.stats.Blocks, reg.stats.States, reg.stats.Unique, reg.stats.Definitions)
	return reg, nil
}

// decodeBlocks decodes the block object of the collision data, keeping the order in which blocks are
// listed.
func decodeBlocks(raw json.RawMessage) (*orderedmap.OrderedMap[string, []int], error) {
	blocks := orderedmap.NewOrderedMap[string, []int]()
	if len(raw) == 0 {
		return blocks, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	if tok, err := dec.Token(); err != nil {
		return nil, err
	} else if tok != json.Delim('{') {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name := tok.(string)
		var ids []int
		if err := dec.Decode(&ids); err != nil {
			return nil, fmt.Errorf("block %s: %w", name, err)
		}
		blocks.Set(name, ids)
	}
	return blocks, nil
}

// bake builds the shapes of all definitions concurrently, interning each one as it is built.
func (reg *Registry) bake(defs map[int][]encodedBox, workers int) (map[int]*shape.Shape, error) {
	ids := make([]int, 0, len(defs))
	for id := range defs {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	built := make([]*shape.Shape, len(ids))
	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, id := range ids {
		g.Go(func() error {
			s, err := buildShape(defs[id])
			if err != nil {
				return fmt.Errorf("shape %d: %w", id, err)
			}
			built[i] = reg.intern(s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	shapes := make(map[int]*shape.Shape, len(ids))
	for i, id := range ids {
		shapes[id] = built[i]
	}
	return shapes, nil
}

func buildShape(boxes []encodedBox) (*shape.Shape, error) {
	if len(boxes) == 0 {
		return shape.Empty(), nil
	}
	parts := make([]*shape.Shape, len(boxes))
	for i, b := range boxes {
		for axis := 3; axis < 6; axis++ {
			if b[axis] < 0 || math.IsNaN(b[axis]) {
				return nil, fmt.Errorf("box %d has invalid size %v", i, b[3:])
			}
		}
		hx, hy, hz := b[3]*0.5, b[4]*0.5, b[5]*0.5
		parts[i] = shape.Box(b[0]-hx, b[1]-hy, b[2]-hz, b[0]+hx, b[1]+hy, b[2]+hz)
	}
	return shape.OrAll(parts[0], parts[1:]...), nil
}

// intern returns a shape equal to s that was interned before, or interns s itself.
func (reg *Registry) intern(s *shape.Shape) *shape.Shape {
	h := hashShape(s)

	reg.Lock()
	defer reg.Unlock()
	for _, c := range reg.interned[h] {
		if shape.Equal(c, s) {
			return c
		}
	}
	reg.interned[h] = append(reg.interned[h], s)
	reg.stats.Unique++
	return s
}

// hashShape hashes the box decomposition of s. Equal shapes usually, but not always, decompose into
// the same boxes, so equal hashes must still be confirmed with shape.Equal.
func hashShape(s *shape.Shape) uint64 {
	h := xxh3.New()
	var buf [8]byte
	for _, bb := range s.ToAABBs() {
		for _, v := range [...]float64{bb.Min().X(), bb.Min().Y(), bb.Min().Z(), bb.Max().X(), bb.Max().Y(), bb.Max().Z()} {
			bits := math.Float64bits(v)
			for i := range buf {
				buf[i] = byte(bits >> (8 * i))
			}
			_, _ = h.Write(buf[:])
		}
	}
	return h.Sum64()
}

// Shape returns the collision shape of a state of the block passed. Unknown blocks and states are
// treated as full blocks.
func (reg *Registry) Shape(name string, state int) *shape.Shape {
	reg.RLock()
	defer reg.RUnlock()

	states, ok := reg.blocks.Get(name)
	if !ok || state < 0 || state >= len(states) {
		return shape.Block()
	}
	return states[state]
}

// Static returns the shape shared by all states of the block passed. It returns false if the block is
// unknown or its states have different shapes.
func (reg *Registry) Static(name string) (*shape.Shape, bool) {
	reg.RLock()
	defer reg.RUnlock()

	states, ok := reg.blocks.Get(name)
	if !ok || len(states) == 0 {
		return nil, false
	}
	for _, s := range states[1:] {
		if s != states[0] {
			return nil, false
		}
	}
	return states[0], true
}

// Names returns the names of all registered blocks in the order they were listed in.
func (reg *Registry) Names() []string {
	reg.RLock()
	defer reg.RUnlock()

	names := make([]string, 0, reg.blocks.Len())
	for el := reg.blocks.Front(); el != nil; el = el.Next() {
		names = append(names, el.Key)
	}
	return names
}

// Stats returns statistics on the contents of the registry.
func (reg *Registry) Stats() Stats {
	reg.RLock()
	defer reg.RUnlock()
	return reg.stats
}
