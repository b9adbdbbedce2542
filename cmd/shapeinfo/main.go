// Command shapeinfo loads collision data and prints what the collision shape of a block state looks
// like, along with the results of a few queries against it.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/oshape/game"
	"github.com/oomph-ac/oshape/registry"
	"github.com/oomph-ac/oshape/settings"
	"github.com/oomph-ac/oshape/shape"
	"github.com/sirupsen/logrus"
)

func main() {
	settingsPath := flag.String("settings", "settings.toml", "path to the settings file")
	flag.Parse()

	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}

	conf, err := readSettings(log, *settingsPath)
	if err != nil {
		log.Fatalln(err)
	}
	lvl, err := conf.LogLevel()
	if err != nil {
		log.Fatalln(err)
	}
	log.SetLevel(lvl)

	reg, err := loadRegistry(log, conf)
	if err != nil {
		log.Fatalln(err)
	}

	if flag.NArg() == 0 {
		for _, name := range reg.Names() {
			fmt.Println(name)
		}
		return
	}
	state := 0
	if flag.NArg() > 1 {
		if state, err = strconv.Atoi(flag.Arg(1)); err != nil {
			log.Fatalf("invalid block state %q: %v", flag.Arg(1), err)
		}
	}
	describe(os.Stdout, flag.Arg(0), reg.Shape(flag.Arg(0), state))
}

// readSettings reads the settings file at path, creating it with the default settings if it does not
// yet exist.
func readSettings(log *logrus.Logger, path string) (settings.Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := settings.SaveDefault(path); err != nil {
			return settings.Settings{}, err
		}
		log.Infof("created default settings at %s", path)
	}
	return settings.Load(path)
}

func loadRegistry(log *logrus.Logger, conf settings.Settings) (*registry.Registry, error) {
	f, err := os.Open(conf.Registry.Path)
	if err != nil {
		return nil, fmt.Errorf("open collision data: %w", err)
	}
	defer f.Close()
	return registry.Load(f, log, conf.RegistryOptions())
}

// describe writes the boxes and query results of s to w.
func describe(w io.Writer, name string, s *shape.Shape) {
	fmt.Fprintf(w, "%s: %v\n", name, s)
	for _, bb := range s.ToAABBs() {
		fmt.Fprintf(w, "  box %v -> %v\n", game.RoundVec64(bb.Min(), 4), game.RoundVec64(bb.Max(), 4))
	}
	fmt.Fprintf(w, "  full block: %v, occludes full block: %v\n", s.IsFullBlock(), s.OccludesFullBlock())
	for _, f := range cube.Faces() {
		fmt.Fprintf(w, "  %v: hidden by full block %v, seals face %v\n", f,
			shape.FaceOccludedBy(s, shape.Block(), f), shape.MergedFaceOccludes(s, shape.Empty(), f))
	}

	// Drop a player sized box onto the shape from above.
	player := game.AABBFromDimensions(0.6, 1.8).Translate(mgl32.Vec3{0.5, 2, 0.5})
	fmt.Fprintf(w, "  fall from y=2: %v\n", game.Round64(float64(game.Collide32(s, cube.Y, player, -3)), 4))

	// Look straight down from the eyes of that player.
	eye := mgl64.Vec3{0.5, 3.62, 0.5}
	fmt.Fprintf(w, "  eye distance: %v\n", game.Round64(float64(game.Distance32(s, cube.Pos{}, game.Vec64To32(eye))), 4))
	dir := game.Vec32To64(game.DirectionVector(0, 90))
	if res, ok := s.Clip(eye, eye.Add(dir.Mul(5)), cube.Pos{}); ok {
		fmt.Fprintf(w, "  looking down: hit %v at %v\n", res.Face, game.RoundVec64(res.Position, 4))
	} else {
		fmt.Fprintln(w, "  looking down: no hit")
	}
}
