package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/oomph-ac/oshape/shape"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	var buf bytes.Buffer
	describe(&buf, "minecraft:stone_slab", shape.Box(0, 0, 0, 1, 0.5, 1))
	out := buf.String()
	require.Contains(t, out, "box [0 0 0] -> [1 0.5 1]")
	require.Contains(t, out, "full block: false, occludes full block: false")
	require.Contains(t, out, "fall from y=2: -1.5")
	require.Contains(t, out, "eye distance: 3.12")
	require.Contains(t, out, "looking down: hit")

	buf.Reset()
	describe(&buf, "minecraft:air", shape.Empty())
	require.Contains(t, buf.String(), "fall from y=2: -3")
	require.Contains(t, buf.String(), "eye distance: +Inf")
	require.Contains(t, buf.String(), "looking down: no hit")
}

func TestReadSettings(t *testing.T) {
	log := logrus.New()
	log.Out = io.Discard

	path := filepath.Join(t.TempDir(), "settings.toml")
	conf, err := readSettings(log, path)
	require.NoError(t, err)
	require.FileExists(t, path)
	require.Equal(t, "collisions.json", conf.Registry.Path)

	conf.Registry.Path = filepath.Join("..", "..", "registry", "testdata", "collisions.json")
	reg, err := loadRegistry(log, conf)
	require.NoError(t, err)
	require.Contains(t, reg.Names(), "minecraft:stone")

	conf.Registry.Path = filepath.Join(t.TempDir(), "missing.json")
	_, err = loadRegistry(log, conf)
	require.Error(t, err)
	_, err = os.Stat(conf.Registry.Path)
	require.True(t, os.IsNotExist(err))
}
