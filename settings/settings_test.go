package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, SaveDefault(path))
	require.Error(t, SaveDefault(path))

	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, DefaultSettings(), s)

	lvl, err := s.LogLevel()
	require.NoError(t, err)
	require.Equal(t, logrus.InfoLevel, lvl)
	require.Equal(t, 4, s.RegistryOptions().Workers)
}

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("[Registry]\nStrict = true\n\n[Log]\nLevel = \"verbose\"\n"), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	require.True(t, s.RegistryOptions().Strict)
	require.Equal(t, "collisions.json", s.Registry.Path)
	_, err = s.LogLevel()
	require.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
