package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/oomph-ac/oshape/registry"
	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
)

// Settings contains everything that can be configured when loading collision shapes.
type Settings struct {
	Registry struct {
		// Path is the collision data file shapes are loaded from.
		Path string
		// Workers is the maximum amount of shapes built at once. Zero or less means no limit.
		Workers int
		// Strict makes loading fail on block states referring to undefined shapes.
		Strict bool
	}
	Log struct {
		// Level is the minimum level of messages logged, such as "info" or "debug".
		Level string
	}
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	s := Settings{}
	s.Registry.Path = "collisions.json"
	s.Registry.Workers = 4
	s.Log.Level = "info"
	return s
}

// RegistryOptions returns the options collision data should be loaded with.
func (s Settings) RegistryOptions() registry.Options {
	return registry.Options{Workers: s.Registry.Workers, Strict: s.Registry.Strict}
}

// LogLevel parses the configured log level.
func (s Settings) LogLevel() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(s.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("invalid log level: %w", err)
	}
	return lvl, nil
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return errors.New("settings file already exists")
	}
	data, err := toml.Marshal(DefaultSettings())
	if err != nil {
		return fmt.Errorf("failed encoding default settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %w", err)
	}
	return nil
}

// Load will load the settings from your settings file. An empty path or log level falls back to its
// default value.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading settings: %w", err)
	}

	var s Settings
	if err = toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("error decoding settings: %w", err)
	}
	def := DefaultSettings()
	if s.Registry.Path == "" {
		s.Registry.Path = def.Registry.Path
	}
	if s.Log.Level == "" {
		s.Log.Level = def.Log.Level
	}
	return s, nil
}
