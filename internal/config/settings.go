package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	defaultStoreBackend = "file"
	defaultLogLevel     = "info"
)

type Config struct {
	Store   StoreConfig   `toml:"store"`
	Logging LoggingConfig `toml:"logging"`
}

type StoreConfig struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

func DefaultConfig() Config {
	return Config{
		Store: StoreConfig{
			Backend: defaultStoreBackend,
		},
		Logging: LoggingConfig{
			Level: defaultLogLevel,
		},
	}
}

// Load reads the configuration from the default location. A missing or
// empty file yields DefaultConfig.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	return LoadFromPath(path)
}

func LoadFromPath(path string) (Config, error) {
	cfg := DefaultConfig()
	if err := readTOML(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) StoreBackend() string {
	backend := strings.ToLower(strings.TrimSpace(c.Store.Backend))
	if backend == "" {
		return defaultStoreBackend
	}
	return backend
}

// ResolveStorePath returns the configured store location, falling back to
// the backend's default file in the data directory.
func (c Config) ResolveStorePath() (string, error) {
	path := strings.TrimSpace(c.Store.Path)
	if path == "" {
		if c.StoreBackend() == "bbolt" {
			return ShortcutsDBPath()
		}
		return ShortcutsPath()
	}
	return resolveConfigPath(path)
}

func (c Config) LogLevel() string {
	level := strings.TrimSpace(c.Logging.Level)
	if level == "" {
		return defaultLogLevel
	}
	return level
}

// Effective returns the configuration with defaults and paths filled in.
func (c Config) Effective() (Config, error) {
	path, err := c.ResolveStorePath()
	if err != nil {
		return Config{}, err
	}
	return Config{
		Store:   StoreConfig{Backend: c.StoreBackend(), Path: path},
		Logging: LoggingConfig{Level: c.LogLevel()},
	}, nil
}

func (c Config) EncodeTOML() ([]byte, error) {
	return toml.Marshal(c)
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}

func resolveConfigPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("path is required")
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, path), nil
}
