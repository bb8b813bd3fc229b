package config

import (
	"os"
	"path/filepath"
)

const appDirName = ".shortcuts"

// DataDir returns the base directory for shortcut data and configuration.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDirName), nil
}

// ConfigPath returns the path to the TOML configuration file.
func ConfigPath() (string, error) {
	return inDataDir("config.toml")
}

// ShortcutsPath returns the default override file for the file backend.
func ShortcutsPath() (string, error) {
	return inDataDir("shortcuts.json")
}

// ShortcutsDBPath returns the default database for the bbolt backend.
func ShortcutsDBPath() (string, error) {
	return inDataDir("shortcuts.db")
}

func inDataDir(name string) (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, name), nil
}
