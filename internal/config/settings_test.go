package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	home := filepath.Join(t.TempDir(), "home")
	t.Setenv("HOME", home)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StoreBackend() != "file" {
		t.Fatalf("unexpected backend: %q", cfg.StoreBackend())
	}
	if cfg.LogLevel() != "info" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel())
	}
	path, err := cfg.ResolveStorePath()
	if err != nil {
		t.Fatalf("ResolveStorePath: %v", err)
	}
	if want := filepath.Join(home, ".shortcuts", "shortcuts.json"); path != want {
		t.Fatalf("unexpected store path: got=%q want=%q", path, want)
	}
}

func TestLoadFromTOML(t *testing.T) {
	home := filepath.Join(t.TempDir(), "home")
	t.Setenv("HOME", home)

	dataDir := filepath.Join(home, ".shortcuts")
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	content := []byte("[store]\nbackend = \" BBolt \"\n\n[logging]\nlevel = \"debug\"\n")
	if err := os.WriteFile(filepath.Join(dataDir, "config.toml"), content, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StoreBackend() != "bbolt" {
		t.Fatalf("unexpected backend: %q", cfg.StoreBackend())
	}
	if cfg.LogLevel() != "debug" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel())
	}
	path, err := cfg.ResolveStorePath()
	if err != nil {
		t.Fatalf("ResolveStorePath: %v", err)
	}
	if want := filepath.Join(dataDir, "shortcuts.db"); path != want {
		t.Fatalf("unexpected db path: got=%q want=%q", path, want)
	}
}

func TestLoadRejectsInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[store\nbackend="), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadFromPath(path); err == nil || !strings.Contains(err.Error(), path) {
		t.Fatalf("expected load error naming the file, got %v", err)
	}
}

func TestResolveStorePathVariants(t *testing.T) {
	home := filepath.Join(t.TempDir(), "home")
	t.Setenv("HOME", home)

	cfg := Config{Store: StoreConfig{Path: "custom/keys.json"}}
	path, err := cfg.ResolveStorePath()
	if err != nil {
		t.Fatalf("ResolveStorePath relative: %v", err)
	}
	if want := filepath.Join(home, ".shortcuts", "custom", "keys.json"); path != want {
		t.Fatalf("unexpected relative path: got=%q want=%q", path, want)
	}

	cfg.Store.Path = "~/keys.json"
	path, err = cfg.ResolveStorePath()
	if err != nil {
		t.Fatalf("ResolveStorePath home: %v", err)
	}
	if want := filepath.Join(home, "keys.json"); path != want {
		t.Fatalf("unexpected home path: got=%q want=%q", path, want)
	}

	abs := filepath.Join(t.TempDir(), "abs.json")
	cfg.Store.Path = abs
	path, err = cfg.ResolveStorePath()
	if err != nil {
		t.Fatalf("ResolveStorePath absolute: %v", err)
	}
	if path != abs {
		t.Fatalf("unexpected absolute path: %q", path)
	}
}

func TestEffectiveEncodeTOML(t *testing.T) {
	home := filepath.Join(t.TempDir(), "home")
	t.Setenv("HOME", home)

	effective, err := Config{}.Effective()
	if err != nil {
		t.Fatalf("Effective: %v", err)
	}
	data, err := effective.EncodeTOML()
	if err != nil {
		t.Fatalf("EncodeTOML: %v", err)
	}
	text := string(data)
	for _, want := range []string{"[store]", "backend", "file", "shortcuts.json", "[logging]", "info"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output:\n%s", want, text)
		}
	}
}
