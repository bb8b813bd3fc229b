package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/tidwall/gjson"

	"shortcuts/internal/types"
)

// ShortcutStore persists the user's shortcut overrides as a list of bindings.
// It knows nothing about the default table or controller state.
type ShortcutStore interface {
	Read(ctx context.Context) ([]types.ShortcutBinding, error)
	Write(ctx context.Context, bindings []types.ShortcutBinding) error
	Parse(raw string) ([]types.ShortcutBinding, error)
}

// Parse decodes a JSON array of {"key", "command"} objects. Blank input and a
// literal null decode to an empty list. Entries that are not objects or lack a
// non-blank string key or command are skipped; unknown fields are ignored.
// Anything that is not a JSON array is a parse error.
func Parse(raw string) ([]types.ShortcutBinding, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "null" {
		return []types.ShortcutBinding{}, nil
	}
	if !gjson.Valid(trimmed) {
		return nil, types.ParseError("shortcut overrides are not valid JSON", nil)
	}
	root := gjson.Parse(trimmed)
	if !root.IsArray() {
		return nil, types.ParseError("shortcut overrides must be a JSON array", nil)
	}
	out := make([]types.ShortcutBinding, 0)
	root.ForEach(func(_, entry gjson.Result) bool {
		if !entry.IsObject() {
			return true
		}
		key := entry.Get("key")
		command := entry.Get("command")
		if key.Type != gjson.String || command.Type != gjson.String {
			return true
		}
		if strings.TrimSpace(key.Str) == "" || strings.TrimSpace(command.Str) == "" {
			return true
		}
		out = append(out, types.ShortcutBinding{ActionKey: key.Str, KeyCombo: command.Str})
		return true
	})
	return out, nil
}

type FileShortcutStore struct {
	path string
	mu   sync.Mutex
}

func NewFileShortcutStore(path string) *FileShortcutStore {
	return &FileShortcutStore{path: path}
}

func (s *FileShortcutStore) Path() string {
	return s.path
}

func (s *FileShortcutStore) Read(ctx context.Context) ([]types.ShortcutBinding, error) {
	if err := ctx.Err(); err != nil {
		return nil, types.IOError("read shortcut overrides", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []types.ShortcutBinding{}, nil
		}
		return nil, types.IOError("read shortcut overrides", err)
	}
	bindings, err := Parse(string(data))
	if err != nil {
		return nil, types.ParseError(fmt.Sprintf("parse %s", s.path), err)
	}
	return bindings, nil
}

func (s *FileShortcutStore) Write(ctx context.Context, bindings []types.ShortcutBinding) error {
	if err := ctx.Err(); err != nil {
		return types.IOError("write shortcut overrides", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(s.path) == "" {
		return types.IOError("write shortcut overrides", errors.New("path is required"))
	}
	if err := replaceBindingsFile(s.path, bindings); err != nil {
		return types.IOError("write shortcut overrides", err)
	}
	return nil
}

func (s *FileShortcutStore) Parse(raw string) ([]types.ShortcutBinding, error) {
	return Parse(raw)
}
