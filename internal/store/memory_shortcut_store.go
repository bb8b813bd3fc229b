package store

import (
	"context"
	"sync"

	"shortcuts/internal/types"
)

// MemoryShortcutStore holds the encoded override list in memory. Content is
// kept in the persisted wire format so reads go through Parse like the
// durable backends.
type MemoryShortcutStore struct {
	mu  sync.Mutex
	raw []byte
}

func NewMemoryShortcutStore(initial ...types.ShortcutBinding) *MemoryShortcutStore {
	s := &MemoryShortcutStore{}
	if len(initial) > 0 {
		s.raw, _ = encodeBindings(initial, "")
	}
	return s
}

// NewMemoryShortcutStoreFromRaw seeds the store with raw file content, which
// may be malformed.
func NewMemoryShortcutStoreFromRaw(raw string) *MemoryShortcutStore {
	return &MemoryShortcutStore{raw: []byte(raw)}
}

func (s *MemoryShortcutStore) Read(ctx context.Context) ([]types.ShortcutBinding, error) {
	if err := ctx.Err(); err != nil {
		return nil, types.IOError("read shortcut overrides", err)
	}
	s.mu.Lock()
	raw := string(s.raw)
	s.mu.Unlock()
	bindings, err := Parse(raw)
	if err != nil {
		return nil, types.ParseError("parse shortcut overrides", err)
	}
	return bindings, nil
}

func (s *MemoryShortcutStore) Write(ctx context.Context, bindings []types.ShortcutBinding) error {
	if err := ctx.Err(); err != nil {
		return types.IOError("write shortcut overrides", err)
	}
	data, err := encodeBindings(bindings, "")
	if err != nil {
		return types.IOError("encode shortcut overrides", err)
	}
	s.mu.Lock()
	s.raw = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryShortcutStore) Parse(raw string) ([]types.ShortcutBinding, error) {
	return Parse(raw)
}

// Raw returns the currently stored content.
func (s *MemoryShortcutStore) Raw() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.raw)
}
