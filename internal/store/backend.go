package store

import (
	"fmt"
	"io"
	"strings"
)

const (
	BackendFile   = "file"
	BackendBbolt  = "bbolt"
	BackendMemory = "memory"
)

// Open builds the store for backend. The returned closer releases backend
// resources and is always non-nil.
func Open(backend, path string) (ShortcutStore, io.Closer, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendFile:
		return NewFileShortcutStore(path), nopCloser{}, nil
	case BackendBbolt:
		s, err := NewBoltShortcutStore(path)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case BackendMemory:
		return NewMemoryShortcutStore(), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
