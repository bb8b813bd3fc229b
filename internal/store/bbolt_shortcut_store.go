package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"shortcuts/internal/types"
)

var (
	bucketShortcuts      = []byte("shortcuts")
	keyShortcutOverrides = []byte("overrides")
)

// BoltShortcutStore keeps the override list as a single JSON value inside a
// bbolt database, so a write replaces it in one transaction.
type BoltShortcutStore struct {
	db *bolt.DB
	mu sync.Mutex
}

func NewBoltShortcutStore(path string) (*BoltShortcutStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, types.IOError("open shortcut database", errors.New("path is required"))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, types.IOError("open shortcut database", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, types.IOError("open shortcut database", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketShortcuts)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, types.IOError("open shortcut database", err)
	}
	return &BoltShortcutStore{db: db}, nil
}

func (s *BoltShortcutStore) Read(ctx context.Context) ([]types.ShortcutBinding, error) {
	if err := ctx.Err(); err != nil {
		return nil, types.IOError("read shortcut overrides", err)
	}
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketShortcuts)
		if b == nil {
			return nil
		}
		if v := b.Get(keyShortcutOverrides); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, types.IOError("read shortcut overrides", err)
	}
	bindings, err := Parse(string(raw))
	if err != nil {
		return nil, types.ParseError("parse stored shortcut overrides", err)
	}
	return bindings, nil
}

func (s *BoltShortcutStore) Write(ctx context.Context, bindings []types.ShortcutBinding) error {
	if err := ctx.Err(); err != nil {
		return types.IOError("write shortcut overrides", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := encodeBindings(bindings, "")
	if err != nil {
		return types.IOError("encode shortcut overrides", err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketShortcuts)
		if err != nil {
			return err
		}
		return b.Put(keyShortcutOverrides, data)
	})
	if err != nil {
		return types.IOError("write shortcut overrides", err)
	}
	return nil
}

func (s *BoltShortcutStore) Parse(raw string) ([]types.ShortcutBinding, error) {
	return Parse(raw)
}

func (s *BoltShortcutStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
