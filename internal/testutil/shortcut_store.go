package testutil

import (
	"context"
	"sync"

	"shortcuts/internal/store"
	"shortcuts/internal/types"
)

// StubShortcutStore wraps an in-memory store and lets tests force read or
// write failures while counting calls.
type StubShortcutStore struct {
	*store.MemoryShortcutStore

	mu       sync.Mutex
	readErr  error
	writeErr error
	reads    int
	writes   int
}

func NewStubShortcutStore(initial ...types.ShortcutBinding) *StubShortcutStore {
	return &StubShortcutStore{MemoryShortcutStore: store.NewMemoryShortcutStore(initial...)}
}

func (s *StubShortcutStore) Read(ctx context.Context) ([]types.ShortcutBinding, error) {
	s.mu.Lock()
	s.reads++
	err := s.readErr
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return s.MemoryShortcutStore.Read(ctx)
}

func (s *StubShortcutStore) Write(ctx context.Context, bindings []types.ShortcutBinding) error {
	s.mu.Lock()
	s.writes++
	err := s.writeErr
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return s.MemoryShortcutStore.Write(ctx, bindings)
}

func (s *StubShortcutStore) SetReadErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readErr = err
}

func (s *StubShortcutStore) SetWriteErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
}

func (s *StubShortcutStore) Reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads
}

func (s *StubShortcutStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// StateRecorder collects the statuses a controller emits.
type StateRecorder struct {
	mu     sync.Mutex
	states []types.ShortcutsState
}

func (r *StateRecorder) Record(state types.ShortcutsState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, state)
}

func (r *StateRecorder) States() []types.ShortcutsState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]types.ShortcutsState(nil), r.states...)
}

func (r *StateRecorder) Statuses() []types.ShortcutsStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]types.ShortcutsStatus, 0, len(r.states))
	for _, state := range r.states {
		out = append(out, state.Status())
	}
	return out
}

func (r *StateRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = nil
}
