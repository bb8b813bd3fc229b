package shortcuts

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"shortcuts/internal/logging"
	"shortcuts/internal/store"
	"shortcuts/internal/types"
)

var ErrClosed = errors.New("shortcuts controller is closed")

// Listener receives every state the controller emits. It runs synchronously
// on the goroutine performing the operation and must not call FetchShortcuts,
// UpdateShortcut or ResetToDefaults. Close is safe to call from a listener.
type Listener func(state types.ShortcutsState)

type Option func(*Controller)

func WithLogger(logger logging.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

type Controller struct {
	store    store.ShortcutStore
	defaults []types.ShortcutBinding
	logger   logging.Logger

	// opMu serializes operations so store access never interleaves.
	opMu sync.Mutex

	mu        sync.Mutex
	state     types.ShortcutsState
	lastGood  []types.ShortcutBinding
	listeners map[uint64]Listener
	nextID    uint64
	closed    bool
}

// NewController builds a controller over st. A nil defaults table selects
// types.DefaultBindings. Blank or repeated action keys in the table are
// dropped, keeping the first occurrence.
func NewController(st store.ShortcutStore, defaults []types.ShortcutBinding, opts ...Option) *Controller {
	c := &Controller{
		store:     st,
		logger:    logging.Nop(),
		state:     types.InitialShortcutsState(),
		listeners: map[uint64]Listener{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if defaults == nil {
		defaults = types.DefaultBindings()
	}
	c.defaults = c.sanitizeDefaults(defaults)
	return c
}

func (c *Controller) sanitizeDefaults(defaults []types.ShortcutBinding) []types.ShortcutBinding {
	out := make([]types.ShortcutBinding, 0, len(defaults))
	seen := make(map[string]struct{}, len(defaults))
	for _, binding := range defaults {
		action := strings.TrimSpace(binding.ActionKey)
		if action == "" {
			c.logger.Warn("dropping default binding without action key", logging.F("command", binding.KeyCombo))
			continue
		}
		if _, ok := seen[action]; ok {
			c.logger.Warn("dropping duplicate default binding", logging.F("key", action))
			continue
		}
		seen[action] = struct{}{}
		out = append(out, types.ShortcutBinding{ActionKey: action, KeyCombo: binding.KeyCombo})
	}
	return out
}

// Defaults returns a copy of the default table the controller merges onto.
func (c *Controller) Defaults() []types.ShortcutBinding {
	return types.CloneBindings(c.defaults)
}

func (c *Controller) State() types.ShortcutsState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers listener for all future transitions.
func (c *Controller) Subscribe(listener Listener) *Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()
	if listener == nil || c.closed {
		return &Subscription{}
	}
	id := c.nextID
	c.nextID++
	c.listeners[id] = listener
	return &Subscription{id: id, controller: c}
}

func (c *Controller) unsubscribe(id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.listeners, id)
}

// Close drops all listeners. Later operations return a failure state without
// emitting or touching the store; an operation already running completes.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.listeners = map[uint64]Listener{}
}

// FetchShortcuts loads persisted overrides and publishes the merged set.
func (c *Controller) FetchShortcuts(ctx context.Context) types.ShortcutsState {
	c.opMu.Lock()
	defer c.opMu.Unlock()
	if state, closed := c.closedState(); closed {
		return state
	}

	previous := c.emitUpdating()
	merged, err := c.load(ctx)
	if err != nil {
		c.logger.Warn("fetch shortcuts failed", logging.Err(err))
		return c.emit(types.FailureShortcutsState(previous, err))
	}
	c.logger.Debug("fetched shortcuts", logging.F("count", len(merged)))
	return c.succeed(merged)
}

// UpdateShortcut rebinds actionKey to keyCombo and persists the full
// effective set.
func (c *Controller) UpdateShortcut(ctx context.Context, actionKey, keyCombo string) types.ShortcutsState {
	c.opMu.Lock()
	defer c.opMu.Unlock()
	if state, closed := c.closedState(); closed {
		return state
	}

	previous := c.emitUpdating()
	base := previous
	if !c.loaded() {
		loaded, err := c.load(ctx)
		if err != nil {
			c.logger.Warn("load before update failed", logging.F("key", actionKey), logging.Err(err))
			return c.emit(types.FailureShortcutsState(previous, err))
		}
		base = loaded
	}

	next, err := c.applyUpdate(base, actionKey, keyCombo)
	if err != nil {
		c.logger.Info("rejected shortcut update", logging.F("key", actionKey), logging.F("command", keyCombo), logging.Err(err))
		return c.emit(types.FailureShortcutsState(previous, err))
	}
	if err := c.write(ctx, next); err != nil {
		c.logger.Warn("persist shortcut update failed", logging.F("key", actionKey), logging.Err(err))
		return c.emit(types.FailureShortcutsState(previous, err))
	}
	c.logger.Info("updated shortcut", logging.F("key", strings.TrimSpace(actionKey)), logging.F("command", keyCombo))
	return c.succeed(next)
}

// ResetToDefaults clears every persisted override.
func (c *Controller) ResetToDefaults(ctx context.Context) types.ShortcutsState {
	c.opMu.Lock()
	defer c.opMu.Unlock()
	if state, closed := c.closedState(); closed {
		return state
	}

	previous := c.emitUpdating()
	if err := c.write(ctx, []types.ShortcutBinding{}); err != nil {
		c.logger.Warn("reset shortcuts failed", logging.Err(err))
		return c.emit(types.FailureShortcutsState(previous, err))
	}
	c.logger.Info("reset shortcuts to defaults")
	return c.succeed(c.Defaults())
}

func (c *Controller) load(ctx context.Context) ([]types.ShortcutBinding, error) {
	if c.store == nil {
		return nil, types.IOError("shortcut store not available", nil)
	}
	overrides, err := c.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	return MergeBindings(c.defaults, overrides), nil
}

func (c *Controller) write(ctx context.Context, bindings []types.ShortcutBinding) error {
	if c.store == nil {
		return types.IOError("shortcut store not available", nil)
	}
	return c.store.Write(ctx, bindings)
}

func (c *Controller) applyUpdate(base []types.ShortcutBinding, actionKey, keyCombo string) ([]types.ShortcutBinding, error) {
	actionKey = strings.TrimSpace(actionKey)
	if actionKey == "" {
		return nil, types.ValidationError("action key is required", nil)
	}
	normalized, err := NormalizeKeyCombo(keyCombo)
	if err != nil {
		return nil, err
	}
	next := types.CloneBindings(base)
	for i := range next {
		if next[i].ActionKey == actionKey {
			next[i].KeyCombo = normalized
			return next, nil
		}
	}
	return nil, types.ValidationError(fmt.Sprintf("unknown shortcut action %q", actionKey), nil)
}

// MergeBindings overlays overrides onto defaults. The result keeps the
// defaults' order and length; overrides for unknown actions are ignored and
// a later override for the same action wins.
func MergeBindings(defaults, overrides []types.ShortcutBinding) []types.ShortcutBinding {
	merged := types.CloneBindings(defaults)
	if merged == nil {
		merged = []types.ShortcutBinding{}
	}
	index := make(map[string]int, len(merged))
	for i, binding := range merged {
		index[binding.ActionKey] = i
	}
	for _, override := range overrides {
		i, ok := index[strings.TrimSpace(override.ActionKey)]
		if !ok {
			continue
		}
		merged[i].KeyCombo = override.KeyCombo
	}
	return merged
}

func (c *Controller) loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastGood != nil
}

func (c *Controller) closedState() (types.ShortcutsState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		return types.ShortcutsState{}, false
	}
	return types.FailureShortcutsState(c.lastGood, ErrClosed), true
}

func (c *Controller) emitUpdating() []types.ShortcutBinding {
	c.mu.Lock()
	previous := types.CloneBindings(c.lastGood)
	c.mu.Unlock()
	c.emit(types.UpdatingShortcutsState(previous))
	return previous
}

func (c *Controller) succeed(bindings []types.ShortcutBinding) types.ShortcutsState {
	for _, conflict := range DetectConflicts(bindings) {
		c.logger.Warn("shortcut conflict", logging.F("command", conflict.KeyCombo), logging.F("keys", strings.Join(conflict.Actions, ",")))
	}
	c.mu.Lock()
	c.lastGood = types.CloneBindings(bindings)
	c.mu.Unlock()
	return c.emit(types.SuccessShortcutsState(bindings))
}

func (c *Controller) emit(state types.ShortcutsState) types.ShortcutsState {
	c.mu.Lock()
	c.state = state
	ids := make([]uint64, 0, len(c.listeners))
	for id := range c.listeners {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	listeners := make([]Listener, 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, c.listeners[id])
	}
	c.mu.Unlock()

	for _, listener := range listeners {
		listener(state)
	}
	return state
}

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	id         uint64
	controller *Controller
}

func (s *Subscription) Unsubscribe() {
	if s == nil || s.controller == nil {
		return
	}
	s.controller.unsubscribe(s.id)
	s.controller = nil
}
