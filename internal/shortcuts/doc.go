// Package shortcuts owns the effective set of customizable key bindings.
//
// A Controller merges the compiled-in default table with overrides read from
// a store.ShortcutStore and publishes every transition as an immutable
// types.ShortcutsState. Each operation emits an updating state followed by
// exactly one success or failure state; store and validation errors never
// escape as Go errors.
package shortcuts
