package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"syscall"

	"shortcuts/internal/types"
)

// encodeBindings renders bindings as a JSON array. A nil slice is stored as
// [] so a later read sees "no overrides" rather than null.
func encodeBindings(bindings []types.ShortcutBinding, indent string) ([]byte, error) {
	if bindings == nil {
		bindings = []types.ShortcutBinding{}
	}
	if indent == "" {
		return json.Marshal(bindings)
	}
	data, err := json.MarshalIndent(bindings, "", indent)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// replaceBindingsFile swaps path for a file holding bindings. The new content
// is staged next to path, synced and renamed over it; the parent directory is
// synced afterwards so the rename itself survives a crash.
func replaceBindingsFile(path string, bindings []types.ShortcutBinding) error {
	data, err := encodeBindings(bindings, "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	staged, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	stagedPath := staged.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(stagedPath)
		}
	}()

	if _, err := staged.Write(data); err != nil {
		_ = staged.Close()
		return err
	}
	if err := staged.Sync(); err != nil {
		_ = staged.Close()
		return err
	}
	if err := staged.Close(); err != nil {
		return err
	}
	if err := os.Rename(stagedPath, path); err != nil {
		return err
	}
	committed = true
	return syncDir(dir)
}

func syncDir(dir string) error {
	handle, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer handle.Close()
	// Some filesystems refuse fsync on directories.
	if err := handle.Sync(); err != nil && !errors.Is(err, syscall.EINVAL) {
		return err
	}
	return nil
}
