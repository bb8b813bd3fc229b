package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shortcuts/internal/types"
)

func TestParseEmptyInputs(t *testing.T) {
	for _, raw := range []string{"", "   \n", "[]", "null"} {
		bindings, err := Parse(raw)
		if err != nil {
			t.Fatalf("Parse(%q): %v", raw, err)
		}
		if bindings == nil || len(bindings) != 0 {
			t.Fatalf("Parse(%q): expected empty non-nil list, got %#v", raw, bindings)
		}
	}
}

func TestParseEntries(t *testing.T) {
	raw := `[
  {"key":"moveCursorUp","command":"alt+arrow up","extra":true},
  {"key":"copy","command":"ctrl+shift+c"}
]`
	bindings, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []types.ShortcutBinding{
		{ActionKey: "moveCursorUp", KeyCombo: "alt+arrow up"},
		{ActionKey: "copy", KeyCombo: "ctrl+shift+c"},
	}
	if !types.BindingsEqual(bindings, want) {
		t.Fatalf("unexpected bindings: %#v", bindings)
	}
}

func TestParseSkipsMalformedEntries(t *testing.T) {
	raw := `[
  {"key":"moveCursorUp"},
  {"command":"ctrl+x"},
  {"key":"paste","command":42},
  {"key":" ","command":"ctrl+v"},
  "undo",
  7,
  null,
  {"key":"redo","command":"ctrl+y"}
]`
	bindings, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(bindings) != 1 || bindings[0].ActionKey != "redo" || bindings[0].KeyCombo != "ctrl+y" {
		t.Fatalf("expected only the redo entry, got %#v", bindings)
	}
}

func TestParseRejectsInvalidStructure(t *testing.T) {
	cases := map[string]string{
		"truncated": `[{"key":"copy"`,
		"object":    `{"key":"copy","command":"ctrl+c"}`,
		"string":    `"copy"`,
		"garbage":   `not json`,
		"number":    `12`,
		"trailing":  `[] []`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(raw)
			if err == nil {
				t.Fatalf("expected parse error for %q", raw)
			}
			if !types.IsKind(err, types.ErrorKindParse) {
				t.Fatalf("expected parse error kind, got %v", err)
			}
		})
	}
}

func TestParsePreservesOrderAndDuplicates(t *testing.T) {
	raw := `[{"key":"b","command":"2"},{"key":"a","command":"1"},{"key":"b","command":"3"}]`
	bindings, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []types.ShortcutBinding{
		{ActionKey: "b", KeyCombo: "2"},
		{ActionKey: "a", KeyCombo: "1"},
		{ActionKey: "b", KeyCombo: "3"},
	}
	if !types.BindingsEqual(bindings, want) {
		t.Fatalf("unexpected bindings: %#v", bindings)
	}
}

func TestFileShortcutStoreReadMissing(t *testing.T) {
	s := NewFileShortcutStore(filepath.Join(t.TempDir(), "missing", "shortcuts.json"))
	bindings, err := s.Read(context.Background())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(bindings) != 0 {
		t.Fatalf("expected no overrides, got %#v", bindings)
	}
}

func TestFileShortcutStoreReadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shortcuts.json")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	bindings, err := NewFileShortcutStore(path).Read(context.Background())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(bindings) != 0 {
		t.Fatalf("expected no overrides, got %#v", bindings)
	}
}

func TestFileShortcutStoreReadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shortcuts.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := NewFileShortcutStore(path).Read(context.Background())
	if !types.IsKind(err, types.ErrorKindParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in error, got %q", err.Error())
	}
}

func TestFileShortcutStoreReadIOError(t *testing.T) {
	dir := t.TempDir()
	_, err := NewFileShortcutStore(dir).Read(context.Background())
	if !types.IsKind(err, types.ErrorKindIO) {
		t.Fatalf("expected io error reading a directory, got %v", err)
	}
}

func TestFileShortcutStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "shortcuts.json")
	s := NewFileShortcutStore(path)
	ctx := context.Background()
	want := []types.ShortcutBinding{
		{ActionKey: "redo", KeyCombo: "ctrl+y"},
		{ActionKey: "moveCursorUp", KeyCombo: "alt+arrow up"},
		{ActionKey: "openSearch", KeyCombo: "ctrl+<"},
	}
	if err := s.Write(ctx, want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := s.Read(ctx)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !types.BindingsEqual(got, want) {
		t.Fatalf("round trip mismatch: got=%#v want=%#v", got, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), `"key": "redo"`) || !strings.Contains(string(data), `"command": "ctrl+y"`) {
		t.Fatalf("unexpected file format: %s", data)
	}
}

func TestFileShortcutStoreWriteNilWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shortcuts.json")
	s := NewFileShortcutStore(path)
	if err := s.Write(context.Background(), nil); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Fatalf("expected empty array, got %q", data)
	}
}

func TestFileShortcutStoreWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewFileShortcutStore(filepath.Join(dir, "shortcuts.json"))
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if err := s.Write(ctx, []types.ShortcutBinding{{ActionKey: "copy", KeyCombo: "ctrl+c"}}); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "shortcuts.json" {
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			names = append(names, entry.Name())
		}
		t.Fatalf("unexpected directory contents: %v", names)
	}
}

func TestFileShortcutStoreWriteFailureKeepsOldContent(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	s := NewFileShortcutStore(filepath.Join(blocker, "shortcuts.json"))
	err := s.Write(context.Background(), []types.ShortcutBinding{{ActionKey: "copy", KeyCombo: "ctrl+c"}})
	if !types.IsKind(err, types.ErrorKindIO) {
		t.Fatalf("expected io error, got %v", err)
	}
	data, err := os.ReadFile(blocker)
	if err != nil || string(data) != "x" {
		t.Fatalf("blocker file changed: %q %v", data, err)
	}
}

func TestFileShortcutStoreFailedRenameRemovesStagedFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "shortcuts.json")
	if err := os.MkdirAll(filepath.Join(target, "occupied"), 0o700); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	s := NewFileShortcutStore(target)
	err := s.Write(context.Background(), []types.ShortcutBinding{{ActionKey: "copy", KeyCombo: "ctrl+c"}})
	if !types.IsKind(err, types.ErrorKindIO) {
		t.Fatalf("expected io error, got %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "shortcuts.json" {
		t.Fatalf("staged file left behind: %v", entries)
	}
}

func TestFileShortcutStoreWritesIndentedArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "shortcuts.json")
	s := NewFileShortcutStore(path)
	if err := s.Write(context.Background(), nil); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "[]\n" {
		t.Fatalf("unexpected content %q", data)
	}
	if err := s.Write(context.Background(), []types.ShortcutBinding{{ActionKey: "copy", KeyCombo: "ctrl++"}}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, _ = os.ReadFile(path)
	want := "[\n  {\n    \"key\": \"copy\",\n    \"command\": \"ctrl++\"\n  }\n]\n"
	if string(data) != want {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestFileShortcutStoreCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	path := filepath.Join(t.TempDir(), "shortcuts.json")
	s := NewFileShortcutStore(path)
	if err := s.Write(ctx, nil); !types.IsKind(err, types.ErrorKindIO) {
		t.Fatalf("expected io error, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no file to be written, stat err=%v", err)
	}
}
