package types

const (
	ShortcutActionMoveCursorUp       = "moveCursorUp"
	ShortcutActionMoveCursorDown     = "moveCursorDown"
	ShortcutActionMoveCursorLeft     = "moveCursorLeft"
	ShortcutActionMoveCursorRight    = "moveCursorRight"
	ShortcutActionMoveCursorTop      = "moveCursorToTop"
	ShortcutActionMoveCursorBottom   = "moveCursorToBottom"
	ShortcutActionSelectAll          = "selectAll"
	ShortcutActionCopy               = "copy"
	ShortcutActionCut                = "cut"
	ShortcutActionPaste              = "paste"
	ShortcutActionUndo               = "undo"
	ShortcutActionRedo               = "redo"
	ShortcutActionToggleBold         = "toggleBold"
	ShortcutActionToggleItalic       = "toggleItalic"
	ShortcutActionToggleUnderline    = "toggleUnderline"
	ShortcutActionToggleCode         = "toggleCode"
	ShortcutActionInsertNewline      = "insertNewline"
	ShortcutActionIndent             = "indent"
	ShortcutActionOutdent            = "outdent"
	ShortcutActionOpenSearch         = "openSearch"
	ShortcutActionOpenCommandPalette = "openCommandPalette"
)

// ShortcutBinding maps one editable action to the key chord that triggers it.
// The JSON field names follow the persisted override file format.
type ShortcutBinding struct {
	ActionKey string `json:"key"`
	KeyCombo  string `json:"command"`
}

var defaultShortcutBindings = []ShortcutBinding{
	{ActionKey: ShortcutActionMoveCursorUp, KeyCombo: "arrow up"},
	{ActionKey: ShortcutActionMoveCursorDown, KeyCombo: "arrow down"},
	{ActionKey: ShortcutActionMoveCursorLeft, KeyCombo: "arrow left"},
	{ActionKey: ShortcutActionMoveCursorRight, KeyCombo: "arrow right"},
	{ActionKey: ShortcutActionMoveCursorTop, KeyCombo: "ctrl+arrow up"},
	{ActionKey: ShortcutActionMoveCursorBottom, KeyCombo: "ctrl+arrow down"},
	{ActionKey: ShortcutActionSelectAll, KeyCombo: "ctrl+a"},
	{ActionKey: ShortcutActionCopy, KeyCombo: "ctrl+c"},
	{ActionKey: ShortcutActionCut, KeyCombo: "ctrl+x"},
	{ActionKey: ShortcutActionPaste, KeyCombo: "ctrl+v"},
	{ActionKey: ShortcutActionUndo, KeyCombo: "ctrl+z"},
	{ActionKey: ShortcutActionRedo, KeyCombo: "ctrl+shift+z"},
	{ActionKey: ShortcutActionToggleBold, KeyCombo: "ctrl+b"},
	{ActionKey: ShortcutActionToggleItalic, KeyCombo: "ctrl+i"},
	{ActionKey: ShortcutActionToggleUnderline, KeyCombo: "ctrl+u"},
	{ActionKey: ShortcutActionToggleCode, KeyCombo: "ctrl+e"},
	{ActionKey: ShortcutActionInsertNewline, KeyCombo: "shift+enter"},
	{ActionKey: ShortcutActionIndent, KeyCombo: "tab"},
	{ActionKey: ShortcutActionOutdent, KeyCombo: "shift+tab"},
	{ActionKey: ShortcutActionOpenSearch, KeyCombo: "ctrl+f"},
	{ActionKey: ShortcutActionOpenCommandPalette, KeyCombo: "ctrl+shift+p"},
}

// DefaultBindings returns a fresh copy of the compiled-in binding table in
// display order.
func DefaultBindings() []ShortcutBinding {
	return CloneBindings(defaultShortcutBindings)
}

func CloneBindings(bindings []ShortcutBinding) []ShortcutBinding {
	if bindings == nil {
		return nil
	}
	out := make([]ShortcutBinding, len(bindings))
	copy(out, bindings)
	return out
}

// BindingsEqual reports whether two sequences hold the same bindings in the
// same order.
func BindingsEqual(a, b []ShortcutBinding) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
