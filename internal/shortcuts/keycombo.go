package shortcuts

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"shortcuts/internal/types"
)

var modifierAliases = map[string]string{
	"ctrl":    "ctrl",
	"control": "ctrl",
	"alt":     "alt",
	"opt":     "alt",
	"option":  "alt",
	"shift":   "shift",
	"meta":    "meta",
	"cmd":     "meta",
	"command": "meta",
	"super":   "meta",
	"win":     "meta",
}

var modifierOrder = []string{"ctrl", "alt", "shift", "meta"}

// NormalizeKeyCombo returns the canonical encoding of a key chord such as
// "Alt + Arrow Up" -> "alt+arrow up". Modifiers are lowercased, de-aliased,
// de-duplicated and ordered ctrl, alt, shift, meta. Named keys are lowercased;
// single-character keys keep their case so "G" and "g" stay distinct. A
// trailing "++" binds the plus key itself, as in "ctrl++".
func NormalizeKeyCombo(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", types.ValidationError("key combo is required", nil)
	}
	parts := strings.Split(trimmed, "+")
	if n := len(parts); n >= 2 && strings.TrimSpace(parts[n-1]) == "" && strings.TrimSpace(parts[n-2]) == "" {
		parts = append(parts[:n-2], "+")
	}
	mods := map[string]bool{}
	key := ""
	for i, part := range parts {
		part = strings.Join(strings.Fields(part), " ")
		if part == "" {
			return "", types.ValidationError(fmt.Sprintf("key combo %q has an empty part", raw), nil)
		}
		mod, isModifier := modifierAliases[strings.ToLower(part)]
		if i < len(parts)-1 {
			if !isModifier {
				return "", types.ValidationError(fmt.Sprintf("%q is not a modifier in key combo %q", part, raw), nil)
			}
			mods[mod] = true
			continue
		}
		if isModifier {
			return "", types.ValidationError(fmt.Sprintf("key combo %q has no key after its modifiers", raw), nil)
		}
		key = part
		if utf8.RuneCountInString(part) > 1 {
			key = strings.ToLower(part)
		}
	}
	out := make([]string, 0, len(mods)+1)
	for _, mod := range modifierOrder {
		if mods[mod] {
			out = append(out, mod)
		}
	}
	out = append(out, key)
	return strings.Join(out, "+"), nil
}
