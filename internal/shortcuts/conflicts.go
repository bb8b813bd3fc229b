package shortcuts

import (
	"fmt"
	"sort"
	"strings"

	"shortcuts/internal/types"
)

// Conflict is a key combo bound to more than one action.
type Conflict struct {
	KeyCombo string
	Actions  []string
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s is bound to %s", c.KeyCombo, strings.Join(c.Actions, ", "))
}

// DetectConflicts groups bindings by normalized key combo and reports every
// combo shared by two or more actions, sorted by combo.
func DetectConflicts(bindings []types.ShortcutBinding) []Conflict {
	actionsByCombo := map[string][]string{}
	for _, binding := range bindings {
		combo, err := NormalizeKeyCombo(binding.KeyCombo)
		if err != nil {
			combo = strings.TrimSpace(binding.KeyCombo)
		}
		if combo == "" {
			continue
		}
		actionsByCombo[combo] = append(actionsByCombo[combo], binding.ActionKey)
	}
	conflicts := make([]Conflict, 0)
	for combo, actions := range actionsByCombo {
		if len(actions) < 2 {
			continue
		}
		sort.Strings(actions)
		conflicts = append(conflicts, Conflict{KeyCombo: combo, Actions: actions})
	}
	sort.Slice(conflicts, func(i, j int) bool {
		return conflicts[i].KeyCombo < conflicts[j].KeyCombo
	})
	return conflicts
}
