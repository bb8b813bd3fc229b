package render

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"shortcuts/internal/types"
)

const columnGap = 2

// Row is one line of a binding listing.
type Row struct {
	ActionKey    string
	KeyCombo     string
	DefaultCombo string
	Customized   bool
}

// Rows pairs each effective binding with its default so customised entries
// can be flagged.
func Rows(effective, defaults []types.ShortcutBinding) []Row {
	defaultByAction := make(map[string]string, len(defaults))
	for _, binding := range defaults {
		defaultByAction[binding.ActionKey] = binding.KeyCombo
	}
	rows := make([]Row, 0, len(effective))
	for _, binding := range effective {
		def := defaultByAction[binding.ActionKey]
		rows = append(rows, Row{
			ActionKey:    binding.ActionKey,
			KeyCombo:     binding.KeyCombo,
			DefaultCombo: def,
			Customized:   binding.KeyCombo != def,
		})
	}
	return rows
}

// Table writes rows as a styled table. Colour is only emitted when w is a
// terminal that supports it.
func Table(w io.Writer, rows []Row) error {
	renderer := lipgloss.NewRenderer(w)
	header := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	action := renderer.NewStyle().Foreground(lipgloss.Color("252"))
	combo := renderer.NewStyle().Foreground(lipgloss.Color("110"))
	custom := renderer.NewStyle().Foreground(lipgloss.Color("120")).Bold(true)
	muted := renderer.NewStyle().Foreground(lipgloss.Color("241"))

	actionWidth, comboWidth := lipgloss.Width("ACTION"), lipgloss.Width("SHORTCUT")
	for _, row := range rows {
		actionWidth = max(actionWidth, lipgloss.Width(row.ActionKey))
		comboWidth = max(comboWidth, lipgloss.Width(row.KeyCombo))
	}
	actionWidth += columnGap
	comboWidth += columnGap

	var b strings.Builder
	b.WriteString(header.Width(actionWidth).Render("ACTION"))
	b.WriteString(header.Width(comboWidth).Render("SHORTCUT"))
	b.WriteString(header.Render("DEFAULT"))
	b.WriteByte('\n')
	for _, row := range rows {
		b.WriteString(action.Width(actionWidth).Render(row.ActionKey))
		if row.Customized {
			b.WriteString(custom.Width(comboWidth).Render(row.KeyCombo))
			b.WriteString(muted.Render(row.DefaultCombo))
		} else {
			b.WriteString(combo.Width(comboWidth).Render(row.KeyCombo))
			b.WriteString(muted.Render("-"))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Plain writes rows as aligned text without styling. Customised rows are
// marked with an asterisk.
func Plain(w io.Writer, rows []Row) error {
	width := 0
	for _, row := range rows {
		width = max(width, runewidth.StringWidth(row.ActionKey))
	}
	var b strings.Builder
	for _, row := range rows {
		marker := " "
		if row.Customized {
			marker = "*"
		}
		b.WriteString(marker)
		b.WriteByte(' ')
		b.WriteString(runewidth.FillRight(row.ActionKey, width+columnGap))
		b.WriteString(row.KeyCombo)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// JSON encodes bindings in the persisted override format.
func JSON(bindings []types.ShortcutBinding) ([]byte, error) {
	if bindings == nil {
		bindings = []types.ShortcutBinding{}
	}
	data, err := json.MarshalIndent(bindings, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
