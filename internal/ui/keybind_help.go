package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp renders the one-line help bar for the current focus.
func RenderKeybindHelp(reg *KeybindRegistry, focus string) string {
	if reg == nil {
		return ""
	}
	bindings := reg.Bindings(focus)
	if len(bindings) == 0 {
		return ""
	}

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint

	return Styles.HelpBar.Render(h.ShortHelpView(bindings))
}
