package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the transient hint bar shown after SPC.
// With a pending sequence (e.g. "SPC g") it shows the next-level keys.
func RenderKeybindHelp(keyHandler *KeyHandler, mode AppMode) string {
	if keyHandler == nil || keyHandler.Registry == nil {
		return ""
	}
	currentSeq := keyHandler.CurrentSeq()
	hints := keyHandler.Registry.LeaderHints(currentSeq, mode)
	if len(hints) == 0 {
		return ""
	}

	bindings := make([]key.Binding, 0, len(hints)+1)
	for _, k := range SortedHintKeys(hints) {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	bindings = append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))

	helpModel := help.New()
	helpModel.Styles.ShortKey = Styles.Selected
	helpModel.Styles.ShortDesc = Styles.Muted
	helpModel.Styles.ShortSeparator = Styles.Muted

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)

	prefix := "SPC"
	if currentSeq != "" {
		prefix = currentSeq
	}
	return boxStyle.Render(Styles.Muted.Render(prefix) + " " + helpModel.ShortHelpView(bindings))
}

// pageKeys are the always-available page keys shown in the footer.
var pageKeys = []key.Binding{
	key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "scroll")),
	key.NewBinding(key.WithKeys("1", "7"), key.WithHelp("1-7", "section")),
	key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n/N", "project")),
	key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "skills view")),
	key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
	key.NewBinding(key.WithKeys(" "), key.WithHelp("SPC", "commands")),
	key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

// RenderFooterHelp renders the one-line key summary for the page.
func RenderFooterHelp(width int) string {
	h := help.New()
	h.Width = width
	h.Styles.ShortKey = Styles.Status
	h.Styles.ShortDesc = Styles.Muted
	h.Styles.ShortSeparator = Styles.Muted
	return h.ShortHelpView(pageKeys)
}
