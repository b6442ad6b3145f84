package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/skills"
)

// CategoryPickerModal lists the skill categories for direct selection.
type CategoryPickerModal struct {
	list list.Model
}

type categoryItem string

func (c categoryItem) FilterValue() string { return string(c) }
func (c categoryItem) Title() string {
	if string(c) == skills.All {
		return "All categories"
	}
	return string(c)
}
func (c categoryItem) Description() string { return "" }

var _ View = (*CategoryPickerModal)(nil)

// NewCategoryPickerModal creates a picker over categories with the cursor on
// current.
func NewCategoryPickerModal(categories []string, current string) *CategoryPickerModal {
	items := make([]list.Item, len(categories))
	selected := 0
	for i, c := range categories {
		items[i] = categoryItem(c)
		if c == current {
			selected = i
		}
	}
	l := list.New(items, NewCompactListDelegate(), 36, len(items)+4)
	l.Title = "Skill category"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	l.Select(selected)
	return &CategoryPickerModal{list: l}
}

// Selected returns the category under the cursor.
func (m *CategoryPickerModal) Selected() string {
	if sel, ok := m.list.SelectedItem().(categoryItem); ok {
		return string(sel)
	}
	return ""
}

// Init implements View.
func (m *CategoryPickerModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *CategoryPickerModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			c := m.Selected()
			if c == "" {
				return m, nil
			}
			return m, func() tea.Msg { return SetCategoryMsg{Category: c} }
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements View.
func (m *CategoryPickerModal) View() string {
	return Styles.Modal.Render(m.list.View() + "\n" + Styles.Hint.Render("Enter: select  Esc: cancel"))
}
