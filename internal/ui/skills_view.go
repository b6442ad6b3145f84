package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/content"
	"folio/internal/skills"
	"folio/internal/ui/textutil"
)

// EmptySkillsText is shown when the filter matches nothing.
const EmptySkillsText = "No skills found matching your criteria."

// SkillsView renders the skills section in one of two forms: the simple
// per-category lists, or the filterable view with a search box, a category
// selector and level meters.
type SkillsView struct {
	Filter     *skills.Filter
	Categories []content.Category
	Advanced   bool
	Search     textinput.Model

	targets []SkillsTarget
}

// SkillsTarget is a clickable span of the last render, in rows and columns
// relative to the section body. Category is empty for the clear button.
type SkillsTarget struct {
	Row, X, W int
	Category  string
}

// NewSkillsView creates the view over categories in simple mode.
func NewSkillsView(categories []content.Category) *SkillsView {
	ti := textinput.New()
	ti.Placeholder = "Search skills..."
	ti.Prompt = "⌕ "
	ti.CharLimit = 64
	ti.Width = 30
	return &SkillsView{
		Filter:     skills.NewFilter(categories),
		Categories: categories,
		Search:     ti,
	}
}

// Toggle switches between simple and advanced mode. Leaving advanced mode
// blurs the search box but keeps the filter state.
func (v *SkillsView) Toggle() {
	v.Advanced = !v.Advanced
	if !v.Advanced {
		v.Search.Blur()
	}
}

// FocusSearch switches to advanced mode and focuses the search box.
func (v *SkillsView) FocusSearch() tea.Cmd {
	v.Advanced = true
	return v.Search.Focus()
}

// Searching reports whether the search box has focus.
func (v *SkillsView) Searching() bool {
	return v.Search.Focused()
}

// UpdateSearch feeds msg to the search box and mirrors its value into the
// filter. changed reports whether the search text differs afterwards.
func (v *SkillsView) UpdateSearch(msg tea.Msg) (changed bool, cmd tea.Cmd) {
	before := v.Search.Value()
	v.Search, cmd = v.Search.Update(msg)
	after := v.Search.Value()
	if after != before {
		v.Filter.SetSearchText(after)
		return true, cmd
	}
	return false, cmd
}

// Clear resets the filter and empties the search box.
func (v *SkillsView) Clear() {
	v.Filter.Clear()
	v.Search.SetValue("")
}

// Targets returns the category chips and the clear button of the last
// Render. The simple view has none.
func (v *SkillsView) Targets() []SkillsTarget {
	return v.targets
}

// Render draws the section body at the given width.
func (v *SkillsView) Render(width int) string {
	v.targets = nil
	if v.Advanced {
		return v.renderAdvanced(width)
	}
	return v.renderSimple(width)
}

func (v *SkillsView) renderSimple(width int) string {
	var b strings.Builder
	for i, c := range v.Categories {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(CategoryStyle(c.Name).Bold(true).Render(c.Name))
		b.WriteString("\n")
		b.WriteString(wrapItems(c.Names(), " · ", width, Styles.Normal))
		b.WriteString("\n")
	}
	b.WriteString(Styles.Hint.Render("v: interactive view"))
	return b.String()
}

func (v *SkillsView) renderAdvanced(width int) string {
	var b strings.Builder
	b.WriteString(v.Search.View())
	b.WriteString("\n")

	active := v.Filter.State().ActiveCategory
	chips := make([]string, 0, len(v.Filter.Categories()))
	x := 0
	for _, c := range v.Filter.Categories() {
		label := c
		if c == skills.All {
			label = "All"
		}
		style := Styles.NavItem
		if c == active {
			style = Styles.NavOn
		}
		chip := style.Render(label)
		cw := lipgloss.Width(chip)
		v.targets = append(v.targets, SkillsTarget{Row: 1, X: x, W: cw, Category: c})
		chips = append(chips, chip)
		x += cw
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, chips...))
	b.WriteString("\n\n")

	list := v.Filter.Filtered()
	if len(list) == 0 {
		b.WriteString(Styles.Empty.Render(EmptySkillsText))
		b.WriteString("\n")
		button := Styles.Button.Render("x Clear filters")
		v.targets = append(v.targets, SkillsTarget{Row: 4, W: lipgloss.Width(button)})
		b.WriteString(button)
		return b.String()
	}

	nameW := width - 24
	if nameW > 32 {
		nameW = 32
	}
	if nameW < 8 {
		nameW = 8
	}
	for i, s := range list {
		if i > 0 {
			b.WriteString("\n")
		}
		name := textutil.PadRightVisual(s.Name, nameW)
		b.WriteString(Styles.Normal.Render(name))
		b.WriteString(" ")
		b.WriteString(LevelBars(s.Level))
		b.WriteString(" ")
		b.WriteString(CategoryStyle(s.Category).Render("●"))
	}
	b.WriteString("\n")
	b.WriteString(Styles.Hint.Render("/ search  [ ] category  c pick  x clear  v simple view"))
	return b.String()
}

// wrapItems joins items with sep, breaking lines so none exceeds width.
func wrapItems(items []string, sep string, width int, style lipgloss.Style) string {
	var lines []string
	var cur string
	for _, it := range items {
		next := it
		if cur != "" {
			next = cur + sep + it
		}
		if cur != "" && textutil.VisualWidth(next) > width {
			lines = append(lines, cur)
			cur = it
			continue
		}
		cur = next
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	for i, l := range lines {
		lines[i] = style.Render(l)
	}
	return strings.Join(lines, "\n")
}
