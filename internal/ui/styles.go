package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/content"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, borders
	ColorIndigo    = "63"  // Indigo - for the active section, level bars
	ColorDanger    = "196" // Red - for challenge bullets
	ColorSuccess   = "42"  // Green - for outcome bullets
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "238" // Dark gray - for empty level bars, backdrop
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Title   lipgloss.Style // Bold accent color - for section titles
	Name    lipgloss.Style // Bold highlight - the portfolio owner's name
	Rule    lipgloss.Style // Section underline
	NavItem lipgloss.Style
	NavOn   lipgloss.Style // Active section in the nav bar

	Box      lipgloss.Style // Standard box with rounded border
	Modal    lipgloss.Style // Overlay box: border and padding, no margin
	Card     lipgloss.Style // Project card
	CardOn   lipgloss.Style // Project card under the cursor
	Backdrop lipgloss.Style // Whitespace around the overlay

	Selected lipgloss.Style
	Muted    lipgloss.Style
	Normal   lipgloss.Style
	Hint     lipgloss.Style
	Status   lipgloss.Style
	Section  lipgloss.Style // Sub-headers inside sections and the overlay
	Empty    lipgloss.Style
	Chip     lipgloss.Style // Technology tag
	Button   lipgloss.Style
	Danger   lipgloss.Style
	Success  lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Name: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Rule: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorIndigo)),
	NavItem: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1),
	NavOn: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorIndigo)).
		Background(lipgloss.Color("17")).
		Bold(true).
		Padding(0, 1),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	Modal: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	CardOn: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Backdrop: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Chip: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorIndigo)).
		Background(lipgloss.Color("189")).
		Padding(0, 1),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color("231")).
		Background(lipgloss.Color(ColorIndigo)).
		Padding(0, 1),
	Danger: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Success: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)),
}

// categoryColors gives each known skill category its own hue.
var categoryColors = map[string]string{
	"Data Analysis":        "33",  // blue
	"Tools & Technologies": "34",  // green
	"Soft Skills":          "135", // purple
}

// CategoryStyle returns the foreground style for a skill category.
// Unknown categories are gray.
func CategoryStyle(category string) lipgloss.Style {
	c, ok := categoryColors[category]
	if !ok {
		c = ColorMuted
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// LevelBars renders a five-segment proficiency meter followed by "n/5".
func LevelBars(level int) string {
	if level < 0 {
		level = 0
	}
	if level > content.MaxLevel {
		level = content.MaxLevel
	}
	on := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorIndigo))
	off := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDim))
	var b strings.Builder
	b.WriteString(on.Render(strings.Repeat("▬", level)))
	b.WriteString(off.Render(strings.Repeat("▬", content.MaxLevel-level)))
	b.WriteString(Styles.Muted.Render(" " + strconv.Itoa(level) + "/5"))
	return b.String()
}

// NewCompactListDelegate returns a delegate with zero spacing and shared styles.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.SelectedDesc = Styles.Selected
	d.Styles.NormalTitle = Styles.Muted
	d.Styles.NormalDesc = Styles.Muted
	return d
}
