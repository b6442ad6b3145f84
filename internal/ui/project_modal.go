package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/content"
	"folio/internal/hit"
	"folio/internal/overlay"
	"folio/internal/ui/textutil"
)

const (
	modalMaxInner  = 72
	modalMinInner  = 20
	modalChrome    = 8 // border, padding, header, rule, spacer and hint rows
	closeLabel     = "[x]"
	modalMinBodyH  = 3
	modalHintLabel = "esc close  j/k scroll  y copy link"
)

// ProjectModal renders the expanded view of one project centered over a
// dimmed backdrop. It records where the box and its close control land so
// mouse clicks can be hit-tested against them.
type ProjectModal struct {
	Project *content.Project

	viewport      viewport.Model
	width, height int
	innerW        int
	box           hit.Rect
	closeButton   hit.Rect
}

var _ View = (*ProjectModal)(nil)

// NewProjectModal creates the overlay for p sized for a width x height
// screen.
func NewProjectModal(p *content.Project, width, height int) *ProjectModal {
	m := &ProjectModal{Project: p, viewport: viewport.New(0, 0)}
	m.SetSize(width, height)
	return m
}

// SetSize lays the modal out for a new screen size.
func (m *ProjectModal) SetSize(width, height int) {
	m.width, m.height = width, height

	inner := width - 10
	if inner > modalMaxInner {
		inner = modalMaxInner
	}
	if inner < modalMinInner {
		inner = modalMinInner
	}
	m.innerW = inner

	body := m.renderBody()
	lines := strings.Count(body, "\n") + 1
	bodyH := height*9/10 - modalChrome
	if lines < bodyH {
		bodyH = lines
	}
	if bodyH < modalMinBodyH {
		bodyH = modalMinBodyH
	}
	m.viewport.Width = inner
	m.viewport.Height = bodyH
	m.viewport.SetContent(body)

	bw := lipgloss.Width(m.renderBox())
	bh := lipgloss.Height(m.renderBox())
	left := max(0, (width-bw)/2)
	top := max(0, (height-bh)/2)
	m.box = hit.Rect{X: left, Y: top, W: bw, H: bh}
	// Border (1) and left padding (2) put the header at column left+3.
	m.closeButton = hit.Rect{X: left + 3 + inner - len(closeLabel), Y: top + 2, W: len(closeLabel), H: 1}
}

// Regions returns the clickable layout: backdrop, content box, close control.
func (m *ProjectModal) Regions() hit.Region {
	return overlay.Layout(m.width, m.height, m.box, m.closeButton)
}

// Box returns the screen rectangle of the content box.
func (m *ProjectModal) Box() hit.Rect {
	return m.box
}

// CloseButton returns the screen rectangle of the close control.
func (m *ProjectModal) CloseButton() hit.Rect {
	return m.closeButton
}

// Init implements View.
func (m *ProjectModal) Init() tea.Cmd {
	return nil
}

// Update implements View. Close and copy keys become messages; everything
// else scrolls the body.
func (m *ProjectModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return CloseOverlayMsg{Via: "key"} }
		case "y":
			return m, func() tea.Msg { return CopyLinkMsg{} }
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements View.
func (m *ProjectModal) View() string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderBox(),
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(ColorDim)),
	)
}

func (m *ProjectModal) renderBox() string {
	title := m.Project.Title
	if m.Project.Icon != "" {
		title = m.Project.Icon + " " + title
	}
	title = textutil.Truncate(title, m.innerW-len(closeLabel)-1)
	gap := m.innerW - textutil.VisualWidth(title) - len(closeLabel)
	header := Styles.Title.Render(title) + strings.Repeat(" ", max(gap, 0)) + Styles.Danger.Render(closeLabel)

	rows := []string{
		header,
		Styles.Rule.Render(strings.Repeat("─", m.innerW)),
		m.viewport.View(),
		"",
		Styles.Hint.Render(textutil.Truncate(modalHintLabel, m.innerW)),
	}
	return Styles.Modal.Render(strings.Join(rows, "\n"))
}

func (m *ProjectModal) renderBody() string {
	p := m.Project
	w := m.innerW
	var out []string
	block := func(kind overlay.SectionKind) {
		if len(out) > 0 {
			out = append(out, "")
		}
		out = append(out, Styles.Section.Render(kind.String()))
	}
	for _, kind := range overlay.Sections(p) {
		switch kind {
		case overlay.SectionOverview:
			block(kind)
			for _, l := range textutil.Wrap(p.Description, w, "") {
				out = append(out, Styles.Normal.Render(l))
			}
		case overlay.SectionDuration:
			block(kind)
			out = append(out, Styles.Normal.Render(p.Details.Duration))
		case overlay.SectionTechnologies:
			block(kind)
			out = append(out, chipRows(overlay.Technologies(p), w)...)
		case overlay.SectionChallenges:
			block(kind)
			out = append(out, bullets(p.Details.Challenges, "• ", Styles.Danger, w)...)
		case overlay.SectionOutcomes:
			block(kind)
			out = append(out, bullets(p.Details.Outcomes, "✓ ", Styles.Success, w)...)
		case overlay.SectionDemo:
			out = append(out, "", linkRow(kind, p.Details.DemoURL, w))
		case overlay.SectionCode:
			out = append(out, "", linkRow(kind, p.Details.GitHubURL, w))
		}
	}
	return strings.Join(out, "\n")
}

// chipRows lays technology chips out left to right, wrapping at width.
func chipRows(items []string, width int) []string {
	var rows []string
	var cur []string
	curW := 0
	for _, it := range items {
		chip := Styles.Chip.Render(textutil.Truncate(it, width-2))
		cw := lipgloss.Width(chip)
		if len(cur) > 0 && curW+1+cw > width {
			rows = append(rows, strings.Join(cur, " "))
			cur, curW = nil, 0
		}
		if len(cur) > 0 {
			curW++
		}
		cur = append(cur, chip)
		curW += cw
	}
	if len(cur) > 0 {
		rows = append(rows, strings.Join(cur, " "))
	}
	return rows
}

// bullets renders items as a marked list with hanging indent.
func bullets(items []string, mark string, markStyle lipgloss.Style, width int) []string {
	indent := strings.Repeat(" ", textutil.VisualWidth(mark))
	var out []string
	for _, it := range items {
		for i, l := range textutil.Wrap(it, width-len(indent), "") {
			if i == 0 {
				out = append(out, markStyle.Render(mark)+Styles.Normal.Render(l))
			} else {
				out = append(out, indent+Styles.Normal.Render(l))
			}
		}
	}
	return out
}

func linkRow(kind overlay.SectionKind, url string, width int) string {
	btn := Styles.Button.Render(kind.String())
	rest := width - lipgloss.Width(btn) - 1
	return btn + " " + Styles.Muted.Render(textutil.Truncate(url, rest))
}
