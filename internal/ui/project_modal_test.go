package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/content"
	"folio/internal/hit"
	"folio/internal/overlay"
)

func detailedProject() *content.Project {
	return &content.Project{
		Title:       "Sales Dashboard",
		Description: "Interactive dashboard over three years of regional sales.",
		Tools:       []string{"Power BI", "DAX"},
		Icon:        "▥",
		Details: &content.ProjectDetails{
			Duration:     "3 weeks",
			Challenges:   []string{"Inconsistent region codes across sources"},
			Outcomes:     []string{"Cut monthly reporting time in half"},
			Technologies: []string{"DAX", "Power Query"},
			DemoURL:      "https://example.com/demo",
			GitHubURL:    "https://example.com/code",
		},
	}
}

func TestProjectModal_RendersSectionsInOrder(t *testing.T) {
	m := NewProjectModal(detailedProject(), 120, 60)
	out := m.View()

	last := -1
	for _, kind := range overlay.Sections(m.Project) {
		idx := strings.Index(out, kind.String())
		require.GreaterOrEqual(t, idx, 0, "missing %s", kind)
		assert.Greater(t, idx, last, "%s out of order", kind)
		last = idx
	}
	assert.Contains(t, out, "Power Query")
	assert.Equal(t, 1, strings.Count(out, "DAX "), "DAX chip listed once")
	assert.NotContains(t, out, "Power BI", "details technologies replace the card tools")
}

func TestProjectModal_BoxIsCentered(t *testing.T) {
	m := NewProjectModal(detailedProject(), 100, 40)
	b := m.Box()

	assert.Equal(t, modalMaxInner+6, b.W)
	assert.Equal(t, (100-b.W)/2, b.X)
	assert.Equal(t, (40-b.H)/2, b.Y)
	assert.Equal(t, 40, lipgloss.Height(m.View()))
	assert.Equal(t, 100, lipgloss.Width(m.View()))
}

func TestProjectModal_RegionsNestCloseButton(t *testing.T) {
	m := NewProjectModal(detailedProject(), 100, 40)
	cb := m.CloseButton()

	path := m.Regions().Path(cb.X, cb.Y)
	assert.Equal(t, []hit.ElementID{overlay.CloseButton, overlay.Content, overlay.Backdrop}, path)
	assert.True(t, m.Box().Intersect(cb) == cb, "close button lies inside the box")
}

func TestProjectModal_NarrowScreen(t *testing.T) {
	m := NewProjectModal(detailedProject(), 24, 12)
	assert.Equal(t, modalMinInner, m.innerW)
	assert.GreaterOrEqual(t, m.viewport.Height, modalMinBodyH)
}

func TestProjectModal_Keys(t *testing.T) {
	m := NewProjectModal(detailedProject(), 100, 40)

	_, cmd := m.Update(keyMsg("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, CloseOverlayMsg{Via: "key"}, cmd())

	_, cmd = m.Update(keyMsg("y"))
	require.NotNil(t, cmd)
	assert.Equal(t, CopyLinkMsg{}, cmd())
}

func TestChipRows_Wrap(t *testing.T) {
	rows := chipRows([]string{"Python", "Pandas", "NumPy", "Matplotlib", "SQL"}, 20)
	require.Greater(t, len(rows), 1)
	for _, r := range rows {
		assert.LessOrEqual(t, lipgloss.Width(r), 20)
	}
}

func TestBullets_HangingIndent(t *testing.T) {
	out := bullets([]string{"one two three four five"}, "• ", Styles.Danger, 12)
	require.Len(t, out, 3)
	assert.True(t, strings.HasPrefix(out[1], "  "))
}
