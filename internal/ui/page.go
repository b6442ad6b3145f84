package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/content"
	"folio/internal/nav"
	"folio/internal/ui/textutil"
)

// pageLayout is one rendering of the scrollable page body together with the
// row spans of its sections and project cards.
type pageLayout struct {
	Body     string
	Sections []nav.Extent
	Cards    []nav.Extent // ID is the project index
	CardW    int
	// SkillsTop is the body row the skills view starts at, -1 when the
	// page has no skills section.
	SkillsTop int
}

// pageBuilder accumulates body lines and remembers where blocks start.
type pageBuilder struct {
	lines []string
}

func (b *pageBuilder) add(block string) (top, bottom int) {
	top = len(b.lines)
	b.lines = append(b.lines, strings.Split(block, "\n")...)
	return top, len(b.lines) - 1
}

func (b *pageBuilder) blank() {
	b.lines = append(b.lines, "")
}

// renderPage draws every section of p at width. cursor is the highlighted
// project card.
func renderPage(p *content.Portfolio, sv *SkillsView, cursor, width int) pageLayout {
	var b pageBuilder
	layout := pageLayout{SkillsTop: -1}
	w := max(width-2, 20)
	layout.CardW = min(w, 64)

	for i, sec := range p.Sections {
		top := len(b.lines)
		if sec.ID != content.SectionHero {
			b.add(sectionHeader(sec.Name, w))
		}
		switch sec.ID {
		case content.SectionHero:
			b.add(renderHero(p.Profile, w))
		case content.SectionAbout:
			b.add(renderAbout(p.Profile, w))
		case content.SectionSkills:
			layout.SkillsTop, _ = b.add(sv.Render(w))
		case content.SectionExperience:
			b.add(renderExperience(p.Experience, w))
		case content.SectionProjects:
			for j := range p.Projects {
				if j > 0 {
					b.blank()
				}
				ct, cb := b.add(renderCard(&p.Projects[j], j == cursor, layout.CardW))
				layout.Cards = append(layout.Cards, nav.Extent{ID: strconv.Itoa(j), Top: ct, Bottom: cb})
			}
		case content.SectionEducation:
			b.add(renderEducation(p.Education, p.Certifications, w))
		case content.SectionContact:
			b.add(renderContact(p.Profile, w))
		}
		if i < len(p.Sections)-1 {
			b.blank()
			b.blank()
		}
		layout.Sections = append(layout.Sections, nav.Extent{ID: sec.ID, Top: top, Bottom: len(b.lines) - 1})
	}
	layout.Body = strings.Join(b.lines, "\n")
	return layout
}

func sectionHeader(name string, width int) string {
	return Styles.Title.Render(name) + "\n" + Styles.Rule.Render(strings.Repeat("─", min(width, textutil.VisualWidth(name)+4)))
}

func paragraph(s string, width int, style lipgloss.Style) []string {
	lines := textutil.Wrap(s, width, "")
	for i, l := range lines {
		lines[i] = style.Render(l)
	}
	return lines
}

func renderHero(pr content.Profile, width int) string {
	var out []string
	out = append(out, "")
	if pr.Initials != "" {
		out = append(out, Styles.Chip.Render(pr.Initials))
	}
	out = append(out, Styles.Name.Render(pr.Name))
	if pr.Role != "" {
		out = append(out, Styles.Title.Render(pr.Role))
	}
	if pr.Tagline != "" {
		out = append(out, paragraph(pr.Tagline, width, Styles.Muted)...)
	}
	out = append(out, "", Styles.Button.Render("Get in touch")+" "+Styles.Hint.Render("SPC g: go to section"))
	return strings.Join(out, "\n")
}

func renderAbout(pr content.Profile, width int) string {
	var out []string
	for i, para := range pr.About {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, paragraph(para, width, Styles.Normal)...)
	}
	var facts []string
	if pr.Location != "" {
		facts = append(facts, Styles.Muted.Render("Location: ")+Styles.Normal.Render(pr.Location))
	}
	if len(pr.Languages) > 0 {
		facts = append(facts, Styles.Muted.Render("Languages: ")+Styles.Normal.Render(strings.Join(pr.Languages, ", ")))
	}
	if len(facts) > 0 {
		out = append(out, "")
		out = append(out, facts...)
	}
	return strings.Join(out, "\n")
}

func renderExperience(items []content.Experience, width int) string {
	var out []string
	for i, e := range items {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, Styles.Section.Render(e.Title)+Styles.Muted.Render("  "+e.Period))
		out = append(out, Styles.Normal.Render(e.Company))
		out = append(out, bullets(e.Highlights, "• ", Styles.Rule, width)...)
	}
	return strings.Join(out, "\n")
}

func renderCard(pr *content.Project, selected bool, width int) string {
	style := Styles.Card
	if selected {
		style = Styles.CardOn
	}
	inner := width - style.GetHorizontalFrameSize()
	title := pr.Title
	if pr.Icon != "" {
		title = pr.Icon + " " + title
	}
	lines := []string{Styles.Section.Render(textutil.Truncate(title, inner))}
	desc := textutil.Wrap(pr.Description, inner, "")
	if len(desc) > 3 {
		desc = append(desc[:2], textutil.Truncate(desc[2]+" "+desc[3], inner))
	}
	for _, l := range desc {
		lines = append(lines, Styles.Muted.Render(l))
	}
	lines = append(lines, chipRows(pr.Tools, inner)...)
	hint := "enter: details"
	if selected {
		lines = append(lines, Styles.Status.Render(hint))
	} else {
		lines = append(lines, Styles.Hint.Render(hint))
	}
	return style.Width(inner + style.GetHorizontalPadding()).Render(strings.Join(lines, "\n"))
}

func renderEducation(edu []content.Education, certs []content.Certification, width int) string {
	var out []string
	for i, e := range edu {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, Styles.Section.Render(e.Degree)+Styles.Muted.Render("  "+e.Period))
		out = append(out, Styles.Normal.Render(e.Institution))
		if e.Detail != "" {
			out = append(out, paragraph(e.Detail, width, Styles.Muted)...)
		}
	}
	if len(certs) > 0 {
		out = append(out, "", Styles.Title.Render("Certifications"))
		for _, c := range certs {
			out = append(out, Styles.Section.Render(c.Name)+Styles.Muted.Render("  "+c.Period))
			out = append(out, Styles.Normal.Render(c.Issuer))
			if c.Detail != "" {
				out = append(out, paragraph(c.Detail, width, Styles.Muted)...)
			}
		}
	}
	return strings.Join(out, "\n")
}

func renderContact(pr content.Profile, width int) string {
	rows := [][2]string{
		{"Email", pr.Email},
		{"LinkedIn", pr.LinkedIn},
		{"GitHub", pr.GitHub},
		{"Location", pr.Location},
	}
	var out []string
	for _, r := range rows {
		if r[1] == "" {
			continue
		}
		label := textutil.PadRightVisual(r[0], 10)
		out = append(out, Styles.Muted.Render(label)+Styles.Normal.Render(textutil.Truncate(r[1], width-10)))
	}
	if len(out) == 0 {
		out = append(out, Styles.Empty.Render("No contact details."))
	}
	return strings.Join(out, "\n")
}

// renderNavBar draws the one-line section bar and returns the column span of
// each item, in section order.
func renderNavBar(sections []content.Section, active string, width int) (string, []navSpan) {
	var b strings.Builder
	var spans []navSpan
	x := 0
	for i, s := range sections {
		label := strconv.Itoa(i+1) + " " + s.Name
		style := Styles.NavItem
		if s.ID == active {
			style = Styles.NavOn
		}
		item := style.Render(label)
		iw := lipgloss.Width(item)
		if x+iw > width {
			break
		}
		b.WriteString(item)
		spans = append(spans, navSpan{ID: s.ID, X: x, W: iw})
		x += iw
	}
	return b.String(), spans
}

type navSpan struct {
	ID string
	X  int
	W  int
}

// renderMenu draws the open section menu, one row per section.
func renderMenu(sections []content.Section, active string, cursor int) string {
	rows := make([]string, len(sections))
	for i, s := range sections {
		marker := "  "
		if i == cursor {
			marker = "> "
		}
		label := marker + strconv.Itoa(i+1) + ". " + s.Name
		switch {
		case i == cursor:
			rows[i] = Styles.Selected.Render(label)
		case s.ID == active:
			rows[i] = Styles.Rule.Render(label)
		default:
			rows[i] = Styles.Normal.Render(label)
		}
	}
	return strings.Join(rows, "\n")
}
