package overlay

import "folio/internal/content"

// SectionKind identifies a block of the expanded project view.
type SectionKind int

const (
	SectionOverview SectionKind = iota
	SectionDuration
	SectionTechnologies
	SectionChallenges
	SectionOutcomes
	SectionDemo
	SectionCode
)

func (k SectionKind) String() string {
	switch k {
	case SectionOverview:
		return "Project Overview"
	case SectionDuration:
		return "Duration"
	case SectionTechnologies:
		return "Technologies Used"
	case SectionChallenges:
		return "Key Challenges"
	case SectionOutcomes:
		return "Key Outcomes"
	case SectionDemo:
		return "View Demo"
	case SectionCode:
		return "View Code"
	default:
		return "Unknown"
	}
}

// Sections lists the blocks to render for p, in display order. Overview and
// technologies are always present; every detail block appears only when the
// project carries it.
func Sections(p *content.Project) []SectionKind {
	if p == nil {
		return nil
	}
	out := []SectionKind{SectionOverview}
	d := p.Details
	if d != nil && d.Duration != "" {
		out = append(out, SectionDuration)
	}
	out = append(out, SectionTechnologies)
	if d == nil {
		return out
	}
	if len(d.Challenges) > 0 {
		out = append(out, SectionChallenges)
	}
	if len(d.Outcomes) > 0 {
		out = append(out, SectionOutcomes)
	}
	if d.DemoURL != "" {
		out = append(out, SectionDemo)
	}
	if d.GitHubURL != "" {
		out = append(out, SectionCode)
	}
	return out
}

// Technologies returns the technology list of p's details when it has one,
// else the card's tools.
func Technologies(p *content.Project) []string {
	if p == nil {
		return nil
	}
	if p.Details != nil && len(p.Details.Technologies) > 0 {
		return append([]string(nil), p.Details.Technologies...)
	}
	return append([]string(nil), p.Tools...)
}

// CopyTarget returns the link to copy for p: the code link when present,
// else the demo link.
func CopyTarget(p *content.Project) (string, bool) {
	if p == nil || p.Details == nil {
		return "", false
	}
	if p.Details.GitHubURL != "" {
		return p.Details.GitHubURL, true
	}
	if p.Details.DemoURL != "" {
		return p.Details.DemoURL, true
	}
	return "", false
}
