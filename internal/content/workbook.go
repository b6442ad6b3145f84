package content

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// Workbook sheet names, in order.
const (
	SheetSkills     = "Skills"
	SheetProjects   = "Projects"
	SheetExperience = "Experience"
	SheetEducation  = "Education"
)

type sheet struct {
	name   string
	header []any
	rows   [][]any
}

// WriteWorkbook writes p as an Excel workbook with one sheet per record
// kind. Skill levels are resolved with LevelFor.
func WriteWorkbook(w io.Writer, p *Portfolio) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
	})
	if err != nil {
		return errors.Wrap(err, "creating header style")
	}

	for i, s := range workbookSheets(p) {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return errors.Wrapf(err, "naming sheet %s", s.name)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return errors.Wrapf(err, "adding sheet %s", s.name)
		}

		rows := append([][]any{s.header}, s.rows...)
		for r, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(s.name, cell, &row); err != nil {
				return errors.Wrapf(err, "writing %s row %d", s.name, r+1)
			}
		}
		if err := f.SetRowStyle(s.name, 1, 1, headerStyle); err != nil {
			return errors.Wrapf(err, "styling %s header", s.name)
		}
	}
	f.SetActiveSheet(0)

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "writing workbook")
	}
	return nil
}

func workbookSheets(p *Portfolio) []sheet {
	skills := sheet{name: SheetSkills, header: []any{"Category", "Skill", "Level"}}
	for _, c := range p.Skills {
		for _, e := range c.Skills {
			skills.rows = append(skills.rows, []any{c.Name, e.Name, LevelFor(c.Name, e)})
		}
	}

	projects := sheet{name: SheetProjects, header: []any{
		"Title", "Description", "Tools", "Technologies", "Duration", "Challenges", "Outcomes", "Demo", "Code",
	}}
	for _, pr := range p.Projects {
		d := pr.Details
		if d == nil {
			d = &ProjectDetails{}
		}
		projects.rows = append(projects.rows, []any{
			pr.Title, pr.Description, strings.Join(pr.Tools, ", "), strings.Join(d.Technologies, ", "),
			d.Duration, strings.Join(d.Challenges, "\n"), strings.Join(d.Outcomes, "\n"), d.DemoURL, d.GitHubURL,
		})
	}

	experience := sheet{name: SheetExperience, header: []any{"Title", "Company", "Period", "Highlights"}}
	for _, e := range p.Experience {
		experience.rows = append(experience.rows, []any{e.Title, e.Company, e.Period, strings.Join(e.Highlights, "\n")})
	}

	education := sheet{name: SheetEducation, header: []any{"Degree", "Institution", "Period", "Detail"}}
	for _, e := range p.Education {
		education.rows = append(education.rows, []any{e.Degree, e.Institution, e.Period, e.Detail})
	}
	for _, c := range p.Certifications {
		education.rows = append(education.rows, []any{c.Name, c.Issuer, c.Period, c.Detail})
	}

	return []sheet{skills, projects, experience, education}
}
