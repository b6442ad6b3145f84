package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"folio/internal/content"
	"folio/internal/overlay"
	"folio/internal/skills"
	"folio/internal/ui"
)

func skillsCmd(f *flags) *cobra.Command {
	var category, search string
	cmd := &cobra.Command{
		Use:   "skills",
		Short: "List skills, optionally filtered by category and search text",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := f.config(cmd).LoadPortfolio()
			if err != nil {
				return err
			}
			matched := skills.Apply(skills.Flatten(p.Skills), skills.State{
				ActiveCategory: category,
				SearchText:     search,
			})
			out := cmd.OutOrStdout()
			if len(matched) == 0 {
				fmt.Fprintln(out, ui.EmptySkillsText)
				return nil
			}
			for _, s := range matched {
				fmt.Fprintf(out, "%-28s %-20s %s\n", s.Name, s.Category, levelBar(s.Level))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", skills.All, "Category name, or \"all\"")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive substring of the skill name")
	return cmd
}

func levelBar(level int) string {
	return strings.Repeat("■", level) + strings.Repeat("□", content.MaxLevel-level)
}

func projectsCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "projects [title]",
		Short: "List projects, or show one project's details",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := f.config(cmd).LoadPortfolio()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, pr := range p.Projects {
					fmt.Fprintf(out, "%s\n  %s\n", pr.Title, strings.Join(pr.Tools, ", "))
				}
				return nil
			}
			pr, ok := p.FindProject(args[0])
			if !ok {
				return errors.Errorf("no project titled %q", args[0])
			}
			writeProject(out, pr)
			return nil
		},
	}
}

// writeProject prints the same blocks the detail overlay shows, as plain text.
func writeProject(w io.Writer, p *content.Project) {
	fmt.Fprintln(w, p.Title)
	for _, kind := range overlay.Sections(p) {
		switch kind {
		case overlay.SectionOverview:
			fmt.Fprintf(w, "\n%s\n  %s\n", kind, p.Description)
		case overlay.SectionDuration:
			fmt.Fprintf(w, "\n%s\n  %s\n", kind, p.Details.Duration)
		case overlay.SectionTechnologies:
			fmt.Fprintf(w, "\n%s\n  %s\n", kind, strings.Join(overlay.Technologies(p), ", "))
		case overlay.SectionChallenges:
			fmt.Fprintf(w, "\n%s\n", kind)
			for _, c := range p.Details.Challenges {
				fmt.Fprintf(w, "  - %s\n", c)
			}
		case overlay.SectionOutcomes:
			fmt.Fprintf(w, "\n%s\n", kind)
			for _, o := range p.Details.Outcomes {
				fmt.Fprintf(w, "  - %s\n", o)
			}
		case overlay.SectionDemo:
			fmt.Fprintf(w, "\n%s: %s\n", kind, p.Details.DemoURL)
		case overlay.SectionCode:
			fmt.Fprintf(w, "\n%s: %s\n", kind, p.Details.GitHubURL)
		}
	}
}

func exportCmd(f *flags) *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the loaded content as YAML or an Excel workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := f.config(cmd).LoadPortfolio()
			if err != nil {
				return err
			}
			write := content.Export
			switch format {
			case "yaml", "yml":
			case "xlsx":
				if output == "" {
					return errors.New("xlsx export needs --output")
				}
				write = content.WriteWorkbook
			default:
				return errors.Errorf("unknown format %q (want yaml or xlsx)", format)
			}

			if output == "" {
				return write(cmd.OutOrStdout(), p)
			}
			file, err := os.Create(output)
			if err != nil {
				return errors.Wrapf(err, "creating %s", output)
			}
			if err := write(file, p); err != nil {
				file.Close()
				return err
			}
			return errors.Wrapf(file.Close(), "closing %s", output)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format: yaml or xlsx")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout, yaml only)")
	return cmd
}
