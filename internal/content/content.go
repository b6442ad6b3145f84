// Package content holds the static records a portfolio is built from:
// profile, skills, experience, projects, education and contact links.
//
// Records are read-only at runtime. The built-in set is returned by Default;
// Load reads an alternative set from a YAML file.
package content

import "hash/fnv"

const (
	// MinLevel and MaxLevel bound a skill's proficiency level.
	MinLevel = 1
	MaxLevel = 5

	// AllCategories is the category selector value that matches every skill.
	AllCategories = "all"
)

// Skill is one flattened (name, category, level) record.
type Skill struct {
	Name     string
	Category string
	Level    int
}

// SkillEntry is a named skill inside a Category. Level 0 means unset.
type SkillEntry struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level,omitempty"`
}

// Category is an ordered group of skills. Portfolios keep categories in a
// slice so that iteration order is the order they were written in.
type Category struct {
	Name   string       `yaml:"name"`
	Skills []SkillEntry `yaml:"skills"`
}

// Names returns the category's skill names in order.
func (c Category) Names() []string {
	out := make([]string, len(c.Skills))
	for i, s := range c.Skills {
		out[i] = s.Name
	}
	return out
}

// NewCategory builds a category from plain names with no explicit levels.
func NewCategory(name string, skills ...string) Category {
	entries := make([]SkillEntry, len(skills))
	for i, s := range skills {
		entries[i] = SkillEntry{Name: s}
	}
	return Category{Name: name, Skills: entries}
}

// LevelFor returns the entry's level, or a stable level in [3,5] derived
// from the (category, name) pair when the entry does not set one.
func LevelFor(category string, e SkillEntry) int {
	if e.Level != 0 {
		return e.Level
	}
	h := fnv.New32a()
	h.Write([]byte(category))
	h.Write([]byte{0})
	h.Write([]byte(e.Name))
	return 3 + int(h.Sum32()%3)
}

// ProjectDetails carries the optional expanded view of a project.
type ProjectDetails struct {
	Duration     string   `yaml:"duration,omitempty"`
	Challenges   []string `yaml:"challenges,omitempty"`
	Outcomes     []string `yaml:"outcomes,omitempty"`
	Technologies []string `yaml:"technologies,omitempty"`
	DemoURL      string   `yaml:"demo_url,omitempty"`
	GitHubURL    string   `yaml:"github_url,omitempty"`
}

// Project is a portfolio project card.
type Project struct {
	Title       string          `yaml:"title"`
	Description string          `yaml:"description"`
	Tools       []string        `yaml:"tools"`
	Icon        string          `yaml:"icon,omitempty"` // display glyph
	Details     *ProjectDetails `yaml:"details,omitempty"`
}

// Profile is the biographical header of the page.
type Profile struct {
	Name      string   `yaml:"name"`
	Initials  string   `yaml:"initials"`
	Role      string   `yaml:"role"`
	Tagline   string   `yaml:"tagline"`
	Email     string   `yaml:"email"`
	LinkedIn  string   `yaml:"linkedin,omitempty"`
	GitHub    string   `yaml:"github,omitempty"`
	Location  string   `yaml:"location,omitempty"`
	Languages []string `yaml:"languages,omitempty"`
	About     []string `yaml:"about,omitempty"`
}

// Experience is one entry of the work history.
type Experience struct {
	Title      string   `yaml:"title"`
	Company    string   `yaml:"company"`
	Period     string   `yaml:"period"`
	Highlights []string `yaml:"highlights,omitempty"`
}

// Education is one degree or training entry.
type Education struct {
	Degree      string `yaml:"degree"`
	Institution string `yaml:"institution"`
	Period      string `yaml:"period"`
	Detail      string `yaml:"detail,omitempty"`
}

// Certification is a named credential.
type Certification struct {
	Name   string `yaml:"name"`
	Issuer string `yaml:"issuer"`
	Period string `yaml:"period,omitempty"`
	Detail string `yaml:"detail,omitempty"`
}

// Section is a navigable region of the page.
type Section struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Portfolio aggregates every record shown on the page.
type Portfolio struct {
	Profile        Profile         `yaml:"profile"`
	Sections       []Section       `yaml:"sections"`
	Skills         []Category      `yaml:"skills"`
	Experience     []Experience    `yaml:"experience"`
	Projects       []Project       `yaml:"projects"`
	Education      []Education     `yaml:"education"`
	Certifications []Certification `yaml:"certifications,omitempty"`
}

// FindProject returns the project with the given title.
func (p *Portfolio) FindProject(title string) (*Project, bool) {
	for i := range p.Projects {
		if p.Projects[i].Title == title {
			return &p.Projects[i], true
		}
	}
	return nil, false
}

// SkillCount returns the number of skills across all categories.
func (p *Portfolio) SkillCount() int {
	n := 0
	for _, c := range p.Skills {
		n += len(c.Skills)
	}
	return n
}
