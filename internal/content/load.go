package content

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts either a bare skill name or a {name, level} mapping.
func (e *SkillEntry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		e.Name = value.Value
		e.Level = 0
		return nil
	}
	if value.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(value.Content); i += 2 {
			switch k := value.Content[i]; k.Value {
			case "name", "level":
			default:
				return errors.Errorf("line %d: field %s not found in skill entry", k.Line, k.Value)
			}
		}
	}
	type plain SkillEntry
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*e = SkillEntry(p)
	return nil
}

// MarshalYAML writes entries without an explicit level as bare names.
func (e SkillEntry) MarshalYAML() (interface{}, error) {
	if e.Level == 0 {
		return e.Name, nil
	}
	type plain SkillEntry
	return plain(e), nil
}

// Load reads a portfolio from a YAML file. Sections default to
// DefaultSections when the file does not list any.
func Load(path string) (*Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading content file %s", path)
	}
	p, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "content file %s", path)
	}
	return p, nil
}

// Decode parses and validates a YAML portfolio. Unknown fields are rejected.
func Decode(r io.Reader) (*Portfolio, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Portfolio
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty content")
		}
		return nil, errors.Wrap(err, "decoding yaml")
	}
	if len(p.Sections) == 0 {
		p.Sections = DefaultSections()
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Export writes the portfolio as YAML.
func Export(w io.Writer, p *Portfolio) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return errors.Wrap(err, "encoding yaml")
	}
	return enc.Close()
}

// Validate checks the invariants the views rely on.
func (p *Portfolio) Validate() error {
	var problems []string
	if strings.TrimSpace(p.Profile.Name) == "" {
		problems = append(problems, "profile.name is required")
	}

	seenCategory := make(map[string]bool)
	for i, c := range p.Skills {
		if c.Name == "" {
			problems = append(problems, fmt.Sprintf("skills[%d]: name is required", i))
			continue
		}
		if c.Name == AllCategories {
			problems = append(problems, fmt.Sprintf("skills[%d]: %q is reserved", i, AllCategories))
		}
		if seenCategory[c.Name] {
			problems = append(problems, fmt.Sprintf("skills[%d]: duplicate category %q", i, c.Name))
		}
		seenCategory[c.Name] = true
		for j, s := range c.Skills {
			if s.Name == "" {
				problems = append(problems, fmt.Sprintf("skills[%d].skills[%d]: name is required", i, j))
			}
			if s.Level != 0 && (s.Level < MinLevel || s.Level > MaxLevel) {
				problems = append(problems, fmt.Sprintf("skills[%d].skills[%d]: level %d outside [%d,%d]", i, j, s.Level, MinLevel, MaxLevel))
			}
		}
	}

	for i, proj := range p.Projects {
		if strings.TrimSpace(proj.Title) == "" {
			problems = append(problems, fmt.Sprintf("projects[%d]: title is required", i))
		}
	}

	seenSection := make(map[string]bool)
	for i, s := range p.Sections {
		if s.ID == "" {
			problems = append(problems, fmt.Sprintf("sections[%d]: id is required", i))
		}
		if seenSection[s.ID] {
			problems = append(problems, fmt.Sprintf("sections[%d]: duplicate id %q", i, s.ID))
		}
		seenSection[s.ID] = true
	}

	if len(problems) > 0 {
		return errors.Errorf("invalid content: %s", strings.Join(problems, "; "))
	}
	return nil
}
