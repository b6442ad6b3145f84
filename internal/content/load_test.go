package content

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
profile:
  name: Ada
  initials: AL
  role: Engineer
  tagline: Analytical engines
  email: ada@example.com
skills:
  - name: A
    skills: [x, xy]
  - name: B
    skills:
      - name: z
        level: 2
projects:
  - title: P1
    description: first
    tools: [Go]
    details:
      duration: 1 week
      github_url: https://example.com/p1
`

func TestDecode_ScalarAndMappingSkills(t *testing.T) {
	p, err := Decode(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	require.Len(t, p.Skills, 2)
	assert.Equal(t, "A", p.Skills[0].Name)
	assert.Equal(t, []string{"x", "xy"}, p.Skills[0].Names())
	assert.Equal(t, 0, p.Skills[0].Skills[0].Level)
	assert.Equal(t, SkillEntry{Name: "z", Level: 2}, p.Skills[1].Skills[0])

	require.Len(t, p.Projects, 1)
	require.NotNil(t, p.Projects[0].Details)
	assert.Equal(t, "https://example.com/p1", p.Projects[0].Details.GitHubURL)
	assert.Empty(t, p.Projects[0].Details.DemoURL)
}

func TestDecode_DefaultsSections(t *testing.T) {
	p, err := Decode(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, DefaultSections(), p.Sections)
}

func TestDecode_RejectsUnknownField(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"top level", "profile:\n  name: Ada\nbogus: 1\n", "bogus"},
		{"profile", "profile:\n  nmae: Ada\n", "nmae"},
		{"skill entry", "profile:\n  name: Ada\nskills:\n  - name: Data\n    skills: [{name: SQL, levle: 4}]\n", "levle"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDecode_EmptyInput(t *testing.T) {
	_, err := Decode(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty content")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Portfolio)
		wantErr string
	}{
		{
			name:   "default is valid",
			mutate: func(p *Portfolio) {},
		},
		{
			name:    "level out of range",
			mutate:  func(p *Portfolio) { p.Skills[0].Skills[0].Level = 6 },
			wantErr: "level 6 outside [1,5]",
		},
		{
			name:    "missing project title",
			mutate:  func(p *Portfolio) { p.Projects[1].Title = " " },
			wantErr: "projects[1]: title is required",
		},
		{
			name:    "reserved category",
			mutate:  func(p *Portfolio) { p.Skills[2].Name = AllCategories },
			wantErr: `"all" is reserved`,
		},
		{
			name:    "duplicate category",
			mutate:  func(p *Portfolio) { p.Skills[1].Name = p.Skills[0].Name },
			wantErr: "duplicate category",
		},
		{
			name:    "duplicate section",
			mutate:  func(p *Portfolio) { p.Sections[1].ID = p.Sections[0].ID },
			wantErr: "duplicate id",
		},
		{
			name:    "missing profile name",
			mutate:  func(p *Portfolio) { p.Profile.Name = "" },
			wantErr: "profile.name is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mutate(p)
			err := p.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestExportThenLoad_PreservesOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, Default()))

	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	p, err := Load(path)
	require.NoError(t, err)

	want := Default()
	require.Len(t, p.Skills, len(want.Skills))
	for i := range want.Skills {
		assert.Equal(t, want.Skills[i].Name, p.Skills[i].Name)
		assert.Equal(t, want.Skills[i].Names(), p.Skills[i].Names())
	}
	assert.Equal(t, want.Projects, p.Projects)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading content file")
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, 2, LevelFor("B", SkillEntry{Name: "z", Level: 2}))

	first := LevelFor("Tools", SkillEntry{Name: "SQL"})
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, LevelFor("Tools", SkillEntry{Name: "SQL"}), "derived level must be stable")
	}
	for _, c := range Default().Skills {
		for _, s := range c.Skills {
			lvl := LevelFor(c.Name, s)
			assert.GreaterOrEqual(t, lvl, 3)
			assert.LessOrEqual(t, lvl, MaxLevel)
		}
	}
}

func TestPortfolio_FindProject(t *testing.T) {
	p := Default()
	got, ok := p.FindProject("Tableau: COVID Data Dashboard")
	require.True(t, ok)
	assert.Equal(t, "2 weeks", got.Details.Duration)

	_, ok = p.FindProject("missing")
	assert.False(t, ok)
	assert.Equal(t, 16, p.SkillCount())
}
