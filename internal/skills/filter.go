// Package skills implements the skill filter: a text and category filter over
// the flattened skill records of a portfolio.
package skills

import (
	"strings"

	"folio/internal/content"
)

// All is the category value that disables the category predicate.
const All = content.AllCategories

// State is the filter's mutable input.
type State struct {
	ActiveCategory string
	SearchText     string
}

// DefaultState is the state after construction and after Clear.
func DefaultState() State {
	return State{ActiveCategory: All}
}

// Filter owns a State over an immutable category list.
type Filter struct {
	categories []content.Category
	all        []content.Skill
	state      State
}

// NewFilter builds a filter for the given categories. The slice is copied;
// later changes to it are not observed.
func NewFilter(categories []content.Category) *Filter {
	cats := make([]content.Category, len(categories))
	copy(cats, categories)
	return &Filter{
		categories: cats,
		all:        Flatten(cats),
		state:      DefaultState(),
	}
}

// Flatten turns categories into skill records in category order, then
// list order.
func Flatten(categories []content.Category) []content.Skill {
	var out []content.Skill
	for _, c := range categories {
		for _, e := range c.Skills {
			out = append(out, content.Skill{
				Name:     e.Name,
				Category: c.Name,
				Level:    content.LevelFor(c.Name, e),
			})
		}
	}
	return out
}

// State returns the current filter state.
func (f *Filter) State() State {
	return f.state
}

// SetCategory selects a category. Values that are neither All nor a known
// category are accepted and produce an empty result.
func (f *Filter) SetCategory(c string) {
	f.state.ActiveCategory = c
}

// SetSearchText sets the case-insensitive substring to match names against.
func (f *Filter) SetSearchText(s string) {
	f.state.SearchText = s
}

// Clear resets the state to DefaultState.
func (f *Filter) Clear() {
	f.state = DefaultState()
}

// Categories returns All followed by the category names in order.
func (f *Filter) Categories() []string {
	out := make([]string, 0, len(f.categories)+1)
	out = append(out, All)
	for _, c := range f.categories {
		out = append(out, c.Name)
	}
	return out
}

// CycleCategory moves the active category delta steps through Categories,
// wrapping at both ends. An unknown active category restarts from All.
func (f *Filter) CycleCategory(delta int) string {
	cats := f.Categories()
	idx := 0
	for i, c := range cats {
		if c == f.state.ActiveCategory {
			idx = i
			break
		}
	}
	n := len(cats)
	idx = ((idx+delta)%n + n) % n
	f.state.ActiveCategory = cats[idx]
	return f.state.ActiveCategory
}

// All returns every skill, unfiltered.
func (f *Filter) All() []content.Skill {
	out := make([]content.Skill, len(f.all))
	copy(out, f.all)
	return out
}

// Filtered returns the skills matching both the category and the search text.
func (f *Filter) Filtered() []content.Skill {
	return Apply(f.all, f.state)
}

// Empty reports whether the current state matches nothing. Views use it to
// offer Clear.
func (f *Filter) Empty() bool {
	return len(f.Filtered()) == 0
}

// Apply filters skills by st. Both predicates must hold; empty search text
// matches every name.
func Apply(skills []content.Skill, st State) []content.Skill {
	needle := strings.ToLower(st.SearchText)
	out := make([]content.Skill, 0, len(skills))
	for _, s := range skills {
		if st.ActiveCategory != All && s.Category != st.ActiveCategory {
			continue
		}
		if !strings.Contains(strings.ToLower(s.Name), needle) {
			continue
		}
		out = append(out, s)
	}
	return out
}
