// Package nav tracks which page section is active and whether the section
// menu is open.
package nav

// DefaultAnchor is the viewport row, counted from the top, that decides the
// active section.
const DefaultAnchor = 3

// Extent is a section's vertical span in page rows. Bottom is inclusive.
type Extent struct {
	ID     string
	Top    int
	Bottom int
}

// Active returns the first section whose span, measured relative to the
// viewport's top row, contains the anchor row. ok is false when no section
// covers it; callers keep their previous active section in that case.
func Active(sections []Extent, scrollTop, anchor int) (id string, ok bool) {
	for _, s := range sections {
		top := s.Top - scrollTop
		bottom := s.Bottom - scrollTop
		if top <= anchor && bottom >= anchor {
			return s.ID, true
		}
	}
	return "", false
}

// Offset returns the page row a section starts at.
func Offset(sections []Extent, id string) (int, bool) {
	for _, s := range sections {
		if s.ID == id {
			return s.Top, true
		}
	}
	return 0, false
}

// Spy remembers the active section across scroll updates.
type Spy struct {
	Current string
	Anchor  int
}

// NewSpy starts with initial as the active section.
func NewSpy(initial string) *Spy {
	return &Spy{Current: initial, Anchor: DefaultAnchor}
}

// Observe updates Current for a new scroll position and reports whether it
// changed.
func (s *Spy) Observe(sections []Extent, scrollTop int) bool {
	id, ok := Active(sections, scrollTop, s.Anchor)
	if !ok || id == s.Current {
		return false
	}
	s.Current = id
	return true
}

// Menu is the open/closed state of the section menu.
type Menu struct {
	Open bool
}

// Toggle flips the menu.
func (m *Menu) Toggle() {
	m.Open = !m.Open
}

// Close closes the menu. Jumping to a section closes it.
func (m *Menu) Close() {
	m.Open = false
}
