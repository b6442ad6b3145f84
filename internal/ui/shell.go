package ui

import (
	"folio/internal/content"
	"folio/internal/nav"
	"folio/internal/overlay"
)

// Shell is the page-level state shared by every section: whether the
// section menu is open, which section is active, and the project overlay
// selection.
type Shell struct {
	Menu    nav.Menu
	Spy     *nav.Spy
	Overlay overlay.Selection
}

// NewShell starts on the first section with the menu and overlay closed.
func NewShell(sections []content.Section) *Shell {
	initial := ""
	if len(sections) > 0 {
		initial = sections[0].ID
	}
	return &Shell{Spy: nav.NewSpy(initial)}
}

// Jump makes id the active section and closes the menu.
func (s *Shell) Jump(id string) {
	s.Spy.Current = id
	s.Menu.Close()
}

// ActiveSection returns the section the page is showing.
func (s *Shell) ActiveSection() string {
	return s.Spy.Current
}
