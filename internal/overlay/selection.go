// Package overlay holds the project-detail overlay state: which project is
// selected, whether the overlay is visible, and the backdrop hit-test rule
// that decides when a click closes it.
package overlay

import "folio/internal/content"

// State is the overlay's state machine position.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	switch s {
	case Closed:
		return "Closed"
	case Open:
		return "Open"
	default:
		return "Unknown"
	}
}

// Selection is owned by the page shell and read by the overlay view.
// Invariant: visible implies selected != nil.
type Selection struct {
	selected *content.Project
	visible  bool
}

// Open selects p and shows the overlay. Opening while already open replaces
// the selection. A nil project leaves the selection closed.
func (s *Selection) Open(p *content.Project) {
	if p == nil {
		s.Close()
		return
	}
	s.selected = p
	s.visible = true
}

// Close clears the selection. Closing a closed overlay is a no-op.
func (s *Selection) Close() {
	s.selected = nil
	s.visible = false
}

// Selected returns the selected project, or nil.
func (s *Selection) Selected() *content.Project {
	return s.selected
}

// Visible reports the visible flag.
func (s *Selection) Visible() bool {
	return s.visible
}

// Active reports whether the overlay should render anything at all.
func (s *Selection) Active() bool {
	return s.visible && s.selected != nil
}

// State returns Open when Active, Closed otherwise.
func (s *Selection) State() State {
	if s.Active() {
		return Open
	}
	return Closed
}
