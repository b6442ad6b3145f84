package overlay

import "folio/internal/hit"

// Elements of the overlay.
const (
	Backdrop    hit.ElementID = "overlay.backdrop"
	Content     hit.ElementID = "overlay.content"
	CloseButton hit.ElementID = "overlay.close"
)

// HandleBackdropClick closes the overlay when the click originated on the
// element the listener is bound to, not on a descendant of it. It reports
// whether the overlay was closed.
func (s *Selection) HandleBackdropClick(ev hit.Event) bool {
	if ev.Target != ev.CurrentTarget {
		return false
	}
	if !s.Active() {
		return false
	}
	s.Close()
	return true
}

// Listeners returns the overlay's click bindings: the backdrop rule and the
// close control.
func (s *Selection) Listeners() map[hit.ElementID]hit.Listener {
	return map[hit.ElementID]hit.Listener{
		Backdrop:    s.HandleBackdropClick,
		CloseButton: func(hit.Event) bool {
			s.Close()
			return true
		},
	}
}

// Layout returns the overlay's regions for a screen of the given size with
// the content box at box and the close control at closeButton.
func Layout(screenW, screenH int, box, closeButton hit.Rect) hit.Region {
	return hit.Region{
		ID:     Backdrop,
		Bounds: hit.Rect{W: screenW, H: screenH},
		Children: []hit.Region{{
			ID:     Content,
			Bounds: box,
			Children: []hit.Region{{
				ID:     CloseButton,
				Bounds: closeButton,
			}},
		}},
	}
}
