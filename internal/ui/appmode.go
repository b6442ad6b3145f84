package ui

// AppMode is where key input goes first.
type AppMode int

const (
	ModePage    AppMode = iota // scrolling the page
	ModeSearch                 // typing into the skill search box
	ModeMenu                   // section menu open
	ModeOverlay                // project overlay open
	ModeModal                  // a picker modal is on the overlay stack
)

func (m AppMode) String() string {
	switch m {
	case ModePage:
		return "Page"
	case ModeSearch:
		return "Search"
	case ModeMenu:
		return "Menu"
	case ModeOverlay:
		return "Overlay"
	case ModeModal:
		return "Modal"
	default:
		return "Unknown"
	}
}
