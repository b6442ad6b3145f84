// Package ui renders the portfolio as a Bubble Tea program.
//
// AppModel owns the page: a section bar, a scrolling body built by
// renderPage, and a footer with key hints. Page state lives in Shell
// (section menu, active section, project overlay selection). Input is
// routed by AppMode: picker modals on the ModalStack first, then the
// project overlay, then the skill search box, then the leader-key
// KeyHandler, then page navigation.
//
// Mouse clicks are hit-tested against region trees (see package hit), so
// the overlay's backdrop closes it only when the click lands on the
// backdrop itself.
package ui
