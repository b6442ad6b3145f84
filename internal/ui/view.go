package ui

import tea "github.com/charmbracelet/bubbletea"

// View is a self-contained Bubble Tea component. Modals on the ModalStack
// and the project overlay implement it.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
