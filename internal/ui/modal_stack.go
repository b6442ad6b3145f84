package ui

import tea "github.com/charmbracelet/bubbletea"

// ModalStack holds picker modals above the page. The top modal receives
// input first; the page is inert while the stack is non-empty.
type ModalStack struct {
	Stack []View
}

// Push adds a modal to the top of the stack.
func (s *ModalStack) Push(v View) {
	s.Stack = append(s.Stack, v)
}

// Pop removes and returns the top modal.
func (s *ModalStack) Pop() (View, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top modal without removing it.
func (s *ModalStack) Peek() (View, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of modals.
func (s *ModalStack) Len() int {
	return len(s.Stack)
}

// UpdateTop passes msg to the top modal and stores the returned View.
// The caller runs the returned cmd.
func (s *ModalStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	next, cmd := (*top).Update(msg)
	*top = next
	return cmd, true
}
