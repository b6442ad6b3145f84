package ui

import "folio/internal/content"

// OpenProjectMsg opens the overlay on the project at Index.
type OpenProjectMsg struct {
	Index int
	Via   string // "key" or "mouse"
}

// CloseOverlayMsg closes the project overlay.
type CloseOverlayMsg struct {
	Via string // "key", "button" or "backdrop"
}

// JumpSectionMsg scrolls the page to a section and closes the menu.
type JumpSectionMsg struct {
	ID string
}

// ToggleMenuMsg opens or closes the section menu.
type ToggleMenuMsg struct{}

// ToggleSkillsViewMsg switches between the simple and the filterable skills view.
type ToggleSkillsViewMsg struct{}

// FocusSearchMsg moves input focus to the skill search box.
type FocusSearchMsg struct{}

// CycleCategoryMsg steps the skill category selector.
type CycleCategoryMsg struct {
	Delta int
}

// SetCategoryMsg selects a skill category (from the picker).
type SetCategoryMsg struct {
	Category string
}

// ClearFiltersMsg resets the skill filter.
type ClearFiltersMsg struct{}

// ShowCategoryPickerMsg pushes the category picker modal.
type ShowCategoryPickerMsg struct{}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}

// CopyLinkMsg copies the open project's link to the clipboard.
type CopyLinkMsg struct{}

// statusMsg replaces the footer status line.
type statusMsg string

// ContentReloadedMsg carries a re-read content file. Err is set when the
// file no longer loads; the page keeps its current content then.
type ContentReloadedMsg struct {
	Portfolio *content.Portfolio
	Err       error
}
