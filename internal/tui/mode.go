package tui

// Mode is the current interpretation context for incoming keys.
type Mode int

const (
	// ModeNormal is the initial mode: navigation and action keys.
	ModeNormal Mode = iota
	// ModeSearch routes typed text into the filter.
	ModeSearch
	// ModeAdd routes typed text into the scratch buffer for a new todo.
	ModeAdd
	// ModeEdit routes typed text into the scratch buffer for the selected todo.
	ModeEdit
	// ModeConfirmDelete shows the delete confirmation dialog.
	ModeConfirmDelete
	// ModeJump shows the fuzzy jump overlay.
	ModeJump
)

// String returns the mode name for status display.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeSearch:
		return "Search"
	case ModeAdd:
		return "Add"
	case ModeEdit:
		return "Edit"
	case ModeConfirmDelete:
		return "Confirm"
	case ModeJump:
		return "Jump"
	default:
		return "Unknown"
	}
}
