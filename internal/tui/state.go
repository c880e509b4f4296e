package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"tido/internal/search"
	"tido/internal/tui/layout"
)

// JumpState holds state for the fuzzy jump overlay.
type JumpState struct {
	Input   textinput.Model // query input
	Results []search.Result // current fuzzy matches
	Cursor  int             // selected index in Results
}

// NewJumpState creates a JumpState with an initialized input.
func NewJumpState(cfg layout.LayoutConfig) JumpState {
	input := textinput.New()
	input.Placeholder = "Jump to..."
	input.CharLimit = cfg.Input.FilterCharLimit
	input.Width = cfg.Input.StandardWidth

	return JumpState{
		Input: input,
	}
}

// Reset clears the jump state for a new session.
func (j *JumpState) Reset() {
	j.Input.Reset()
	j.Results = nil
	j.Cursor = 0
}
