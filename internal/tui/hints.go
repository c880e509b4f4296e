package tui

import "strings"

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "Enter")
	Desc string // Short description (e.g., "move", "save")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for the bottom bar:
// "j/k:move /:search a:add".
func (a App) renderHints(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, "  ")
}

// getContextualHints returns the appropriate hints for the current mode.
func (a App) getContextualHints() []Hint {
	switch a.mode {
	case ModeNormal:
		return []Hint{
			{Key: "j/k", Desc: "move"},
			{Key: "/", Desc: "search"},
			{Key: "s", Desc: "jump"},
			{Key: "a", Desc: "add"},
			{Key: "i", Desc: "edit"},
			{Key: "r/d", Desc: "remove"},
			{Key: "y", Desc: "yank"},
			{Key: "q/esc", Desc: "quit"},
		}
	case ModeSearch:
		return []Hint{
			{Key: "enter", Desc: "apply filter"},
			{Key: "esc", Desc: "clear filter"},
		}
	case ModeAdd:
		return []Hint{
			{Key: "enter", Desc: "save todo"},
			{Key: "esc", Desc: "cancel"},
		}
	case ModeEdit:
		return []Hint{
			{Key: "enter", Desc: "save changes"},
			{Key: "esc", Desc: "cancel"},
		}
	case ModeConfirmDelete:
		return []Hint{
			{Key: "y", Desc: "delete"},
			{Key: "n/esc", Desc: "cancel"},
		}
	case ModeJump:
		return []Hint{
			{Key: "↑/↓", Desc: "move"},
			{Key: "enter", Desc: "jump"},
			{Key: "esc", Desc: "cancel"},
		}
	default:
		return nil
	}
}
