package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tido/internal/tui/layout"
)

// renderView creates the complete frame for the current mode.
func (a App) renderView() string {
	switch a.mode {
	case ModeConfirmDelete:
		return a.renderConfirmModal()
	case ModeJump:
		return a.renderJumpView()
	}

	snap := a.Snapshot()

	inputBar := a.renderInputBar(snap)
	list := a.renderList(snap)
	hintBar := a.renderHints(a.getContextualHints())

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left, inputBar, list, hintBar),
	)

	// Place pins the frame to exact terminal dimensions.
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderInputBar renders the top bar: the active text input in Search,
// Add and Edit modes, otherwise the filter status.
func (a App) renderInputBar(snap Snapshot) string {
	var text string

	switch snap.Mode {
	case ModeSearch:
		text = "Search: " + a.searchInput.View()
	case ModeAdd:
		text = "New todo: " + a.scratchInput.View()
	case ModeEdit:
		text = "Edit todo: " + a.scratchInput.View()
	default:
		if snap.FilterText != "" {
			text = a.styles.Filter.Render(fmt.Sprintf("Press '/' to search (filter: %s)", snap.FilterText))
		} else {
			text = a.styles.Filter.Render("Press '/' to search")
		}
	}

	style := a.styles.Pane
	if snap.Mode == ModeSearch || snap.Mode == ModeAdd || snap.Mode == ModeEdit {
		style = a.styles.PaneActive
	}

	return style.Width(a.width - 4).Render(text)
}

// renderList renders the filtered todo list with selection marker.
func (a App) renderList(snap Snapshot) string {
	var content strings.Builder

	content.WriteString(a.styles.Title.Render(fmt.Sprintf("Todos (%d shown)", len(snap.Visible))))
	content.WriteString("\n")

	visibleHeight := layout.CalculateListHeight(a.height, a.layoutConfig.List)
	rowWidth := layout.CalculateRowWidth(a.width, a.layoutConfig.List)

	if len(snap.Visible) == 0 {
		if snap.FilterText != "" {
			content.WriteString(a.styles.Empty.Render("(no matches)"))
		} else {
			content.WriteString(a.styles.Empty.Render("(no todos)"))
		}
	} else {
		offset := layout.CalculateViewportOffset(snap.Selected, len(snap.Visible), visibleHeight)

		for i, todo := range snap.Visible {
			if i < offset {
				continue
			}
			if i >= offset+visibleHeight {
				break
			}

			line, _ := layout.TruncateText(todo.Text, rowWidth, a.layoutConfig.Text)
			if i == snap.Selected {
				content.WriteString(a.styles.Marker.Render("-> ") + a.styles.ItemSelected.Render(line))
			} else {
				content.WriteString("-  " + a.styles.Item.Render(line))
			}
			content.WriteString("\n")
		}
	}

	return a.styles.Pane.
		Width(a.width - 4).
		Height(visibleHeight).
		Render(strings.TrimRight(content.String(), "\n"))
}

// renderConfirmModal renders the full-screen delete confirmation.
func (a App) renderConfirmModal() string {
	todo, ok := a.state.SelectedTodo()
	if !ok {
		// Should not happen: the dialog only opens with a selection.
		return a.styles.Empty.Render("")
	}

	modalWidth := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal)
	text, _ := layout.TruncateText(todo.Text, modalWidth-4, a.layoutConfig.Text)

	var content strings.Builder
	content.WriteString(a.styles.Title.Render("Delete this todo?"))
	content.WriteString("\n\n")
	content.WriteString(a.styles.Item.Render(text))
	content.WriteString("\n\n")
	content.WriteString(a.renderHints(a.getContextualHints()))

	box := a.styles.Modal.Width(modalWidth).Render(content.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, box)
}

// renderJumpView renders the fuzzy jump overlay.
func (a App) renderJumpView() string {
	rowWidth := layout.CalculateRowWidth(a.width, a.layoutConfig.List)

	var content strings.Builder
	content.WriteString(a.styles.Title.Render(fmt.Sprintf("Jump (%d matches)", len(a.jump.Results))))
	content.WriteString("\n\n")
	content.WriteString(a.jump.Input.View())
	content.WriteString("\n\n")

	if len(a.jump.Results) == 0 {
		content.WriteString(a.styles.Empty.Render("(no matches)"))
		content.WriteString("\n")
	} else {
		start, end := layout.CalculateVisibleListItems(
			a.layoutConfig.Jump.MaxVisible, a.jump.Cursor, len(a.jump.Results))

		for i := start; i < end; i++ {
			result := a.jump.Results[i]
			line := a.highlightMatches(result.Todo.Text, result.MatchedIndexes)
			line = layout.TruncateANSIAware(line, rowWidth, a.layoutConfig.Text)

			if i == a.jump.Cursor {
				content.WriteString(a.styles.Marker.Render("-> ") + line)
			} else {
				content.WriteString("-  " + line)
			}
			content.WriteString("\n")
		}
	}

	content.WriteString("\n")
	content.WriteString(a.renderHints(a.getContextualHints()))

	box := a.styles.PaneActive.Width(a.width - 4).Render(strings.TrimRight(content.String(), "\n"))
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, a.styles.App.Render(box))
}

// highlightMatches styles the matched runes of a jump result.
func (a App) highlightMatches(text string, indexes []int) string {
	if len(indexes) == 0 {
		return a.styles.Item.Render(text)
	}

	matched := make(map[int]bool, len(indexes))
	for _, idx := range indexes {
		matched[idx] = true
	}

	// MatchedIndexes are byte offsets, so range over the string directly.
	var b strings.Builder
	for i, r := range text {
		if matched[i] {
			b.WriteString(a.styles.Match.Render(string(r)))
		} else {
			b.WriteString(a.styles.Item.Render(string(r)))
		}
	}
	return b.String()
}
