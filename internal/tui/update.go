package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tido/internal/search"
)

// updateNormal handles keys in Normal mode: navigation and mode entry.
func (a App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		a.state.MoveDown()

	case key.Matches(msg, a.keys.Up):
		a.state.MoveUp()

	case key.Matches(msg, a.keys.Search):
		a.searchInput.SetValue(a.state.FilterText())
		a.searchInput.CursorEnd()
		a.searchInput.Focus()
		a.mode = ModeSearch

	case key.Matches(msg, a.keys.Add):
		a.state.ClearScratch()
		a.scratchInput.Reset()
		a.scratchInput.Focus()
		a.mode = ModeAdd

	case key.Matches(msg, a.keys.Edit):
		// Editing needs a selection; without one the key does nothing.
		if a.state.BeginEdit() {
			a.scratchInput.SetValue(a.state.Scratch())
			a.scratchInput.CursorEnd()
			a.scratchInput.Focus()
			a.mode = ModeEdit
		}

	case key.Matches(msg, a.keys.Delete):
		if _, ok := a.state.SelectedTodo(); ok {
			a.mode = ModeConfirmDelete
		}

	case key.Matches(msg, a.keys.Yank):
		if todo, ok := a.state.SelectedTodo(); ok {
			// Clipboard failures (e.g. headless session) are ignored.
			_ = clipboard.WriteAll(todo.Text)
		}

	case key.Matches(msg, a.keys.Jump):
		a.jump.Reset()
		a.jump.Input.Focus()
		a.mode = ModeJump
	}

	return a, nil
}

// updateSearch handles keys in Search mode. Every keystroke reapplies
// the filter so the list narrows live.
func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Confirm):
		// Filter stays applied.
		a.searchInput.Blur()
		a.mode = ModeNormal
		return a, nil

	case key.Matches(msg, a.keys.Cancel):
		a.searchInput.Reset()
		a.searchInput.Blur()
		a.state.SetFilter("")
		a.mode = ModeNormal
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	a.state.SetFilter(a.searchInput.Value())
	return a, cmd
}

// updateAdd handles keys in Add mode.
func (a App) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Confirm):
		a.state.SetScratch(a.scratchInput.Value())
		a.state.Add()
		a.scratchInput.Reset()
		a.scratchInput.Blur()
		a.mode = ModeNormal
		return a, nil

	case key.Matches(msg, a.keys.Cancel):
		a.state.ClearScratch()
		a.scratchInput.Reset()
		a.scratchInput.Blur()
		a.mode = ModeNormal
		return a, nil
	}

	var cmd tea.Cmd
	a.scratchInput, cmd = a.scratchInput.Update(msg)
	a.state.SetScratch(a.scratchInput.Value())
	return a, cmd
}

// updateEdit handles keys in Edit mode.
func (a App) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Confirm):
		a.state.SetScratch(a.scratchInput.Value())
		a.state.CommitEdit()
		a.scratchInput.Reset()
		a.scratchInput.Blur()
		a.mode = ModeNormal
		return a, nil

	case key.Matches(msg, a.keys.Cancel):
		a.state.ClearScratch()
		a.scratchInput.Reset()
		a.scratchInput.Blur()
		a.mode = ModeNormal
		return a, nil
	}

	var cmd tea.Cmd
	a.scratchInput, cmd = a.scratchInput.Update(msg)
	a.state.SetScratch(a.scratchInput.Value())
	return a, cmd
}

// updateConfirmDelete handles keys in the delete confirmation dialog.
// Anything other than yes/no/cancel is ignored.
func (a App) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.ConfirmYes):
		a.state.Delete()
		a.mode = ModeNormal

	case key.Matches(msg, a.keys.ConfirmNo):
		a.mode = ModeNormal
	}

	return a, nil
}

// updateJump handles keys in the fuzzy jump overlay.
func (a App) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Cancel):
		a.jump.Reset()
		a.mode = ModeNormal
		return a, nil

	case key.Matches(msg, a.keys.Confirm):
		if len(a.jump.Results) > 0 {
			chosen := a.jump.Results[a.jump.Cursor].Todo
			// Jumping to a todo hidden by the filter clears the filter.
			a.state.SetFilter("")
			a.searchInput.Reset()
			a.state.SelectByID(chosen.ID)
		}
		a.jump.Reset()
		a.mode = ModeNormal
		return a, nil

	case key.Matches(msg, a.keys.NextMatch):
		if a.jump.Cursor < len(a.jump.Results)-1 {
			a.jump.Cursor++
		}
		return a, nil

	case key.Matches(msg, a.keys.PrevMatch):
		if a.jump.Cursor > 0 {
			a.jump.Cursor--
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.jump.Input, cmd = a.jump.Input.Update(msg)
	a.jump.Results = search.FuzzySearchTodos(a.state.Todos(), a.jump.Input.Value())
	a.jump.Cursor = 0
	return a, cmd
}
