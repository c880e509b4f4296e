package app

import (
	"strings"

	"tido/internal/model"
)

// NoSelection is the selection value used while the visible view is empty.
const NoSelection = -1

// State owns the todo collection, the active filter text, the visible
// view derived from it, the selection cursor, and the scratch buffer
// used while composing or editing an item.
//
// Every operation is total: conditions such as moving over an empty
// view or committing an edit with no selection degrade to no-ops, so
// a stray keystroke can never leave the state inconsistent.
type State struct {
	todos      []model.Todo
	filterText string
	visible    []model.Todo // always todos filtered by filterText
	selected   int          // index into visible, NoSelection iff visible is empty
	scratch    string
	editID     string // ID of the todo being edited, set by BeginEdit
}

// NewState creates a State over a copy of the given todos.
// Selection starts on the first item when the list is non-empty.
func NewState(todos []model.Todo) *State {
	s := &State{
		todos:    append([]model.Todo{}, todos...),
		selected: NoSelection,
	}
	s.refilter("")
	return s
}

// Todos returns a copy of the full collection in insertion order.
func (s *State) Todos() []model.Todo {
	return append([]model.Todo{}, s.todos...)
}

// Visible returns a copy of the filtered view.
func (s *State) Visible() []model.Todo {
	return append([]model.Todo{}, s.visible...)
}

// FilterText returns the active filter text.
func (s *State) FilterText() string {
	return s.filterText
}

// Scratch returns the current scratch buffer text.
func (s *State) Scratch() string {
	return s.scratch
}

// Selected returns the selection index into the visible view,
// or NoSelection when the view is empty.
func (s *State) Selected() int {
	return s.selected
}

// SelectedTodo returns the currently selected todo, if any.
func (s *State) SelectedTodo() (model.Todo, bool) {
	if s.selected == NoSelection {
		return model.Todo{}, false
	}
	return s.visible[s.selected], true
}

// MoveUp moves the selection up one item, wrapping to the bottom.
// An absent selection lands on the first item. No-op on an empty view.
func (s *State) MoveUp() {
	if len(s.visible) == 0 {
		return
	}
	switch {
	case s.selected == NoSelection:
		s.selected = 0
	case s.selected > 0:
		s.selected--
	default:
		s.selected = len(s.visible) - 1
	}
}

// MoveDown moves the selection down one item, wrapping to the top.
// An absent selection lands on the first item. No-op on an empty view.
func (s *State) MoveDown() {
	if len(s.visible) == 0 {
		return
	}
	switch {
	case s.selected == NoSelection:
		s.selected = 0
	case s.selected < len(s.visible)-1:
		s.selected++
	default:
		s.selected = 0
	}
}

// SetFilter replaces the filter text and recomputes the visible view
// using case-insensitive substring matching. The selection follows the
// previously selected todo when it is still visible; otherwise the old
// index is clamped into range.
func (s *State) SetFilter(text string) {
	keepID := s.selectedID()
	s.filterText = text
	s.refilter(keepID)
}

// SetScratch replaces the scratch buffer text.
func (s *State) SetScratch(text string) {
	s.scratch = text
}

// ClearScratch empties the scratch buffer and forgets any edit target.
func (s *State) ClearScratch() {
	s.scratch = ""
	s.editID = ""
}

// Add appends a todo built from the scratch buffer and clears the
// buffer. An empty buffer is a no-op: empty items are never stored.
func (s *State) Add() {
	if s.scratch == "" {
		return
	}
	keepID := s.selectedID()
	s.todos = append(s.todos, model.NewTodo(s.scratch))
	s.scratch = ""
	s.refilter(keepID)
}

// BeginEdit loads the selected todo's text into the scratch buffer and
// records its ID as the edit target. Returns false without touching
// anything when there is no selection; the caller must not enter edit
// mode in that case.
func (s *State) BeginEdit() bool {
	todo, ok := s.SelectedTodo()
	if !ok {
		return false
	}
	s.scratch = todo.Text
	s.editID = todo.ID
	return true
}

// CommitEdit overwrites the edit target's text with the scratch buffer
// and recomputes the visible view. An empty buffer or a vanished
// target is a no-op. The scratch buffer and edit target are cleared
// either way.
func (s *State) CommitEdit() {
	id := s.editID
	text := s.scratch
	s.scratch = ""
	s.editID = ""

	if id == "" || text == "" {
		return
	}
	idx := indexByID(s.todos, id)
	if idx < 0 {
		return
	}
	s.todos[idx].Text = text
	s.refilter(id)
}

// Delete removes the selected todo from the collection. The selection
// stays at the same position in the shrunk view, clamped to the last
// item. No-op when nothing is selected.
func (s *State) Delete() {
	todo, ok := s.SelectedTodo()
	if !ok {
		return
	}
	idx := indexByID(s.todos, todo.ID)
	if idx < 0 {
		return
	}
	s.todos = append(s.todos[:idx], s.todos[idx+1:]...)

	old := s.selected
	s.applyFilter()
	if len(s.visible) == 0 {
		s.selected = NoSelection
		return
	}
	s.selected = min(old, len(s.visible)-1)
}

// SelectByID moves the selection to the todo with the given ID if it
// is currently visible. No-op otherwise.
func (s *State) SelectByID(id string) {
	if idx := indexByID(s.visible, id); idx >= 0 {
		s.selected = idx
	}
}

// selectedID returns the ID of the selected todo, or "" when none.
func (s *State) selectedID() string {
	if s.selected == NoSelection {
		return ""
	}
	return s.visible[s.selected].ID
}

// applyFilter recomputes visible from todos and filterText.
func (s *State) applyFilter() {
	if s.filterText == "" {
		s.visible = append([]model.Todo{}, s.todos...)
		return
	}
	needle := strings.ToLower(s.filterText)
	out := make([]model.Todo, 0, len(s.todos))
	for _, todo := range s.todos {
		if strings.Contains(strings.ToLower(todo.Text), needle) {
			out = append(out, todo)
		}
	}
	s.visible = out
}

// refilter recomputes the visible view and re-points the selection.
// When keepID names a todo still visible, the selection follows it;
// otherwise the old index is clamped into range, or dropped entirely
// when the view became empty.
func (s *State) refilter(keepID string) {
	s.applyFilter()
	if len(s.visible) == 0 {
		s.selected = NoSelection
		return
	}
	if keepID != "" {
		if idx := indexByID(s.visible, keepID); idx >= 0 {
			s.selected = idx
			return
		}
	}
	if s.selected == NoSelection {
		s.selected = 0
		return
	}
	if s.selected >= len(s.visible) {
		s.selected = len(s.visible) - 1
	}
}

// indexByID finds a todo by ID, returns -1 if not present.
func indexByID(todos []model.Todo, id string) int {
	for i := range todos {
		if todos[i].ID == id {
			return i
		}
	}
	return -1
}
