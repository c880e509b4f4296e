package app_test

import (
	"testing"

	"tido/internal/app"
	"tido/internal/model"
)

func newTodos(texts ...string) []model.Todo {
	todos := make([]model.Todo, len(texts))
	for i, text := range texts {
		todos[i] = model.NewTodo(text)
	}
	return todos
}

func visibleTexts(s *app.State) []string {
	visible := s.Visible()
	texts := make([]string, len(visible))
	for i, todo := range visible {
		texts[i] = todo.Text
	}
	return texts
}

// checkSelectionValid asserts that the selection is absent exactly when
// the visible view is empty, and in range otherwise.
func checkSelectionValid(t *testing.T, s *app.State) {
	t.Helper()
	visible := s.Visible()
	if len(visible) == 0 {
		if s.Selected() != app.NoSelection {
			t.Errorf("empty view must have no selection, got %d", s.Selected())
		}
		return
	}
	if s.Selected() < 0 || s.Selected() >= len(visible) {
		t.Errorf("selection %d out of range for view of %d", s.Selected(), len(visible))
	}
}

func TestState_InitialSelection(t *testing.T) {
	s := app.NewState(newTodos("a", "b"))
	if s.Selected() != 0 {
		t.Errorf("expected initial selection 0, got %d", s.Selected())
	}

	empty := app.NewState(nil)
	if empty.Selected() != app.NoSelection {
		t.Errorf("empty state should have no selection, got %d", empty.Selected())
	}
}

func TestState_MoveSelection_Cyclic(t *testing.T) {
	s := app.NewState(newTodos("a", "b", "c"))

	// Down from the last item wraps to the first.
	s.MoveDown()
	s.MoveDown()
	if s.Selected() != 2 {
		t.Fatalf("expected selection 2, got %d", s.Selected())
	}
	s.MoveDown()
	if s.Selected() != 0 {
		t.Errorf("down from last item should wrap to 0, got %d", s.Selected())
	}

	// Up from the first item wraps to the last.
	s.MoveUp()
	if s.Selected() != 2 {
		t.Errorf("up from first item should wrap to 2, got %d", s.Selected())
	}
}

func TestState_MoveSelection_FullCycleReturnsToStart(t *testing.T) {
	s := app.NewState(newTodos("a", "b", "c", "d"))
	s.MoveDown() // start at 1

	for i := 0; i < len(s.Visible()); i++ {
		s.MoveDown()
	}
	if s.Selected() != 1 {
		t.Errorf("a full down cycle should return to 1, got %d", s.Selected())
	}

	for i := 0; i < len(s.Visible()); i++ {
		s.MoveUp()
	}
	if s.Selected() != 1 {
		t.Errorf("a full up cycle should return to 1, got %d", s.Selected())
	}
}

func TestState_MoveSelection_EmptyView(t *testing.T) {
	s := app.NewState(nil)
	s.MoveDown()
	s.MoveUp()
	if s.Selected() != app.NoSelection {
		t.Errorf("movement over an empty view should stay unselected, got %d", s.Selected())
	}
}

func TestState_SetFilter_SubstringCaseInsensitive(t *testing.T) {
	s := app.NewState(newTodos("Learn Rust", "Build a TUI app"))

	s.SetFilter("tui")

	got := visibleTexts(s)
	if len(got) != 1 || got[0] != "Build a TUI app" {
		t.Fatalf("filter %q should match only the TUI item, got %v", "tui", got)
	}
	if s.Selected() != 0 {
		t.Errorf("selection should clamp to 0, got %d", s.Selected())
	}
	checkSelectionValid(t, s)
}

func TestState_SetFilter_EmptyShowsAll(t *testing.T) {
	s := app.NewState(newTodos("a", "b", "c"))
	s.SetFilter("b")
	s.SetFilter("")

	if len(s.Visible()) != 3 {
		t.Errorf("empty filter should show all 3 items, got %d", len(s.Visible()))
	}
	checkSelectionValid(t, s)
}

func TestState_SetFilter_SelectionFollowsItem(t *testing.T) {
	s := app.NewState(newTodos("Build a TUI app", "Learn Rust"))

	s.SetFilter("rust")
	if got := visibleTexts(s); len(got) != 1 || got[0] != "Learn Rust" {
		t.Fatalf("expected only %q visible, got %v", "Learn Rust", got)
	}

	// Widening the filter keeps the selection on the same item, now at
	// its position in the full list.
	s.SetFilter("")
	if s.Selected() != 1 {
		t.Errorf("selection should follow %q to index 1, got %d", "Learn Rust", s.Selected())
	}
}

func TestState_SetFilter_ClampWhenSelectedItemDisappears(t *testing.T) {
	s := app.NewState(newTodos("apple", "banana", "cherry"))
	s.MoveDown()
	s.MoveDown() // select "cherry"

	s.SetFilter("an") // only "banana" matches
	if got := visibleTexts(s); len(got) != 1 || got[0] != "banana" {
		t.Fatalf("expected only %q visible, got %v", "banana", got)
	}
	if s.Selected() != 0 {
		t.Errorf("selection should clamp into range, got %d", s.Selected())
	}
	checkSelectionValid(t, s)
}

func TestState_SetFilter_NoMatches(t *testing.T) {
	s := app.NewState(newTodos("a", "b"))

	s.SetFilter("zzz")
	if len(s.Visible()) != 0 {
		t.Fatalf("expected empty view, got %v", visibleTexts(s))
	}
	if s.Selected() != app.NoSelection {
		t.Errorf("empty view must drop the selection, got %d", s.Selected())
	}

	// Relaxing the filter restores a valid selection.
	s.SetFilter("")
	if s.Selected() != 0 {
		t.Errorf("selection should return to 0, got %d", s.Selected())
	}
}

func TestState_Add(t *testing.T) {
	s := app.NewState(newTodos("a"))

	s.SetScratch("xy")
	s.Add()

	todos := s.Todos()
	if len(todos) != 2 {
		t.Fatalf("expected 2 todos after add, got %d", len(todos))
	}
	if todos[1].Text != "xy" {
		t.Errorf("new todo should be appended at the end, got %q", todos[1].Text)
	}
	if s.Scratch() != "" {
		t.Errorf("scratch buffer should be cleared after add, got %q", s.Scratch())
	}
	checkSelectionValid(t, s)
}

func TestState_Add_EmptyScratchIsNoop(t *testing.T) {
	s := app.NewState(newTodos("a"))
	s.Add()
	if len(s.Todos()) != 1 {
		t.Errorf("adding an empty scratch buffer must not change the list, got %d items", len(s.Todos()))
	}
}

func TestState_Add_HiddenByFilterKeepsSelection(t *testing.T) {
	s := app.NewState(newTodos("Learn Rust"))
	s.SetFilter("rust")

	s.SetScratch("Go shopping")
	s.Add()

	if len(s.Todos()) != 2 {
		t.Fatalf("expected 2 todos, got %d", len(s.Todos()))
	}
	if got := visibleTexts(s); len(got) != 1 || got[0] != "Learn Rust" {
		t.Errorf("new item should not appear under non-matching filter, view %v", got)
	}
	if s.Selected() != 0 {
		t.Errorf("selection should stay on the filtered item, got %d", s.Selected())
	}
}

func TestState_Edit(t *testing.T) {
	s := app.NewState(newTodos("a", "b"))
	s.MoveDown()

	if !s.BeginEdit() {
		t.Fatal("BeginEdit should succeed with a selection")
	}
	if s.Scratch() != "b" {
		t.Errorf("scratch should hold the selected text, got %q", s.Scratch())
	}

	s.SetScratch("b2")
	s.CommitEdit()

	todos := s.Todos()
	if todos[1].Text != "b2" {
		t.Errorf("expected edited text %q, got %q", "b2", todos[1].Text)
	}
	if s.Scratch() != "" {
		t.Errorf("scratch should be cleared after commit, got %q", s.Scratch())
	}
}

func TestState_Edit_DuplicateTextsEditsSelectedOne(t *testing.T) {
	s := app.NewState(newTodos("dup", "dup"))
	s.MoveDown() // select the second "dup"

	if !s.BeginEdit() {
		t.Fatal("BeginEdit should succeed")
	}
	s.SetScratch("changed")
	s.CommitEdit()

	todos := s.Todos()
	if todos[0].Text != "dup" {
		t.Errorf("first duplicate must be untouched, got %q", todos[0].Text)
	}
	if todos[1].Text != "changed" {
		t.Errorf("second duplicate should be edited, got %q", todos[1].Text)
	}
}

func TestState_Edit_EmptyScratchIsNoop(t *testing.T) {
	s := app.NewState(newTodos("a"))
	s.BeginEdit()
	s.SetScratch("")
	s.CommitEdit()

	if s.Todos()[0].Text != "a" {
		t.Errorf("committing an empty buffer must not change the item, got %q", s.Todos()[0].Text)
	}
}

func TestState_Edit_NoSelection(t *testing.T) {
	s := app.NewState(nil)
	if s.BeginEdit() {
		t.Error("BeginEdit without a selection should return false")
	}
}

func TestState_Edit_TargetDeletedBeforeCommit(t *testing.T) {
	s := app.NewState(newTodos("a", "b"))
	s.BeginEdit()
	s.SetScratch("a2")
	s.Delete() // the edit target vanishes

	s.CommitEdit()

	todos := s.Todos()
	if len(todos) != 1 || todos[0].Text != "b" {
		t.Errorf("commit against a deleted target must be a no-op, todos %v", visibleTexts(s))
	}
}

func TestState_Delete(t *testing.T) {
	s := app.NewState(newTodos("a", "b", "c"))
	s.MoveDown() // select "b"

	s.Delete()

	if len(s.Todos()) != 2 {
		t.Fatalf("delete should remove exactly one item, got %d", len(s.Todos()))
	}
	if got := visibleTexts(s); got[0] != "a" || got[1] != "c" {
		t.Errorf("expected [a c], got %v", got)
	}
	if s.Selected() != 1 {
		t.Errorf("selection should stay at index 1, got %d", s.Selected())
	}
}

func TestState_Delete_LastItemClampsSelection(t *testing.T) {
	s := app.NewState(newTodos("a", "b"))
	s.MoveDown()

	s.Delete()
	if s.Selected() != 0 {
		t.Errorf("deleting the last item should clamp selection to 0, got %d", s.Selected())
	}

	s.Delete()
	if s.Selected() != app.NoSelection {
		t.Errorf("deleting the only item should drop the selection, got %d", s.Selected())
	}
	if len(s.Todos()) != 0 {
		t.Errorf("expected empty list, got %d items", len(s.Todos()))
	}
}

func TestState_Delete_DuplicateTextsDeletesSelectedOne(t *testing.T) {
	todos := newTodos("dup", "dup")
	s := app.NewState(todos)
	s.MoveDown() // select the second "dup"

	s.Delete()

	remaining := s.Todos()
	if len(remaining) != 1 {
		t.Fatalf("expected 1 todo, got %d", len(remaining))
	}
	if remaining[0].ID != todos[0].ID {
		t.Error("the first duplicate should survive, the selected second one should be deleted")
	}
}

func TestState_Delete_NoSelection(t *testing.T) {
	s := app.NewState(nil)
	s.Delete()
	if len(s.Todos()) != 0 {
		t.Error("delete without a selection must be a no-op")
	}
}

func TestState_Delete_UnderFilter(t *testing.T) {
	s := app.NewState(newTodos("Learn Rust", "Trust the plan", "Build a TUI app"))
	s.SetFilter("rust")
	s.MoveDown() // select "Trust the plan"

	s.Delete()

	if len(s.Todos()) != 2 {
		t.Fatalf("expected 2 todos, got %d", len(s.Todos()))
	}
	if got := visibleTexts(s); len(got) != 1 || got[0] != "Learn Rust" {
		t.Errorf("expected only %q visible, got %v", "Learn Rust", got)
	}
	checkSelectionValid(t, s)
}

func TestState_SelectByID(t *testing.T) {
	todos := newTodos("a", "b", "c")
	s := app.NewState(todos)

	s.SelectByID(todos[2].ID)
	if s.Selected() != 2 {
		t.Errorf("expected selection 2, got %d", s.Selected())
	}

	// An ID hidden by the filter is a no-op.
	s.SetFilter("a")
	s.SelectByID(todos[2].ID)
	if s.Selected() != 0 {
		t.Errorf("selecting a hidden ID must not move the selection, got %d", s.Selected())
	}
}

// TestState_SelectionAlwaysValid runs a mixed operation sequence and
// checks the selection invariant after every step.
func TestState_SelectionAlwaysValid(t *testing.T) {
	s := app.NewState(newTodos("alpha", "beta", "gamma"))

	steps := []func(){
		func() { s.MoveDown() },
		func() { s.SetFilter("a") },
		func() { s.MoveDown() },
		func() { s.SetScratch("delta"); s.Add() },
		func() { s.Delete() },
		func() { s.SetFilter("zzz") },
		func() { s.MoveUp() },
		func() { s.SetFilter("") },
		func() { s.BeginEdit(); s.SetScratch("epsilon"); s.CommitEdit() },
		func() { s.Delete() },
		func() { s.Delete() },
		func() { s.Delete() },
		func() { s.Delete() },
	}

	for i, step := range steps {
		step()
		if t.Failed() {
			t.Fatalf("invariant broken before step %d", i)
		}
		checkSelectionValid(t, s)
	}
}
