package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tido/internal/app"
	"tido/internal/model"
	"tido/internal/tui/layout"
)

// App is the main bubbletea model for the todo list editor.
type App struct {
	state        *app.State
	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig

	mode Mode

	searchInput  textinput.Model // filter text entry (search mode)
	scratchInput textinput.Model // new/edited todo text entry (add and edit modes)
	jump         JumpState

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Todos        []model.Todo
	Keys         *KeyMap              // optional, uses default if nil
	Styles       *Styles              // optional, uses default if nil
	LayoutConfig *layout.LayoutConfig // optional, uses default if nil
}

// NewApp creates a new App with the given parameters.
// The app starts in Normal mode with the first visible todo selected.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	cfg := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		cfg = *params.LayoutConfig
	}

	searchInput := textinput.New()
	searchInput.Placeholder = "Search..."
	searchInput.CharLimit = cfg.Input.FilterCharLimit
	searchInput.Width = cfg.Input.FilterWidth

	scratchInput := textinput.New()
	scratchInput.Placeholder = "What needs doing?"
	scratchInput.CharLimit = cfg.Input.TodoCharLimit
	scratchInput.Width = cfg.Input.StandardWidth

	return App{
		state:        app.NewState(params.Todos),
		keys:         keys,
		styles:       styles,
		layoutConfig: cfg,
		mode:         ModeNormal,
		searchInput:  searchInput,
		scratchInput: scratchInput,
		jump:         NewJumpState(cfg),
		width:        80,
		height:       24,
	}
}

// Snapshot is the read-only view of the core state handed to rendering.
type Snapshot struct {
	Mode        Mode
	FilterText  string
	Scratch     string
	Visible     []model.Todo
	Selected    int
	ShowConfirm bool
}

// Snapshot returns the current render snapshot.
func (a App) Snapshot() Snapshot {
	return Snapshot{
		Mode:        a.mode,
		FilterText:  a.state.FilterText(),
		Scratch:     a.state.Scratch(),
		Visible:     a.state.Visible(),
		Selected:    a.state.Selected(),
		ShowConfirm: a.mode == ModeConfirmDelete,
	}
}

// Mode returns the current input mode.
func (a App) Mode() Mode {
	return a.mode
}

// Todos returns the full todo collection.
func (a App) Todos() []model.Todo {
	return a.state.Todos()
}

// Visible returns the filtered view.
func (a App) Visible() []model.Todo {
	return a.state.Visible()
}

// Selected returns the selection index into the visible view.
func (a App) Selected() int {
	return a.state.Selected()
}

// FilterText returns the active filter text.
func (a App) FilterText() string {
	return a.state.FilterText()
}

// WithDimensions returns a copy of the app with fixed dimensions.
// Used by tests for deterministic output.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch a.mode {
		case ModeNormal:
			return a.updateNormal(msg)
		case ModeSearch:
			return a.updateSearch(msg)
		case ModeAdd:
			return a.updateAdd(msg)
		case ModeEdit:
			return a.updateEdit(msg)
		case ModeConfirmDelete:
			return a.updateConfirmDelete(msg)
		case ModeJump:
			return a.updateJump(msg)
		}
	}

	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
