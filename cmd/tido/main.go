package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tido/internal/model"
	"tido/internal/tui"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		default:
			fmt.Fprintf(os.Stderr, "Unknown argument: %s\n", os.Args[1])
			os.Exit(1)
		}
	}

	runTUI()
}

func printHelp() {
	help := `tido - vim-style todo list

Usage:
  tido          Open interactive TUI
  tido help     Show this help

TUI Keybindings:
  Navigation:
    j/k         Move down/up (wraps around)

  Actions:
    /           Filter the list
    s           Fuzzy-jump to a todo
    y           Copy selected todo to clipboard

  Editing:
    a           Add a todo
    i           Edit selected todo
    r/d         Delete selected todo (asks first)

  Other:
    q           Quit
`
	fmt.Print(help)
}

// runTUI runs the full interactive TUI.
func runTUI() {
	app := tui.NewApp(tui.AppParams{Todos: model.SeedTodos()})
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
