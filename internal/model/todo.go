package model

import "time"

// Todo represents a single text entry in the managed list.
type Todo struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewTodo creates a Todo with a generated UUID.
func NewTodo(text string) Todo {
	return Todo{
		ID:        generateUUID(),
		Text:      text,
		CreatedAt: time.Now(),
	}
}

// SeedTodos returns the starter list shown on first launch.
func SeedTodos() []Todo {
	texts := []string{
		"Learn Rust",
		"Build a TUI app",
		"Share with others",
		"Write documentation",
		"Add more features",
	}

	todos := make([]Todo, len(texts))
	for i, text := range texts {
		todos[i] = NewTodo(text)
	}
	return todos
}
