package search

import (
	"github.com/sahilm/fuzzy"

	"tido/internal/model"
)

// Result represents a fuzzy match against a todo's text.
type Result struct {
	Todo           model.Todo
	MatchedIndexes []int
	Score          int
}

// todoTexts implements fuzzy.Source for a todo slice.
type todoTexts []model.Todo

func (tt todoTexts) String(i int) string {
	return tt[i].Text
}

func (tt todoTexts) Len() int {
	return len(tt)
}

// FuzzySearchTodos matches all todos against the query using fuzzy
// matching. Returns results sorted by match score (best first); an
// empty query yields no results.
func FuzzySearchTodos(todos []model.Todo, query string) []Result {
	if query == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, todoTexts(todos))

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Todo:           todos[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
