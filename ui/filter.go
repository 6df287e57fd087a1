package ui

import (
	"fmt"
	"strings"

	"stickynotes/model"
)

// CategoryAll selects notes of every category.
const CategoryAll = "all"

// Empty-state messages.
const (
	EmptyNotes    = "No notes yet. Create your first note!"
	EmptySearch   = "No notes found matching your search"
	EmptyCategory = "No notes in this category"
)

// FilterCategories lists the search filter choices: all, then every category.
func FilterCategories() []string {
	return append([]string{CategoryAll}, model.Categories...)
}

// FilterNotes keeps the notes whose title, content or category contains query
// case-insensitively and whose category is category ("all" or empty matches
// any). The query is matched as typed, spaces included; a whitespace-only
// query matches all. Order is preserved and notes is not modified.
func FilterNotes(notes []*model.Note, query, category string) []*model.Note {
	filter := strings.TrimSpace(query) != ""
	q := strings.ToLower(query)
	anyCategory := category == "" || category == CategoryAll

	out := make([]*model.Note, 0, len(notes))
	for _, n := range notes {
		if n == nil {
			continue
		}
		if !anyCategory && n.Category != category {
			continue
		}
		if filter && !matches(n, q) {
			continue
		}
		out = append(out, n)
	}
	return out
}

func matches(n *model.Note, q string) bool {
	return strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Content), q) ||
		strings.Contains(strings.ToLower(n.Category), q)
}

// SearchHeading is the title above a result list of n notes.
func SearchHeading(query, category string, n int) string {
	switch {
	case query != "":
		return fmt.Sprintf("Search results for \"%s\" (%d)", query, n)
	case category == "" || category == CategoryAll:
		return fmt.Sprintf("All Notes (%d)", n)
	default:
		return fmt.Sprintf("%s Notes (%d)", category, n)
	}
}

// EmptySearchMessage is shown instead of an empty result list.
func EmptySearchMessage(query string) string {
	if query != "" {
		return EmptySearch
	}
	return EmptyCategory
}
