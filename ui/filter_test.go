package ui

import (
	"testing"

	"stickynotes/model"

	"github.com/stretchr/testify/assert"
)

func sampleNotes() []*model.Note {
	return []*model.Note{
		{ID: 1, Title: "Groceries", Content: "Milk and eggs", Category: "Budget"},
		{ID: 2, Title: "Leg day", Content: "Squats 5x5", Category: "Fitness"},
		{ID: 3, Title: "Dune", Content: "A great book about spice", Category: "Book Review"},
		{ID: 4, Title: "Ideas for the budget", Content: "cut subscriptions"},
		{ID: 5, Title: "Standup", Content: "Talk about the MILK incident", Category: "Work"},
	}
}

func ids(notes []*model.Note) []int64 {
	out := make([]int64, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.ID)
	}
	return out
}

func TestFilterNotes(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		category string
		want     []int64
	}{
		{name: "blank query all categories", query: "", category: "all", want: []int64{1, 2, 3, 4, 5}},
		{name: "whitespace query", query: "   ", category: "", want: []int64{1, 2, 3, 4, 5}},
		{name: "title match", query: "dune", category: "all", want: []int64{3}},
		{name: "content match is case insensitive", query: "milk", category: "all", want: []int64{1, 5}},
		{name: "category text matches", query: "budget", category: "all", want: []int64{1, 4}},
		{name: "leading space is part of the query", query: " milk", category: "all", want: []int64{5}},
		{name: "trailing space is part of the query", query: "leg ", category: "all", want: []int64{2}},
		{name: "category filter only", query: "", category: "Work", want: []int64{5}},
		{name: "query and category", query: "milk", category: "Budget", want: []int64{1}},
		{name: "category without notes", query: "", category: "Personal", want: []int64{}},
		{name: "no match", query: "zebra", category: "all", want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterNotes(sampleNotes(), tt.query, tt.category)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterNotesIsPure(t *testing.T) {
	notes := sampleNotes()
	before := ids(notes)

	first := FilterNotes(notes, "milk", "all")
	second := FilterNotes(notes, "milk", "all")

	assert.Equal(t, ids(first), ids(second))
	assert.Equal(t, before, ids(notes))
	assert.Equal(t, "Groceries", notes[0].Title)
}

func TestFilterNotesResultIsSubset(t *testing.T) {
	notes := sampleNotes()
	for _, category := range FilterCategories() {
		for _, query := range []string{"", "a", "e", "MILK", "x"} {
			got := FilterNotes(notes, query, category)
			assert.LessOrEqual(t, len(got), len(notes))
			for _, n := range got {
				assert.Contains(t, notes, n)
				if category != CategoryAll {
					assert.Equal(t, category, n.Category)
				}
			}
		}
	}
}

func TestSearchHeading(t *testing.T) {
	assert.Equal(t, `Search results for "milk" (2)`, SearchHeading("milk", "all", 2))
	assert.Equal(t, `Search results for " milk " (1)`, SearchHeading(" milk ", "Budget", 1))
	assert.Equal(t, "All Notes (5)", SearchHeading("", "all", 5))
	assert.Equal(t, `Search results for "   " (5)`, SearchHeading("   ", "", 5))
	assert.Equal(t, "Work Notes (1)", SearchHeading("", "Work", 1))
}

func TestEmptySearchMessage(t *testing.T) {
	assert.Equal(t, EmptySearch, EmptySearchMessage("zebra"))
	assert.Equal(t, EmptySearch, EmptySearchMessage("   "))
	assert.Equal(t, EmptyCategory, EmptySearchMessage(""))
}

func TestFilterCategories(t *testing.T) {
	cats := FilterCategories()
	assert.Len(t, cats, 9)
	assert.Equal(t, CategoryAll, cats[0])
	assert.Equal(t, "Other", cats[8])
}
