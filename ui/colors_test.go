package ui

import (
	"testing"

	"stickynotes/model"

	"github.com/stretchr/testify/assert"
)

func TestNoteColor(t *testing.T) {
	tests := []struct {
		name  string
		note  *model.Note
		index int
		want  string
	}{
		{name: "explicit color wins", note: &model.Note{Color: "blue", Category: "Work"}, index: 0, want: "blue"},
		{name: "unknown color falls to category", note: &model.Note{Color: "orange", Category: "Fitness"}, index: 0, want: "green"},
		{name: "book review", note: &model.Note{Category: "Book Review"}, index: 4, want: "pink"},
		{name: "work", note: &model.Note{Category: "Work"}, index: 0, want: "red"},
		{name: "budget", note: &model.Note{Category: "Budget"}, index: 0, want: "yellow"},
		{name: "learning", note: &model.Note{Category: "Learning"}, index: 0, want: "blue"},
		{name: "ideas", note: &model.Note{Category: "Ideas"}, index: 0, want: "purple"},
		{name: "personal uses index", note: &model.Note{Category: "Personal"}, index: 2, want: "green"},
		{name: "other uses index", note: &model.Note{Category: "Other"}, index: 3, want: "yellow"},
		{name: "bare note uses index", note: &model.Note{}, index: 1, want: "red"},
		{name: "index wraps", note: &model.Note{}, index: 7, want: "red"},
		{name: "negative index wraps", note: &model.Note{}, index: -1, want: "purple"},
		{name: "nil note", note: nil, index: 5, want: "purple"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NoteColor(tt.note, tt.index).Name)
		})
	}
}

func TestNoteColorIsTotal(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range Colors() {
		names[c.Name] = true
	}

	colors := append([]string{"", "orange"}, model.Colors...)
	categories := append([]string{"", "Gardening"}, model.Categories...)

	for _, color := range colors {
		for _, category := range categories {
			for index := -13; index <= 13; index++ {
				note := &model.Note{Color: color, Category: category}
				got := NoteColor(note, index)
				assert.True(t, names[got.Name], "color=%q category=%q index=%d gave %q", color, category, index, got.Name)
				assert.Equal(t, got, NoteColor(note, index))
			}
		}
	}
}

func TestColorByIndexCycles(t *testing.T) {
	want := []string{"pink", "red", "green", "yellow", "blue", "purple"}
	for i := 0; i < 12; i++ {
		assert.Equal(t, want[i%6], ColorByIndex(i).Name)
	}
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#FFC0CB", ColorHex("pink"))
	assert.Equal(t, "#FF4444", ColorHex("red"))
	assert.Equal(t, "#90EE90", ColorHex("green"))
	assert.Equal(t, "#FFD700", ColorHex("yellow"))
	assert.Equal(t, "#87CEEB", ColorHex("blue"))
	assert.Equal(t, "#DDA0DD", ColorHex("purple"))
	assert.Equal(t, "#FFC0CB", ColorHex("teal"))
	assert.Equal(t, "#FFC0CB", ColorHex(""))
}

func TestColorsReturnsCopy(t *testing.T) {
	c := Colors()
	c[0] = Color{Name: "black"}
	assert.Equal(t, "pink", Colors()[0].Name)
}
