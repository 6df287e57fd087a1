// Package ui renders notes in the terminal: display colors, the search filter,
// note cards and the interactive search screen.
package ui

import (
	"stickynotes/model"

	"github.com/charmbracelet/lipgloss"
)

// Color is one of the six display colors a note card can take.
type Color struct {
	Name string
	Hex  string
}

// Lipgloss returns the color for use in a lipgloss style.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.Hex)
}

var palette = []Color{
	{Name: model.ColorPink, Hex: "#FFC0CB"},
	{Name: model.ColorRed, Hex: "#FF4444"},
	{Name: model.ColorGreen, Hex: "#90EE90"},
	{Name: model.ColorYellow, Hex: "#FFD700"},
	{Name: model.ColorBlue, Hex: "#87CEEB"},
	{Name: model.ColorPurple, Hex: "#DDA0DD"},
}

// Personal and Other have no color of their own and fall through to the index.
var categoryColors = map[string]string{
	model.CategoryBookReview: model.ColorPink,
	model.CategoryWork:       model.ColorRed,
	model.CategoryFitness:    model.ColorGreen,
	model.CategoryBudget:     model.ColorYellow,
	model.CategoryLearning:   model.ColorBlue,
	model.CategoryIdeas:      model.ColorPurple,
}

// Colors returns the palette in cycle order.
func Colors() []Color {
	out := make([]Color, len(palette))
	copy(out, palette)
	return out
}

// ColorByIndex cycles through the palette. Negative indexes wrap too.
func ColorByIndex(index int) Color {
	n := len(palette)
	return palette[((index%n)+n)%n]
}

// ColorHex returns the hex value of a color name, pink for unknown names.
func ColorHex(name string) string {
	if c, ok := lookup(name); ok {
		return c.Hex
	}
	return palette[0].Hex
}

// NoteColor picks a note's display color: its own color when recognized, else
// its category's color, else the color for its position in the list.
func NoteColor(note *model.Note, index int) Color {
	if note != nil {
		if c, ok := lookup(note.Color); ok {
			return c
		}
		if name, ok := categoryColors[note.Category]; ok {
			c, _ := lookup(name)
			return c
		}
	}
	return ColorByIndex(index)
}

func lookup(name string) (Color, bool) {
	for _, c := range palette {
		if c.Name == name {
			return c, true
		}
	}
	return Color{}, false
}
