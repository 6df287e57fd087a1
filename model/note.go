package model

import (
	"time"
)

type Note struct {
	ID        int64     `bson:"_id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	Category  string    `bson:"category,omitempty" json:"category,omitempty"`
	Color     string    `bson:"color,omitempty" json:"color,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	Author    string    `bson:"author" json:"author,omitempty"`
}

// Edited reports whether the note was changed after it was created.
func (n *Note) Edited() bool {
	return !n.UpdatedAt.IsZero() && !n.UpdatedAt.Equal(n.CreatedAt)
}

// Categories a note can be filed under, in the order the editor offers them.
const (
	CategoryBookReview = "Book Review"
	CategoryWork       = "Work"
	CategoryFitness    = "Fitness"
	CategoryBudget     = "Budget"
	CategoryLearning   = "Learning"
	CategoryIdeas      = "Ideas"
	CategoryPersonal   = "Personal"
	CategoryOther      = "Other"
)

var Categories = []string{
	CategoryBookReview,
	CategoryWork,
	CategoryFitness,
	CategoryBudget,
	CategoryLearning,
	CategoryIdeas,
	CategoryPersonal,
	CategoryOther,
}

func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Display colors, in cycle order.
const (
	ColorPink   = "pink"
	ColorRed    = "red"
	ColorGreen  = "green"
	ColorYellow = "yellow"
	ColorBlue   = "blue"
	ColorPurple = "purple"
)

var Colors = []string{
	ColorPink,
	ColorRed,
	ColorGreen,
	ColorYellow,
	ColorBlue,
	ColorPurple,
}

func IsColor(name string) bool {
	for _, c := range Colors {
		if c == name {
			return true
		}
	}
	return false
}
