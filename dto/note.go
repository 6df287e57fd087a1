package dto

import (
	"strings"

	"stickynotes/model"
)

// NoteRequest is the body of POST /api/notes/ and PUT /api/notes/{id}/edit/.
type NoteRequest struct {
	Title    string `json:"title" binding:"required,max=100"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"omitempty,note_category"`
	Color    string `json:"color" binding:"omitempty,note_color"`
}

// NotePatch is the body of PATCH /api/notes/{id}/edit/. Nil fields are left alone.
type NotePatch struct {
	Title    *string `json:"title" binding:"omitempty,max=100"`
	Content  *string `json:"content"`
	Category *string `json:"category" binding:"omitempty,note_category"`
	Color    *string `json:"color" binding:"omitempty,note_color"`
}

// Normalize trims the title, which is the only field stored trimmed.
func (r *NoteRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
}

// ApplyTo overwrites the editable fields of note.
func (r *NoteRequest) ApplyTo(note *model.Note) {
	note.Title = r.Title
	note.Content = r.Content
	note.Category = r.Category
	note.Color = r.Color
}

// Merge returns the full request that results from applying the patch to note.
func (p *NotePatch) Merge(note *model.Note) NoteRequest {
	req := NoteRequest{
		Title:    note.Title,
		Content:  note.Content,
		Category: note.Category,
		Color:    note.Color,
	}
	if p.Title != nil {
		req.Title = *p.Title
	}
	if p.Content != nil {
		req.Content = *p.Content
	}
	if p.Category != nil {
		req.Category = *p.Category
	}
	if p.Color != nil {
		req.Color = *p.Color
	}
	return req
}

// NoteFromModel builds the request that would recreate note, used by the editor
// when it loads an existing note before applying changes.
func NoteFromModel(note *model.Note) NoteRequest {
	return NoteRequest{
		Title:    note.Title,
		Content:  note.Content,
		Category: note.Category,
		Color:    note.Color,
	}
}
