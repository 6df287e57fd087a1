package ui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"stickynotes/model"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const (
	listDateLayout   = "01/02/2006"
	detailDateLayout = "January 2, 2006"

	previewLines = 3
	previewRunes = 160
)

// FormatListDate formats a card date as MM/DD/YYYY in local time.
func FormatListDate(t time.Time) string {
	return t.Local().Format(listDateLayout)
}

// FormatDetailDate formats a detail date as "January 2, 2006" in local time.
func FormatDetailDate(t time.Time) string {
	return t.Local().Format(detailDateLayout)
}

// Renderer turns notes into terminal text.
type Renderer struct {
	styles   Styles
	width    int
	markdown *glamour.TermRenderer
}

// NewRenderer renders cards width columns wide. With markdown set, note bodies
// in the detail view go through glamour; otherwise they are printed as stored.
func NewRenderer(width int, markdown bool) (*Renderer, error) {
	if width <= 0 {
		width = 80
	}
	r := &Renderer{styles: DefaultStyles(), width: width}

	if markdown {
		tr, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width-4),
		)
		if err != nil {
			return nil, fmt.Errorf("create markdown renderer: %w", err)
		}
		r.markdown = tr
	}
	return r, nil
}

func (r *Renderer) Styles() Styles {
	return r.styles
}

// Card renders the list entry for the note at position index.
func (r *Renderer) Card(note *model.Note, index int) string {
	var b strings.Builder
	if note.Category != "" {
		b.WriteString(r.styles.Category.Render(note.Category))
		b.WriteString("\n")
	}
	b.WriteString(r.styles.Title.Render(note.Title))
	b.WriteString("\n")
	b.WriteString(preview(note.Content))
	b.WriteString("\n")
	b.WriteString(r.styles.Meta.Render(fmt.Sprintf("%s  #%d", FormatListDate(note.CreatedAt), note.ID)))

	return cardStyle(NoteColor(note, index), r.width-2).Render(b.String())
}

// List renders the home view.
func (r *Renderer) List(notes []*model.Note) string {
	if len(notes) == 0 {
		return r.styles.Empty.Render(EmptyNotes)
	}
	return r.cards(notes)
}

// Search renders a result heading followed by the matching notes.
func (r *Renderer) Search(results []*model.Note, query, category string) string {
	heading := r.styles.Heading.Render(SearchHeading(query, category, len(results)))
	if len(results) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, heading, r.styles.Empty.Render(EmptySearchMessage(query)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, heading, r.cards(results))
}

func (r *Renderer) cards(notes []*model.Note) string {
	cards := make([]string, 0, len(notes))
	for i, n := range notes {
		cards = append(cards, r.Card(n, i))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// Detail renders a single note. A note shown on its own is colored as the
// first of a list.
func (r *Renderer) Detail(note *model.Note) string {
	color := NoteColor(note, 0)

	var b strings.Builder
	if note.Category != "" {
		b.WriteString(r.styles.Category.Foreground(color.Lipgloss()).Render(note.Category))
		b.WriteString("\n")
	}
	b.WriteString(r.styles.Heading.Foreground(color.Lipgloss()).Render(note.Title))
	b.WriteString("\n")
	b.WriteString(r.styles.Meta.Render("Created: " + FormatDetailDate(note.CreatedAt)))
	b.WriteString("\n")
	if note.Edited() {
		b.WriteString(r.styles.Meta.Render("Updated: " + FormatDetailDate(note.UpdatedAt)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(r.body(note.Content))
	return b.String()
}

func (r *Renderer) body(content string) string {
	if r.markdown == nil {
		return content
	}
	out, err := r.markdown.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(out, "\n")
}

// preview shortens content to the first few lines of a card.
func preview(content string) string {
	lines := strings.Split(strings.TrimSpace(content), "\n")
	truncated := false
	if len(lines) > previewLines {
		lines = lines[:previewLines]
		truncated = true
	}
	out := strings.Join(lines, "\n")
	if utf8.RuneCountInString(out) > previewRunes {
		out = string([]rune(out)[:previewRunes])
		truncated = true
	}
	if truncated {
		out = strings.TrimRight(out, " \n") + "..."
	}
	return out
}
