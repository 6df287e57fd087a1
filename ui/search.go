package ui

import (
	"context"
	"fmt"
	"strings"

	"stickynotes/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SearchActions are the calls the search screen makes back into the API.
type SearchActions struct {
	Delete func(ctx context.Context, id int64) error
	Reload func(ctx context.Context) ([]*model.Note, error)
}

type notesLoadedMsg struct {
	notes []*model.Note
	err   error
}

type noteDeletedMsg struct {
	err error
}

// SearchModel is the interactive search screen: a query box, a category filter
// and the live list of matching notes.
type SearchModel struct {
	ctx      context.Context
	actions  SearchActions
	renderer *Renderer

	input      textinput.Model
	categories []string
	category   int

	notes   []*model.Note
	results []*model.Note
	cursor  int

	confirming bool
	status     string
	selected   *model.Note
}

// NewSearchModel starts the screen with notes already fetched.
func NewSearchModel(ctx context.Context, notes []*model.Note, query, category string, renderer *Renderer, actions SearchActions) SearchModel {
	ti := textinput.New()
	ti.Placeholder = "Search notes..."
	ti.Prompt = "> "
	ti.CharLimit = 200
	ti.SetValue(query)
	ti.Focus()

	m := SearchModel{
		ctx:        ctx,
		actions:    actions,
		renderer:   renderer,
		input:      ti,
		categories: FilterCategories(),
		notes:      notes,
	}
	for i, c := range m.categories {
		if c == category {
			m.category = i
		}
	}
	m.refilter()
	return m
}

func (m SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Selected is the note chosen with enter, nil when the user quit instead.
func (m SearchModel) Selected() *model.Note {
	return m.selected
}

func (m SearchModel) Query() string {
	return m.input.Value()
}

func (m SearchModel) Category() string {
	return m.categories[m.category]
}

func (m SearchModel) Results() []*model.Note {
	return m.results
}

func (m *SearchModel) refilter() {
	m.results = FilterNotes(m.notes, m.input.Value(), m.Category())
	if m.cursor >= len(m.results) {
		m.cursor = len(m.results) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		if msg.err != nil {
			m.status = "Failed to load notes"
			return m, nil
		}
		m.notes = msg.notes
		m.refilter()
		return m, nil

	case noteDeletedMsg:
		if msg.err != nil {
			m.status = "Error deleting note"
			return m, nil
		}
		m.status = "Note deleted successfully"
		return m, m.reload()

	case tea.KeyMsg:
		if m.confirming {
			return m.updateConfirm(msg)
		}

		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if len(m.results) > 0 {
				m.selected = m.results[m.cursor]
				return m, tea.Quit
			}
			return m, nil
		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case tea.KeyDown:
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil
		case tea.KeyTab:
			m.category = (m.category + 1) % len(m.categories)
			m.refilter()
			return m, nil
		case tea.KeyShiftTab:
			m.category = (m.category - 1 + len(m.categories)) % len(m.categories)
			m.refilter()
			return m, nil
		case tea.KeyCtrlD:
			if len(m.results) > 0 {
				m.confirming = true
				m.status = ""
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refilter()
	return m, cmd
}

func (m SearchModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirming = false
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if answer := strings.ToLower(msg.String()); answer != "y" {
		return m, nil
	}

	id := m.results[m.cursor].ID
	del := m.actions.Delete
	ctx := m.ctx
	return m, func() tea.Msg {
		if del == nil {
			return noteDeletedMsg{err: fmt.Errorf("delete is not available")}
		}
		return noteDeletedMsg{err: del(ctx, id)}
	}
}

func (m SearchModel) reload() tea.Cmd {
	reload := m.actions.Reload
	ctx := m.ctx
	return func() tea.Msg {
		if reload == nil {
			return nil
		}
		notes, err := reload(ctx)
		return notesLoadedMsg{notes: notes, err: err}
	}
}

func (m SearchModel) View() string {
	styles := DefaultStyles()
	if m.renderer != nil {
		styles = m.renderer.Styles()
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.categoryBar(styles))
	b.WriteString("\n\n")
	b.WriteString(styles.Heading.Render(SearchHeading(m.input.Value(), m.Category(), len(m.results))))
	b.WriteString("\n")

	if len(m.results) == 0 {
		b.WriteString(styles.Empty.Render(EmptySearchMessage(m.input.Value())))
		b.WriteString("\n")
	}
	for i, n := range m.results {
		line := fmt.Sprintf("%s  %s", lipgloss.NewStyle().Foreground(NoteColor(n, i).Lipgloss()).Render("●"), n.Title)
		if n.Category != "" {
			line += styles.Meta.Render("  " + n.Category)
		}
		if i == m.cursor {
			line = styles.Selected.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.confirming:
		b.WriteString("Are you sure you want to delete this note? [y/N]")
	case m.status != "":
		b.WriteString(m.status)
	default:
		b.WriteString(styles.Help.Render("tab/shift+tab: category  up/down: move  enter: open  ctrl+d: delete  esc: quit"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m SearchModel) categoryBar(styles Styles) string {
	parts := make([]string, len(m.categories))
	for i, c := range m.categories {
		label := c
		if c == CategoryAll {
			label = "All"
		}
		if i == m.category {
			parts[i] = styles.Selected.Render(" " + label + " ")
		} else {
			parts[i] = " " + label + " "
		}
	}
	return strings.Join(parts, "")
}
