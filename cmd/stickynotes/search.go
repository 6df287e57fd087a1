package main

import (
	"fmt"
	"strings"

	"stickynotes/model"
	"stickynotes/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		category    string
		interactive bool
	)
	cmd := &cobra.Command{
		Use:   "search [QUERY]",
		Short: "Find notes by text and category",
		Long: `Search matches the query against title, content and category, ignoring case.
With -i it opens an interactive screen that filters as you type.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.protected(func(cmd *cobra.Command, args []string) error {
			if !validFilter(category) {
				return fmt.Errorf("unknown category %q, use one of: %s", category, strings.Join(ui.FilterCategories(), ", "))
			}
			query := ""
			if len(args) == 1 {
				query = args[0]
			}

			notes, err := a.api.ListNotes(cmd.Context())
			if err != nil {
				return err
			}
			r, err := newRenderer(cmd)
			if err != nil {
				return err
			}

			if interactive {
				return a.runSearchScreen(cmd, r, notes, query, category)
			}
			results := ui.FilterNotes(notes, query, category)
			fmt.Fprintln(cmd.OutOrStdout(), r.Search(results, query, category))
			return nil
		}),
	}
	cmd.Flags().StringVarP(&category, "category", "c", ui.CategoryAll, "category filter")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "search interactively")
	return cmd
}

func validFilter(category string) bool {
	return category == "" || category == ui.CategoryAll || model.IsCategory(category)
}

func (a *app) runSearchScreen(cmd *cobra.Command, r *ui.Renderer, notes []*model.Note, query, category string) error {
	ctx := cmd.Context()
	m := ui.NewSearchModel(ctx, notes, query, category, r, ui.SearchActions{
		Delete: a.api.DeleteNote,
		Reload: a.api.ListNotes,
	})

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("search screen: %w", err)
	}

	if sm, ok := final.(ui.SearchModel); ok && sm.Selected() != nil {
		fmt.Fprintln(cmd.OutOrStdout(), r.Detail(sm.Selected()))
	}
	return nil
}
