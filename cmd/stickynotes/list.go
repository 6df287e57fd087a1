package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"stickynotes/model"
	"stickynotes/ui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const maxWidth = 100

func newListCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all your notes",
		Args:  cobra.NoArgs,
		RunE: a.protected(func(cmd *cobra.Command, args []string) error {
			notes, err := a.api.ListNotes(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, notes)
			}
			return a.printList(cmd, notes)
		}),
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

func (a *app) printList(cmd *cobra.Command, notes []*model.Note) error {
	r, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), r.List(notes))
	return nil
}

// newRenderer sizes output to the terminal and renders markdown only when
// stdout is one.
func newRenderer(cmd *cobra.Command) (*ui.Renderer, error) {
	width, markdown := 80, false
	if f, ok := cmd.OutOrStdout().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		markdown = true
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = min(w, maxWidth)
		}
	}
	return ui.NewRenderer(width, markdown)
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

func parseNoteID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid note id %q", arg)
	}
	return id, nil
}
