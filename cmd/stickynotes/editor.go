package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"stickynotes/dto"
	"stickynotes/model"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

var (
	errTitleRequired   = errors.New("Title is required")
	errContentRequired = errors.New("Content is required")
)

var formValidator = dto.NewValidator()

// noteForm holds the editor flags shared by new and edit.
type noteForm struct {
	title       string
	content     string
	contentFile string
	category    string
	color       string
}

func (f *noteForm) bind(cmd *cobra.Command, defaultColor string) {
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "note title")
	cmd.Flags().StringVar(&f.content, "content", "", "note content (markdown)")
	cmd.Flags().StringVarP(&f.contentFile, "content-file", "f", "", "read the content from a file, - for stdin")
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "one of: "+strings.Join(model.Categories, ", "))
	cmd.Flags().StringVar(&f.color, "color", defaultColor, "one of: "+strings.Join(model.Colors, ", "))
	cmd.MarkFlagsMutuallyExclusive("content", "content-file")
}

// apply copies the flags the user set onto req.
func (f *noteForm) apply(cmd *cobra.Command, req *dto.NoteRequest) error {
	flags := cmd.Flags()
	if flags.Changed("title") {
		req.Title = f.title
	}
	if flags.Changed("content") {
		req.Content = f.content
	}
	if flags.Changed("content-file") {
		content, err := readContent(cmd, f.contentFile)
		if err != nil {
			return err
		}
		req.Content = content
	}
	if flags.Changed("category") {
		req.Category = f.category
	}
	if flags.Changed("color") {
		req.Color = f.color
	}
	return nil
}

func (f *noteForm) changed(cmd *cobra.Command) bool {
	for _, name := range []string{"title", "content", "content-file", "category", "color"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func readContent(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read content: %w", err)
	}
	return string(data), nil
}

// validateForm runs the checks the server would, so a bad form never leaves
// the machine.
func validateForm(req *dto.NoteRequest) error {
	req.Normalize()
	if req.Title == "" {
		return errTitleRequired
	}
	if strings.TrimSpace(req.Content) == "" {
		return errContentRequired
	}
	if err := formValidator.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		fields := dto.FieldErrors(err)
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Errorf("%s: %s", names[0], fields[names[0]][0])
	}
	return nil
}

func newNewCmd(a *app) *cobra.Command {
	form := &noteForm{}
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a note",
		Args:  cobra.NoArgs,
		RunE: a.protected(func(cmd *cobra.Command, args []string) error {
			req := dto.NoteRequest{Color: form.color}
			if err := form.apply(cmd, &req); err != nil {
				return err
			}
			if err := validateForm(&req); err != nil {
				return err
			}

			note, err := a.api.CreateNote(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Note created successfully! (#%d)\n", note.ID)
			return nil
		}),
	}
	form.bind(cmd, model.ColorPink)
	return cmd
}

func newEditCmd(a *app) *cobra.Command {
	form := &noteForm{}
	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change a note; only the flags given are updated",
		Args:  cobra.ExactArgs(1),
		RunE: a.protected(func(cmd *cobra.Command, args []string) error {
			id, err := parseNoteID(args[0])
			if err != nil {
				return err
			}
			if !form.changed(cmd) {
				return errors.New("nothing to change, pass --title, --content, --content-file, --category or --color")
			}

			note, err := a.api.GetNote(cmd.Context(), id)
			if err != nil {
				return err
			}
			req := dto.NoteFromModel(note)
			if req.Color == "" {
				req.Color = model.ColorPink
			}
			if err := form.apply(cmd, &req); err != nil {
				return err
			}
			if err := validateForm(&req); err != nil {
				return err
			}

			if _, err := a.api.UpdateNote(cmd.Context(), id, req); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Note updated successfully! (#%d)\n", id)
			return nil
		}),
	}
	form.bind(cmd, "")
	return cmd
}
