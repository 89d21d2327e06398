package cli

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"studydesk/internal/api"
	"studydesk/internal/core/model"
)

func (r *root) notesCommand() *cobra.Command {
	notes := &cobra.Command{
		Use:               "notes",
		Aliases:           []string{"note"},
		Short:             "Manage notes and their AI summaries",
		PersistentPreRunE: r.setupSignedIn,
	}
	notes.AddCommand(
		r.notesListCommand(),
		r.notesShowCommand(),
		r.notesWriteCommand("add", "Upload a note for summarization", false),
		r.notesWriteCommand("edit ID", "Replace a note and summarize it again", true),
		r.notesRemoveCommand(),
	)
	return notes
}

func (r *root) notesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := r.app.Client.ListNotes(cmd.Context())
			if err != nil {
				return r.checkAuth(err)
			}
			out := cmd.OutOrStdout()
			if len(notes) == 0 {
				fmt.Fprintln(out, mutedStyle.Render("No notes."))
				return nil
			}
			rows := make([][]string, 0, len(notes))
			for _, note := range notes {
				rows = append(rows, []string{note.ID, truncate(note.Title, 40), noteSource(note), string(note.SummaryLength), formatDate(note.UpdatedAt)})
			}
			renderTable(out, []string{"ID", "Title", "Source", "Summary", "Updated"}, rows)
			return nil
		},
	}
}

func (r *root) notesShowCommand() *cobra.Command {
	var original bool
	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show a note's summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, err := r.findNote(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headingStyle.Render(note.Title))
			fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("%s · %s summary · updated %s", noteSource(*note), note.SummaryLength, formatDate(note.UpdatedAt))))
			fmt.Fprintln(out)
			fmt.Fprintln(out, note.SummarizedNote)
			if original {
				fmt.Fprintln(out)
				fmt.Fprintln(out, headingStyle.Render("Original"))
				fmt.Fprintln(out, originalText(*note))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&original, "original", false, "also print the original text")
	return cmd
}

func (r *root) findNote(cmd *cobra.Command, id string) (*model.Note, error) {
	notes, err := r.app.Client.ListNotes(cmd.Context())
	if err != nil {
		return nil, r.checkAuth(err)
	}
	for i := range notes {
		if notes[i].ID == id {
			return &notes[i], nil
		}
	}
	return nil, fmt.Errorf("note %s: %w", id, &api.APIError{Status: http.StatusNotFound, Message: "note not found"})
}

func (r *root) notesWriteCommand(use, short string, replace bool) *cobra.Command {
	var input model.NoteInput
	var summary string
	positional := cobra.NoArgs
	if replace {
		positional = cobra.ExactArgs(1)
	}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  positional,
		RunE: func(cmd *cobra.Command, args []string) error {
			input.SummaryLength = model.SummaryLength(strings.ToLower(summary))
			if input.FilePath != "" && input.Title == "" {
				input.Title = strings.TrimSuffix(filepath.Base(input.FilePath), filepath.Ext(input.FilePath))
			}

			var note *model.Note
			var err error
			if replace {
				note, err = r.app.Client.UpdateNote(cmd.Context(), args[0], input)
			} else {
				note, err = r.app.Client.CreateNote(cmd.Context(), input)
			}
			if err != nil {
				return r.checkAuth(err)
			}

			out := cmd.OutOrStdout()
			verb := "Created"
			if replace {
				verb = "Updated"
			}
			printDone(out, "%s note %s: %s", verb, note.ID, note.Title)
			if note.SummarizedNote != "" {
				fmt.Fprintln(out)
				fmt.Fprintln(out, note.SummarizedNote)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input.Title, "title", "t", "", "note title (defaults to the file name)")
	cmd.Flags().StringVar(&input.Text, "text", "", "note text")
	cmd.Flags().StringVarP(&input.FilePath, "file", "f", "", "PDF, DOCX or text file to upload")
	cmd.Flags().StringVarP(&summary, "summary", "s", "", "summary length: short, medium or long")
	return cmd
}

func (r *root) notesRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"delete"},
		Short:   "Delete a note",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.app.Client.DeleteNote(cmd.Context(), args[0]); err != nil {
				return r.checkAuth(err)
			}
			printDone(cmd.OutOrStdout(), "Deleted note %s", args[0])
			return nil
		},
	}
}

func noteSource(note model.Note) string {
	if note.FileType != "" {
		return note.FileType
	}
	return "text"
}

func originalText(note model.Note) string {
	if note.OriginalNote != "" {
		return note.OriginalNote
	}
	return note.Text
}
