package cli

import (
	"github.com/spf13/cobra"
	"github.com/studyhubhq/studyhub/pkg/studysdk"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Manage your study notes (student)",
}

var (
	noteTitle   string
	noteContent string
	notesPage   int
	notesLimit  int
)

var notesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a note",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		if err := rt.requireRole(studysdk.RoleStudent); err != nil {
			return err
		}

		id, err := rt.currentIdentity()
		if err != nil {
			return err
		}

		err = rt.session.CreateNote(cmd.Context(), studysdk.CreateNoteRequest{
			Email:   id.Email,
			Title:   noteTitle,
			Content: noteContent,
		})
		if err != nil {
			return err
		}
		printf("Note created.")
		return nil
	},
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Page through your notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		if err := rt.requireRole(studysdk.RoleStudent); err != nil {
			return err
		}

		id, err := rt.currentIdentity()
		if err != nil {
			return err
		}

		page, err := rt.session.ListNotes(cmd.Context(), id.Email, notesPage, notesLimit)
		if err != nil {
			return err
		}

		for _, n := range page.Notes {
			printf("%s\t%s", n.ID, n.Title)
		}
		printf("page %d of %d", notesPage, page.TotalPages)
		return nil
	},
}

var notesUpdateCmd = &cobra.Command{
	Use:   "update <note-id>",
	Short: "Rewrite a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		if err := rt.requireRole(studysdk.RoleStudent); err != nil {
			return err
		}

		err = rt.session.UpdateNote(cmd.Context(), args[0], studysdk.UpdateNoteRequest{
			Title:   noteTitle,
			Content: noteContent,
		})
		if err != nil {
			return err
		}
		printf("Note updated.")
		return nil
	},
}

var notesDeleteCmd = &cobra.Command{
	Use:   "delete <note-id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		if err := rt.requireRole(studysdk.RoleStudent); err != nil {
			return err
		}

		if err := rt.session.DeleteNote(cmd.Context(), args[0]); err != nil {
			return err
		}
		printf("Note deleted.")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{notesAddCmd, notesUpdateCmd} {
		c.Flags().StringVar(&noteTitle, "title", "", "note title")
		c.Flags().StringVar(&noteContent, "content", "", "note content")
	}
	notesListCmd.Flags().IntVar(&notesPage, "page", 1, "page number")
	notesListCmd.Flags().IntVar(&notesLimit, "limit", 10, "page size")

	notesCmd.AddCommand(notesAddCmd, notesListCmd, notesUpdateCmd, notesDeleteCmd)
}
