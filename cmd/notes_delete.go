package cmd

import (
	"fmt"

	"github.com/silverfern314/notevault/internal/audit"
	"github.com/silverfern314/notevault/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var notesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note",
	Long: `Deletes the note with the given id. Deleting an id that does not
exist is not an error.

Deletions are local only: there are no sync tombstones, so a deleted
note still present on the remote reappears after the next merge.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		vault, err := openVault(NotesLogger)
		if err != nil {
			return NotesLogger.ErrorfAndReturn("failed to load config: %v", err)
		}
		if err := vault.unlock(NotesLogger); err != nil {
			return NotesLogger.ErrorfAndReturn("failed to unlock vault: %v", err)
		}

		if err := vault.store.DeleteNote(id); err != nil {
			return NotesLogger.ErrorfAndReturn("failed to delete note: %v", err)
		}

		audit.Log(audit.Entry{
			User:      vault.registry.CurrentUser(),
			Operation: "note.delete",
			NoteID:    id,
		})

		fmt.Println(color.GreenString("✓") + " Deleted " + ui.Muted.Sprint(id))
		return nil
	},
}
