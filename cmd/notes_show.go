package cmd

import (
	"errors"
	"fmt"
	"time"

	verrors "github.com/silverfern314/notevault/internal/errors"
	"github.com/silverfern314/notevault/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var notesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Decrypt and display a single note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		vault, err := openVault(NotesLogger)
		if err != nil {
			return NotesLogger.ErrorfAndReturn("failed to load config: %v", err)
		}
		if err := vault.unlock(NotesLogger); err != nil {
			return NotesLogger.ErrorfAndReturn("failed to unlock vault: %v", err)
		}

		note, err := vault.store.GetNote(id)
		if errors.Is(err, verrors.ErrDecryptionFailed) {
			// Unlike listing, an explicitly requested note that cannot
			// be decrypted is an error, not a silent omission.
			fmt.Println(color.RedString("✗") + " Note " + ui.Muted.Sprint(id) + " exists but cannot be decrypted with this key")
			return err
		}
		if err != nil {
			return NotesLogger.ErrorfAndReturn("failed to get note: %v", err)
		}
		if note == nil {
			fmt.Println(ui.Muted.Sprint("no note with id ") + ui.Muted.Sprint(id))
			return nil
		}

		created := time.UnixMilli(note.CreatedAt).Format(time.RFC1123)
		updated := time.UnixMilli(note.UpdatedAt).Format(time.RFC1123)

		fmt.Println(ui.Highlight.Sprint(note.Title) + "  " + ui.Muted.Sprintf("%s/%s", note.Folder, note.ID))
		fmt.Println(ui.Muted.Sprint("created " + created + ", updated " + updated))
		fmt.Println()
		fmt.Println(note.Content)
		return nil
	},
}
