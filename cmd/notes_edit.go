package cmd

import (
	"errors"
	"fmt"

	"github.com/silverfern314/notevault/internal/audit"
	verrors "github.com/silverfern314/notevault/internal/errors"
	"github.com/silverfern314/notevault/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	editTitle   string
	editContent string
)

func init() {
	notesEditCmd.Flags().StringVarP(&editTitle, "title", "t", "", "new title (keeps current when omitted)")
	notesEditCmd.Flags().StringVarP(&editContent, "content", "c", "", "new content (keeps current when omitted)")
}

var notesEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Re-encrypt a note with new title or content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		if !cmd.Flags().Changed("title") && !cmd.Flags().Changed("content") {
			return fmt.Errorf("nothing to change: pass %s or %s", ui.Flag.Sprint("--title"), ui.Flag.Sprint("--content"))
		}

		vault, err := openVault(NotesLogger)
		if err != nil {
			return NotesLogger.ErrorfAndReturn("failed to load config: %v", err)
		}
		if err := vault.unlock(NotesLogger); err != nil {
			return NotesLogger.ErrorfAndReturn("failed to unlock vault: %v", err)
		}

		current, err := vault.store.GetNote(id)
		if err != nil {
			return NotesLogger.ErrorfAndReturn("failed to get note: %v", err)
		}
		if current == nil {
			// UpdateNote on an unknown id is a silent no-op in the
			// store; at the CLI we at least tell the user.
			fmt.Println(ui.Muted.Sprint("no note with id ") + ui.Muted.Sprint(id))
			return nil
		}

		title := current.Title
		if cmd.Flags().Changed("title") {
			title = editTitle
		}
		content := current.Content
		if cmd.Flags().Changed("content") {
			content = editContent
		}

		err = vault.store.UpdateNote(id, title, content)
		if errors.Is(err, verrors.ErrDuplicateTitle) {
			fmt.Println(color.RedString("✗") + " A note titled " + ui.Highlight.Sprint(title) + " already exists in that folder")
			return err
		}
		if err != nil {
			return NotesLogger.ErrorfAndReturn("failed to update note: %v", err)
		}

		audit.Log(audit.Entry{
			User:      vault.registry.CurrentUser(),
			Operation: "note.update",
			NoteID:    id,
			Folder:    current.Folder,
		})

		fmt.Println(color.GreenString("✓") + " Updated " + ui.Highlight.Sprint(title))
		return nil
	},
}
