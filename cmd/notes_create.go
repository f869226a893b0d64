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
	createFolder  string
	createContent string
)

func init() {
	notesCreateCmd.Flags().StringVarP(&createFolder, "folder", "f", "", "folder for the note (default: \"default\")")
	notesCreateCmd.Flags().StringVarP(&createContent, "content", "c", "", "note content (prompted when omitted)")
}

var notesCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create an encrypted note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]

		vault, err := openVault(NotesLogger)
		if err != nil {
			return NotesLogger.ErrorfAndReturn("failed to load config: %v", err)
		}
		if err := vault.unlock(NotesLogger); err != nil {
			return NotesLogger.ErrorfAndReturn("failed to unlock vault: %v", err)
		}

		content := createContent
		if !cmd.Flags().Changed("content") {
			content, err = ui.ReadLine("Content: ")
			if err != nil {
				return NotesLogger.ErrorfAndReturn("failed to read content: %v", err)
			}
		}

		note, err := vault.store.CreateNote(title, content, createFolder)
		if errors.Is(err, verrors.ErrDuplicateTitle) {
			fmt.Println(color.RedString("✗") + " A note titled " + ui.Highlight.Sprint(title) + " already exists in that folder")
			return err
		}
		if err != nil {
			return NotesLogger.ErrorfAndReturn("failed to create note: %v", err)
		}

		audit.Log(audit.Entry{
			User:      vault.registry.CurrentUser(),
			Operation: "note.create",
			NoteID:    note.ID,
			Folder:    note.Folder,
		})

		fmt.Println(color.GreenString("✓") + " Created " + ui.Highlight.Sprint(title) +
			" in " + ui.Highlight.Sprint(note.Folder) + " " + ui.Muted.Sprint(note.ID))
		return nil
	},
}
