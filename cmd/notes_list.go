package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/silverfern314/notevault/internal/ui"

	"github.com/spf13/cobra"
)

var listFolder string

func init() {
	notesListCmd.Flags().StringVarP(&listFolder, "folder", "f", "", "only list notes in this folder")
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List decrypted note titles",
	RunE: func(cmd *cobra.Command, args []string) error {
		vault, err := openVault(NotesLogger)
		if err != nil {
			return NotesLogger.ErrorfAndReturn("failed to load config: %v", err)
		}
		if err := vault.unlock(NotesLogger); err != nil {
			return NotesLogger.ErrorfAndReturn("failed to unlock vault: %v", err)
		}

		spinner, cleanup := startSpinner("Decrypting notes...", notesVerbose, notesDebug)
		defer cleanup()

		notes, err := vault.store.ListNotes()
		if err != nil {
			return NotesLogger.ErrorfAndReturn("failed to list notes: %v", err)
		}

		if listFolder != "" {
			filtered := notes[:0]
			for _, n := range notes {
				if n.Folder == listFolder {
					filtered = append(filtered, n)
				}
			}
			notes = filtered
		}

		if len(notes) == 0 {
			spinner.FinalMSG = ui.Muted.Sprint("no notes") + "\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("notevault notes create <title>")
			return nil
		}

		// Most recently updated first.
		sort.Slice(notes, func(i, j int) bool {
			return notes[i].UpdatedAt > notes[j].UpdatedAt
		})

		msg := ""
		for _, n := range notes {
			updated := time.UnixMilli(n.UpdatedAt).Format("2006-01-02 15:04")
			msg += fmt.Sprintf("%s  %s  %s\n",
				ui.Muted.Sprint(updated),
				ui.Highlight.Sprintf("%s/%s", n.Folder, n.Title),
				ui.Muted.Sprint(n.ID))
		}
		spinner.FinalMSG = msg
		return nil
	},
}
