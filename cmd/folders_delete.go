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

var foldersDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a folder and every note inside it",
	Long: `Delete a folder from the vault.

Every note stored in the folder is removed along with it. There is no
undo, so double-check the folder name before running this.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		vault, err := openVault(FoldersLogger)
		if err != nil {
			return FoldersLogger.ErrorfAndReturn("failed to load config: %v", err)
		}
		if err := vault.attach(); err != nil {
			return FoldersLogger.ErrorfAndReturn("not logged in: %v", err)
		}

		removed, err := vault.store.DeleteFolder(name)
		if errors.Is(err, verrors.ErrFolderNotFound) {
			fmt.Println(color.RedString("✗") + " No folder named " + ui.Highlight.Sprint(name))
			return err
		}
		if err != nil {
			return FoldersLogger.ErrorfAndReturn("failed to delete folder: %v", err)
		}

		audit.Log(audit.Entry{
			User:       vault.registry.CurrentUser(),
			Operation:  "folder.delete",
			Folder:     name,
			NotesCount: removed,
		})

		fmt.Printf("%s Deleted folder %s (%d notes removed)\n",
			color.GreenString("✓"), ui.Highlight.Sprint(name), removed)
		return nil
	},
}
